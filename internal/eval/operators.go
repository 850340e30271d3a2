package eval

import (
	"math"

	"github.com/tua-lang/tua/internal/ast"
	"github.com/tua-lang/tua/internal/evalerr"
	"github.com/tua-lang/tua/internal/values"
)

// evalBinary dispatches a binary operator against already-evaluated
// operands, enforcing the type rules of §4.1 before computing a result.
func (e *Evaluator) evalBinary(expr *ast.BinaryExpression, left, right values.Value) (values.Value, error) {
	switch expr.Operator {
	case "+", "-", "*", "%":
		return evalArithmetic(expr, left, right)
	case "/":
		return evalFloatDivide(expr, left, right)
	case "//":
		return evalFloorDivide(expr, left, right)
	case "^":
		return evalPower(expr, left, right)
	case "..":
		return evalConcat(expr, left, right)
	case "==":
		return evalEquality(expr, left, right, true)
	case "~=":
		return evalEquality(expr, left, right, false)
	case "<", "<=", ">", ">=":
		return evalComparison(expr, left, right)
	case "and", "&":
		return evalBooleanOp(expr, left, right, func(a, b bool) bool { return a && b })
	case "or", "|":
		return evalBooleanOp(expr, left, right, func(a, b bool) bool { return a || b })
	default:
		return values.Value{}, evalerr.NewInternal("unknown binary operator %q", expr.Operator)
	}
}

func isNumeric(v values.Value) bool { return v.Type.ID == "int" || v.Type.ID == "float" }

func asFloat(v values.Value) float64 {
	if v.Type.ID == "int" {
		return float64(v.AsInt())
	}
	return v.AsFloat()
}

func evalArithmetic(expr *ast.BinaryExpression, left, right values.Value) (values.Value, error) {
	if !isNumeric(left) || !isNumeric(right) {
		return values.Value{}, evalerr.NewSemantic(expr.Pos(), "operator %q requires numeric operands, got %s and %s", expr.Operator, left.Type, right.Type)
	}
	if left.Type.ID == "int" && right.Type.ID == "int" {
		a, b := left.AsInt(), right.AsInt()
		switch expr.Operator {
		case "+":
			return values.Int(a + b), nil
		case "-":
			return values.Int(a - b), nil
		case "*":
			return values.Int(a * b), nil
		case "%":
			if b == 0 {
				return values.Value{}, evalerr.NewSemantic(expr.Pos(), "modulo by zero")
			}
			return values.Int(a % b), nil
		}
	}
	a, b := asFloat(left), asFloat(right)
	switch expr.Operator {
	case "+":
		return values.Float(a + b), nil
	case "-":
		return values.Float(a - b), nil
	case "*":
		return values.Float(a * b), nil
	case "%":
		if b == 0 {
			return values.Value{}, evalerr.NewSemantic(expr.Pos(), "modulo by zero")
		}
		return values.Float(math.Mod(a, b)), nil
	}
	return values.Value{}, evalerr.NewInternal("unreachable arithmetic operator %q", expr.Operator)
}

// evalFloatDivide implements `/`: division always produces a float result,
// matching Lua's division operator rather than C-style truncating integer
// division.
func evalFloatDivide(expr *ast.BinaryExpression, left, right values.Value) (values.Value, error) {
	if !isNumeric(left) || !isNumeric(right) {
		return values.Value{}, evalerr.NewSemantic(expr.Pos(), "operator \"/\" requires numeric operands, got %s and %s", left.Type, right.Type)
	}
	b := asFloat(right)
	if b == 0 {
		return values.Value{}, evalerr.NewSemantic(expr.Pos(), "division by zero")
	}
	return values.Float(asFloat(left) / b), nil
}

// evalFloorDivide implements `//`: floor division, staying int when both
// operands are int and falling back to float otherwise.
func evalFloorDivide(expr *ast.BinaryExpression, left, right values.Value) (values.Value, error) {
	if !isNumeric(left) || !isNumeric(right) {
		return values.Value{}, evalerr.NewSemantic(expr.Pos(), "operator \"//\" requires numeric operands, got %s and %s", left.Type, right.Type)
	}
	if left.Type.ID == "int" && right.Type.ID == "int" {
		b := right.AsInt()
		if b == 0 {
			return values.Value{}, evalerr.NewSemantic(expr.Pos(), "division by zero")
		}
		return values.Int(int64(math.Floor(float64(left.AsInt()) / float64(b)))), nil
	}
	b := asFloat(right)
	if b == 0 {
		return values.Value{}, evalerr.NewSemantic(expr.Pos(), "division by zero")
	}
	return values.Float(math.Floor(asFloat(left) / b)), nil
}

// evalPower implements `^`, right-associative exponentiation that always
// produces a float result.
func evalPower(expr *ast.BinaryExpression, left, right values.Value) (values.Value, error) {
	if !isNumeric(left) || !isNumeric(right) {
		return values.Value{}, evalerr.NewSemantic(expr.Pos(), "operator \"^\" requires numeric operands, got %s and %s", left.Type, right.Type)
	}
	return values.Float(math.Pow(asFloat(left), asFloat(right))), nil
}

// evalConcat implements `..`: string concatenation only. List concatenation
// has its own builtin (concat) since lists have no infix operator (§4.9).
func evalConcat(expr *ast.BinaryExpression, left, right values.Value) (values.Value, error) {
	if left.Type.ID != "string" || right.Type.ID != "string" {
		return values.Value{}, evalerr.NewSemantic(expr.Pos(), "operator \"..\" requires string operands, got %s and %s", left.Type, right.Type)
	}
	return values.Str(left.AsString() + right.AsString()), nil
}

func evalEquality(expr *ast.BinaryExpression, left, right values.Value, want bool) (values.Value, error) {
	eq := valuesEqual(left, right)
	if want {
		return values.Bool(eq), nil
	}
	return values.Bool(!eq), nil
}

func valuesEqual(left, right values.Value) bool {
	if isNumeric(left) && isNumeric(right) {
		return asFloat(left) == asFloat(right)
	}
	if !left.Type.Equal(right.Type) {
		return false
	}
	switch left.Type.ID {
	case "bool":
		return left.AsBool() == right.AsBool()
	case "string":
		return left.AsString() == right.AsString()
	case "nil":
		return true
	case "function":
		return left.AsFunction() == right.AsFunction()
	default:
		if left.Type.IsList() {
			la, lb := left.AsList(), right.AsList()
			if la.Len() != lb.Len() {
				return false
			}
			for i := range la.Elements {
				if !valuesEqual(la.Elements[i], lb.Elements[i]) {
					return false
				}
			}
			return true
		}
		return false
	}
}

func evalComparison(expr *ast.BinaryExpression, left, right values.Value) (values.Value, error) {
	var cmp int
	switch {
	case isNumeric(left) && isNumeric(right):
		a, b := asFloat(left), asFloat(right)
		switch {
		case a < b:
			cmp = -1
		case a > b:
			cmp = 1
		default:
			cmp = 0
		}
	case left.Type.ID == "string" && right.Type.ID == "string":
		a, b := left.AsString(), right.AsString()
		switch {
		case a < b:
			cmp = -1
		case a > b:
			cmp = 1
		default:
			cmp = 0
		}
	default:
		return values.Value{}, evalerr.NewSemantic(expr.Pos(), "operator %q requires two numbers or two strings, got %s and %s", expr.Operator, left.Type, right.Type)
	}
	switch expr.Operator {
	case "<":
		return values.Bool(cmp < 0), nil
	case "<=":
		return values.Bool(cmp <= 0), nil
	case ">":
		return values.Bool(cmp > 0), nil
	case ">=":
		return values.Bool(cmp >= 0), nil
	}
	return values.Value{}, evalerr.NewInternal("unreachable comparison operator %q", expr.Operator)
}

func evalBooleanOp(expr *ast.BinaryExpression, left, right values.Value, op func(a, b bool) bool) (values.Value, error) {
	if left.Type.ID != "bool" || right.Type.ID != "bool" {
		return values.Value{}, evalerr.NewSemantic(expr.Pos(), "operator %q requires boolean operands, got %s and %s", expr.Operator, left.Type, right.Type)
	}
	return values.Bool(op(left.AsBool(), right.AsBool())), nil
}

// evalUnary dispatches a prefix operator against an already-evaluated operand.
func (e *Evaluator) evalUnary(expr *ast.UnaryExpression, operand values.Value) (values.Value, error) {
	switch expr.Operator {
	case "-":
		switch operand.Type.ID {
		case "int":
			return values.Int(-operand.AsInt()), nil
		case "float":
			return values.Float(-operand.AsFloat()), nil
		default:
			return values.Value{}, evalerr.NewSemantic(expr.Pos(), "unary \"-\" requires a numeric operand, got %s", operand.Type)
		}
	case "not":
		if operand.Type.ID != "bool" {
			return values.Value{}, evalerr.NewSemantic(expr.Pos(), "unary \"not\" requires a boolean operand, got %s", operand.Type)
		}
		return values.Bool(!operand.AsBool()), nil
	default:
		return values.Value{}, evalerr.NewInternal("unknown unary operator %q", expr.Operator)
	}
}
