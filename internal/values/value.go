package values

import "fmt"

// Value is a tagged runtime value: its Type names which of Data's dynamic
// types is meaningful (§3 — a Value is always exactly one of int, float,
// bool, string, nil, function, or List[E]).
type Value struct {
	Type Type
	Data any
}

func Int(i int64) Value    { return Value{Type: Type{ID: "int"}, Data: i} }
func Float(f float64) Value { return Value{Type: Type{ID: "float"}, Data: f} }
func Bool(b bool) Value    { return Value{Type: Type{ID: "bool"}, Data: b} }
func Str(s string) Value   { return Value{Type: Type{ID: "string"}, Data: s} }
func NilValue() Value      { return Value{Type: Type{ID: "nil"}, Data: nil} }

// Func wraps a *Function descriptor as a Value of type function.
func Func(f *Function) Value { return Value{Type: Type{ID: "function"}, Data: f} }

// ListValue wraps a *List as a Value of its own list type.
func ListValue(l *List) Value { return Value{Type: l.Type(), Data: l} }

func (v Value) AsInt() int64      { return v.Data.(int64) }
func (v Value) AsFloat() float64  { return v.Data.(float64) }
func (v Value) AsBool() bool      { return v.Data.(bool) }
func (v Value) AsString() string  { return v.Data.(string) }
func (v Value) AsList() *List     { return v.Data.(*List) }
func (v Value) AsFunction() *Function { return v.Data.(*Function) }

func (v Value) IsNil() bool { return v.Type.ID == "nil" }

// Clone deep-copies v. Scalars are copied by Go assignment already; only the
// list case needs an explicit deep copy to sever aliasing (§4.7.3).
func (v Value) Clone() Value {
	if l, ok := v.Data.(*List); ok {
		return ListValue(l.Clone())
	}
	return v
}

// String renders v the way `print` and string concatenation display it.
func (v Value) String() string {
	switch v.Type.ID {
	case "int":
		return fmt.Sprintf("%d", v.AsInt())
	case "float":
		return fmt.Sprintf("%g", v.AsFloat())
	case "bool":
		if v.AsBool() {
			return "true"
		}
		return "false"
	case "string":
		return v.AsString()
	case "nil":
		return "nil"
	case "function":
		return "function: " + v.AsFunction().Name
	default:
		if v.Type.IsList() {
			return v.AsList().String()
		}
		return fmt.Sprintf("%v", v.Data)
	}
}
