package eval

import (
	"github.com/tua-lang/tua/internal/evalerr"
	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/values"
)

// coerce requires v.Type to equal declared exactly, with the one documented
// exception: an empty list literal (sentinel type List[]) adopts declared's
// element type on first binding (§4.2). There is no int->float widening —
// the type system is nominal with no implicit conversions (§4.1, §4.2,
// §4.3, §4.7).
func coerce(v values.Value, declared values.Type, pos lexer.Position, context string) (values.Value, error) {
	if v.Type.Equal(declared) {
		return v, nil
	}
	if declared.IsList() && v.Type.ID == "List[]" {
		list := v.AsList()
		list.ElemType = declared.ElemType()
		return values.ListValue(list), nil
	}
	return values.Value{}, evalerr.NewSemantic(pos, "%s expects %s, got %s", context, declared, v.Type)
}
