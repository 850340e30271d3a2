package builtins

import (
	"github.com/tua-lang/tua/internal/evalerr"
	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/values"
)

// listIterator walks a *values.List by index, one pull at a time.
type listIterator struct {
	list *values.List
	next int
}

func (it *listIterator) Next() (Pair, bool) {
	if it.next >= it.list.Len() {
		return Pair{}, false
	}
	v, _ := it.list.Get(it.next)
	pair := Pair{Key: values.Int(int64(it.next)), Value: v}
	it.next++
	return pair, true
}

// builtinIpairs produces a lazy (index, element) sequence over a list,
// consumed by generic `for k, v in ipairs(xs) do ... end` (§4.6, §9).
func builtinIpairs(ctx Context, args []values.Value, pos lexer.Position) (KVIterator, error) {
	if len(args) != 1 {
		return nil, evalerr.NewSemantic(pos, "ipairs expects exactly 1 argument, got %d", len(args))
	}
	if !args[0].Type.IsList() {
		return nil, evalerr.NewSemantic(pos, "ipairs expects a list, got %s", args[0].Type)
	}
	return &listIterator{list: args[0].AsList()}, nil
}
