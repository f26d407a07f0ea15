package value

import "reflect"

// Equal implements the structural equality described in §3: same-variant
// pairs compare structurally, Int and Float never cross-compare, Func
// equality is identity of the underlying callable, and Quote equality is
// structural on the wrapped inner Value. Cross-variant pairs are simply
// unequal; operators that must instead raise ArgumentError on a type
// mismatch (the `=`/`!=` builtins) check variants themselves before
// calling Equal.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	case BooleanValue:
		bv, ok := b.(BooleanValue)
		return ok && av.Value == bv.Value
	case IntValue:
		bv, ok := b.(IntValue)
		return ok && av.Value == bv.Value
	case FloatValue:
		bv, ok := b.(FloatValue)
		return ok && av.Value == bv.Value
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Value == bv.Value
	case IdentifierValue:
		bv, ok := b.(IdentifierValue)
		return ok && av.Name == bv.Name
	case *ArrayValue:
		bv, ok := b.(*ArrayValue)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *DictValue:
		bv, ok := b.(*DictValue)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, pair := range av.Pairs() {
			other, found := bv.Get(pair.Key)
			if !found || !Equal(pair.Value, other) {
				return false
			}
		}
		return true
	case *QuoteValue:
		bv, ok := b.(*QuoteValue)
		return ok && Equal(av.Inner, bv.Inner)
	case *FuncValue:
		bv, ok := b.(*FuncValue)
		if !ok {
			return false
		}
		return reflect.ValueOf(av.Fn).Pointer() == reflect.ValueOf(bv.Fn).Pointer()
	case OpenFuncValue:
		_, ok := b.(OpenFuncValue)
		return ok
	case CloseFuncValue:
		_, ok := b.(CloseFuncValue)
		return ok
	case BackTickValue:
		_, ok := b.(BackTickValue)
		return ok
	case CommaValue:
		_, ok := b.(CommaValue)
		return ok
	default:
		return false
	}
}
