package value

import (
	"fmt"
	"math"
)

// HashKey is the normalized form a Value collapses to for use as a Dict
// key. Two Values that are Equal produce the same HashKey, with one
// exception: Float hashing is bit-pattern based, so +0.0 and −0.0 are
// Equal but hash to different keys, and NaN hashes to a single key even
// though NaN is not Equal to itself (see DESIGN.md's Open Question
// decision).
type HashKey struct {
	kind Kind
	repr string
}

// HashOf computes the normalized hash key for v, or an error if v's
// variant is not hashable (§3: only String, Int, Float, Boolean, Null,
// Quote and Identifier may key a Dict).
func HashOf(v Value) (HashKey, error) {
	switch vv := v.(type) {
	case NullValue:
		return HashKey{kind: KindNull}, nil
	case BooleanValue:
		if vv.Value {
			return HashKey{kind: KindBoolean, repr: "t"}, nil
		}
		return HashKey{kind: KindBoolean, repr: "f"}, nil
	case IntValue:
		return HashKey{kind: KindInt, repr: fmt.Sprintf("%d", vv.Value)}, nil
	case FloatValue:
		return HashKey{kind: KindFloat, repr: fmt.Sprintf("%x", math.Float64bits(vv.Value))}, nil
	case StringValue:
		return HashKey{kind: KindString, repr: vv.Value}, nil
	case IdentifierValue:
		return HashKey{kind: KindIdentifier, repr: vv.Name}, nil
	case *QuoteValue:
		inner, err := HashOf(vv.Inner)
		if err != nil {
			return HashKey{}, err
		}
		return HashKey{kind: KindQuote, repr: inner.String()}, nil
	default:
		return HashKey{}, fmt.Errorf("unhashable type: %s", v.Kind())
	}
}

// String renders the HashKey for nesting inside a Quote's own hash.
func (h HashKey) String() string {
	return fmt.Sprintf("%d:%s", h.kind, h.repr)
}
