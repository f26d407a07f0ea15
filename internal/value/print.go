package value

import (
	"fmt"
	"strings"
)

// Format renders v in the canonical surface syntax described in §6. repr
// selects string-repr mode (double-quoted) versus plain mode (raw bytes);
// containers always print their own elements in repr mode regardless of
// the mode they themselves were asked for, matching the reference
// implementation's print_array always calling print_value(..., true) on
// its elements.
func Format(v Value, repr bool) string {
	switch vv := v.(type) {
	case NullValue:
		return "Null"
	case BooleanValue:
		if vv.Value {
			return "True"
		}
		return "False"
	case IntValue:
		return fmt.Sprintf("%d", vv.Value)
	case FloatValue:
		return fmt.Sprintf("%g", vv.Value)
	case StringValue:
		if repr {
			return "\"" + vv.Value + "\""
		}
		return vv.Value
	case IdentifierValue:
		return vv.Name
	case *ArrayValue:
		parts := make([]string, len(vv.Elements))
		for i, e := range vv.Elements {
			parts[i] = Format(e, true)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case *DictValue:
		parts := make([]string, 0, vv.Len())
		for _, pair := range vv.Pairs() {
			parts = append(parts, fmt.Sprintf("%s: %s", Format(pair.Key, true), Format(pair.Value, true)))
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case *QuoteValue:
		return "(quote " + Format(vv.Inner, repr) + ")"
	case *FuncValue:
		return fmt.Sprintf("<Func at %p>", vv.Fn)
	default:
		return v.String()
	}
}
