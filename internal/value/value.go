// Package value implements the tagged value model of the language core:
// the runtime Value variants, the scoped Environment they live in, and the
// equality/hashing rules that let Arrays, Dicts and Quotes compare
// structurally.
//
// Value and Environment are kept in one package, following the same
// bundling the teacher corpus uses for interpreter object models (compare
// Eloquence's object package, which keeps its Environment beside its
// Object variants): a Func value closes over an Environment argument, and
// an Environment stores Values, so the two types are mutually referential
// and belong together.
package value

import "fmt"

// Kind names a Value variant. It is what the debug-print ("names the
// variant") in §4.1 of the language core speaks of.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInt
	KindFloat
	KindString
	KindIdentifier
	KindArray
	KindDict
	KindQuote
	KindFunc
	KindOpenFunc
	KindCloseFunc
	KindBackTick
	KindComma
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindIdentifier:
		return "Identifier"
	case KindArray:
		return "Array"
	case KindDict:
		return "Dict"
	case KindQuote:
		return "Quote"
	case KindFunc:
		return "Func"
	case KindOpenFunc:
		return "OpenFunc"
	case KindCloseFunc:
		return "CloseFunc"
	case KindBackTick:
		return "BackTick"
	case KindComma:
		return "Comma"
	default:
		return "Unknown"
	}
}

// Value is the tagged sum described in §3 of the language core. Accessors
// that assume a specific variant live on the concrete types themselves;
// callers are expected to type-switch on Kind() first, the same contract
// DWScript's Value interface states for its own accessors.
type Value interface {
	Kind() Kind
	// String returns the debug-print form, shaped "Kind(...)" (for example
	// Int(3), Array(len=2), Null), never the canonical surface syntax. Use Format for user-facing output.
	String() string
}

// BuiltinFunc is the calling convention every native operator implements:
// an argument array plus the environment it was invoked under, producing
// either a result Value or a propagating error (NameError, IndexError,
// ArgumentError, GenericError, or a control-flow signal).
type BuiltinFunc func(args []Value, env *Environment) (Value, error)

// NullValue is the unit value.
type NullValue struct{}

func (NullValue) Kind() Kind     { return KindNull }
func (NullValue) String() string { return "Null" }

// Null is the single shared instance; Null is immutable so sharing it is safe.
var Null Value = NullValue{}

// BooleanValue is true/false.
type BooleanValue struct{ Value bool }

func (b BooleanValue) Kind() Kind { return KindBoolean }
func (b BooleanValue) String() string {
	if b.Value {
		return "Boolean(true)"
	}
	return "Boolean(false)"
}

// True and False are the shared Boolean instances.
var (
	True  Value = BooleanValue{Value: true}
	False Value = BooleanValue{Value: false}
)

// Bool returns the shared True/False instance for v.
func Bool(v bool) Value {
	if v {
		return True
	}
	return False
}

// IntValue is a 64-bit signed integer.
type IntValue struct{ Value int64 }

func (i IntValue) Kind() Kind     { return KindInt }
func (i IntValue) String() string { return fmt.Sprintf("Int(%d)", i.Value) }

// FloatValue is a 64-bit IEEE-754 double.
type FloatValue struct{ Value float64 }

func (f FloatValue) Kind() Kind     { return KindFloat }
func (f FloatValue) String() string { return fmt.Sprintf("Float(%g)", f.Value) }

// StringValue is UTF-8 text. Immutable by convention: operators that
// "mutate" a string always produce a new StringValue.
type StringValue struct{ Value string }

func (s StringValue) Kind() Kind     { return KindString }
func (s StringValue) String() string { return fmt.Sprintf("String(%q)", s.Value) }

// IdentifierValue is an unevaluated name. It only reaches the evaluator
// when wrapped in a Quote; a bare Identifier token is always looked up.
type IdentifierValue struct{ Name string }

func (i IdentifierValue) Kind() Kind     { return KindIdentifier }
func (i IdentifierValue) String() string { return fmt.Sprintf("Identifier(%s)", i.Name) }

// ArrayValue is an ordered, indexable, concatenable sequence.
//
// A raw ArrayValue fresh off the parser may still hold lexical marker
// tokens (OpenFuncValue/CloseFuncValue) for nested applications that were
// never reduced at parse time — each time the literal is evaluated, the
// evaluator builds a new ArrayValue whose Elements hold only concrete
// Values (see evaluator.evalArrayLiteral); the parsed literal itself is
// left unchanged.
type ArrayValue struct{ Elements []Value }

func (a *ArrayValue) Kind() Kind     { return KindArray }
func (a *ArrayValue) String() string { return fmt.Sprintf("Array(len=%d)", len(a.Elements)) }

// DictPair is one key/value entry of a Dict, preserved in insertion order
// for deterministic (if unspecified) print iteration.
type DictPair struct {
	Key   Value
	Value Value
}

// DictValue maps hashable Values to Values. Keys are normalized per the
// hashing rules in hash.go before insertion or lookup.
type DictValue struct {
	order []HashKey
	pairs map[HashKey]DictPair
}

// NewDict creates an empty Dict.
func NewDict() *DictValue {
	return &DictValue{pairs: make(map[HashKey]DictPair)}
}

func (d *DictValue) Kind() Kind     { return KindDict }
func (d *DictValue) String() string { return fmt.Sprintf("Dict(len=%d)", len(d.order)) }

// Set inserts or overwrites the value bound to key. It returns an error if
// key is not hashable.
func (d *DictValue) Set(key, val Value) error {
	hk, err := HashOf(key)
	if err != nil {
		return err
	}
	if _, ok := d.pairs[hk]; !ok {
		d.order = append(d.order, hk)
	}
	d.pairs[hk] = DictPair{Key: key, Value: val}
	return nil
}

// Get looks up key, returning ok=false if absent or unhashable.
func (d *DictValue) Get(key Value) (Value, bool) {
	hk, err := HashOf(key)
	if err != nil {
		return nil, false
	}
	pair, ok := d.pairs[hk]
	if !ok {
		return nil, false
	}
	return pair.Value, true
}

// Len returns the number of entries.
func (d *DictValue) Len() int { return len(d.order) }

// Pairs returns the entries in insertion order.
func (d *DictValue) Pairs() []DictPair {
	out := make([]DictPair, 0, len(d.order))
	for _, hk := range d.order {
		out = append(out, d.pairs[hk])
	}
	return out
}

// QuoteValue wraps exactly one inner Value, suppressing its evaluation
// exactly once.
type QuoteValue struct{ Inner Value }

func (q *QuoteValue) Kind() Kind     { return KindQuote }
func (q *QuoteValue) String() string { return fmt.Sprintf("Quote(%s)", q.Inner.String()) }

// FuncValue is a native operator. Equality between two FuncValues is the
// identity of the underlying Go function value (see Equal in equality.go).
type FuncValue struct {
	Name string
	Fn   BuiltinFunc
}

func (f *FuncValue) Kind() Kind     { return KindFunc }
func (f *FuncValue) String() string { return fmt.Sprintf("Func(%s)", f.Name) }

// OpenFuncValue and CloseFuncValue are the bracket markers the parser
// emits around an application's token run. They are consumed entirely by
// the evaluator's frame stack and never surface as ordinary data.
type OpenFuncValue struct{}

func (OpenFuncValue) Kind() Kind     { return KindOpenFunc }
func (OpenFuncValue) String() string { return "OpenFunc" }

type CloseFuncValue struct{}

func (CloseFuncValue) Kind() Kind     { return KindCloseFunc }
func (CloseFuncValue) String() string { return "CloseFunc" }

// BackTickValue and CommaValue round out the lexical token set the
// original grammar reserves for quasiquotation. No builtin operator gives
// them meaning; the evaluator passes them through like any
// other literal, matching the reference implementation's behavior of
// pushing them onto the result stack unevaluated.
type BackTickValue struct{}

func (BackTickValue) Kind() Kind     { return KindBackTick }
func (BackTickValue) String() string { return "BackTick" }

type CommaValue struct{}

func (CommaValue) Kind() Kind     { return KindComma }
func (CommaValue) String() string { return "Comma" }

// IsUserFunc reports whether v is the Array[params, body] shape a
// UserFunc is represented as (§3): two elements, the first an Array of
// Quote(Identifier) parameters.
func IsUserFunc(v Value) (params *ArrayValue, body *ArrayValue, ok bool) {
	arr, isArr := v.(*ArrayValue)
	if !isArr || len(arr.Elements) != 2 {
		return nil, nil, false
	}
	params, isParams := arr.Elements[0].(*ArrayValue)
	body, isBody := arr.Elements[1].(*ArrayValue)
	if !isParams || !isBody {
		return nil, nil, false
	}
	return params, body, true
}

// IdentifierName unwraps v to the name it designates, accepting either a
// bare Identifier or a Quote(Identifier) — the shape a name-taking
// builtin argument (`set`, `defn`, `loop`, `swap`) arrives in once it has
// passed through evaluation, since a bare Identifier would otherwise have
// been looked up instead of left as a name. Mirrors the reference
// implementation's Value::as_value() unwrap used the same way.
func IdentifierName(v Value) (string, bool) {
	switch vv := v.(type) {
	case IdentifierValue:
		return vv.Name, true
	case *QuoteValue:
		if id, ok := vv.Inner.(IdentifierValue); ok {
			return id.Name, true
		}
	}
	return "", false
}
