// Package signal defines the control-flow signal sum threaded out of
// every evaluation step (§4.5): typed errors that abort the current
// top-level form, plus the Return and Break sentinels that unwind to a
// specific enclosing construct instead.
package signal

import "fmt"

// Kind names one of the error variants in the taxonomy (§7). Return and
// Break are not Kinds: they travel as distinct sentinel error values so
// the evaluator can tell "abort and report" apart from "unwind to my
// enclosing loop/call" with an identity check (IsReturn/IsBreak).
type Kind string

const (
	KindName     Kind = "NameError"
	KindIndex    Kind = "IndexError"
	KindArgument Kind = "ArgumentError"
	KindGeneric  Kind = "GenericError"
)

// Error is a typed, user-visible language error. Its Error() string is
// exactly the "<Kind>: <message>" line the top-level driver prints (§7).
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NameErrorf builds an unbound-identifier error.
func NameErrorf(format string, args ...any) error {
	return &Error{Kind: KindName, Message: fmt.Sprintf(format, args...)}
}

// IndexErrorf builds an index/key-shape error.
func IndexErrorf(format string, args ...any) error {
	return &Error{Kind: KindIndex, Message: fmt.Sprintf(format, args...)}
}

// ArgumentErrorf builds an arity/type/value error.
func ArgumentErrorf(format string, args ...any) error {
	return &Error{Kind: KindArgument, Message: fmt.Sprintf(format, args...)}
}

// GenericErrorf builds a catch-all host error.
func GenericErrorf(format string, args ...any) error {
	return &Error{Kind: KindGeneric, Message: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds up to the enclosing user-function call. The value
// it carries travels separately via the environment's return channel
// (§4.2), so the signal itself carries no payload.
type returnSignal struct{}

func (returnSignal) Error() string { return "return outside function" }

// breakSignal unwinds up to the enclosing loop.
type breakSignal struct{}

func (breakSignal) Error() string { return "break outside loop" }

// ErrReturn and ErrBreak are the shared Return/Break sentinels. Raise them
// with errors.New-style identity checks (IsReturn/IsBreak) rather than
// constructing new instances, since they carry no state.
var (
	ErrReturn error = returnSignal{}
	ErrBreak  error = breakSignal{}
)

// IsReturn reports whether err is the Return signal itself; a wrapped
// Return signal is not unwrapped.
func IsReturn(err error) bool {
	_, ok := err.(returnSignal)
	return ok
}

// IsBreak reports whether err is the Break signal itself; a wrapped Break
// signal is not unwrapped.
func IsBreak(err error) bool {
	_, ok := err.(breakSignal)
	return ok
}
