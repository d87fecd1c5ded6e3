package egraph

import (
	"errors"
	"fmt"
)

// Error codes for precondition violations (spec §7): caller mistakes
// that this package detects and reports rather than panicking on, since
// they're reachable from ordinary misuse rather than being bugs in the
// e-graph's own invariants.
//
// Passing Add a non-canonical node is deliberately not one of these: per
// spec §4.3, canonicalizing the node against the union-find is add's own
// first step, not a precondition on its caller — a node built from ids
// that were valid when the caller built it but have since been merged
// away is the normal case, not a bug.
const (
	CodeUnknownId     = "UNKNOWN_ID"
	CodeIllFormedNode = "ILL_FORMED_NODE"
)

// Error reports a precondition violation: a caller passed Add a node that
// references an id this EGraph never allocated, or passed Merge/Reachable
// such an id. ([EGraph.Find] panics on an unallocated id instead.)
//
// Invariant violations (bugs in this package, not the caller's) are not
// reported as *Error; they panic, per spec §7.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("egraph: [%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("egraph: [%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// IsUnknownId reports whether err is (or wraps) an unknown-id Error.
func IsUnknownId(err error) bool {
	return errors.Is(err, &Error{Code: CodeUnknownId})
}

// IsIllFormedNode reports whether err is (or wraps) an ill-formed-node
// Error.
func IsIllFormedNode(err error) bool {
	return errors.Is(err, &Error{Code: CodeIllFormedNode})
}
