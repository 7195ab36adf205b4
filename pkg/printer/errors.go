package printer

import "fmt"

// Error kinds (spec.md §7). Public Emit*/Emit operations return the first
// one encountered; they are never retried and never produce partial
// recovery — the sink's state on failure is explicitly undefined, matching
// the teacher's own "panic, recover at Fprint, re-panic on unknown kinds"
// shape in pkg/jindo/parser/printer.go's Fprint.

// SinkError wraps a failure from the writer's underlying io.Writer. It is
// propagated, never swallowed.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string { return fmt.Sprintf("printer: sink error: %v", e.Err) }
func (e *SinkError) Unwrap() error { return e.Err }

// InvariantViolation reports a broken internal invariant: unbalanced
// indentation (I4), or a template literal whose quasi/expr counts violate
// R4. It indicates a bug in the printer itself or in a caller that built
// an ill-formed list, never a recoverable input condition.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("printer: invariant violation: %s", e.Detail)
}

// MalformedAst reports an AST that is missing a field its variant requires
// (e.g. an IfStmt with a nil Cons), or an unrecognized node variant
// reaching the dispatcher. It indicates a bug in the caller supplying the
// AST.
type MalformedAst struct {
	Detail string
}

func (e *MalformedAst) Error() string {
	return fmt.Sprintf("printer: malformed ast: %s", e.Detail)
}

func malformed(format string, args ...any) {
	panic(&MalformedAst{Detail: fmt.Sprintf(format, args...)})
}

func invariant(format string, args ...any) {
	panic(&InvariantViolation{Detail: fmt.Sprintf(format, args...)})
}
