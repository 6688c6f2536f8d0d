/*
Package errors implements the error taxonomy of the settlement ledger.

Every error returned to a caller must wrap one of the root errors declared
in this package. A root error carries a small integer code that is surfaced
to callers together with a description, so that clients can distinguish
failures without parsing messages.

If you want to register a custom error use Register(code, description).
For reusing errors use ErrXyz.New and ErrXyz.Newf.

Create errors with ErrXyz.New("...") or errors.Wrap(err, "...") at the point
of failure so that a stack trace is attached. Only the innermost wrap records
the stack trace.

Formatting an error with
	%s prints the message
	%+v prints the message and the full stack trace
*/
package errors
