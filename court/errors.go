package court

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories a court operation can
// surface. Handlers switch on the kind to pick a reply; nothing below it
// leaks raw platform errors to the command boundary.
type ErrorKind int

const (
	// KindValidation rejects malformed input (sentence length, list limit)
	// before any side effect happens.
	KindValidation ErrorKind = iota
	// KindAuthorityDenied is a hierarchy refusal from CanSanction.
	KindAuthorityDenied
	// KindEnforcementFailed means the Discord call itself failed. No ledger
	// row is written, so re-issuing the command is safe.
	KindEnforcementFailed
	// KindPersistenceFailed means the ledger write failed after the platform
	// action already succeeded. This leaves an audit gap and must be logged.
	KindPersistenceFailed
)

// Error is the typed failure returned by every Service operation.
type Error struct {
	Kind   ErrorKind
	Reason string // user-facing, already flavored where it comes from policy
	Err    error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newValidation(reason string) *Error {
	return &Error{Kind: KindValidation, Reason: reason}
}

func newDenied(reason string) *Error {
	return &Error{Kind: KindAuthorityDenied, Reason: reason}
}

func newEnforcement(reason string, err error) *Error {
	return &Error{Kind: KindEnforcementFailed, Reason: reason, Err: err}
}

func newPersistence(err error) *Error {
	return &Error{Kind: KindPersistenceFailed, Reason: "The royal scribes failed to record the judgment!", Err: err}
}

// KindOf extracts the court error kind from err.
func KindOf(err error) (ErrorKind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// UserMessage maps an error kind to its fallback user-facing text. The
// switch is exhaustive over ErrorKind; adding a kind without a message is a
// compile-visible omission here rather than a silent map miss.
func UserMessage(kind ErrorKind) string {
	switch kind {
	case KindValidation:
		return "Thy argument is flawed, noble sir. Check thy command usage."
	case KindAuthorityDenied:
		return "Thou lacketh the royal seal for this command!"
	case KindEnforcementFailed:
		return "The guards refuse the royal writ! Try anon, m'lord."
	case KindPersistenceFailed:
		return "An ill omen befell the royal scribes! The chronicles may be incomplete."
	}
	return "An ill omen befell the royal court."
}
