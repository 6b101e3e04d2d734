package rules

import "errors"

// ErrValidationFailed matches any rule failure via errors.Is, for
// callers that only care whether a value failed, not which rule.
var ErrValidationFailed = errors.New("validation failed")

// Error is the failure outcome of a rule. It carries the rule's fixed
// message verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == ErrValidationFailed
}

// Message extracts the fixed rule message from err. It returns an empty
// string when err is nil or did not originate from a rule.
func Message(err error) string {
	var re *Error
	if errors.As(err, &re) {
		return re.Message
	}
	return ""
}
