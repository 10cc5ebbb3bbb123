package validation

// Error is a payload rejection. The message names the violated rule and is
// safe to return to clients verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
