package pipeline

// ContractViolationError indicates an upstream record broke the expected
// shape: a required field is missing, or a field that must be numeric is not.
// It aborts the whole batch; row-level oddities (unmapped severity codes,
// unexpected host shapes) never raise it.
type ContractViolationError struct {
	msg string
}

func NewContractViolationError(msg string) error {
	return &ContractViolationError{
		msg: msg,
	}
}

func (e *ContractViolationError) Error() string {
	return e.msg
}
