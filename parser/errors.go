package parser

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrContractViolation is the cause of every ContractError.
var ErrContractViolation = errors.New("tokenizer contract violation")

// ContractError reports that a token construction helper was called in a
// state the transition table never allows. It halts the tokenizer.
type ContractError struct {
	State State
	err   error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s in %s state", e.err, e.State)
}

func (e *ContractError) Cause() error  { return errors.Cause(e.err) }
func (e *ContractError) Unwrap() error { return e.err }

// Format prints the stack captured at the violation with %+v.
func (e *ContractError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", e.err)
		return
	}
	fmt.Fprint(s, e.Error())
}

// assert panics with a ContractError when cond does not hold. Next recovers
// the panic and halts the tokenizer.
func (p *Tokenizer) assert(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	panic(&ContractError{
		State: p.currentState,
		err:   errors.Wrapf(ErrContractViolation, format, args...),
	})
}
