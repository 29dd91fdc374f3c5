package auth

import "fmt"

// SignInState is the state of one sign-in attempt
type SignInState int

const (
	StateUnauthenticated SignInState = iota
	StateValidating
	StateAuthenticated
	StateRejected
)

func (s SignInState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateValidating:
		return "validating"
	case StateAuthenticated:
		return "authenticated"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("SignInState(%d)", int(s))
	}
}

// Terminal reports whether no further transition is allowed
func (s SignInState) Terminal() bool {
	return s == StateAuthenticated || s == StateRejected
}

// Lifecycle tracks a single attempt:
// unauthenticated -> validating -> authenticated | rejected.
// There is no retry; a new attempt starts a new Lifecycle.
type Lifecycle struct {
	state SignInState
}

// NewLifecycle returns a lifecycle in the unauthenticated state
func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: StateUnauthenticated}
}

// State returns the current state
func (l *Lifecycle) State() SignInState {
	return l.state
}

// Submit moves an unauthenticated attempt into validation
func (l *Lifecycle) Submit() error {
	return l.transition(StateUnauthenticated, StateValidating)
}

// Accept completes a validating attempt
func (l *Lifecycle) Accept() error {
	return l.transition(StateValidating, StateAuthenticated)
}

// Reject fails a validating attempt
func (l *Lifecycle) Reject() error {
	return l.transition(StateValidating, StateRejected)
}

// Resolve accepts when ok is true and rejects otherwise
func (l *Lifecycle) Resolve(ok bool) error {
	if ok {
		return l.Accept()
	}
	return l.Reject()
}

func (l *Lifecycle) transition(from, to SignInState) error {
	if l.state != from {
		return fmt.Errorf("invalid sign-in transition %s -> %s", l.state, to)
	}
	l.state = to
	return nil
}
