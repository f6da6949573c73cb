package simulation

import "fmt"

// Policy selects how an actor turns "this seat looks free" into a claim.
type Policy int

const (
	// PolicyGuarded claims through the booking service, whose mutex covers
	// both the check and the mark.
	PolicyGuarded Policy = iota
	// PolicyUnguarded checks the seat, sleeps for the race window and then
	// marks it with no exclusion in between. Diagnostic only.
	PolicyUnguarded
)

func (p Policy) String() string {
	switch p {
	case PolicyGuarded:
		return "guarded"
	case PolicyUnguarded:
		return "unguarded"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}
