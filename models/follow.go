package models

import "fmt"

// FollowResult reports the outcome of a follow toggle.
type FollowResult struct {
	// Followed is true when the toggle added the follower and false when it
	// removed it.
	Followed bool

	// Target is the user whose follower set was changed.
	Target User
}

// Message renders the confirmation shown to the caller.
func (r FollowResult) Message() string {
	if r.Followed {
		return fmt.Sprintf("Followed %s", r.Target.UserName)
	}
	return fmt.Sprintf("Unfollowed %s", r.Target.UserName)
}
