package output

import "context"

// SubmissionState is what a SubmissionGuard knows about a form token.
type SubmissionState int

const (
	// SubmissionUnknown means the token is free: never held, released or expired.
	SubmissionUnknown SubmissionState = iota
	// SubmissionPending means a submission holding the token is in progress.
	SubmissionPending
	// SubmissionDone means the token's submission was stored.
	SubmissionDone
)

// SubmissionGuard ensures a form instance has at most one submission in flight
// and remembers which forms were already accepted.
type SubmissionGuard interface {
	// Acquire marks token as pending. It returns false when token is already
	// pending or done.
	Acquire(ctx context.Context, token string) (bool, error)
	// Complete marks a held token as done for the guard's TTL.
	Complete(ctx context.Context, token string) error
	// State reports the current state of token.
	State(ctx context.Context, token string) (SubmissionState, error)
	// Release frees token so the same form can submit again.
	Release(ctx context.Context, token string) error
}
