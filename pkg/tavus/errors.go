package tavus

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned before any network call when the client was
// built without an API key.
var ErrNotConfigured = errors.New("tavus api key is not configured")

// RemoteAPIError carries the upstream status and raw body so callers can log
// exactly what the provider said.
type RemoteAPIError struct {
	Status int
	Body   string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("status error, got status %d. with response body %s", e.Status, e.Body)
}

// TimeoutError marks an outbound call that ran out of time on the wire, as
// opposed to the provider rejecting it.
type TimeoutError struct {
	Path string
	Err  error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out: %v", e.Path, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// PollTimeoutError means the replica never reached a terminal training state
// within the polling budget. The last observed status is kept for the caller.
type PollTimeoutError struct {
	ReplicaID  string
	Attempts   int
	LastStatus string
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("replica %s still %q after %d polling attempts", e.ReplicaID, e.LastStatus, e.Attempts)
}
