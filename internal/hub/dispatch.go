package hub

import (
	"context"
	"volunteerhub/internal/models"
)

// Dispatcher sends the outbound contact request for an inspected post.
type Dispatcher struct {
	client BackendClient
}

func NewDispatcher(client BackendClient) *Dispatcher {
	return &Dispatcher{client: client}
}

// Dispatch fails fast with ErrMissingAddress when the post's email was never
// resolved - no network call is made in that case. Otherwise exactly one
// request goes out and its outcome, success or failure, is terminal: the
// caller closes the modal either way and nothing is retried.
func (d *Dispatcher) Dispatch(ctx context.Context, auth models.AuthContext, post models.Post) error {
	if post.Email == nil || *post.Email == "" {
		return ErrMissingAddress
	}

	return d.client.SendContact(ctx, auth, *post.Email)
}
