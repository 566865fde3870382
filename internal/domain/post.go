package domain

import "context"

// PostRepository is the collaborator surface of the social-feed store.
// The lifecycle coordinator only needs authored-post removal.
type PostRepository interface {
	// DeleteByAuthor removes every post authored by userID. Idempotent.
	DeleteByAuthor(ctx context.Context, userID string) error
}
