package postgres

import (
	"context"

	"github.com/adamcc31/devconnect-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepository struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &postRepository{db: db}
}

// DeleteByAuthor removes every post authored by userID. Deleting when no
// posts exist is a no-op success, which keeps the account-deletion saga
// retryable.
func (r *postRepository) DeleteByAuthor(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts WHERE user_id = $1`, userID)
	return err
}
