package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("post not found")

// Post is a spot report shared by a user: where they surfed and what level
// the conditions suited.
type Post struct {
	ID         uuid.UUID
	PosterID   uuid.UUID
	PosterName string
	Title      string
	Location   string
	SkillLevel string
	Content    string
	CreatedAt  time.Time
}

// Repository is the persistence port for posts.
type Repository interface {
	Create(ctx context.Context, p Post) error
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	List(ctx context.Context, limit, offset int) ([]Post, error)
	DeleteForOwner(ctx context.Context, posterID, id uuid.UUID) error
}
