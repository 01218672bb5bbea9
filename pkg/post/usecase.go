package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("title, location and skillLevel are required")

// UseCase encapsulates spot report operations.
type UseCase interface {
	Create(ctx context.Context, p Post) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	List(ctx context.Context, limit, offset int) ([]Post, error)
	Delete(ctx context.Context, posterID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, p Post) (Post, error) {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Location) == "" || strings.TrimSpace(p.SkillLevel) == "" {
		return Post{}, ErrInvalidInput
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *service) Delete(ctx context.Context, posterID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, posterID, id)
}
