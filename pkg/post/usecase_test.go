package post_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfconnect/backend/pkg/post"
)

type memRepo struct {
	mu    sync.Mutex
	posts map[uuid.UUID]post.Post
}

func newMemRepo() *memRepo { return &memRepo{posts: map[uuid.UUID]post.Post{}} }

func (r *memRepo) Create(ctx context.Context, p post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[p.ID] = p
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id uuid.UUID) (post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return post.Post{}, post.ErrNotFound
	}
	return p, nil
}

func (r *memRepo) List(ctx context.Context, limit, offset int) ([]post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]post.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, nil
}

func (r *memRepo) DeleteForOwner(ctx context.Context, posterID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok || p.PosterID != posterID {
		return post.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func TestCreate_FillsDefaults(t *testing.T) {
	svc := post.NewService(newMemRepo())

	p, err := svc.Create(context.Background(), post.Post{
		PosterID:   uuid.New(),
		PosterName: "alice",
		Title:      "Morning session",
		Location:   "Ericeira",
		SkillLevel: "beginner",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCreate_RequiredFields(t *testing.T) {
	svc := post.NewService(newMemRepo())

	cases := []post.Post{
		{Location: "Ericeira", SkillLevel: "beginner"},
		{Title: "Morning session", SkillLevel: "beginner"},
		{Title: "Morning session", Location: "Ericeira"},
	}
	for _, c := range cases {
		_, err := svc.Create(context.Background(), c)
		assert.ErrorIs(t, err, post.ErrInvalidInput)
	}
}

func TestDelete_OnlyOwner(t *testing.T) {
	repo := newMemRepo()
	svc := post.NewService(repo)
	owner := uuid.New()

	p, err := svc.Create(context.Background(), post.Post{
		PosterID: owner, Title: "t", Location: "l", SkillLevel: "s",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.New(), p.ID)
	assert.ErrorIs(t, err, post.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), owner, p.ID))

	_, err = svc.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, post.ErrNotFound)
}

func TestList_ClampsPaging(t *testing.T) {
	repo := newMemRepo()
	svc := post.NewService(repo)

	_, err := svc.List(context.Background(), -5, -1)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), 1000, 0)
	require.NoError(t, err)
}
