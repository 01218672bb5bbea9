package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surfconnect/backend/pkg/post"
)

// PostRepository stores spot reports.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) (*PostRepository, error) {
	r := &PostRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS posts (
	id UUID PRIMARY KEY,
	poster_id UUID NOT NULL,
	poster_name TEXT NOT NULL,
	title TEXT NOT NULL,
	location TEXT NOT NULL,
	skill_level TEXT NOT NULL,
	content TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_posts_poster ON posts(poster_id);
CREATE INDEX IF NOT EXISTS idx_posts_created ON posts(created_at DESC);
`)
	return err
}

func (r *PostRepository) Create(ctx context.Context, p post.Post) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO posts (id, poster_id, poster_name, title, location, skill_level, content, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, p.ID, p.PosterID, p.PosterName, strings.TrimSpace(p.Title), p.Location, p.SkillLevel, p.Content, p.CreatedAt)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (post.Post, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, poster_id, poster_name, title, location, skill_level, content, created_at
FROM posts WHERE id = $1
`, id)
	return scanPost(row)
}

func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]post.Post, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, poster_id, poster_name, title, location, skill_level, content, created_at
FROM posts ORDER BY created_at DESC LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []post.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostRepository) DeleteForOwner(ctx context.Context, posterID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1 AND poster_id = $2`, id, posterID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return post.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (post.Post, error) {
	var p post.Post
	var createdAt time.Time
	if err := row.Scan(&p.ID, &p.PosterID, &p.PosterName, &p.Title, &p.Location,
		&p.SkillLevel, &p.Content, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post.Post{}, post.ErrNotFound
		}
		return post.Post{}, err
	}
	p.CreatedAt = createdAt.UTC()
	return p, nil
}
