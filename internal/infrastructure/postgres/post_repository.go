package postgres

import (
	"context"
	"database/sql"
	"errors"

	domain "liga/backend/internal/domain/post"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostRepository persists posts in PostgreSQL.
type PostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository constructs a repository.
func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

// Create inserts a new post, filling in the generated id.
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
INSERT INTO post (description, url, created_at)
VALUES ($1, $2, $3)
RETURNING id
`
	return r.pool.QueryRow(ctx, query,
		post.Description,
		nullableString(post.ImageURL),
		post.CreatedAt,
	).Scan(&post.ID)
}

// GetByID fetches a post by id.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	const query = `
SELECT id, description, url, created_at
FROM post WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// List returns all posts, newest first.
func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	const query = `
SELECT id, description, url, created_at
FROM post
ORDER BY id DESC
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Update writes post changes to the database.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	const query = `
UPDATE post
SET description = $2,
    url = $3
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Description,
		nullableString(post.ImageURL),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a post by id.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM post WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		p   domain.Post
		url sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.Description,
		&url,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ImageURL = url.String
	return &p, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
