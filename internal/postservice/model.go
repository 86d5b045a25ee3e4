package postservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/postify/internal/common"
)

var (
	ErrNotFound       = errors.New("post not found")
	ErrDuplicateSlug  = errors.New("duplicate slug")
	ErrAuthorNotFound = errors.New("author does not exist")
)

func newPostModel(db *sql.DB) *postModel {
	return &postModel{db: db}
}

func (m *postModel) insert(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	query := `
		INSERT INTO posts (title, slug, description, image, author_id, is_published, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	post := Post{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
		AuthorID:    req.AuthorID,
		IsPublished: req.IsPublished,
		Date:        req.Date,
	}

	args := []any{
		req.Title,
		req.Slug,
		req.Description,
		req.Image,
		req.AuthorID,
		req.IsPublished,
		req.Date,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "posts_slug_key"):
			return nil, ErrDuplicateSlug
		case common.ForeignKeyViolation(err, "posts_author_id_fkey"):
			return nil, ErrAuthorNotFound
		default:
			return nil, err
		}
	}

	return &post, nil
}

// getBySlug returns the post with that slug joined with its author's public
// fields.
func (m *postModel) getBySlug(ctx context.Context, slug string) (*Post, error) {
	query := `
		SELECT p.id, p.title, p.slug, p.description, p.image, p.author_id, p.is_published, p.date, p.created_at, p.updated_at, u.id, u.user_name
		FROM posts p
		INNER JOIN users u ON p.author_id = u.id
		WHERE p.slug = $1`

	var post Post
	post.Author = &Author{}

	err := m.db.QueryRowContext(ctx, query, slug).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Description,
		&post.Image,
		&post.AuthorID,
		&post.IsPublished,
		&post.Date,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.Author.ID,
		&post.Author.UserName,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &post, nil
}

func (m *postModel) getAll(ctx context.Context) ([]Post, error) {
	query := `
		SELECT p.id, p.title, p.slug, p.description, p.image, p.author_id, p.is_published, p.date, p.created_at, p.updated_at, u.id, u.user_name
		FROM posts p
		INNER JOIN users u ON p.author_id = u.id
		ORDER BY p.date DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var post Post
		post.Author = &Author{}

		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Description,
			&post.Image,
			&post.AuthorID,
			&post.IsPublished,
			&post.Date,
			&post.CreatedAt,
			&post.UpdatedAt,
			&post.Author.ID,
			&post.Author.UserName,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// update replaces the mutable fields of the post with that slug. The slug
// itself is immutable.
func (m *postModel) update(ctx context.Context, slug string, req *UpdatePostRequest) error {
	query := `
		UPDATE posts
		SET title = $1, description = $2, image = $3, author_id = $4, is_published = $5, date = $6, updated_at = now()
		WHERE slug = $7
		RETURNING id`

	args := []any{
		req.Title,
		req.Description,
		req.Image,
		req.AuthorID,
		req.IsPublished,
		req.Date,
		slug,
	}

	var id int
	err := m.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrNotFound
		case common.ForeignKeyViolation(err, "posts_author_id_fkey"):
			return ErrAuthorNotFound
		default:
			return err
		}
	}

	return nil
}

func (m *postModel) delete(ctx context.Context, slug string) error {
	query := `
		DELETE FROM posts
		WHERE slug = $1`

	res, err := m.db.ExecContext(ctx, query, slug)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}
