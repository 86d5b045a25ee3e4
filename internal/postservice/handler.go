package postservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/postify/internal/common"
)

func NewPostService(db *sql.DB) *PostService {
	return &PostService{m: newPostModel(db)}
}

// GetPosts returns all posts joined with their author, newest first. An empty
// result is a valid empty slice, not an error.
func (s *PostService) GetPosts(ctx context.Context) ([]Post, error) {
	return s.m.getAll(ctx)
}

// GetPost returns the post with that slug.
func (s *PostService) GetPost(ctx context.Context, slug string) (*Post, error) {
	v := common.NewValidator()
	validateSlug(v, slug)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getBySlug(ctx, slug)
}

// CreatePost validates the request and inserts the post. Every failing field
// is reported, not just the first. Slug collisions surface as ErrDuplicateSlug
// from the store's unique index.
func (s *PostService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateSlug(v, req.Slug)
	validateDescription(v, req.Description)
	validateDate(v, req.Date)
	validateAuthorID(v, req.AuthorID)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insert(ctx, req)
}

// UpdatePost replaces the fields of the post with that slug and re-associates
// the author. It returns the updated row with the author joined.
func (s *PostService) UpdatePost(ctx context.Context, slug string, req *UpdatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateSlug(v, slug)
	validateTitle(v, req.Title)
	validateDescription(v, req.Description)
	validateDate(v, req.Date)
	validateAuthorID(v, req.AuthorID)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	err := s.m.update(ctx, slug, req)
	if err != nil {
		return nil, err
	}

	return s.m.getBySlug(ctx, slug)
}

// DeletePost removes the post with that slug. Deleting an absent slug returns
// ErrNotFound, also on a repeated delete.
func (s *PostService) DeletePost(ctx context.Context, slug string) error {
	v := common.NewValidator()
	validateSlug(v, slug)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.delete(ctx, slug)
}
