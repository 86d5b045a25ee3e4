package postservice

import (
	"database/sql"
	"time"
)

type PostService struct {
	m *postModel
}

type postModel struct {
	db *sql.DB
}

// Post is addressed externally by its slug, not its id.
type Post struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	AuthorID    int       `json:"author_id"`
	IsPublished bool      `json:"is_published"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Author      *Author   `json:"author,omitempty"`
}

// Author is the public view of a post's author.
type Author struct {
	ID       int    `json:"id"`
	UserName string `json:"user_name"`
}

type CreatePostRequest struct {
	Title       string
	Slug        string
	Description string
	Image       string
	AuthorID    int
	IsPublished bool
	Date        time.Time
}

type UpdatePostRequest struct {
	Title       string
	Description string
	Image       string
	AuthorID    int
	IsPublished bool
	Date        time.Time
}
