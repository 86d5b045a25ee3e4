package userservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/postify/internal/common"
)

const (
	// AccessTokenTime is the validity window of an issued access token.
	// Rotating the signing secret invalidates every outstanding token.
	AccessTokenTime time.Duration = 1 * time.Hour
)

type UserService struct {
	m  *userModel
	t  *TokenIssuer
	mb common.MessageProducer
}

type userModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte
}

// PublicUser is the subset of a user that is safe to return to a client.
type PublicUser struct {
	ID       int    `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
	}
}
