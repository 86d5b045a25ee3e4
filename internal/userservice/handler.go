package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/sushihentaime/postify/internal/common"
)

var (
	ErrAuthenticationFailure = errors.New("invalid credentials")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, secret string) *UserService {
	return &UserService{
		m:  newUserModel(db),
		t:  NewTokenIssuer(secret, AccessTokenTime),
		mb: mb,
	}
}

// RegisterUser creates a new user account, issues an access token and
// publishes a user.registered event. The plaintext password is hashed before
// the insert and is never stored or returned.
func (s *UserService) RegisterUser(ctx context.Context, userName, email, password string) (*User, string, error) {
	v := common.NewValidator()
	validateUserName(v, userName)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, "", v.ValidationError()
	}

	u := User{
		UserName: userName,
		Email:    email,
	}

	err := u.Password.set(password)
	if err != nil {
		return nil, "", err
	}

	// Email uniqueness is enforced by the users_email_key index so concurrent
	// registrations cannot both succeed.
	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, "", err
	}

	token, err := s.t.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}

	data := struct {
		Email    string
		UserName string
	}{
		Email:    u.Email,
		UserName: u.UserName,
	}

	eventData, err := json.Marshal(data)
	if err != nil {
		return nil, "", err
	}

	err = s.mb.Publish(ctx, eventData, common.UserRegisteredKey, common.UserExchange)
	if err != nil {
		return nil, "", err
	}

	return &u, token, nil
}

// LoginUser authenticates a user by email and password and returns a fresh
// access token. An unknown email and a failed hash comparison both return
// ErrAuthenticationFailure so the response cannot leak account existence.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*User, string, error) {
	user, err := s.m.getUserByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, "", ErrAuthenticationFailure
		default:
			return nil, "", err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrAuthenticationFailure
	}

	token, err := s.t.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUsers returns all users. An empty result is a valid empty slice, not an
// error.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getUsers(ctx)
}

// VerifyToken validates an access token issued by this service.
func (s *UserService) VerifyToken(token string) (*TokenClaims, error) {
	return s.t.Verify(token)
}
