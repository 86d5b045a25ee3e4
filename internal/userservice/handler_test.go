package userservice

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sushihentaime/postify/internal/common"
)

func setupTestEnvironment(t *testing.T) (*UserService, *sql.DB, func() error, error) {
	db := common.TestDB("file://../../migrations", t)
	connURL := common.TestRabbitMQ(t)
	mb, err := common.NewMessageBroker(connURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create message broker: %w", err)
	}

	err = common.SetupUserExchange(mb)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not setup user exchange: %w", err)
	}

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM users")
		return err
	}

	return NewUserService(db, mb, "test-secret"), db, cleanup, nil
}

func TestRegisterUser(t *testing.T) {
	s, db, cleanup, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	testCases := []struct {
		name        string
		userName    string
		email       string
		password    string
		expectedErr string
	}{
		{
			name:     "valid user",
			userName: "alice",
			email:    "alice@example.com",
			password: "secret1",
		},
		{
			name:        "empty user name",
			email:       "alice@example.com",
			password:    "secret1",
			expectedErr: "validation error: map[user_name:must be provided]",
		},
		{
			name:        "invalid email",
			userName:    "alice",
			email:       "alice.example.com",
			password:    "secret1",
			expectedErr: "validation error: map[email:must be a valid email address]",
		},
		{
			name:        "short password",
			userName:    "alice",
			email:       "alice@example.com",
			password:    "abc12",
			expectedErr: "validation error: map[password:must be at least 6 characters long]",
		},
		{
			name:        "empty payload",
			expectedErr: "validation error: map[email:must be provided password:must be provided user_name:must be provided]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			user, token, err := s.RegisterUser(ctx, tc.userName, tc.email, tc.password)
			if tc.expectedErr != "" {
				assert.EqualError(t, err, tc.expectedErr)

				var count int
				err = db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
				assert.NoError(t, err)
				assert.Equal(t, 0, count)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotZero(t, user.ID)
				assert.True(t, user.IsActive)

				// the plaintext password must never be persisted
				var hash []byte
				err = db.QueryRow("SELECT password_hash FROM users WHERE id = $1", user.ID).Scan(&hash)
				assert.NoError(t, err)
				assert.NotEqual(t, []byte(tc.password), hash)
				assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte(tc.password)))
			}

			t.Cleanup(func() {
				err := cleanup()
				assert.NoError(t, err)
			})
		})
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	s, db, cleanup, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _, err = s.RegisterUser(ctx, "alice", "alice@example.com", "secret1")
	assert.NoError(t, err)

	_, _, err = s.RegisterUser(ctx, "bob", "alice@example.com", "secret2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM users WHERE email = $1", "alice@example.com").Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}

func TestLoginUser(t *testing.T) {
	s, _, cleanup, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	registered, _, err := s.RegisterUser(ctx, "alice", "alice@example.com", "secret1")
	assert.NoError(t, err)

	testCases := []struct {
		name        string
		email       string
		password    string
		expectedErr error
	}{
		{
			name:     "correct credentials",
			email:    "alice@example.com",
			password: "secret1",
		},
		{
			name:        "wrong password",
			email:       "alice@example.com",
			password:    "wrongpass",
			expectedErr: ErrAuthenticationFailure,
		},
		{
			name:        "unknown email",
			email:       "nobody@example.com",
			password:    "secret1",
			expectedErr: ErrAuthenticationFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, token, err := s.LoginUser(ctx, tc.email, tc.password)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, registered.ID, user.ID)
				assert.Equal(t, registered.Email, user.Email)

				claims, err := s.VerifyToken(token)
				assert.NoError(t, err)
				assert.Equal(t, registered.ID, claims.UserID)
				assert.Equal(t, registered.Email, claims.Email)
			}
		})
	}

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}

func TestGetUsers(t *testing.T) {
	s, _, cleanup, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// zero users is a valid empty result
	users, err := s.GetUsers(ctx)
	assert.NoError(t, err)
	assert.Empty(t, users)

	_, _, err = s.RegisterUser(ctx, "alice", "alice@example.com", "secret1")
	assert.NoError(t, err)

	_, _, err = s.RegisterUser(ctx, "bob", "bob@example.com", "secret2")
	assert.NoError(t, err)

	users, err = s.GetUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}
