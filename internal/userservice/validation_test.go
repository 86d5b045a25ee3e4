package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sushihentaime/postify/internal/common"
)

func TestValidateUserName(t *testing.T) {
	testCases := []struct {
		name     string
		userName string
		expected map[string]string
	}{
		{
			name:     "valid user name",
			userName: "alice",
			expected: map[string]string{},
		},
		{
			name:     "empty user name",
			userName: "",
			expected: map[string]string{"user_name": "must be provided"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateUserName(v, tc.userName)
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		expected map[string]string
	}{
		{
			name:     "valid email",
			email:    "alice@example.com",
			expected: map[string]string{},
		},
		{
			name:     "empty email",
			email:    "",
			expected: map[string]string{"email": "must be provided"},
		},
		{
			name:     "missing domain",
			email:    "alice@",
			expected: map[string]string{"email": "must be a valid email address"},
		},
		{
			name:     "missing at sign",
			email:    "alice.example.com",
			expected: map[string]string{"email": "must be a valid email address"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.email)
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		expected map[string]string
	}{
		{
			name:     "valid password",
			password: "secret1",
			expected: map[string]string{},
		},
		{
			name:     "exactly six characters",
			password: "secret",
			expected: map[string]string{},
		},
		{
			name:     "empty password",
			password: "",
			expected: map[string]string{"password": "must be provided"},
		},
		{
			name:     "too short",
			password: "abc12",
			expected: map[string]string{"password": "must be at least 6 characters long"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}
