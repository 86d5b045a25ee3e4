package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	v.Check(false, "title", "second message is ignored")
	v.Check(true, "description", "must be provided")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"title": "must be provided"}, v.Errors)
}

func TestCheckStringLength(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.CheckStringLength("secret", 6, 72))
	assert.False(t, v.CheckStringLength("abc12", 6, 72))
	assert.False(t, v.CheckStringLength("", 1, 10))
}

func TestValidationError(t *testing.T) {
	v := NewValidator()
	v.AddError("email", "must be provided")

	err := v.ValidationError()
	assert.EqualError(t, err, "validation error: map[email:must be provided]")
}
