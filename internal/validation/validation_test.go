package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"first.last@example.co",
		"user+tag@sub.example.com",
		"  padded@example.com  ",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), "email %q", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		strings.Repeat("a", 250) + "@x.com",
	}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), "email %q", email)
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	valid := []string{"abc", "user_name", "user.name", "user-name", "A1b2C3"}
	for _, username := range valid {
		assert.NoError(t, ValidateUsername(username), "username %q", username)
	}

	invalid := []string{"", "ab", "has space", "has@sign", strings.Repeat("x", 31)}
	for _, username := range invalid {
		assert.Error(t, ValidateUsername(username), "username %q", username)
	}
}
