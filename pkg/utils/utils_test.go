package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 10, ParseLimit("", 10, 100))
	assert.Equal(t, 25, ParseLimit("25", 10, 100))
	assert.Equal(t, 100, ParseLimit("500", 10, 100))
	assert.Equal(t, 10, ParseLimit("junk", 10, 100))
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Email    string `validate:"required,email"`
		Username string `validate:"required,min=3,max=30"`
		ListType string `validate:"omitempty,oneof=watchlist favorites watched"`
	}

	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(form{Email: "a@b.test", Username: "moviefan"})
		assert.Nil(t, errs)
	})

	t.Run("missing and malformed", func(t *testing.T) {
		errs := ValidateStruct(form{Email: "not-an-email", Username: "ab"})
		require.Len(t, errs, 2)
		assert.Equal(t, "Invalid email format", errs["Email"])
		assert.Equal(t, "Minimum length is 3", errs["Username"])
	})

	t.Run("oneof", func(t *testing.T) {
		errs := ValidateStruct(form{Email: "a@b.test", Username: "moviefan", ListType: "queue"})
		require.Len(t, errs, 1)
		assert.Equal(t, "Must be one of: watchlist, favorites, watched", errs["ListType"])
	})
}

func TestFormatValidationErrors(t *testing.T) {
	assert.Equal(t, "", FormatValidationErrors(nil))
	assert.Contains(t, FormatValidationErrors(map[string]string{
		"Email": "Invalid email format",
	}), "Email: Invalid email format")
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}
