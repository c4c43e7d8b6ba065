package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"ok alphanumeric", "alice1", true},
		{"exactly five chars", "abc12", true},
		{"too short", "bob", false},
		{"empty", "", false},
		{"non alphanumeric", "alice!", false},
		{"spaces", "ali ce", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidUsername(tt.username))
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"ok", "a@b.com", true},
		{"missing at", "a.b.com", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

type registerShape struct {
	Username string `json:"Username" validate:"required,min=5,alphanum"`
	Password string `json:"Password" validate:"required"`
	Email    string `json:"Email" validate:"required,email"`
}

// All violated rules must be reported, not just the first one.
func TestToDetailsCollectsAllViolations(t *testing.T) {
	v := validator.New()

	err := v.Struct(registerShape{Username: "bob", Password: "", Email: "nope"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Len(t, details, 3)
	assert.Contains(t, details, "Username")
	assert.Contains(t, details, "Password")
	assert.Contains(t, details, "Email")
	assert.Equal(t, "is required", details["Password"])
	assert.Equal(t, "must be a valid email", details["Email"])
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}

func TestToDetailsFallback(t *testing.T) {
	details := ToDetails(assert.AnError)
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, details)
}
