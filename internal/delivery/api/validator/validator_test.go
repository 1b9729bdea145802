package validator

import (
	"strings"
	"testing"

	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `form:"email" validate:"required,max=100,email_address"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sampleRequest{Username: "john", Email: "john@example.com"}))
	})

	t.Run("reports wire names", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Email: "nope"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Contains(t, appErr.Details(), "username is required")
		assert.Contains(t, appErr.Details(), "email is not a valid email address")
	})
}

func TestValidator_ValidateField(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		rule    string
		value   string
		wantErr bool
	}{
		{"username ok", RuleUsername, "john", false},
		{"username too long", RuleUsername, strings.Repeat("a", 51), true},
		{"username empty", RuleUsername, "", true},
		{"password blank", RulePassword, "   ", true},
		{"password ok", RulePassword, "s3cret", false},
		{"name blank", RuleName, " \t", true},
		{"name max", RuleName, strings.Repeat("x", 150), false},
		{"name too long", RuleName, strings.Repeat("x", 151), true},
		{"pin digits", RulePIN, "90010112345", false},
		{"pin letters", RulePIN, "9001A", true},
		{"phone international", RulePhoneNumber, "+48123456789", false},
		{"phone local", RulePhoneNumber, "123456789", false},
		{"phone letters", RulePhoneNumber, "12-34", true},
		{"phone too long", RulePhoneNumber, "+123456789012345678901", true},
		{"phone unparseable country", RulePhoneNumber, "+0123456", true},
		{"email ok", RuleEmail, "a.b+c@mail.example.org", false},
		{"email no tld", RuleEmail, "a@localhost", true},
		{"email too long", RuleEmail, strings.Repeat("a", 95) + "@x.com", true},
		{"address ok", RuleAddressPart, "Main Street", false},
		{"address blank", RuleAddressPart, "  ", true},
		{"address too long", RuleAddressPart, strings.Repeat("s", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateField("value", tt.value, tt.rule)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

				return
			}
			assert.NoError(t, err)
		})
	}
}
