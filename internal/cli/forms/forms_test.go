package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  string
	}{
		{"valid", "jane@acme.com", "hunter2hunter2", ""},
		{"missing email", "", "hunter2hunter2", "invalid email address"},
		{"malformed email", "not-an-email", "hunter2hunter2", "invalid email address"},
		{"missing password", "jane@acme.com", "", "password is required"},
		{"short password", "jane@acme.com", "hunter2", "password must be at least 8 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(tt.email, tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateSignup(t *testing.T) {
	valid := Signup{
		OrganizationName: "Acme Inc.",
		FullName:         "Jane Doe",
		Email:            "jane@acme.com",
		Password:         "hunter2hunter2",
	}
	require.NoError(t, ValidateSignup(valid))

	noOrg := valid
	noOrg.OrganizationName = ""
	assert.EqualError(t, ValidateSignup(noOrg), "organization name is required")

	noName := valid
	noName.FullName = ""
	assert.EqualError(t, ValidateSignup(noName), "full name is required")

	shortPassword := valid
	shortPassword.Password = "short"
	assert.EqualError(t, ValidateSignup(shortPassword), "password must be at least 8 characters")
}

func TestValidateAcceptInvitation(t *testing.T) {
	require.NoError(t, ValidateAcceptInvitation("token-1", "hunter2hunter2"))

	assert.EqualError(t, ValidateAcceptInvitation("", "hunter2hunter2"), "invitation token is required")
	assert.EqualError(t, ValidateAcceptInvitation("token-1", "short"), "password must be at least 8 characters")
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("jane@acme.com"))
	assert.EqualError(t, ValidateEmail(""), "invalid email address")
	assert.EqualError(t, ValidateEmail("jane@"), "invalid email address")
}
