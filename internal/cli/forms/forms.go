// Package forms holds the client-side validation that runs before any
// network call. A form that fails here never produces a request.
package forms

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength matches the backend's password policy; enforcing it
// client-side keeps obviously bad submissions off the wire.
const MinPasswordLength = 8

var validate = validator.New(validator.WithRequiredStructEnabled())

// Credentials is the login form.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// Signup is the account creation form.
type Signup struct {
	OrganizationName string `validate:"required"`
	FullName         string `validate:"required"`
	Email            string `validate:"required,email"`
	Password         string `validate:"required,min=8"`
}

// AcceptInvitation is the invited-member activation form.
type AcceptInvitation struct {
	InvitationToken string `validate:"required"`
	Password        string `validate:"required,min=8"`
}

// ValidateCredentials checks the login form.
func ValidateCredentials(email, password string) error {
	return describe(validate.Struct(Credentials{Email: email, Password: password}))
}

// ValidateSignup checks the signup form.
func ValidateSignup(form Signup) error {
	return describe(validate.Struct(form))
}

// ValidateAcceptInvitation checks the invitation form.
func ValidateAcceptInvitation(token, password string) error {
	return describe(validate.Struct(AcceptInvitation{InvitationToken: token, Password: password}))
}

// ValidateEmail checks a lone email address (forgot-password, invites).
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// describe turns validator's field errors into a single human-readable
// message; the first failing field wins.
func describe(err error) error {
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}

	fieldErr := errs[0]
	switch fieldErr.Field() {
	case "Email":
		return fmt.Errorf("invalid email address")
	case "Password":
		if fieldErr.Tag() == "min" {
			return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
		}
		return fmt.Errorf("password is required")
	case "OrganizationName":
		return fmt.Errorf("organization name is required")
	case "FullName":
		return fmt.Errorf("full name is required")
	case "InvitationToken":
		return fmt.Errorf("invitation token is required")
	default:
		return fmt.Errorf("%s is invalid", fieldErr.Field())
	}
}
