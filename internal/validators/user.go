package validators

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field names accepted by [UserValidator].
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
)

// UserValidator implements [Validator] for the account requests:
// RegisterRequest and LoginRequest. Fields are checked in the order they
// are given and the first missing one is reported.
type UserValidator struct{}

// NewUserValidator constructs a UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Default fields:
//   - RegisterRequest: email, username, password
//   - LoginRequest: username, password
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword}
	}

	return checkCredentials(req.Email, req.Username, req.Password, fields)
}

func (v *UserValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		if f == FieldEmail {
			return ErrUnknownField
		}
	}

	return checkCredentials("", req.Username, req.Password, fields)
}

func checkCredentials(email, username, password string, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if email == "" {
				return ErrEmailRequired
			}
		case FieldUsername:
			if username == "" {
				return ErrUsernameRequired
			}
		case FieldPassword:
			if password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
