package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/socialix/models"
)

const (
	FieldUserName = "user_name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignInRequest:
		return v.validateSignIn(ctx, value, fields...)
	case *models.SignInRequest:
		return v.validateSignIn(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignIn(_ context.Context, req models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserName:
			err = validateUserName(req.UserName)
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = validatePassword(req.Password)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func validateUserName(userName string) error {
	if strings.TrimSpace(userName) == "" {
		return ErrEmptyUserName
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
