package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-phone-auth/models"
)

const (
	FieldPhone    = "Phone"
	FieldPassword = "Password"

	phoneTag = "phone"
)

// phonePattern accepts an optional leading "+" followed by 5 to 20 digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{5,20}$`)

// CredentialsValidator checks [models.Credentials] against their `validate`
// struct tags.
type CredentialsValidator struct {
	validate *validator.Validate
}

func NewCredentialsValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// the tag name is a constant and the func is non-nil, registration cannot fail
	_ = v.RegisterValidation(phoneTag, func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &CredentialsValidator{validate: v}
}

// Validate checks obj, or only the named fields of it when fields are given.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var creds models.Credentials
	switch value := obj.(type) {
	case models.Credentials:
		creds = value
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		creds = *value
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	for _, f := range fields {
		if f != FieldPhone && f != FieldPassword {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, creds, fields...)
	} else {
		err = v.validate.StructCtx(ctx, creds)
	}

	return mapValidationError(err)
}

func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case FieldPhone:
			errs = append(errs, fmt.Errorf("%w: failed %q rule", ErrInvalidPhone, fe.Tag()))
		case FieldPassword:
			errs = append(errs, fmt.Errorf("%w: failed %q rule", ErrInvalidPassword, fe.Tag()))
		default:
			errs = append(errs, fe)
		}
	}

	return errors.Join(errs...)
}
