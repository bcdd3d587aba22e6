package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/user-admin/models"
	"github.com/go-playground/validator/v10"
)

// Field names of [models.UserForm], as posted by the form.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
)

var userFormFields = []string{FieldEmail, FieldPassword, FieldName, FieldLatitude, FieldLongitude}

// messages maps field and failed tag to the text shown next to the field.
var messages = map[string]map[string]string{
	FieldEmail: {
		"required": "Email is required",
		"email":    "Enter a valid email address",
	},
	FieldPassword: {
		"required": "Password is required",
		"min":      "Password must be at least 8 characters long",
	},
	FieldName: {
		"required": "Name is required",
	},
	FieldLatitude: {
		"latitude": "Latitude must be a number between -90 and 90",
	},
	FieldLongitude: {
		"longitude": "Longitude must be a number between -180 and 180",
	},
}

// UserFormValidator validates [models.UserForm] values using the rules
// declared in its validate struct tags.
//
// Every failing field is reported, never just the first one.
type UserFormValidator struct {
	validate *validator.Validate
}

// NewUserFormValidator constructs a UserFormValidator. Field errors are keyed
// by the form name of each field.
func NewUserFormValidator() *UserFormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &UserFormValidator{validate: v}
}

// Validate checks a models.UserForm or *models.UserForm after trimming
// surrounding whitespace, so blank values are reported as required. Optional
// fields restrict the report to the named form fields.
//
// Returns ErrUnsupportedType for any other value, ErrUnknownField for an
// unknown field name and *ValidationError when at least one field fails.
func (v *UserFormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var form models.UserForm
	switch value := obj.(type) {
	case models.UserForm:
		form = value
	case *models.UserForm:
		if value == nil {
			return ErrUnsupportedType
		}
		form = *value
	default:
		return ErrUnsupportedType
	}

	for _, f := range fields {
		if !slices.Contains(userFormFields, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return v.validateUserForm(ctx, form.Normalized(), fields...)
}

func (v *UserFormValidator) validateUserForm(ctx context.Context, form models.UserForm, fields ...string) error {
	err := v.validate.StructCtx(ctx, form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := &ValidationError{}
	for _, fe := range fieldErrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		result.Fields = append(result.Fields, FieldError{
			Field:   fe.Field(),
			Problem: problemFor(fe.Tag()),
			Message: messageFor(fe.Field(), fe.Tag()),
		})
	}

	if len(result.Fields) == 0 {
		return nil
	}
	return result
}

// ToNewUser validates form and builds the creation input from its trimmed
// values.
func (v *UserFormValidator) ToNewUser(ctx context.Context, form models.UserForm) (models.NewUser, error) {
	if err := v.Validate(ctx, form); err != nil {
		return models.NewUser{}, err
	}
	return form.NewUser()
}

func problemFor(tag string) string {
	switch tag {
	case "required":
		return ProblemRequired
	case "email":
		return ProblemInvalidEmail
	case "min":
		return ProblemTooShort
	case "latitude":
		return ProblemInvalidLatitude
	case "longitude":
		return ProblemInvalidLongitude
	default:
		return ProblemInvalid
	}
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	return "Invalid value"
}
