package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "contacts/internal/errors"
)

// ContactValidator checks contact payloads against the field rules. It has
// no side effects and is safe for concurrent use.
type ContactValidator struct {
	validate *validator.Validate
}

// NewContactValidator creates a validator with the contact rules registered.
func NewContactValidator() *ContactValidator {
	v := validator.New()
	rules := map[string]validator.Func{
		"dotdomain": validateDotDomain,
		"notblank":  validateNotBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %q validation: %v", tag, err))
		}
	}
	return &ContactValidator{validate: v}
}

// Validate returns nil or a *errors.ValidationError listing every violated
// field. req must be a pointer to a struct with validate tags.
func (v *ContactValidator) Validate(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := apperrors.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), messageFor(fe))
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "max":
		return fmt.Sprintf("The field %s must be a string with a maximum length of '%s'.", fe.Field(), fe.Param())
	case "email", "dotdomain":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", fe.Field())
	case "eq":
		return fmt.Sprintf("The %s field is assigned by the server and must not be supplied.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}

// validateDotDomain requires at least one dot in the domain part, which the
// stock email rule does not.
func validateDotDomain(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	s := fl.Field().String()
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
