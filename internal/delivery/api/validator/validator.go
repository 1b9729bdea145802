// Package validator adapts go-playground/validator to echo and maps failures to ErrValidationFailed.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/nyaruka/phonenumbers"
)

// Field rules shared by the request DTOs and the single-field update endpoints.
const (
	RuleUsername        = "required,max=50"
	RulePassword        = "required,notblank"
	RuleName            = "required,notblank,max=150"
	RulePIN             = "required,digits,max=50"
	RulePhoneNumber     = "required,max=20,phone"
	RuleEmail           = "required,max=100,email_address"
	RuleAddressPart     = "required,notblank,max=100"
	internationalPrefix = "+"
)

var (
	phonePattern = regexp.MustCompile(`^\+?\d{1,3}\d{1,14}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	digitPattern = regexp.MustCompile(`^\d+$`)
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return fld.Name
	})

	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "digits", stringMatches(digitPattern))
	mustRegister(v, "email_address", stringMatches(emailPattern))
	mustRegister(v, "phone", isPhoneNumber)

	return &Validator{validate: v}
}

// Validate validates a tagged struct.
func (v *Validator) Validate(i any) error {
	return translate(v.validate.Struct(i), "")
}

// ValidateField validates a single value against rule, reporting failures under name.
func (v *Validator) ValidateField(name string, value any, rule string) error {
	return translate(v.validate.Var(value, rule), name)
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func stringMatches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// isPhoneNumber accepts local digit strings and, when prefixed with '+', only numbers that parse internationally.
func isPhoneNumber(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !phonePattern.MatchString(value) {
		return false
	}

	if !strings.HasPrefix(value, internationalPrefix) {
		return true
	}

	number, err := phonenumbers.Parse(value, "")
	if err != nil {
		return false
	}

	return phonenumbers.IsPossibleNumber(number)
}

func translate(err error, field string) error {
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fe.Field()
		if field != "" {
			name = field
		}
		messages = append(messages, fieldMessage(name, fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "notblank":
		return name + " must not be blank"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "digits":
		return name + " must contain digits only"
	case "phone":
		return name + " is not a valid phone number"
	case "email_address":
		return name + " is not a valid email address"
	default:
		return fmt.Sprintf("%s failed the %s rule", name, fe.Tag())
	}
}
