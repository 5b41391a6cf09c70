package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/skillsenselab/userd/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in error messages.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		validate.RegisterValidation("complexity", func(fl validator.FieldLevel) bool {
			return hasComplexity(fl.Field().String())
		})
		// max= counts runes; bcrypt's 72 limit counts bytes.
		validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
			limit, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return len(fl.Field().String()) <= limit
		})

		validate.RegisterStructValidation(func(sl validator.StructLevel) {
			req := sl.Current().Interface().(UpdateProfileRequest)
			if req.Empty() {
				sl.ReportError(req.FirstName, "update", "update", "atleastone", "")
			}
		}, UpdateProfileRequest{})
	})
	return validate
}

// hasComplexity reports whether s contains a lowercase letter, an uppercase
// letter, and a digit.
func hasComplexity(s string) bool {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// Normalizer is implemented by schemas that canonicalize their fields before
// validation.
type Normalizer interface {
	Normalize()
}

// Struct normalizes (when supported) and validates a schema value. On
// failure it returns a single *errors.AppError carrying every violated
// field, ordered as declared in the struct.
func Struct(s any) error {
	if n, ok := s.(Normalizer); ok {
		n.Normalize()
	}

	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation failure (e.g. a nil pointer): not the client's fault.
		return errors.Internal(err)
	}

	violations := make([]errors.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, errors.FieldViolation{
			Field:  fe.Field(),
			Reason: reasonFor(fe),
		})
	}
	return errors.Validation(violations)
}

// reasonFor creates a human-readable message for one violation.
func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "maxbytes":
		return "must be at most " + fe.Param() + " bytes"
	case "phone":
		return "must contain only digits, spaces, and + - ( )"
	case "complexity":
		return "must contain at least one lowercase letter, one uppercase letter, and one digit"
	case "atleastone":
		return "at least one field must be provided"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
