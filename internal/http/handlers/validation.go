package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/you/jobsvc/domain"
)

const dateLayout = "2006-01-02"

var (
	mobilePattern   = regexp.MustCompile(`^\+?[0-9\s\-()]{7,15}$`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d$!%*?&]{8,}$`)

	registerOnce sync.Once
)

// customRules are the binding tags added to gin's validator.
var customRules = map[string]validator.Func{
	"strongpassword": func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	},
	"mobile": func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	},
	"isodate": func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String())
		return err == nil
	},
	"pastdate": func(fl validator.FieldLevel) bool {
		d, err := parseDate(fl.Field().String())
		return err == nil && d.Before(time.Now())
	},
}

// registerValidators installs the custom binding tags on gin's validator.
// A failure is a programming error and panics at startup.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("handlers: unsupported binding engine %T", binding.Validator.Engine()))
		}
		if err := registerRules(v, customRules); err != nil {
			panic(fmt.Sprintf("handlers: %v", err))
		}
	})
}

// registerRules names fields by their json or form tag and adds rules to v.
func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	var errs []error
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			errs = append(errs, fmt.Errorf("register validation %q: %w", tag, err))
		}
	}
	return errors.Join(errs...)
}

// strongPassword requires eight or more characters from the allowed set
// with at least one lower case letter, upper case letter, digit and symbol.
func strongPassword(p string) bool {
	if !passwordCharset.MatchString(p) {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}

// parseDate accepts a calendar date or an RFC 3339 timestamp and returns it in UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t.UTC(), nil
}

// bindErr turns a binding failure into a ValidationFailed error with readable field messages.
func bindErr(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.ValidationFailed("Invalid request", err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.ValidationFailed("Invalid request", errors.New(strings.Join(msgs, "; ")))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "strongpassword":
		return "Password must have at least one lowercase letter, one uppercase letter, one number and one special character"
	case "mobile":
		return "Mobile Number must be a valid phone number"
	case "email|mobile":
		return field + " must be an email or a mobile number"
	case "isodate":
		return field + " must be a valid date"
	case "pastdate":
		return field + " must be in the past"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s should have a minimum length of %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s should have a maximum length of %s", field, fe.Param())
	case "alphanum":
		return field + " must contain only letters and digits"
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}
