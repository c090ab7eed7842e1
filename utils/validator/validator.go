package validatorx

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/contact-manager/utils/normalize"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Matches the contact form contract: at least one non-space character
// before the @, and a dot somewhere in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()

	// Report fields by their json tag so error maps match the wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("email_format", func(fl gpvalidator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	// At least 10 digits once formatting characters are stripped. Letters
	// are ignored here, not rejected; they disappear in normalization.
	_ = v.RegisterValidation("phone_digits", func(fl gpvalidator.FieldLevel) bool {
		return len(normalize.Phone(fl.Field().String())) >= 10
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// FieldErrors flattens a validator error into a field→message map using
// the supplied field/tag message table. Unmapped failures fall back to
// "<field> is invalid".
func FieldErrors(err error, messages map[string]map[string]string) map[string]string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if msg, ok := messages[field][fe.Tag()]; ok {
			out[field] = msg
			continue
		}
		out[field] = field + " is invalid"
	}
	return out
}
