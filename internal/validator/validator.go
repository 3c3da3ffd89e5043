package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/clothyvs/dashboard-backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const maxBcryptPasswordBytes = 72

var (
	// trans is the singleton English translator for validation errors.
	trans ut.Translator

	// standalone validates structs outside of gin binding (config, seed data).
	standalone *govalidator.Validate

	setupOnce sync.Once
)

// Setup registers the validator with English translations on Gin's binding engine.
// Safe to call more than once; only the first call has an effect.
func Setup() {
	setupOnce.Do(func() {
		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")

		standalone = govalidator.New(govalidator.WithRequiredStructEnabled())
		configure(standalone)

		if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
			configure(v)
		}
	})
}

func configure(v *govalidator.Validate) {
	// Use json/form tag names for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "env"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("admin_role", func(fl govalidator.FieldLevel) bool {
		return model.Role(fl.Field().String()).Valid()
	})

	// bcrypt rejects inputs longer than 72 bytes, counted in bytes, not runes.
	_ = v.RegisterValidation("bcrypt_len", func(fl govalidator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxBcryptPasswordBytes
	})

	_ = en_translations.RegisterDefaultTranslations(v, trans)
	_ = v.RegisterTranslation("admin_role", trans,
		func(ut ut.Translator) error {
			return ut.Add("admin_role", "{0} must be a known dashboard role", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			t, _ := ut.T("admin_role", fe.Field())
			return t
		},
	)
	_ = v.RegisterTranslation("bcrypt_len", trans,
		func(ut ut.Translator) error {
			return ut.Add("bcrypt_len", "{0} must be at most 72 bytes long", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			t, _ := ut.T("bcrypt_len", fe.Field())
			return t
		},
	)
}

// Struct validates s with the standalone validator and folds any field errors
// into a single readable error.
func Struct(s interface{}) error {
	Setup()

	err := standalone.Struct(s)
	if err == nil {
		return nil
	}

	fields := TranslateErrors(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// BindQuery binds and validates query parameters into dst.
// Returns nil on success or a translated field error map on failure.
func BindQuery(c *gin.Context, dst interface{}) map[string]string {
	if err := c.ShouldBindQuery(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
