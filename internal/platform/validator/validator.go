package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/samber/lo"
)

var (
	ErrTranslatorNotFound = errors.New("translator not found")
	ErrInvalidRule        = errors.New("invalid validation rule")
)

// ValidationError mapea campo -> mensaje legible (en inglés).
type ValidationError map[string]string

func (vs ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Rule es una regla custom sobre campos string, con su mensaje ({0} = campo).
type Rule struct {
	Tag     string
	Message string
	Check   func(string) bool
}

type Option func(*options)

type options struct {
	rules []Rule
}

func WithRule(tag, message string, check func(string) bool) Option {
	return func(o *options) {
		o.rules = append(o.rules, Rule{Tag: tag, Message: message, Check: check})
	}
}

// Validator envuelve go-playground/validator con traducciones en inglés.
// Una vez construido es de solo lectura y seguro para uso concurrente.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New(opts ...Option) (*Validator, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	for _, r := range o.rules {
		if err := registerRule(validate, enTrans, r); err != nil {
			return nil, err
		}
	}

	return &Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate valida un struct; si falla devuelve ValidationError.
func (v *Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		out := make(ValidationError, len(validateErrs))
		for _, fe := range validateErrs {
			out[fe.Field()] = fe.Translate(v.translator)
		}
		return out
	}

	return nil
}

func registerRule(validate *validator.Validate, trans ut.Translator, r Rule) error {
	if strings.TrimSpace(r.Tag) == "" || r.Check == nil {
		return fmt.Errorf("%w: %q", ErrInvalidRule, r.Tag)
	}

	err := validate.RegisterValidation(r.Tag, func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return r.Check(f.String())
	})
	if err != nil {
		return err
	}

	return validate.RegisterTranslation(r.Tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(r.Tag, r.Message, false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Error()
			}
			return t
		},
	)
}

// fieldName usa el tag `field` si existe; si no, el nombre en snake_case.
func fieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("field"), ",")
	if name == "" {
		return lo.SnakeCase(fld.Name)
	}
	return name
}
