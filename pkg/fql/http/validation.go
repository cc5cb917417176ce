package http

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTrans "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate     *validator.Validate
	trans        ut.Translator
	validateOnce sync.Once
)

func initValidator() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.SetTagName("binding")

	// "label" wins over the json name in messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}

		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	loc := en.New()
	uni := ut.New(loc, loc)
	trans, _ = uni.GetTranslator("en")
	_ = enTrans.RegisterDefaultTranslations(validate, trans)
}

func getValidator() *validator.Validate {
	validateOnce.Do(initValidator)

	return validate
}

func getTranslator() ut.Translator {
	validateOnce.Do(initValidator)

	return trans
}

// validateStruct validates the given struct using "binding" tags.
func validateStruct(i any) error {
	err := getValidator().Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return &ValidationError{Errors: validationErrors}
	}

	return err
}

// ValidationError wraps validator.ValidationErrors and renders them with the
// English translator.
type ValidationError struct {
	Errors validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	t := getTranslator()

	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Translate(t))
	}

	return strings.Join(msgs, "; ")
}

// StatusCode returns 400 Bad Request for validation errors.
func (*ValidationError) StatusCode() int {
	return http.StatusBadRequest
}
