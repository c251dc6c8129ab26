package utils

import (
	"Foodgram-Backend/domain"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	Validate      *validator.Validate
	validatorOnce sync.Once

	usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)
)

func InitValidator() {
	validatorOnce.Do(func() {
		Validate = validator.New()

		// report fields by their JSON names
		Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		if err := Validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	})
}

// ValidationErrors turns validator failures into domain.FieldErrors.
// Any other error is returned as is.
func ValidationErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := domain.FieldErrors{}
	for _, fe := range verrs {
		fields.Add(fieldPath(fe), fieldMessage(fe))
	}
	return fields
}

// fieldPath drops the struct name: "CreateRecipeRequest.ingredients[0].amount" -> "ingredients[0].amount".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	isCollection := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array || fe.Kind() == reflect.Map
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		switch {
		case isCollection:
			return fmt.Sprintf("ensure this field has at least %s items", fe.Param())
		case isText:
			return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
		default:
			return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
		}
	case "max":
		switch {
		case isCollection:
			return fmt.Sprintf("ensure this field has no more than %s items", fe.Param())
		case isText:
			return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
		default:
			return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
		}
	case "unique":
		return "items must not repeat"
	case "email":
		return "enter a valid email address"
	case "username":
		return "enter a valid username: letters, digits and @/./+/-/_ only"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// ValidateStruct runs the registered rules against s and returns domain.FieldErrors on failure.
func ValidateStruct(s any) error {
	InitValidator()
	if err := Validate.Struct(s); err != nil {
		return ValidationErrors(err)
	}
	return nil
}
