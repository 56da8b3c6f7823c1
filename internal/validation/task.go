package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/adanyl0v/go-todo-tasks/internal/dto"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New returns a Validator that checks due dates against time.Now.
func New() *Validator {
	return NewWithClock(time.Now)
}

func NewWithClock(now func() time.Time) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}

	v.validate.RegisterTagNameFunc(jsonFieldName)
	v.validate.RegisterCustomTypeFunc(dueDateValue, dto.DueDate{})

	// Both registrations only fail on an empty tag or a nil func.
	_ = v.validate.RegisterValidation("notblank", notBlank)
	_ = v.validate.RegisterValidation("future", v.future)
	return v
}

// ValidateTask checks a create or full edit payload and returns one
// FieldError per violated field, or nil if the payload is valid.
func (v *Validator) ValidateTask(task dto.TaskDTO) []FieldError {
	err := v.validate.Struct(task)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe.Tag()),
		})
	}
	return fieldErrs
}

func (v *Validator) future(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(v.now())
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func dueDateValue(field reflect.Value) any {
	if d, ok := field.Interface().(dto.DueDate); ok {
		return d.Time()
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func messageFor(tag string) string {
	switch tag {
	case "required":
		return "must not be null"
	case "notblank":
		return "must not be blank"
	case "future":
		return "must be a future date"
	default:
		return "is invalid"
	}
}
