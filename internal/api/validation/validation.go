package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
)

// ValidationError нарушение одного правила валидации
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors набор нарушений по одному запросу
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Validator проверяет входные модели API по validate-тегам
type Validator struct {
	validate *validator.Validate
}

// New создает новый экземпляр Validator с доменными правилами:
// date_iso (YYYY-MM-DD) и time_hhmm (HH:MM)
func New() (*Validator, error) {
	v := validator.New()

	if err := v.RegisterValidation("date_iso", validateDateISO); err != nil {
		return nil, fmt.Errorf("register date_iso: %w", err)
	}
	if err := v.RegisterValidation("time_hhmm", validateTimeHHMM); err != nil {
		return nil, fmt.Errorf("register time_hhmm: %w", err)
	}

	return &Validator{validate: v}, nil
}

// Struct проверяет структуру и возвращает ValidationErrors
// при нарушениях правил
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return out
}

func validateDateISO(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DateFormat, fl.Field().String())
	return err == nil
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.TimeFormat, fl.Field().String())
	return err == nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательное поле"
	case "date_iso":
		return "ожидается дата в формате YYYY-MM-DD"
	case "time_hhmm":
		return "ожидается время в формате HH:MM"
	case "min":
		return fmt.Sprintf("значение меньше допустимого минимума %s", fe.Param())
	case "max":
		return fmt.Sprintf("значение больше допустимого максимума %s", fe.Param())
	default:
		return fmt.Sprintf("нарушено правило %s", fe.Tag())
	}
}
