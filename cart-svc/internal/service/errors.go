package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingRestaurant  = errors.New("cannot determine the restaurant for this cart")
	ErrRestaurantMismatch = errors.New("cart already holds items from another restaurant")
	ErrStaleResponse      = errors.New("stale response discarded")
	ErrReceiptUnavailable = errors.New("receipt generator is not configured")
)

type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fieldErr := fieldErrs[0]
		return &ValidationError{
			Field:  fieldErr.Field(),
			Value:  fieldErr.Value(),
			Reason: describeRule(fieldErr),
		}
	}
	return &ValidationError{Field: "input", Reason: err.Error()}
}

func describeRule(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "gt":
		return "must be greater than " + fieldErr.Param()
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "required":
		return "is required"
	default:
		return "failed " + fieldErr.Tag() + " check"
	}
}

func ParseID(field, raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Field: field, Value: raw, Reason: "must be a positive integer"}
	}
	if id <= 0 {
		return 0, &ValidationError{Field: field, Value: raw, Reason: "must be a positive integer"}
	}
	return id, nil
}

func ParseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: "user_id", Value: raw, Reason: "must be a positive integer"}
	}
	return id, nil
}

func checkUser(userID int64) error {
	if userID <= 0 {
		return &ValidationError{Field: "user_id", Value: userID, Reason: "must be a positive integer"}
	}
	return nil
}

func checkPositive(field string, value int) error {
	if value <= 0 {
		return &ValidationError{Field: field, Value: value, Reason: "must be a positive integer"}
	}
	return nil
}
