package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"org-admin-service/internal/service"
)

// Один валидатор на пакет: проверяет DTO по struct-тегам validate,
// в сообщениях использует имена полей из json-тегов.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct прогоняет req через validator и переводит первую ошибку
// в AppError с человекочитаемым сообщением.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if vErrs, ok := err.(validator.ValidationErrors); ok && len(vErrs) > 0 {
		return service.ErrBadRequest(fieldMessage(vErrs[0]))
	}
	return service.ErrBadRequest("invalid request")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid uuid", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ValidateLoginRequest проверяет тело запроса /auth/login.
func ValidateLoginRequest(req loginRequest) error {
	return validateStruct(req)
}

// ValidateChangeRoleRequest проверяет тело запроса /users/changeRole.
func ValidateChangeRoleRequest(req changeRoleRequest) error {
	return validateStruct(req)
}

// ValidateCreateScheduleRequest проверяет тело запроса /deskSchedule/create.
func ValidateCreateScheduleRequest(req createScheduleRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if !req.EndsAt.After(req.StartsAt) {
		return service.ErrBadRequest("ends_at must be after starts_at")
	}
	return nil
}
