// Package validation valida formularios con go-playground/validator y traduce los errores
// a domain.ValidationError con mensajes en español por campo.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/memberflow-console/internal/domain"
)

// MsgInvalidForm mensaje general cuando hay errores de campo.
const MsgInvalidForm = "Todos los campos son obligatorios."

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Los campos se reportan con su nombre JSON, que es el que conoce el formulario.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct valida s. Devuelve *domain.ValidationError con un mensaje por campo, o nil.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.NewValidationError(MsgInvalidForm)
	}
	out := domain.NewValidationError(MsgInvalidForm)
	for _, fe := range ve {
		out.With(fieldPath(fe), message(fe))
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "CreateUserRequest.user.email" → "user.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "campo obligatorio"
	case "email":
		return "email no válido"
	case "min":
		if fe.Kind() == reflect.String {
			return "debe tener al menos " + fe.Param() + " caracteres"
		}
		if fe.Kind() == reflect.Slice {
			return "debe tener al menos " + fe.Param() + " elemento(s)"
		}
		return "debe ser mayor o igual que " + fe.Param()
	case "max":
		return "debe ser menor o igual que " + fe.Param()
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual que " + fe.Param()
	case "oneof":
		return "valor no permitido (" + fe.Param() + ")"
	case "datetime":
		return "fecha no válida (" + fe.Param() + ")"
	default:
		return "valor no válido"
	}
}
