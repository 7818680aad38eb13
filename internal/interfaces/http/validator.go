package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bodyValidator embrulha o go-playground/validator para checar a forma dos
// request bodies (tags `validate` dos DTOs). As mensagens específicas por
// campo continuam nas validações de domínio.
type bodyValidator struct {
	v *validator.Validate
}

func newBodyValidator() *bodyValidator {
	return &bodyValidator{v: validator.New()}
}

// Check valida a struct e devolve uma mensagem legível quando algo falta.
func (bv *bodyValidator) Check(i any) error {
	if err := bv.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converte um ValidationError em mensagem legível.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " é obrigatório"
	case "min":
		return fmt.Sprintf("%s deve ter pelo menos %s caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fe.Param())
	default:
		return fmt.Sprintf("%s falhou na validação (%s)", field, fe.Tag())
	}
}
