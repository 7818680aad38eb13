package dto

import (
	"encoding/json"
	"strings"
)

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrorsResponse erros de validação por campo. O cliente exibe cada
// mensagem junto ao campo ofensor; nada chega à rede enquanto houver erro.
type FieldErrorsResponse struct {
	Code   string            `json:"code"`
	Errors map[string]string `json:"errors"`
}

// Num aceita número JSON ou string numérica: formulários de navegador
// serializam quantidade/valor das duas formas.
type Num string

// UnmarshalJSON implementa a aceitação de "10", 10 e 10.5.
func (n *Num) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*n = Num(v)
		return nil
	}
	*n = Num(s)
	return nil
}

// MarshalJSON serializa sempre como string para não perder precisão.
func (n Num) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

func (n Num) String() string {
	return string(n)
}
