// Package validate contém as validações puras de campos de formulário.
// Cada função devolve Result{Valid, Message} sem efeitos colaterais; a mensagem
// é exibida junto ao campo ofensor e limpa no próximo evento de input.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Result resultado de uma validação de campo.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Message: msg}
}

var nonDigits = regexp.MustCompile(`\D`)

// Conjunto fixo de caracteres especiais aceitos na senha.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// DigitsOnly remove tudo que não for dígito (formatação de CPF: pontos e hífen).
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// CPF valida o identificador: exatamente 11 dígitos após remover a formatação.
func CPF(s string) Result {
	if len(DigitsOnly(s)) != 11 {
		return fail("CPF deve ter exatamente 11 números")
	}
	return ok()
}

// Password valida a força da senha: maiúscula, minúscula, número e caractere
// especial, nessa ordem. A primeira regra que falhar determina a mensagem.
func Password(s string) Result {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	if !hasUpper {
		return fail("Senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return fail("Senha deve conter pelo menos uma letra minúscula")
	}
	if !hasDigit {
		return fail("Senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return fail("Senha deve conter pelo menos um caractere especial")
	}
	return ok()
}

// ProductName valida o nome do produto: não vazio após aparar, até 100 caracteres.
func ProductName(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail("Nome do produto é obrigatório")
	}
	if len([]rune(s)) > 100 {
		return fail("Nome do produto deve ter no máximo 100 caracteres")
	}
	return ok()
}

// CompanyName valida o nome da empresa: não vazio após aparar, até 50 caracteres.
func CompanyName(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail("Nome da empresa não pode estar vazio")
	}
	if len([]rune(strings.TrimSpace(s))) > 50 {
		return fail("Nome da empresa deve ter no máximo 50 caracteres")
	}
	return ok()
}

// Quantity valida a quantidade: inteiro maior ou igual a zero.
func Quantity(s string) Result {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fail("Quantidade deve ser um número maior ou igual a zero")
	}
	return ok()
}

// Value valida o valor: decimal maior ou igual a zero.
func Value(s string) Result {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return fail("Valor deve ser um número maior ou igual a zero")
	}
	return ok()
}

// FormatCPF aplica a máscara de exibição 123.456.789-01 quando a entrada tem
// 11 dígitos; caso contrário devolve a entrada intocada.
func FormatCPF(s string) string {
	d := DigitsOnly(s)
	if len(d) != 11 {
		return s
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}
