package entity

// Employee representa um funcionário de uma empresa. O dono dos dados é o
// backend; o front apenas cria, lista e exclui, nunca mantém cache.
type Employee struct {
	CPF       string `json:"cpf"`
	CompanyID string `json:"company_id,omitempty"`
}
