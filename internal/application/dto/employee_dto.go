package dto

// CreateEmployeeRequest entrada para cadastrar funcionário.
type CreateEmployeeRequest struct {
	CPF      string `json:"cpf" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// EmployeeResponse funcionário listado, com CPF já mascarado para exibição.
type EmployeeResponse struct {
	CPF          string `json:"cpf"`
	CPFFormatted string `json:"cpf_formatted"`
	CompanyName  string `json:"company_name"`
}

// EmployeeListResponse lista de funcionários da empresa selecionada.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
