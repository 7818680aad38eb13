package dto

// LoginRequest entrada do login (CPF pode vir com formatação 123.456.789-01).
type LoginRequest struct {
	CPF      string `json:"cpf" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuário da sessão (nunca inclui senha; o front não a guarda).
type UserResponse struct {
	CPF       string `json:"cpf"`
	Name      string `json:"name,omitempty"`
	UserType  string `json:"user_type"`
	CompanyID string `json:"company_id,omitempty"`
}

// LoginResponse saída do login: usuário e destino de navegação por tipo.
type LoginResponse struct {
	Message  string       `json:"message"`
	User     UserResponse `json:"user"`
	Redirect string       `json:"redirect"`
}
