package entity

// Tipos de acesso válidos para User.
const (
	UserTypeChefe       = "chefe"
	UserTypeFuncionario = "funcionario"
)

// User representa o usuário autenticado na sessão. Imutável até o logout.
// Para funcionários, CompanyID indica a única empresa à qual o usuário pertence.
type User struct {
	CPF       string `json:"cpf"`
	Name      string `json:"name,omitempty"`
	UserType  string `json:"user_type"`
	CompanyID string `json:"company_id,omitempty"`
}

// IsChefe informa se o usuário é dono (gerencia até 3 empresas).
func (u *User) IsChefe() bool {
	return u != nil && u.UserType == UserTypeChefe
}

// IsFuncionario informa se o usuário é funcionário (vinculado a uma empresa via CompanyID).
func (u *User) IsFuncionario() bool {
	return u != nil && u.UserType == UserTypeFuncionario
}
