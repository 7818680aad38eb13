package entity

import "fmt"

// Limites da lista de empresas de um chefe.
const (
	MaxCompanies = 3
	MinCompanies = 1
)

// Company representa uma empresa do usuário. Para chefes a lista é mantida na
// sessão; para funcionários a empresa é resolvida a partir de User.CompanyID.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlaceholderCompany sintetiza a empresa básica usada quando o backend não
// responde na resolução de contexto: o nome real é perdido, a tela nunca bloqueia.
func PlaceholderCompany(id string) Company {
	return Company{ID: id, Name: fmt.Sprintf("Empresa %s", id)}
}
