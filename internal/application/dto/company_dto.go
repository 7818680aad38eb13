package dto

// CompanyResponse empresa da lista do chefe ou a selecionada.
type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DashboardResponse view model do dashboard do chefe: lista de empresas e se
// o botão de adicionar deve aparecer (some com 3 empresas).
type DashboardResponse struct {
	Companies []CompanyResponse `json:"companies"`
	CanAdd    bool              `json:"can_add"`
}

// RenameCompanyRequest entrada para renomear uma empresa da lista.
type RenameCompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

// SelectCompanyResponse saída da seleção de empresa no dashboard.
type SelectCompanyResponse struct {
	Selected CompanyResponse `json:"selected"`
	Index    int             `json:"index"`
}

// PageResponse view model das páginas protegidas: título com o nome da
// empresa em foco, como os cabeçalhos das telas originais.
type PageResponse struct {
	Title   string          `json:"title"`
	Company CompanyResponse `json:"company"`
}
