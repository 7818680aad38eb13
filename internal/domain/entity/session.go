package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/techtitans/estoque-front/internal/domain"
)

// Session é o estado persistido de uma sessão de navegador: usuário logado,
// lista de empresas do chefe e empresa selecionada. Criada no login, lida e
// escrita por todas as telas, destruída atomicamente no logout.
type Session struct {
	ID                   string    `json:"id"`
	User                 *User     `json:"user,omitempty"`
	Companies            []Company `json:"companies,omitempty"`
	SelectedCompany      *Company  `json:"selected_company,omitempty"`
	SelectedCompanyIndex int       `json:"selected_company_index"` // -1 = nenhuma
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// EnsureCompanies semeia a lista padrão na primeira carga do dashboard,
// como o front original: uma única "Empresa 1".
func (s *Session) EnsureCompanies() {
	if len(s.Companies) == 0 {
		s.Companies = []Company{{ID: "1", Name: "Empresa 1"}}
	}
}

// AddCompany acrescenta uma empresa com nome/ID sequenciais.
// Rejeita com ErrCompanyLimit quando a lista já tem MaxCompanies; a lista não muda.
func (s *Session) AddCompany() (Company, error) {
	if len(s.Companies) >= MaxCompanies {
		return Company{}, domain.ErrCompanyLimit
	}
	n := len(s.Companies) + 1
	c := Company{ID: fmt.Sprintf("%d", n), Name: fmt.Sprintf("Empresa %d", n)}
	s.Companies = append(s.Companies, c)
	return c, nil
}

// RenameCompany renomeia a empresa na posição index. O nome é aparado;
// vazio resulta em ErrInvalidInput. Se a empresa renomeada for a selecionada,
// a seleção é atualizada junto.
func (s *Session) RenameCompany(index int, name string) error {
	if index < 0 || index >= len(s.Companies) {
		return domain.ErrNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	s.Companies[index].Name = name
	if s.SelectedCompanyIndex == index && s.SelectedCompany != nil {
		c := s.Companies[index]
		s.SelectedCompany = &c
	}
	return nil
}

// DeleteCompany remove exatamente a empresa na posição index, preservando a
// ordem das demais. Rejeita com ErrLastCompany quando restaria lista vazia.
// Remover a empresa selecionada limpa a seleção; remover uma anterior ajusta o índice.
func (s *Session) DeleteCompany(index int) error {
	if index < 0 || index >= len(s.Companies) {
		return domain.ErrNotFound
	}
	if len(s.Companies) <= MinCompanies {
		return domain.ErrLastCompany
	}
	s.Companies = append(s.Companies[:index], s.Companies[index+1:]...)

	switch {
	case s.SelectedCompanyIndex == index:
		s.SelectedCompany = nil
		s.SelectedCompanyIndex = -1
	case s.SelectedCompanyIndex > index:
		s.SelectedCompanyIndex--
	}
	return nil
}

// SelectCompany grava a empresa na posição index como selecionada e devolve-a.
func (s *Session) SelectCompany(index int) (Company, error) {
	if index < 0 || index >= len(s.Companies) {
		return Company{}, domain.ErrNotFound
	}
	c := s.Companies[index]
	s.SelectedCompany = &c
	s.SelectedCompanyIndex = index
	return c, nil
}

// SetSelectedCompany grava uma empresa resolvida fora da lista (caso funcionário).
func (s *Session) SetSelectedCompany(c Company) {
	s.SelectedCompany = &c
	s.SelectedCompanyIndex = -1
}

// Touch atualiza o carimbo de modificação antes de persistir.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}
