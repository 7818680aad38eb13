package usecase

import (
	"context"

	"github.com/techtitans/estoque-front/internal/application/dto"
	"github.com/techtitans/estoque-front/internal/application/ports"
	"github.com/techtitans/estoque-front/internal/domain/entity"
	"github.com/techtitans/estoque-front/internal/domain/validate"
)

// EmployeeUseCase repassa o CRUD de funcionários ao backend; nada é cacheado.
type EmployeeUseCase struct {
	backend ports.EmployeeService
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(backend ports.EmployeeService) *EmployeeUseCase {
	return &EmployeeUseCase{backend: backend}
}

// List busca os funcionários da empresa e monta a visão com CPF mascarado e o
// nome da empresa em foco.
func (uc *EmployeeUseCase) List(ctx context.Context, company entity.Company) (*dto.EmployeeListResponse, error) {
	employees, err := uc.backend.ListEmployees(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, dto.EmployeeResponse{
			CPF:          e.CPF,
			CPFFormatted: validate.FormatCPF(e.CPF),
			CompanyName:  company.Name,
		})
	}
	return &dto.EmployeeListResponse{Employees: items}, nil
}

// Create cadastra um funcionário. O CPF vai só com dígitos; campos já
// validados no handler.
func (uc *EmployeeUseCase) Create(ctx context.Context, companyID string, in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	return uc.backend.CreateEmployee(ctx, companyID, validate.DigitsOnly(in.CPF), in.Password)
}

// Delete exclui o funcionário pelo CPF (só dígitos no caminho upstream).
func (uc *EmployeeUseCase) Delete(ctx context.Context, companyID, cpf string) error {
	return uc.backend.DeleteEmployee(ctx, companyID, validate.DigitsOnly(cpf))
}
