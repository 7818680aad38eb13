// Package ports define os portos de saída para o backend de inventário.
// Seguindo a inversão de dependências (DIP), a camada de aplicação conhece só
// estes contratos; o adaptador HTTP concreto vive em infrastructure/backend.
package ports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/techtitans/estoque-front/internal/domain/entity"
)

// Authenticator porto de login contra o backend.
// Em caso de rejeição explícita o erro é um *domain.BackendError; falhas de
// transporte embrulham domain.ErrBackendUnavailable.
type Authenticator interface {
	Login(ctx context.Context, cpf, password string) (*entity.User, error)
}

// CompanyFetcher porto de consulta de empresa usado pelo Context Resolver.
type CompanyFetcher interface {
	FetchCompany(ctx context.Context, id string) (*entity.Company, error)
}

// EmployeeService porto CRUD de funcionários de uma empresa.
type EmployeeService interface {
	ListEmployees(ctx context.Context, companyID string) ([]entity.Employee, error)
	CreateEmployee(ctx context.Context, companyID, cpf, password string) (*entity.Employee, error)
	DeleteEmployee(ctx context.Context, companyID, cpf string) error
}

// AddProductResult resultado de um POST de produto: o backend pode ter somado
// a quantidade a um produto existente (Updated=true) em vez de criar um novo.
type AddProductResult struct {
	Product entity.Product
	Updated bool
	Message string
}

// ProductService porto CRUD de produtos de uma empresa.
type ProductService interface {
	ListProducts(ctx context.Context, companyID string) ([]entity.Product, error)
	AddProduct(ctx context.Context, companyID, name string, quantity int, value decimal.Decimal) (*AddProductResult, error)
	UpdateProduct(ctx context.Context, companyID, productID, name string, quantity int, value decimal.Decimal) (*entity.Product, error)
	DeleteProduct(ctx context.Context, companyID, productID string) error
}
