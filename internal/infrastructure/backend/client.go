// Package backend é o adaptador HTTP para o backend de inventário (Flask),
// consumido em endpoints locais fixos com JSON. Implementa os portos de
// application/ports. Rejeições explícitas viram *domain.BackendError; falhas
// de transporte embrulham domain.ErrBackendUnavailable.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/techtitans/estoque-front/internal/application/ports"
	"github.com/techtitans/estoque-front/internal/domain"
	"github.com/techtitans/estoque-front/internal/domain/entity"
)

// Verificação em tempo de compilação dos portos implementados.
var (
	_ ports.Authenticator   = (*Client)(nil)
	_ ports.CompanyFetcher  = (*Client)(nil)
	_ ports.EmployeeService = (*Client)(nil)
	_ ports.ProductService  = (*Client)(nil)
)

// Client cliente JSON/HTTP do backend de inventário.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constrói o cliente. Não define timeout próprio: uma requisição emitida
// corre até completar ou falhar no transporte.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// ── Payloads do protocolo do backend ─────────────────────────────────────────

// flexString aceita string ou número JSON: o backend ora devolve IDs como
// string, ora como número, dependendo da tabela de origem.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	*f = flexString(s)
	return nil
}

type messagePayload struct {
	Message string `json:"message"`
}

type loginPayload struct {
	Message string `json:"message"`
	User    struct {
		CPF       flexString `json:"cpf"`
		Name      string     `json:"name"`
		UserType  string     `json:"user_type"`
		CompanyID flexString `json:"company_id"`
	} `json:"user"`
}

type companyPayload struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
}

type employeesPayload struct {
	Employees []struct {
		CPF       flexString `json:"cpf"`
		CompanyID flexString `json:"company_id"`
	} `json:"employees"`
}

type productPayload struct {
	ID       flexString      `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

type productsPayload struct {
	Products []productPayload `json:"products"`
}

type addProductPayload struct {
	Message string         `json:"message"`
	Product productPayload `json:"product"`
	Updated bool           `json:"updated"`
}

// ── Implementação dos portos ─────────────────────────────────────────────────

// Login autentica cpf/senha. POST /login.
func (c *Client) Login(ctx context.Context, cpf, password string) (*entity.User, error) {
	body := map[string]string{"cpf": cpf, "password": password}
	var out loginPayload
	if err := c.do(ctx, http.MethodPost, "/login", body, &out); err != nil {
		return nil, err
	}
	return &entity.User{
		CPF:       string(out.User.CPF),
		Name:      out.User.Name,
		UserType:  out.User.UserType,
		CompanyID: string(out.User.CompanyID),
	}, nil
}

// FetchCompany busca a empresa por ID. GET /company/{id}.
func (c *Client) FetchCompany(ctx context.Context, id string) (*entity.Company, error) {
	var out companyPayload
	if err := c.do(ctx, http.MethodGet, "/company/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &entity.Company{ID: string(out.ID), Name: out.Name}, nil
}

// ListEmployees busca os funcionários da empresa. GET /employees/{companyId}.
func (c *Client) ListEmployees(ctx context.Context, companyID string) ([]entity.Employee, error) {
	var out employeesPayload
	if err := c.do(ctx, http.MethodGet, "/employees/"+url.PathEscape(companyID), nil, &out); err != nil {
		return nil, err
	}
	employees := make([]entity.Employee, 0, len(out.Employees))
	for _, e := range out.Employees {
		employees = append(employees, entity.Employee{
			CPF:       string(e.CPF),
			CompanyID: string(e.CompanyID),
		})
	}
	return employees, nil
}

// CreateEmployee cadastra um funcionário. POST /employees/{companyId}.
func (c *Client) CreateEmployee(ctx context.Context, companyID, cpf, password string) (*entity.Employee, error) {
	body := map[string]string{"cpf": cpf, "password": password}
	var out struct {
		Message  string `json:"message"`
		Employee struct {
			CPF       flexString `json:"cpf"`
			CompanyID flexString `json:"company_id"`
		} `json:"employee"`
	}
	if err := c.do(ctx, http.MethodPost, "/employees/"+url.PathEscape(companyID), body, &out); err != nil {
		return nil, err
	}
	return &entity.Employee{CPF: string(out.Employee.CPF), CompanyID: string(out.Employee.CompanyID)}, nil
}

// DeleteEmployee exclui o funcionário. DELETE /employees/{companyId}/{cpf}.
func (c *Client) DeleteEmployee(ctx context.Context, companyID, cpf string) error {
	path := "/employees/" + url.PathEscape(companyID) + "/" + url.PathEscape(cpf)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListProducts busca os produtos da empresa. GET /products/{companyId}.
func (c *Client) ListProducts(ctx context.Context, companyID string) ([]entity.Product, error) {
	var out productsPayload
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(companyID), nil, &out); err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(out.Products))
	for _, p := range out.Products {
		products = append(products, toProduct(p))
	}
	return products, nil
}

// AddProduct cadastra um produto. POST /products/{companyId}. O backend pode
// responder updated=true quando somou a quantidade a um produto já existente.
func (c *Client) AddProduct(ctx context.Context, companyID, name string, quantity int, value decimal.Decimal) (*ports.AddProductResult, error) {
	body := map[string]any{"name": name, "quantity": quantity, "value": value}
	var out addProductPayload
	if err := c.do(ctx, http.MethodPost, "/products/"+url.PathEscape(companyID), body, &out); err != nil {
		return nil, err
	}
	return &ports.AddProductResult{
		Product: toProduct(out.Product),
		Updated: out.Updated,
		Message: out.Message,
	}, nil
}

// UpdateProduct edita um produto. PUT /products/{companyId}/{productId}.
func (c *Client) UpdateProduct(ctx context.Context, companyID, productID, name string, quantity int, value decimal.Decimal) (*entity.Product, error) {
	path := "/products/" + url.PathEscape(companyID) + "/" + url.PathEscape(productID)
	body := map[string]any{"name": name, "quantity": quantity, "value": value}
	var out struct {
		Message string         `json:"message"`
		Product productPayload `json:"product"`
	}
	if err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	p := toProduct(out.Product)
	return &p, nil
}

// DeleteProduct exclui um produto. DELETE /products/{companyId}/{productId}.
func (c *Client) DeleteProduct(ctx context.Context, companyID, productID string) error {
	path := "/products/" + url.PathEscape(companyID) + "/" + url.PathEscape(productID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ── Transporte ───────────────────────────────────────────────────────────────

// do executa a requisição e decodifica a resposta em out (quando não-nil).
// Não-2xx com corpo {message} vira *domain.BackendError; erro de transporte
// embrulha domain.ErrBackendUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend: criar HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: ler resposta: %v", domain.ErrBackendUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg messagePayload
		_ = json.Unmarshal(rawBody, &msg)
		if msg.Message == "" {
			msg.Message = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return &domain.BackendError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("backend: deserializar resposta: %w", err)
	}
	return nil
}

func toProduct(p productPayload) entity.Product {
	return entity.Product{
		ID:       string(p.ID),
		Name:     p.Name,
		Quantity: p.Quantity,
		Value:    p.Value,
	}
}
