package dto

import "github.com/shopspring/decimal"

// AddProductRequest entrada para adicionar produto. Quantity e Value chegam
// como número ou string; a validação de domínio decide se são aceitáveis.
type AddProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity Num    `json:"quantity"`
	Value    Num    `json:"value"`
}

// UpdateProductRequest entrada para editar produto no modal do estoque.
type UpdateProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity Num    `json:"quantity"`
	Value    Num    `json:"value"`
}

// ProductResponse produto exibido na tela de estoque.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// StockStats bloco de estatísticas do estoque (contagem, soma das quantidades
// e valor total = soma de value*quantity).
type StockStats struct {
	TotalProducts int             `json:"total_products"`
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// StockListResponse lista de produtos (já filtrada pela busca) e estatísticas
// calculadas sempre sobre a lista completa.
type StockListResponse struct {
	Products []ProductResponse `json:"products"`
	Stats    StockStats        `json:"stats"`
	Search   string            `json:"search,omitempty"`
}

// AddProductResponse saída do cadastro: o backend pode ter somado quantidade
// a um produto existente (Updated) em vez de criar um novo; a mensagem muda.
type AddProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
	Updated bool            `json:"updated"`
}
