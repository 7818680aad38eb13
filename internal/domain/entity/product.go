package entity

import "github.com/shopspring/decimal"

// Product representa um produto do estoque. O dono dos dados é o backend; o
// front mantém apenas a última lista buscada (transiente, reconstruída a cada load).
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}
