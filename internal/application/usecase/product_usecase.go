package usecase

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/techtitans/estoque-front/internal/application/dto"
	"github.com/techtitans/estoque-front/internal/application/ports"
	"github.com/techtitans/estoque-front/internal/domain"
	"github.com/techtitans/estoque-front/internal/domain/entity"
)

// ProductUseCase repassa o CRUD de produtos ao backend e monta a visão do
// estoque: busca por nome (sem diferenciar maiúsculas nem acentos) e
// estatísticas sempre calculadas sobre a lista completa.
type ProductUseCase struct {
	backend ports.ProductService
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(backend ports.ProductService) *ProductUseCase {
	return &ProductUseCase{backend: backend}
}

// List busca a lista completa da empresa, aplica o filtro de busca e calcula
// as estatísticas. Busca vazia devolve a lista inteira (limpar busca).
func (uc *ProductUseCase) List(ctx context.Context, companyID, search string) (*dto.StockListResponse, error) {
	all, err := uc.backend.ListProducts(ctx, companyID)
	if err != nil {
		return nil, err
	}

	stats := dto.StockStats{TotalProducts: len(all), TotalValue: decimal.Zero}
	for _, p := range all {
		stats.TotalQuantity += p.Quantity
		stats.TotalValue = stats.TotalValue.Add(p.Value.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	filtered := all
	term := strings.TrimSpace(search)
	if term != "" {
		folded := foldName(term)
		filtered = make([]entity.Product, 0, len(all))
		for _, p := range all {
			if strings.Contains(foldName(p.Name), folded) {
				filtered = append(filtered, p)
			}
		}
	}

	items := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, toProductResponse(p))
	}
	return &dto.StockListResponse{Products: items, Stats: stats, Search: term}, nil
}

// Add cadastra um produto. Quando o backend responde updated=true, a
// quantidade foi somada a um produto homônimo já existente e a mensagem muda.
func (uc *ProductUseCase) Add(ctx context.Context, companyID string, in dto.AddProductRequest) (*dto.AddProductResponse, error) {
	quantity, value, err := parseQuantityValue(in.Quantity, in.Value)
	if err != nil {
		return nil, err
	}
	result, err := uc.backend.AddProduct(ctx, companyID, strings.TrimSpace(in.Name), quantity, value)
	if err != nil {
		return nil, err
	}

	message := "Produto adicionado com sucesso!"
	if result.Updated {
		message = result.Message
		if message == "" {
			message = "Produto já existia. Quantidade foi somada ao estoque!"
		}
	}
	return &dto.AddProductResponse{
		Message: message,
		Product: toProductResponse(result.Product),
		Updated: result.Updated,
	}, nil
}

// Update edita nome, quantidade e valor de um produto existente.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	quantity, value, err := parseQuantityValue(in.Quantity, in.Value)
	if err != nil {
		return nil, err
	}
	p, err := uc.backend.UpdateProduct(ctx, companyID, productID, strings.TrimSpace(in.Name), quantity, value)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(*p)
	return &out, nil
}

// Delete exclui um produto do estoque.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, productID string) error {
	return uc.backend.DeleteProduct(ctx, companyID, productID)
}

func parseQuantityValue(q, v dto.Num) (int, decimal.Decimal, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(q.String()))
	if err != nil || quantity < 0 {
		return 0, decimal.Zero, domain.ErrInvalidInput
	}
	value, err := decimal.NewFromString(strings.TrimSpace(v.String()))
	if err != nil || value.IsNegative() {
		return 0, decimal.Zero, domain.ErrInvalidInput
	}
	return quantity, value, nil
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Name: p.Name, Quantity: p.Quantity, Value: p.Value}
}

// foldName normaliza para busca: minúsculas e sem acentos ("Açúcar" casa com "acucar").
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
