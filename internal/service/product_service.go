package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Sentinel errors the HTTP layer maps onto status codes.
var (
	ErrInvalidStock    = errors.New("stock must be >= 0")
	ErrDuplicateName   = errors.New("name must be unique")
	ErrProductNotFound = errors.New("product not found")
)

// ExportColumns is the fixed column order shared by CSV export and import.
var ExportColumns = []string{"name", "unit", "category", "brand", "stock", "status", "image"}

// ProductService defines the business logic contract for products.
type ProductService interface {
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Search(ctx context.Context, name string) ([]dto.ProductResponse, error)
	// Update overwrites all mutable fields of one product. changedBy is the
	// acting identity recorded on the audit log; the service itself carries
	// no auth concern.
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest, changedBy string) (*dto.ProductResponse, error)
	History(ctx context.Context, id uint) ([]dto.InventoryLogResponse, error)
	Import(ctx context.Context, rows []dto.ImportRow) (*dto.ImportSummary, error)
	Export(ctx context.Context) ([][]string, error)
}

type productService struct {
	products repository.ProductRepository
	logs     repository.InventoryLogRepository
}

func NewProductService(products repository.ProductRepository, logs repository.InventoryLogRepository) ProductService {
	return &productService{products: products, logs: logs}
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (s *productService) Search(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	products, err := s.products.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest, changedBy string) (*dto.ProductResponse, error) {
	if req.Stock < 0 {
		return nil, ErrInvalidStock
	}

	// Uniqueness runs against pre-update state, excluding the row itself so a
	// product may keep (or re-case) its own name.
	existing, err := s.products.FindByNameCI(ctx, req.Name, id)
	switch {
	case err == nil && existing != nil:
		return nil, ErrDuplicateName
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	oldStock := p.Stock
	p.Name = req.Name
	p.Unit = req.Unit
	p.Category = req.Category
	p.Brand = req.Brand
	p.Stock = req.Stock
	p.Status = req.Status
	p.Image = req.Image
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}

	// Audit log only when the stock value actually changed. The write is
	// best-effort: a failure is logged and swallowed, never rolled back.
	if oldStock != p.Stock {
		entry := &model.InventoryLog{
			ProductID: p.ID,
			OldStock:  oldStock,
			NewStock:  p.Stock,
			ChangedBy: changedBy,
			Timestamp: time.Now().UTC().Format(model.TimestampLayout),
		}
		if err := s.logs.Create(ctx, entry); err != nil {
			log.Warn().Err(err).Uint("product_id", p.ID).Msg("inventory log write failed")
		}
	}

	resp := toProductResponse(p)
	return &resp, nil
}

func (s *productService) History(ctx context.Context, id uint) ([]dto.InventoryLogResponse, error) {
	// No existence check: an unknown id simply has no logs and returns an
	// empty slice.
	logs, err := s.logs.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.InventoryLogResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			OldStock:  l.OldStock,
			NewStock:  l.NewStock,
			ChangedBy: l.ChangedBy,
			Timestamp: l.Timestamp,
		})
	}
	return out, nil
}

// Import processes rows strictly in file order, one at a time: a later row's
// duplicate check must see products inserted by earlier rows of the same
// file, so this loop must never be parallelized.
func (s *productService) Import(ctx context.Context, rows []dto.ImportRow) (*dto.ImportSummary, error) {
	summary := &dto.ImportSummary{Duplicates: []dto.DuplicateEntry{}}

	for _, row := range rows {
		existing, err := s.products.FindByNameCI(ctx, row.Name, 0)
		if err == nil && existing != nil {
			summary.Skipped++
			summary.Duplicates = append(summary.Duplicates, dto.DuplicateEntry{
				Name:       row.Name,
				ExistingID: existing.ID,
			})
			continue
		}
		// Lookup errors fall through to the insert attempt.

		stock, err := strconv.Atoi(strings.TrimSpace(row.Stock))
		if err != nil {
			stock = 0
		}
		p := &model.Product{
			Name:     row.Name,
			Unit:     row.Unit,
			Category: row.Category,
			Brand:    row.Brand,
			Stock:    stock,
			Status:   row.Status,
		}
		if row.Image != "" {
			img := row.Image
			p.Image = &img
		}
		if err := s.products.Create(ctx, p); err != nil {
			// Failed inserts (constraint violations, malformed rows) count as
			// skipped but are not reported as duplicates.
			summary.Skipped++
			continue
		}
		summary.Added++
	}

	return summary, nil
}

func (s *productService) Export(ctx context.Context) ([][]string, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		image := ""
		if p.Image != nil {
			image = *p.Image
		}
		rows = append(rows, []string{
			p.Name, p.Unit, p.Category, p.Brand, strconv.Itoa(p.Stock), p.Status, image,
		})
	}
	return rows, nil
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Unit:     p.Unit,
		Category: p.Category,
		Brand:    p.Brand,
		Stock:    p.Stock,
		Status:   p.Status,
		Image:    p.Image,
	}
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}
