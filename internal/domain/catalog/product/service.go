package product

import (
	"context"
	"fmt"
	"strings"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/core/tx"
	"stockbook/internal/domain"
	"stockbook/pkg/logger"
)

// Service provides business logic for the Product catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Product]
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		txManager:      txManager,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)
	base.Hooks().On(domain.BeforeUpdate, svc.checkCodeUnique)

	return svc
}

// prepareForCreate handles code generation and uniqueness checks.
func (s *Service) prepareForCreate(ctx context.Context, p *Product) error {
	// Generate code from the time-ordered ID if not provided
	if p.Code == "" {
		p.Code = generateCode(p.ID)
	}

	return s.checkCodeUnique(ctx, p)
}

// checkCodeUnique rejects a code already used by another product.
func (s *Service) checkCodeUnique(ctx context.Context, p *Product) error {
	existing, err := s.repo.GetByCode(ctx, p.Code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != p.ID {
		return apperror.NewDuplicate("product", "code", p.Code)
	}
	return nil
}

// generateCode derives a human-readable code from the product ID.
// UUIDv7 prefixes are time-ordered, so codes sort roughly by creation.
func generateCode(productID id.ID) string {
	hex := strings.ReplaceAll(productID.String(), "-", "")
	return fmt.Sprintf("PR-%s", strings.ToUpper(hex[:8]))
}

// --- Entity-specific methods ---

// GetAll retrieves every non-deleted product for a report snapshot.
func (s *Service) GetAll(ctx context.Context) ([]*Product, error) {
	return s.repo.GetAll(ctx)
}

// FindLowStock retrieves products with stock below the threshold.
func (s *Service) FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Product], error) {
	return s.repo.FindLowStock(ctx, filter)
}

// SetStock records a manual stock count. The ledger is deliberately not
// touched: manual edits bypass it, and reports anchor on CurrentStock.
func (s *Service) SetStock(ctx context.Context, productID id.ID, quantity int) (*Product, error) {
	if quantity < 0 {
		return nil, apperror.NewValidation("stock quantity cannot be negative").
			WithDetail("field", "quantity")
	}

	var updated *Product
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		previous := p.CurrentStock
		p.CurrentStock = quantity
		if err := s.repo.Update(ctx, p); err != nil {
			return fmt.Errorf("set stock: %w", err)
		}

		logger.Info(ctx, "manual stock count recorded",
			"product_id", productID.String(),
			"previous", previous,
			"quantity", quantity,
		)

		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
