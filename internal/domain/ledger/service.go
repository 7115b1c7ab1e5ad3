package ledger

import (
	"context"
	"fmt"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/core/tx"
	"stockbook/internal/domain/catalog/product"
	"stockbook/pkg/logger"
)

// Archiver preserves a copy of the ledger before destructive operations.
// The implementation lives in infrastructure/storage.
type Archiver interface {
	Archive(ctx context.Context, snapshot *Snapshot) (ref string, err error)
}

// StockInInput carries the fields for recording a receipt.
type StockInInput struct {
	ProductID id.ID
	Quantity  int
	Date      string
	Notes     string
}

// StockOutInput carries the fields for recording a sale.
type StockOutInput struct {
	ProductID     id.ID
	Quantity      int
	Date          string
	Platform      string
	CustomerName  string
	PaymentStatus string
	Notes         string
}

// ReturnInput carries the fields for recording a customer return.
type ReturnInput struct {
	ProductID id.ID
	Quantity  int
	Date      string
	Platform  string
	Notes     string
}

// Service provides business logic for the stock movement ledger.
// Every operation that touches stock runs the entry insert and the
// product stock adjustment in one transaction.
type Service struct {
	repo      Repository
	products  product.Repository
	txManager tx.Manager
	archiver  Archiver
}

// NewService creates a new ledger service.
func NewService(repo Repository, products product.Repository, txManager tx.Manager, archiver Archiver) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		txManager: txManager,
		archiver:  archiver,
	}
}

// StockIn records a receipt: creates an IN entry capturing the product's
// current purchase price and increases on-hand stock.
func (s *Service) StockIn(ctx context.Context, in StockInInput) (*Entry, error) {
	var entry *Entry
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := s.products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}

		entry = NewEntry(KindIn, p.ID, p.Name, in.Quantity, in.Date)
		entry.ProductImage = p.ImageURL
		price := p.PurchasePrice
		entry.PurchasePriceAtTime = &price
		entry.Notes = in.Notes

		if err := entry.Validate(ctx); err != nil {
			return err
		}

		if err := s.repo.Create(ctx, entry); err != nil {
			return fmt.Errorf("create stock-in entry: %w", err)
		}
		if err := s.products.AdjustStock(ctx, p.ID, in.Quantity); err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}

		logger.Info(ctx, "stock-in recorded",
			"product_id", p.ID.String(),
			"quantity", in.Quantity,
			"date", in.Date,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// StockOut records a sale: creates an OUT entry capturing the product's
// current selling price and decreases on-hand stock. Fails when the
// requested quantity exceeds the available stock.
func (s *Service) StockOut(ctx context.Context, in StockOutInput) (*Entry, error) {
	var entry *Entry
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := s.products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}

		if p.CurrentStock < in.Quantity {
			return apperror.NewInsufficientStock(p.ID.String(), in.Quantity, p.CurrentStock)
		}

		entry = NewEntry(KindOut, p.ID, p.Name, in.Quantity, in.Date)
		entry.ProductImage = p.ImageURL
		price := p.SellingPrice
		entry.SellingPriceAtTime = &price
		entry.Platform = in.Platform
		entry.CustomerName = in.CustomerName
		entry.PaymentStatus = in.PaymentStatus
		entry.Notes = in.Notes

		if err := entry.Validate(ctx); err != nil {
			return err
		}

		if err := s.repo.Create(ctx, entry); err != nil {
			return fmt.Errorf("create stock-out entry: %w", err)
		}
		if err := s.products.AdjustStock(ctx, p.ID, -in.Quantity); err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}

		logger.Info(ctx, "stock-out recorded",
			"product_id", p.ID.String(),
			"quantity", in.Quantity,
			"platform", in.Platform,
			"date", in.Date,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Return records a customer return: creates a RETURN entry in the
// stock-in collection and increases on-hand stock.
func (s *Service) Return(ctx context.Context, in ReturnInput) (*Entry, error) {
	var entry *Entry
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := s.products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}

		entry = NewEntry(KindReturn, p.ID, p.Name, in.Quantity, in.Date)
		entry.ProductImage = p.ImageURL
		entry.Platform = in.Platform
		entry.Notes = in.Notes

		if err := entry.Validate(ctx); err != nil {
			return err
		}

		if err := s.repo.Create(ctx, entry); err != nil {
			return fmt.Errorf("create return entry: %w", err)
		}
		if err := s.products.AdjustStock(ctx, p.ID, in.Quantity); err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}

		logger.Info(ctx, "return recorded",
			"product_id", p.ID.String(),
			"quantity", in.Quantity,
			"platform", in.Platform,
			"date", in.Date,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetSnapshot loads the full ledger for report computation.
func (s *Service) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	return s.repo.GetSnapshot(ctx)
}

// GetByID retrieves a single entry.
func (s *Service) GetByID(ctx context.Context, entryID id.ID) (*Entry, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("ledger entry", entryID.String())
		}
		return nil, err
	}
	return entry, nil
}

// ListByProduct retrieves all entries for a product.
func (s *Service) ListByProduct(ctx context.Context, productID id.ID) ([]*Entry, error) {
	return s.repo.ListByProduct(ctx, productID)
}

// Reset wipes the ledger and zeroes all product stock levels. The wiped
// ledger is archived first so the reset is auditable.
func (s *Service) Reset(ctx context.Context) (archiveRef string, err error) {
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		snapshot, err := s.repo.GetSnapshot(ctx)
		if err != nil {
			return err
		}

		if s.archiver != nil {
			ref, err := s.archiver.Archive(ctx, snapshot)
			if err != nil {
				return fmt.Errorf("archive ledger: %w", err)
			}
			archiveRef = ref
		}

		if err := s.repo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("wipe ledger: %w", err)
		}
		if err := s.products.ResetStock(ctx); err != nil {
			return fmt.Errorf("reset product stock: %w", err)
		}

		logger.Warn(ctx, "ledger reset",
			"entries_in", len(snapshot.StockIn),
			"entries_out", len(snapshot.StockOut),
			"archive", archiveRef,
		)
		return nil
	})
	return archiveRef, err
}
