package reports

import (
	"context"
	"fmt"
	"time"

	"stockbook/internal/core/id"
	"stockbook/internal/core/tx"
	"stockbook/internal/domain/catalog/product"
	"stockbook/internal/domain/ledger"
)

// Service loads report inputs and runs the pure aggregation functions.
// Snapshot and catalog are read inside one read-only transaction so a
// report never mixes two ledger states.
type Service struct {
	entries   ledger.Repository
	products  product.Repository
	txManager tx.ReadOnlyManager
}

// NewService creates a new reports service.
func NewService(entries ledger.Repository, products product.Repository, txManager tx.ReadOnlyManager) *Service {
	return &Service{
		entries:   entries,
		products:  products,
		txManager: txManager,
	}
}

// loadInputs reads the full snapshot and catalog consistently.
func (s *Service) loadInputs(ctx context.Context) (*ledger.Snapshot, []*product.Product, error) {
	var snap *ledger.Snapshot
	var catalog []*product.Product
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		if snap, err = s.entries.GetSnapshot(ctx); err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if catalog, err = s.products.GetAll(ctx); err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return snap, catalog, nil
}

// GetDaily generates the daily report with derived notes.
func (s *Service) GetDaily(ctx context.Context, date string, f Filters) (*DailyReport, DailyNotes, error) {
	snap, _, err := s.loadInputs(ctx)
	if err != nil {
		return nil, DailyNotes{}, err
	}
	report := Daily(snap, date, f)
	return report, Notes(report), nil
}

// GetMonthly generates the monthly report.
func (s *Service) GetMonthly(ctx context.Context, month string, f Filters) (*MonthlyReport, error) {
	snap, catalog, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}
	return Monthly(snap, month, f, catalog), nil
}

// GetPerProduct generates the per-product movement report.
func (s *Service) GetPerProduct(ctx context.Context, productID id.ID, platform string) (*ProductReport, error) {
	snap, _, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}
	return PerProduct(snap, productID, platform), nil
}

// GetDashboard generates the landing-page aggregates.
func (s *Service) GetDashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	snap, catalog, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDashboard(catalog, snap, now), nil
}

// GetDailyText renders the daily report as a shareable text summary.
func (s *Service) GetDailyText(ctx context.Context, date string, f Filters) (string, error) {
	snap, _, err := s.loadInputs(ctx)
	if err != nil {
		return "", err
	}
	return DailyText(Daily(snap, date, f), f.Platform), nil
}
