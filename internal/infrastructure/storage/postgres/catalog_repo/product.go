package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/domain"
	"stockbook/internal/domain/catalog/product"
	"stockbook/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

var _ product.Repository = (*ProductRepo)(nil)

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	base := NewBaseCatalogRepo[*product.Product](
		txManager,
		productTable,
		postgres.ExtractDBColumns[product.Product](),
		func() *product.Product { return &product.Product{} },
	)
	base.SetListFilter(func(q squirrel.SelectBuilder, f domain.ListFilter) squirrel.SelectBuilder {
		if f.Category != "" {
			q = q.Where(squirrel.Eq{"category": f.Category})
		}
		if f.LowStock {
			q = q.Where(squirrel.Lt{"current_stock": product.LowStockThreshold})
		}
		return q
	})
	return &ProductRepo{BaseCatalogRepo: base}
}

// GetAll retrieves every non-deleted product ordered by name.
func (r *ProductRepo) GetAll(ctx context.Context) ([]*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*product.Product
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("get all products: %w", err)
	}

	return items, nil
}

// AdjustStock changes current_stock by delta.
// The row must already be locked by the caller (GetForUpdate) when the
// adjustment depends on the current value.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID id.ID, delta int) error {
	q := r.Builder().
		Update(productTable).
		Set("current_stock", squirrel.Expr("current_stock + ?", delta)).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": productID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build adjust stock: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(productTable, productID.String())
	}

	return nil
}

// FindLowStock retrieves products with stock below the threshold.
func (r *ProductRepo) FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*product.Product], error) {
	result := domain.ListResult[*product.Product]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Lt{"current_stock": product.LowStockThreshold}).
		OrderBy("current_stock ASC, name ASC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	var items []*product.Product
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return result, fmt.Errorf("find low stock: %w", err)
	}
	result.Items = items
	result.TotalCount = int64(len(items))

	return result, nil
}

// ResetStock zeroes stock counters for all products.
// Used only by the full ledger reset.
func (r *ProductRepo) ResetStock(ctx context.Context) error {
	q := r.Builder().
		Update(productTable).
		Set("current_stock", 0).
		Set("opening_stock", 0).
		Set("version", squirrel.Expr("version + 1"))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build reset stock: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("reset stock: %w", err)
	}

	return nil
}
