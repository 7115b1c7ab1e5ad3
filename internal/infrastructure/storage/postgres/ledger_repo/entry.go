// Package ledger_repo provides the PostgreSQL implementation of the
// stock movement ledger repository.
package ledger_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
	"stockbook/internal/infrastructure/storage/postgres"
)

const entryTable = "ledger_entries"

// EntryRepo implements ledger.Repository.
type EntryRepo struct {
	txManager  *postgres.TxManager
	builder    squirrel.StatementBuilderType
	selectCols []string
}

var _ ledger.Repository = (*EntryRepo)(nil)

// NewEntryRepo creates a new ledger entry repository.
func NewEntryRepo(txManager *postgres.TxManager) *EntryRepo {
	return &EntryRepo{
		txManager:  txManager,
		builder:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		selectCols: postgres.ExtractDBColumns[ledger.Entry](),
	}
}

// Create inserts a new ledger entry.
func (r *EntryRepo) Create(ctx context.Context, entry *ledger.Entry) error {
	data := postgres.StructToMap(entry)

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder.
		Insert(entryTable).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}

	return nil
}

// CreateBatch bulk inserts entries using the COPY protocol.
// Requires an active transaction. Used for data import and seeding.
func (r *EntryRepo) CreateBatch(ctx context.Context, entries []*ledger.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		data := postgres.StructToMap(e)
		row := make([]any, 0, len(r.selectCols))
		for _, col := range r.selectCols {
			row = append(row, data[col])
		}
		rows = append(rows, row)
	}

	inserter := postgres.NewBatchInserter(r.txManager)
	if _, err := inserter.CopyFromSlice(ctx, entryTable, r.selectCols, rows); err != nil {
		return fmt.Errorf("copy ledger entries: %w", err)
	}

	return nil
}

func (r *EntryRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder.
		Select(r.selectCols...).
		From(entryTable)
}

// GetByID retrieves an entry by ID.
func (r *EntryRepo) GetByID(ctx context.Context, entryID id.ID) (*ledger.Entry, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": entryID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entry ledger.Entry
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &entry, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(entryTable, entryID.String())
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}

	return &entry, nil
}

// GetSnapshot loads the full ledger partitioned into stock-in
// (IN and RETURN) and stock-out (OUT) collections.
// Ordering matches insertion order via the UUIDv7 primary key, which
// the report aggregations rely on.
func (r *EntryRepo) GetSnapshot(ctx context.Context) (*ledger.Snapshot, error) {
	q := r.baseSelect().
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entries []*ledger.Entry
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	snap := &ledger.Snapshot{}
	for _, e := range entries {
		if e.Kind == ledger.KindOut {
			snap.StockOut = append(snap.StockOut, e)
		} else {
			snap.StockIn = append(snap.StockIn, e)
		}
	}

	return snap, nil
}

// ListByProduct retrieves all entries for a product, newest first.
func (r *EntryRepo) ListByProduct(ctx context.Context, productID id.ID) ([]*ledger.Entry, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("id DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entries []*ledger.Entry
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("list entries by product: %w", err)
	}

	return entries, nil
}

// CountByKind returns the number of entries per movement kind.
func (r *EntryRepo) CountByKind(ctx context.Context) (map[ledger.Kind]int64, error) {
	q := r.builder.
		Select("kind", "COUNT(*)").
		From(entryTable).
		GroupBy("kind")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.txManager.GetQuerier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("count by kind: %w", err)
	}
	defer rows.Close()

	counts := make(map[ledger.Kind]int64)
	for rows.Next() {
		var kind ledger.Kind
		var count int64
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[kind] = count
	}

	return counts, rows.Err()
}

// DeleteAll wipes every ledger entry. Only the full reset uses this.
func (r *EntryRepo) DeleteAll(ctx context.Context) error {
	sql := fmt.Sprintf("DELETE FROM %s", entryTable)

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql); err != nil {
		return fmt.Errorf("delete all ledger entries: %w", err)
	}

	return nil
}
