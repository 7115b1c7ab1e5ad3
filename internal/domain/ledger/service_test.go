package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
	"stockbook/internal/domain"
	"stockbook/internal/domain/catalog/product"
)

// passthroughTx runs the function directly; transaction semantics are
// exercised against a real database elsewhere.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memEntryRepo struct {
	entries []*Entry
}

func (r *memEntryRepo) Create(ctx context.Context, e *Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *memEntryRepo) GetByID(ctx context.Context, entryID id.ID) (*Entry, error) {
	for _, e := range r.entries {
		if e.ID == entryID {
			return e, nil
		}
	}
	return nil, apperror.NewNotFound("ledger entry", entryID.String())
}

func (r *memEntryRepo) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{StockIn: []*Entry{}, StockOut: []*Entry{}}
	for _, e := range r.entries {
		if e.Kind == KindOut {
			snap.StockOut = append(snap.StockOut, e)
		} else {
			snap.StockIn = append(snap.StockIn, e)
		}
	}
	return snap, nil
}

func (r *memEntryRepo) ListByProduct(ctx context.Context, productID id.ID) ([]*Entry, error) {
	var out []*Entry
	for _, e := range r.entries {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEntryRepo) CountByKind(ctx context.Context) (map[Kind]int64, error) {
	counts := make(map[Kind]int64)
	for _, e := range r.entries {
		counts[e.Kind]++
	}
	return counts, nil
}

func (r *memEntryRepo) DeleteAll(ctx context.Context) error {
	r.entries = nil
	return nil
}

type memProductRepo struct {
	products   map[id.ID]*product.Product
	resetCalls int
}

func newMemProductRepo(ps ...*product.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[id.ID]*product.Product)}
	for _, p := range ps {
		r.products[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, pid id.ID) (*product.Product, error) {
	p, ok := r.products[pid]
	if !ok {
		return nil, apperror.NewNotFound("product", pid.String())
	}
	return p, nil
}

func (r *memProductRepo) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("product", code)
}

func (r *memProductRepo) Update(ctx context.Context, p *product.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, pid id.ID) error {
	delete(r.products, pid)
	return nil
}

func (r *memProductRepo) SetDeletionMark(ctx context.Context, pid id.ID, marked bool) error {
	if p, ok := r.products[pid]; ok {
		p.DeletionMark = marked
	}
	return nil
}

func (r *memProductRepo) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*product.Product], error) {
	res := domain.ListResult[*product.Product]{Limit: f.Limit, Offset: f.Offset}
	for _, p := range r.products {
		res.Items = append(res.Items, p)
	}
	res.TotalCount = int64(len(res.Items))
	return res, nil
}

func (r *memProductRepo) Exists(ctx context.Context, pid id.ID) (bool, error) {
	_, ok := r.products[pid]
	return ok, nil
}

func (r *memProductRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	return err == nil, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, pid id.ID) (*product.Product, error) {
	return r.GetByID(ctx, pid)
}

func (r *memProductRepo) GetAll(ctx context.Context) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) AdjustStock(ctx context.Context, pid id.ID, delta int) error {
	p, err := r.GetByID(ctx, pid)
	if err != nil {
		return err
	}
	p.CurrentStock += delta
	return nil
}

func (r *memProductRepo) FindLowStock(ctx context.Context, f domain.ListFilter) (domain.ListResult[*product.Product], error) {
	res := domain.ListResult[*product.Product]{}
	for _, p := range r.products {
		if p.IsLowStock() {
			res.Items = append(res.Items, p)
		}
	}
	res.TotalCount = int64(len(res.Items))
	return res, nil
}

func (r *memProductRepo) ResetStock(ctx context.Context) error {
	r.resetCalls++
	for _, p := range r.products {
		p.CurrentStock = 0
		p.OpeningStock = 0
	}
	return nil
}

func testProduct(name string, stock int) *product.Product {
	p := product.New("PR-TEST", name, "Toys")
	p.PurchasePrice = types.MustMoney("4")
	p.SellingPrice = types.MustMoney("10")
	p.CurrentStock = stock
	return p
}

func newTestService(p *product.Product) (*Service, *memEntryRepo, *memProductRepo) {
	entries := &memEntryRepo{}
	products := newMemProductRepo(p)
	return NewService(entries, products, passthroughTx{}, nil), entries, products
}

func TestStockIn_CapturesPurchasePriceAndIncreasesStock(t *testing.T) {
	p := testProduct("Widget", 5)
	svc, entries, _ := newTestService(p)

	entry, err := svc.StockIn(context.Background(), StockInInput{
		ProductID: p.ID, Quantity: 7, Date: "2024-01-05",
	})

	require.NoError(t, err)
	assert.Equal(t, KindIn, entry.Kind)
	assert.Equal(t, "Widget", entry.ProductName)
	require.NotNil(t, entry.PurchasePriceAtTime)
	assert.True(t, entry.PurchasePriceAtTime.Equal(types.MustMoney("4")))
	assert.Nil(t, entry.SellingPriceAtTime)
	assert.Equal(t, 12, p.CurrentStock)
	assert.Len(t, entries.entries, 1)
}

func TestStockOut_CapturesSellingPriceAndDecreasesStock(t *testing.T) {
	p := testProduct("Widget", 5)
	svc, _, _ := newTestService(p)

	entry, err := svc.StockOut(context.Background(), StockOutInput{
		ProductID: p.ID, Quantity: 3, Date: "2024-01-05",
		Platform: "Shopee", CustomerName: "Lee", PaymentStatus: "paid",
	})

	require.NoError(t, err)
	assert.Equal(t, KindOut, entry.Kind)
	require.NotNil(t, entry.SellingPriceAtTime)
	assert.True(t, entry.SellingPriceAtTime.Equal(types.MustMoney("10")))
	assert.Equal(t, "Shopee", entry.Platform)
	assert.Equal(t, "Lee", entry.CustomerName)
	assert.Equal(t, 2, p.CurrentStock)
}

func TestStockOut_InsufficientStock(t *testing.T) {
	p := testProduct("Widget", 2)
	svc, entries, _ := newTestService(p)

	_, err := svc.StockOut(context.Background(), StockOutInput{
		ProductID: p.ID, Quantity: 3, Date: "2024-01-05", Platform: "Shopee",
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
	assert.Equal(t, 2, p.CurrentStock, "stock unchanged")
	assert.Empty(t, entries.entries, "no entry written")
}

func TestReturn_IncreasesStock(t *testing.T) {
	p := testProduct("Widget", 5)
	svc, entries, _ := newTestService(p)

	entry, err := svc.Return(context.Background(), ReturnInput{
		ProductID: p.ID, Quantity: 2, Date: "2024-01-05",
		Platform: "Shopee", Notes: "damaged box",
	})

	require.NoError(t, err)
	assert.Equal(t, KindReturn, entry.Kind)
	assert.Equal(t, "damaged box", entry.Notes)
	assert.Equal(t, 7, p.CurrentStock)
	require.Len(t, entries.entries, 1)
}

func TestGetSnapshot_PartitionsByKind(t *testing.T) {
	p := testProduct("Widget", 50)
	svc, _, _ := newTestService(p)
	ctx := context.Background()

	_, err := svc.StockIn(ctx, StockInInput{ProductID: p.ID, Quantity: 5, Date: "2024-01-05"})
	require.NoError(t, err)
	_, err = svc.Return(ctx, ReturnInput{ProductID: p.ID, Quantity: 1, Date: "2024-01-06", Platform: "Shopee"})
	require.NoError(t, err)
	_, err = svc.StockOut(ctx, StockOutInput{ProductID: p.ID, Quantity: 2, Date: "2024-01-07", Platform: "Shopee"})
	require.NoError(t, err)

	snap, err := svc.GetSnapshot(ctx)
	require.NoError(t, err)

	// Returns live in the stock-in collection, sales in stock-out
	require.Len(t, snap.StockIn, 2)
	require.Len(t, snap.StockOut, 1)
	for _, e := range snap.StockIn {
		assert.True(t, e.Kind == KindIn || e.Kind == KindReturn)
	}
	assert.Equal(t, KindOut, snap.StockOut[0].Kind)
}

func TestValidation_RejectsBadInput(t *testing.T) {
	p := testProduct("Widget", 5)
	svc, _, _ := newTestService(p)
	ctx := context.Background()

	_, err := svc.StockIn(ctx, StockInInput{ProductID: p.ID, Quantity: 0, Date: "2024-01-05"})
	assert.Error(t, err)

	_, err = svc.StockIn(ctx, StockInInput{ProductID: p.ID, Quantity: 5, Date: ""})
	assert.Error(t, err)

	_, err = svc.StockIn(ctx, StockInInput{ProductID: id.New(), Quantity: 5, Date: "2024-01-05"})
	assert.True(t, apperror.IsNotFound(err))
}

type fakeArchiver struct {
	archived *Snapshot
}

func (a *fakeArchiver) Archive(ctx context.Context, snap *Snapshot) (string, error) {
	a.archived = snap
	return "ledger-20240105.json.zst", nil
}

func TestReset_WipesLedgerAndZeroesStock(t *testing.T) {
	p := testProduct("Widget", 5)
	entries := &memEntryRepo{}
	products := newMemProductRepo(p)
	archiver := &fakeArchiver{}
	svc := NewService(entries, products, passthroughTx{}, archiver)
	ctx := context.Background()

	_, err := svc.StockIn(ctx, StockInInput{ProductID: p.ID, Quantity: 5, Date: "2024-01-05"})
	require.NoError(t, err)

	ref, err := svc.Reset(ctx)
	require.NoError(t, err)

	assert.Equal(t, "ledger-20240105.json.zst", ref)
	require.NotNil(t, archiver.archived)
	assert.Len(t, archiver.archived.StockIn, 1)

	assert.Empty(t, entries.entries)
	assert.Zero(t, p.CurrentStock)
	assert.Zero(t, p.OpeningStock)
	assert.Equal(t, 1, products.resetCalls)
}
