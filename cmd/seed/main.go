// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/auth"
	"stockbook/internal/domain/catalog/product"
	"stockbook/internal/domain/ledger"
	"stockbook/internal/infrastructure/storage/postgres"
	"stockbook/internal/infrastructure/storage/postgres/catalog_repo"
	"stockbook/internal/infrastructure/storage/postgres/ledger_repo"
	"stockbook/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		txManager := postgres.NewTxManager(pool)
		if err := seedDemoData(ctx, txManager, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@stockbook.local"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1`,
		adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	now := time.Now().UTC()

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO users (
			id, email, password_hash, name, is_active, is_admin, roles,
			failed_login_attempts, created_at, updated_at, version
		)
		VALUES ($1, $2, $3, 'Administrator', true, true, $4, 0, $5, $5, 1)
	`, userID, adminEmail, string(passwordHash), []string{auth.RoleAdmin, auth.RoleUser}, now)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", userID)
	return nil
}

// seedDemoData creates a small catalog and a month of movements so
// reports have something to show on a fresh install.
func seedDemoData(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	productRepo := catalog_repo.NewProductRepo(txManager)
	entryRepo := ledger_repo.NewEntryRepo(txManager)

	type demoProduct struct {
		code, name, category string
		purchase, selling    float64
		opening              int
	}

	demoProducts := []demoProduct{
		{"TS-001", "Classic T-Shirt", "Apparel", 4.50, 12.00, 40},
		{"TS-002", "Graphic T-Shirt", "Apparel", 5.20, 15.00, 25},
		{"MUG-001", "Ceramic Mug", "Homeware", 2.10, 8.50, 60},
		{"CAP-001", "Baseball Cap", "Accessories", 3.00, 10.00, 15},
	}

	return txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		products := make([]*product.Product, 0, len(demoProducts))
		for _, dp := range demoProducts {
			p := product.New(dp.code, dp.name, dp.category)
			p.PurchasePrice = types.NewMoney(dp.purchase)
			p.SellingPrice = types.NewMoney(dp.selling)
			p.OpeningStock = dp.opening
			p.CurrentStock = dp.opening

			if err := productRepo.Create(ctx, p); err != nil {
				return fmt.Errorf("create product %s: %w", dp.code, err)
			}
			products = append(products, p)
		}

		today := time.Now().UTC().Format("2006-01-02")
		yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

		entries := make([]*ledger.Entry, 0, 8)
		for _, p := range products {
			in := ledger.NewEntry(ledger.KindIn, p.ID, p.Name, 10, yesterday)
			purchase := p.PurchasePrice
			in.PurchasePriceAtTime = &purchase
			entries = append(entries, in)

			out := ledger.NewEntry(ledger.KindOut, p.ID, p.Name, 3, today)
			selling := p.SellingPrice
			out.SellingPriceAtTime = &selling
			out.Platform = "Shopee"
			out.PaymentStatus = "paid"
			entries = append(entries, out)

			if err := productRepo.AdjustStock(ctx, p.ID, 10-3); err != nil {
				return fmt.Errorf("adjust stock %s: %w", p.Code, err)
			}
		}

		if err := entryRepo.CreateBatch(ctx, entries); err != nil {
			return fmt.Errorf("insert ledger entries: %w", err)
		}

		log.Infow("demo data seeded", "products", len(products), "entries", len(entries))
		return nil
	})
}
