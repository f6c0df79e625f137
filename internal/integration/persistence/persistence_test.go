package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marketing-manager/backend/internal/domain/entity"
	"github.com/marketing-manager/backend/internal/integration/persistence/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.ProductModel{},
		&model.CampaignModel{},
		&model.ExpenseModel{},
		&model.SaleModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	user := entity.NewUser(username, username+"@example.com", "hash")
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUserRepository(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")

	t.Run("finds by username", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("missing username is an error", func(t *testing.T) {
		if _, err := repo.FindByUsername(ctx, "nobody"); err == nil {
			t.Error("expected error for missing user")
		}
	})

	t.Run("reports username existence", func(t *testing.T) {
		exists, err := repo.ExistsByUsername(ctx, "alice")
		if err != nil || !exists {
			t.Errorf("expected alice to exist, got exists=%v err=%v", exists, err)
		}
		exists, err = repo.ExistsByUsername(ctx, "bob")
		if err != nil || exists {
			t.Errorf("expected bob to be absent, got exists=%v err=%v", exists, err)
		}
	})
}

func TestTokenRepository(t *testing.T) {
	db := testDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "carol")

	t.Run("round trips a refresh token", func(t *testing.T) {
		err := repo.SaveRefreshToken(ctx, "tok-1", user.ID, time.Now().Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		valid, err := repo.IsRefreshTokenValid(ctx, "tok-1")
		if err != nil || !valid {
			t.Errorf("expected token valid, got valid=%v err=%v", valid, err)
		}
	})

	t.Run("invalidation sticks", func(t *testing.T) {
		if err := repo.InvalidateRefreshToken(ctx, "tok-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		valid, err := repo.IsRefreshTokenValid(ctx, "tok-1")
		if err != nil || valid {
			t.Errorf("expected token invalid, got valid=%v err=%v", valid, err)
		}
	})

	t.Run("expired tokens are invalid", func(t *testing.T) {
		err := repo.SaveRefreshToken(ctx, "tok-old", user.ID, time.Now().Add(-time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		valid, err := repo.IsRefreshTokenValid(ctx, "tok-old")
		if err != nil || valid {
			t.Errorf("expected expired token invalid, got valid=%v err=%v", valid, err)
		}
	})

	t.Run("unknown tokens are invalid without error", func(t *testing.T) {
		valid, err := repo.IsRefreshTokenValid(ctx, "never-issued")
		if err != nil || valid {
			t.Errorf("expected invalid, got valid=%v err=%v", valid, err)
		}
	})
}

func TestProductRepository(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "dave")

	product := entity.NewProduct(user.ID, "Course A", "desc",
		decimal.RequireFromString("197.00"), decimal.RequireFromString("30.00"), entity.PlatformHotmart)
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	t.Run("finds by name and user", func(t *testing.T) {
		found, err := repo.FindByNameAndUser(ctx, "Course A", user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil || found.ID != product.ID {
			t.Fatalf("expected product %s, got %+v", product.ID, found)
		}
		if !found.Price.Equal(product.Price) {
			t.Errorf("price mismatch: got %s", found.Price)
		}
	})

	t.Run("missing product is nil without error", func(t *testing.T) {
		found, err := repo.FindByNameAndUser(ctx, "Course A", uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("expected nil, got %+v", found)
		}
	})

	t.Run("update persists new values", func(t *testing.T) {
		product.Cost = decimal.RequireFromString("40.00")
		if err := repo.Update(ctx, product); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, err := repo.FindByID(ctx, product.ID)
		if err != nil || found == nil {
			t.Fatalf("failed to reload product: %v", err)
		}
		if !found.Cost.Equal(decimal.RequireFromString("40.00")) {
			t.Errorf("cost not updated: %s", found.Cost)
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		if err := repo.Delete(ctx, product.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, err := repo.FindByID(ctx, product.ID)
		if err != nil || found != nil {
			t.Errorf("expected product gone, got %+v err=%v", found, err)
		}
	})
}

func TestExpenseRepository_OwnershipJoin(t *testing.T) {
	db := testDB(t)
	campaignRepo := NewCampaignRepository(db)
	expenseRepo := NewExpenseRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	other := seedUser(t, db, "other")

	ownerCampaign := entity.NewCampaign(owner.ID, "Launch", entity.PlatformEduzz,
		decimal.RequireFromString("500.00"), date(2024, 1, 1), nil)
	otherCampaign := entity.NewCampaign(other.ID, "Rival", entity.PlatformEduzz,
		decimal.RequireFromString("500.00"), date(2024, 1, 1), nil)
	for _, c := range []*entity.Campaign{ownerCampaign, otherCampaign} {
		if err := campaignRepo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create campaign: %v", err)
		}
	}

	for i, campaignID := range []uuid.UUID{ownerCampaign.ID, ownerCampaign.ID, otherCampaign.ID} {
		expense := entity.NewExpense(campaignID, decimal.RequireFromString("25.00"),
			"ads", date(2024, 1, 10+i), entity.ExpenseCategoryAds)
		if err := expenseRepo.Create(ctx, expense); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	t.Run("returns only expenses of the user's campaigns", func(t *testing.T) {
		expenses, err := expenseRepo.ListForUserCampaigns(ctx, owner.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(expenses))
		}
		for _, e := range expenses {
			if e.CampaignID != ownerCampaign.ID {
				t.Errorf("expense %s belongs to wrong campaign", e.ID)
			}
		}
	})

	t.Run("counts expenses per campaign", func(t *testing.T) {
		count, err := expenseRepo.CountForCampaign(ctx, ownerCampaign.ID)
		if err != nil || count != 2 {
			t.Errorf("expected count 2, got %d err=%v", count, err)
		}
	})
}

func TestSaleRepository(t *testing.T) {
	db := testDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "erin")

	mkSale := func(name string, saleDate, createdAt time.Time) *entity.Sale {
		sale := entity.NewSale(user.ID, name,
			decimal.RequireFromString("100.00"), 1, decimal.Zero, saleDate, entity.PlatformKiwify)
		sale.CreatedAt = createdAt
		if err := repo.Create(ctx, sale); err != nil {
			t.Fatalf("failed to create sale: %v", err)
		}
		return sale
	}

	base := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	first := mkSale("Course A", date(2024, 4, 1), base)
	second := mkSale("Course A", date(2024, 4, 3), base.Add(time.Minute))
	third := mkSale("Course B", date(2024, 4, 2), base.Add(2*time.Minute))

	t.Run("lists newest first with limit", func(t *testing.T) {
		limit := 2
		sales, err := repo.ListForUser(ctx, user.ID, &limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sales) != 2 {
			t.Fatalf("expected 2 sales, got %d", len(sales))
		}
		if sales[0].ID != third.ID || sales[1].ID != second.ID {
			t.Errorf("expected newest-first ordering, got %s then %s", sales[0].ID, sales[1].ID)
		}
	})

	t.Run("range query filters and orders by sale date", func(t *testing.T) {
		sales, err := repo.ListForUserInRange(ctx, user.ID, date(2024, 4, 2), date(2024, 4, 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sales) != 2 {
			t.Fatalf("expected 2 sales, got %d", len(sales))
		}
		if sales[0].ID != second.ID || sales[1].ID != third.ID {
			t.Errorf("expected sale-date descending ordering")
		}
	})

	t.Run("date range spans min and max", func(t *testing.T) {
		r, err := repo.DateRange(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.MinDate == nil || r.MaxDate == nil {
			t.Fatal("expected non-nil range")
		}
		if !r.MinDate.Equal(first.SaleDate) || !r.MaxDate.Equal(second.SaleDate) {
			t.Errorf("unexpected range: %v .. %v", r.MinDate, r.MaxDate)
		}
	})

	t.Run("empty user yields nil bounds", func(t *testing.T) {
		r, err := repo.DateRange(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.MinDate != nil || r.MaxDate != nil {
			t.Errorf("expected nil bounds, got %+v", r)
		}
	})

	t.Run("counts sales per product name", func(t *testing.T) {
		count, err := repo.CountForProductName(ctx, user.ID, "Course A")
		if err != nil || count != 2 {
			t.Errorf("expected 2 sales of Course A, got %d err=%v", count, err)
		}
	})
}
