package roi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return d
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got.String(), want)
	}
}

func TestGetBasicROIUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	campaignID := uuid.New()

	newSale := func(amount string, quantity int, date string) *entity.Sale {
		return entity.NewSale(
			userID, "Curso Completo",
			decimal.RequireFromString(amount), quantity, decimal.RequireFromString("30"),
			mustDate(t, date), entity.PlatformHotmart,
		)
	}

	t.Run("sales without expenses yield zero ROI", func(t *testing.T) {
		uc := NewGetBasicROIUseCase(
			&fakeExpenseRepo{},
			&fakeSaleRepo{sales: []*entity.Sale{newSale("100", 2, "2024-03-10")}},
		)

		out := uc.Execute(context.Background(), GetBasicROIInput{UserID: userID})

		assertDecimal(t, "revenue", out.Revenue, "200")
		assertDecimal(t, "expenses", out.Expenses, "0")
		assertDecimal(t, "profit", out.Profit, "200")
		assertDecimal(t, "roi", out.ROI, "0")
		if out.ErrorKind != "" {
			t.Errorf("error kind = %q, want empty", out.ErrorKind)
		}
	})

	t.Run("expenses produce the documented ROI formula", func(t *testing.T) {
		uc := NewGetBasicROIUseCase(
			&fakeExpenseRepo{expenses: []*entity.Expense{
				entity.NewExpense(campaignID, decimal.RequireFromString("50"), "ads", mustDate(t, "2024-03-01"), entity.ExpenseCategoryAds),
			}},
			&fakeSaleRepo{sales: []*entity.Sale{newSale("100", 2, "2024-03-10")}},
		)

		out := uc.Execute(context.Background(), GetBasicROIInput{UserID: userID})

		assertDecimal(t, "revenue", out.Revenue, "200")
		assertDecimal(t, "expenses", out.Expenses, "50")
		assertDecimal(t, "profit", out.Profit, "150")
		assertDecimal(t, "roi", out.ROI, "300")
	})

	t.Run("no data at all is an all-zero result without error kind", func(t *testing.T) {
		uc := NewGetBasicROIUseCase(&fakeExpenseRepo{}, &fakeSaleRepo{})

		out := uc.Execute(context.Background(), GetBasicROIInput{UserID: userID})

		assertDecimal(t, "revenue", out.Revenue, "0")
		assertDecimal(t, "roi", out.ROI, "0")
		if out.ErrorKind != "" {
			t.Errorf("error kind = %q, want empty", out.ErrorKind)
		}
	})

	t.Run("record store failure returns zeros tagged as data access", func(t *testing.T) {
		uc := NewGetBasicROIUseCase(
			&fakeExpenseRepo{err: errors.New("connection reset")},
			&fakeSaleRepo{},
		)

		out := uc.Execute(context.Background(), GetBasicROIInput{UserID: userID})

		assertDecimal(t, "revenue", out.Revenue, "0")
		assertDecimal(t, "expenses", out.Expenses, "0")
		if out.ErrorKind != ErrorKindDataAccess {
			t.Errorf("error kind = %q, want %q", out.ErrorKind, ErrorKindDataAccess)
		}
	})

	t.Run("repeated calls with no writes are identical", func(t *testing.T) {
		uc := NewGetBasicROIUseCase(
			&fakeExpenseRepo{expenses: []*entity.Expense{
				entity.NewExpense(campaignID, decimal.RequireFromString("37.50"), "ads", mustDate(t, "2024-02-01"), entity.ExpenseCategoryAds),
			}},
			&fakeSaleRepo{sales: []*entity.Sale{newSale("19.90", 3, "2024-02-15")}},
		)

		first := uc.Execute(context.Background(), GetBasicROIInput{UserID: userID})
		second := uc.Execute(context.Background(), GetBasicROIInput{UserID: userID})

		if !first.Revenue.Equal(second.Revenue) || !first.Expenses.Equal(second.Expenses) ||
			!first.Profit.Equal(second.Profit) || !first.ROI.Equal(second.ROI) {
			t.Errorf("aggregation is not idempotent: %+v vs %+v", first, second)
		}
	})
}
