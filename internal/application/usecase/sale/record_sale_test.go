package sale

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

type fakeSaleRepo struct {
	sales []*entity.Sale
	err   error
}

func (f *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if f.err != nil {
		return f.err
	}
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeSaleRepo) ListForUser(_ context.Context, userID uuid.UUID, limit *int) ([]*entity.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	if limit != nil && len(out) > *limit {
		out = out[:*limit]
	}
	return out, nil
}

func (f *fakeSaleRepo) ListForUserInRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*entity.Sale, error) {
	return nil, f.err
}

func (f *fakeSaleRepo) DateRange(_ context.Context, _ uuid.UUID) (*adapter.SaleDateRange, error) {
	return &adapter.SaleDateRange{}, f.err
}

func (f *fakeSaleRepo) CountForProductName(_ context.Context, _ uuid.UUID, _ string) (int64, error) {
	return 0, f.err
}

type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.products = append(f.products, product)
	return f.err
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByNameAndUser(_ context.Context, name string, userID uuid.UUID) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.Name == name && p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Product
	for _, p := range f.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return f.err }

func (f *fakeProductRepo) Delete(_ context.Context, _ uuid.UUID) error { return f.err }

var (
	_ adapter.SaleRepository    = (*fakeSaleRepo)(nil)
	_ adapter.ProductRepository = (*fakeProductRepo)(nil)
)

func TestRecordSaleUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	saleDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	newProduct := func() *entity.Product {
		return entity.NewProduct(
			userID,
			"Course A",
			"",
			decimal.RequireFromString("197.00"),
			decimal.RequireFromString("45.50"),
			entity.PlatformHotmart,
		)
	}

	t.Run("snapshots price and cost from the product", func(t *testing.T) {
		product := newProduct()
		productRepo := &fakeProductRepo{products: []*entity.Product{product}}
		saleRepo := &fakeSaleRepo{}
		uc := NewRecordSaleUseCase(saleRepo, productRepo)

		output, err := uc.Execute(context.Background(), RecordSaleInput{
			UserID:    userID,
			ProductID: product.ID,
			Quantity:  2,
			Platform:  entity.PlatformHotmart,
			SaleDate:  saleDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.ProductName != "Course A" {
			t.Errorf("expected product name Course A, got %s", output.ProductName)
		}
		if !output.Amount.Equal(product.Price) {
			t.Errorf("expected amount %s, got %s", product.Price, output.Amount)
		}
		if !output.Cost.Equal(product.Cost) {
			t.Errorf("expected cost %s, got %s", product.Cost, output.Cost)
		}
		if want := decimal.RequireFromString("394.00"); !output.TotalValue.Equal(want) {
			t.Errorf("expected total %s, got %s", want, output.TotalValue)
		}
		if len(saleRepo.sales) != 1 {
			t.Fatalf("expected 1 persisted sale, got %d", len(saleRepo.sales))
		}
	})

	t.Run("sale survives later product changes", func(t *testing.T) {
		product := newProduct()
		productRepo := &fakeProductRepo{products: []*entity.Product{product}}
		saleRepo := &fakeSaleRepo{}
		uc := NewRecordSaleUseCase(saleRepo, productRepo)

		_, err := uc.Execute(context.Background(), RecordSaleInput{
			UserID:    userID,
			ProductID: product.ID,
			Quantity:  1,
			SaleDate:  saleDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		product.Price = decimal.RequireFromString("999.00")
		product.Name = "Course A v2"

		if got := saleRepo.sales[0]; !got.Amount.Equal(decimal.RequireFromString("197.00")) || got.ProductName != "Course A" {
			t.Errorf("recorded sale changed after product edit: name=%s amount=%s", got.ProductName, got.Amount)
		}
	})

	t.Run("defaults platform to the product's platform", func(t *testing.T) {
		product := newProduct()
		productRepo := &fakeProductRepo{products: []*entity.Product{product}}
		uc := NewRecordSaleUseCase(&fakeSaleRepo{}, productRepo)

		output, err := uc.Execute(context.Background(), RecordSaleInput{
			UserID:    userID,
			ProductID: product.ID,
			Quantity:  1,
			SaleDate:  saleDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Platform != entity.PlatformHotmart {
			t.Errorf("expected platform Hotmart, got %s", output.Platform)
		}
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		product := newProduct()
		uc := NewRecordSaleUseCase(&fakeSaleRepo{}, &fakeProductRepo{products: []*entity.Product{product}})

		_, err := uc.Execute(context.Background(), RecordSaleInput{
			UserID:    userID,
			ProductID: product.ID,
			Quantity:  0,
			SaleDate:  saleDate,
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var saleErr *domainerror.SaleError
		if !errors.As(err, &saleErr) || saleErr.Code != domainerror.ErrCodeInvalidQuantity {
			t.Errorf("expected invalid quantity error, got %v", err)
		}
	})

	t.Run("rejects products of other users", func(t *testing.T) {
		product := newProduct()
		uc := NewRecordSaleUseCase(&fakeSaleRepo{}, &fakeProductRepo{products: []*entity.Product{product}})

		_, err := uc.Execute(context.Background(), RecordSaleInput{
			UserID:    uuid.New(),
			ProductID: product.ID,
			Quantity:  1,
			SaleDate:  saleDate,
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var saleErr *domainerror.SaleError
		if !errors.As(err, &saleErr) || saleErr.Code != domainerror.ErrCodeSaleProductNotFound {
			t.Errorf("expected product not found error, got %v", err)
		}
	})
}

func TestListSalesUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	saleRepo := &fakeSaleRepo{}
	for i := 0; i < 3; i++ {
		saleRepo.sales = append(saleRepo.sales, entity.NewSale(
			userID,
			"Course A",
			decimal.RequireFromString("100.00"),
			1,
			decimal.Zero,
			time.Date(2024, 3, 10+i, 0, 0, 0, 0, time.UTC),
			entity.PlatformEduzz,
		))
	}
	uc := NewListSalesUseCase(saleRepo)

	t.Run("honors the limit", func(t *testing.T) {
		limit := 2
		output, err := uc.Execute(context.Background(), ListSalesInput{UserID: userID, Limit: &limit})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Sales) != 2 {
			t.Errorf("expected 2 sales, got %d", len(output.Sales))
		}
	})

	t.Run("nil limit returns everything", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListSalesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Sales) != 3 {
			t.Errorf("expected 3 sales, got %d", len(output.Sales))
		}
	})
}
