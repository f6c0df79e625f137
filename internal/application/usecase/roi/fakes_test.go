package roi

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
)

// In-memory fakes for the record-store ports. Setting err on a fake makes
// every call fail, which is how the fallback paths are exercised.

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

func (f *fakeSaleRepo) ListForUserInRange(_ context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.UserID != userID {
			continue
		}
		d := dateOnly(s.SaleDate)
		if d.Before(startDate) || d.After(endDate) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSaleRepo) DateRange(_ context.Context, userID uuid.UUID) (*adapter.SaleDateRange, error) {
	if f.err != nil {
		return nil, f.err
	}
	var dr adapter.SaleDateRange
	for _, s := range f.sales {
		if s.UserID != userID {
			continue
		}
		d := s.SaleDate
		if dr.MinDate == nil || d.Before(*dr.MinDate) {
			t := d
			dr.MinDate = &t
		}
		if dr.MaxDate == nil || d.After(*dr.MaxDate) {
			t := d
			dr.MaxDate = &t
		}
	}
	return &dr, nil
}

func (f *fakeSaleRepo) CountForProductName(_ context.Context, userID uuid.UUID, productName string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, s := range f.sales {
		if s.UserID == userID && s.ProductName == productName {
			n++
		}
	}
	return n, nil
}

type fakeExpenseRepo struct {
	expenses []*entity.Expense
	err      error
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	if f.err != nil {
		return f.err
	}
	f.expenses = append(f.expenses, expense)
	return nil
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeExpenseRepo) ListForCampaign(_ context.Context, campaignID uuid.UUID) ([]*entity.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Expense
	for _, e := range f.expenses {
		if e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) ListForUserCampaigns(_ context.Context, _ uuid.UUID) ([]*entity.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.expenses, nil
}

func (f *fakeExpenseRepo) CountForCampaign(_ context.Context, campaignID uuid.UUID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, e := range f.expenses {
		if e.CampaignID == campaignID {
			n++
		}
	}
	return n, nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return f.err
}

type fakeCampaignRepo struct {
	campaigns []*entity.Campaign
	err       error
}

func (f *fakeCampaignRepo) Create(_ context.Context, campaign *entity.Campaign) error {
	if f.err != nil {
		return f.err
	}
	f.campaigns = append(f.campaigns, campaign)
	return nil
}

func (f *fakeCampaignRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Campaign, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCampaignRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]*entity.Campaign, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Campaign
	for _, c := range f.campaigns {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCampaignRepo) Update(_ context.Context, _ *entity.Campaign) error {
	return f.err
}

func (f *fakeCampaignRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return f.err
}

type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	f.products = append(f.products, product)
	return nil
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

func (f *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error {
	return f.err
}

func (f *fakeProductRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return f.err
}

// Interface checks keep the fakes honest.
var (
	_ adapter.SaleRepository     = (*fakeSaleRepo)(nil)
	_ adapter.ExpenseRepository  = (*fakeExpenseRepo)(nil)
	_ adapter.CampaignRepository = (*fakeCampaignRepo)(nil)
	_ adapter.ProductRepository  = (*fakeProductRepo)(nil)
)
