// Package roi contains the metrics-engine use cases.
package roi

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

// CostResolution selects where the unit cost of a sale row comes from.
type CostResolution string

const (
	// CostResolutionLiveLookup resolves cost from the current product row at
	// read time. Editing a product's cost rewrites historical profit. This
	// is the default, matching the system's long-standing behavior.
	CostResolutionLiveLookup CostResolution = "live_lookup"

	// CostResolutionSnapshotAtSale uses the unit cost frozen on the sale
	// when it was recorded.
	CostResolutionSnapshotAtSale CostResolution = "snapshot_at_sale"
)

// Data-quality warnings surfaced alongside otherwise-correct numbers.
const (
	WarningNonPositiveAmount   = "some sales have a non-positive unit price"
	WarningNonPositiveQuantity = "some sales have a non-positive quantity"
)

// GetSalesProfitInput represents the input for the per-sale profit detail.
// StartDate and EndDate are optional; when omitted the window defaults to
// the full span of the user's sale dates (or today when there are none).
type GetSalesProfitInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// SaleProfitRow is one sale with its derived totals.
type SaleProfitRow struct {
	SaleID       uuid.UUID       `json:"id"`
	ProductName  string          `json:"product_name"`
	Amount       decimal.Decimal `json:"amount"`
	Quantity     int             `json:"quantity"`
	SaleDate     time.Time       `json:"sale_date"`
	Platform     entity.Platform `json:"platform"`
	Cost         decimal.Decimal `json:"cost"` // Unit cost; zero when the product no longer exists
	TotalSale    decimal.Decimal `json:"total_sale"`
	Profit       decimal.Decimal `json:"profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"` // Percentage, rounded to 2 places
}

// GetSalesProfitOutput represents the per-sale profit detail plus summary
// totals for the window.
type GetSalesProfitOutput struct {
	Rows        []SaleProfitRow `json:"rows"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	AvgMargin   decimal.Decimal `json:"avg_margin"`
	Warnings    []string        `json:"warnings,omitempty"`

	// ErrorKind is empty for genuine numbers and ErrorKindDataAccess when
	// the record store failed and the empty result is a fallback.
	ErrorKind string `json:"error_kind,omitempty"`
}

// GetSalesProfitUseCase computes the per-sale profit detail.
type GetSalesProfitUseCase struct {
	saleRepo       adapter.SaleRepository
	productRepo    adapter.ProductRepository
	costResolution CostResolution
	now            func() time.Time
}

// NewGetSalesProfitUseCase creates a new GetSalesProfitUseCase instance.
func NewGetSalesProfitUseCase(
	saleRepo adapter.SaleRepository,
	productRepo adapter.ProductRepository,
	costResolution CostResolution,
) *GetSalesProfitUseCase {
	if costResolution == "" {
		costResolution = CostResolutionLiveLookup
	}
	return &GetSalesProfitUseCase{
		saleRepo:       saleRepo,
		productRepo:    productRepo,
		costResolution: costResolution,
		now:            time.Now,
	}
}

// Execute returns one row per sale in the window, newest sale date first.
// Rows with non-positive amounts or quantities are computed and returned
// anyway; they only add a warning. The returned error is non-nil only for
// invalid input, never for storage failures.
func (uc *GetSalesProfitUseCase) Execute(ctx context.Context, input GetSalesProfitInput) (*GetSalesProfitOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultAggregationTimeout)
	defer cancel()

	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.ErrInvalidMetricsDateRange
	}

	startDate, endDate, err := uc.resolveWindow(ctx, input)
	if err != nil {
		slog.Error("sales profit: failed to resolve date range", "user_id", input.UserID, "error", err)
		return fallbackSalesProfit(uc.now()), nil
	}

	sales, err := uc.saleRepo.ListForUserInRange(ctx, input.UserID, startDate, endDate)
	if err != nil {
		slog.Error("sales profit: failed to load sales", "user_id", input.UserID, "error", err)
		return fallbackSalesProfit(uc.now()), nil
	}

	costByProduct, err := uc.loadCosts(ctx, input.UserID)
	if err != nil {
		slog.Error("sales profit: failed to load products", "user_id", input.UserID, "error", err)
		return fallbackSalesProfit(uc.now()), nil
	}

	// Repository order is already sale_date descending; the stable sort
	// keeps insertion order across equal dates no matter what arrives.
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].SaleDate.After(sales[j].SaleDate)
	})

	out := &GetSalesProfitOutput{
		Rows:      make([]SaleProfitRow, 0, len(sales)),
		StartDate: startDate,
		EndDate:   endDate,
	}

	sawNonPositiveAmount := false
	sawNonPositiveQuantity := false

	for _, s := range sales {
		if !s.Amount.IsPositive() {
			sawNonPositiveAmount = true
		}
		if s.Quantity <= 0 {
			sawNonPositiveQuantity = true
		}

		cost := uc.resolveCost(s, costByProduct)
		quantity := decimal.NewFromInt(int64(s.Quantity))
		totalSale := s.Amount.Mul(quantity)
		profit := totalSale.Sub(cost.Mul(quantity))

		margin := decimal.Zero
		if !totalSale.IsZero() {
			margin = profit.Div(totalSale).Mul(oneHundred).Round(2)
		}

		out.Rows = append(out.Rows, SaleProfitRow{
			SaleID:       s.ID,
			ProductName:  s.ProductName,
			Amount:       s.Amount,
			Quantity:     s.Quantity,
			SaleDate:     s.SaleDate,
			Platform:     s.Platform,
			Cost:         cost,
			TotalSale:    totalSale,
			Profit:       profit,
			ProfitMargin: margin,
		})

		out.TotalSales = out.TotalSales.Add(totalSale)
		out.TotalProfit = out.TotalProfit.Add(profit)
	}

	if out.TotalSales.IsPositive() {
		out.AvgMargin = out.TotalProfit.Div(out.TotalSales).Mul(oneHundred)
	}

	if sawNonPositiveAmount {
		out.Warnings = append(out.Warnings, WarningNonPositiveAmount)
	}
	if sawNonPositiveQuantity {
		out.Warnings = append(out.Warnings, WarningNonPositiveQuantity)
	}

	return out, nil
}

// resolveWindow applies the default window when the caller gave none: the
// full span of the user's sales, or a single-day window of today for users
// with no sales yet.
func (uc *GetSalesProfitUseCase) resolveWindow(ctx context.Context, input GetSalesProfitInput) (time.Time, time.Time, error) {
	if input.StartDate != nil && input.EndDate != nil {
		return dateOnly(*input.StartDate), dateOnly(*input.EndDate), nil
	}

	dateRange, err := uc.saleRepo.DateRange(ctx, input.UserID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if dateRange.MinDate == nil || dateRange.MaxDate == nil {
		today := dateOnly(uc.now())
		return today, today, nil
	}

	return dateOnly(*dateRange.MinDate), dateOnly(*dateRange.MaxDate), nil
}

// loadCosts materializes the product name -> unit cost map for the live
// lookup policy. Snapshot mode never touches the product table.
func (uc *GetSalesProfitUseCase) loadCosts(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error) {
	if uc.costResolution != CostResolutionLiveLookup {
		return nil, nil
	}

	products, err := uc.productRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	costs := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		costs[p.Name] = p.Cost
	}
	return costs, nil
}

// resolveCost picks the unit cost per the configured policy. A sale whose
// product name no longer matches any product costs zero.
func (uc *GetSalesProfitUseCase) resolveCost(sale *entity.Sale, costByProduct map[string]decimal.Decimal) decimal.Decimal {
	if uc.costResolution == CostResolutionSnapshotAtSale {
		return sale.Cost
	}
	if cost, ok := costByProduct[sale.ProductName]; ok {
		return cost
	}
	return decimal.Zero
}

func fallbackSalesProfit(now time.Time) *GetSalesProfitOutput {
	today := dateOnly(now)
	return &GetSalesProfitOutput{
		Rows:        []SaleProfitRow{},
		StartDate:   today,
		EndDate:     today,
		TotalSales:  decimal.Zero,
		TotalProfit: decimal.Zero,
		AvgMargin:   decimal.Zero,
		ErrorKind:   ErrorKindDataAccess,
	}
}
