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
)

// GetDetailedROIInput represents the input for the detailed ROI aggregate.
type GetDetailedROIInput struct {
	UserID uuid.UUID
}

// PeriodROI is the revenue/investment/ROI aggregate of one calendar month.
type PeriodROI struct {
	Period     string          `json:"period"` // YYYY-MM
	Revenue    decimal.Decimal `json:"revenue"`
	Investment decimal.Decimal `json:"investment"`
	ROI        decimal.Decimal `json:"roi"`
}

// CampaignROI is the aggregate of one campaign. Revenue comes from the
// attribution strategy; investment is the sum of the campaign's expenses
// regardless of date.
type CampaignROI struct {
	CampaignID   uuid.UUID       `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	Platform     entity.Platform `json:"platform"`
	Budget       decimal.Decimal `json:"budget"`
	Revenue      decimal.Decimal `json:"revenue"`
	Investment   decimal.Decimal `json:"investment"`
	ROI          decimal.Decimal `json:"roi"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"` // Today when the campaign is open-ended
}

// GetDetailedROIOutput represents the detailed ROI aggregate: consolidated
// totals plus per-month and per-campaign breakdowns.
type GetDetailedROIOutput struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	ROI             decimal.Decimal `json:"roi"`
	ByPeriod        []PeriodROI     `json:"roi_by_period"`
	ByCampaign      []CampaignROI   `json:"campaigns_roi"`

	// ErrorKind is empty for genuine numbers and ErrorKindDataAccess when
	// the record store failed and the empty aggregate is a fallback.
	ErrorKind string `json:"error_kind,omitempty"`
}

// GetDetailedROIUseCase computes the detailed ROI aggregate.
type GetDetailedROIUseCase struct {
	campaignRepo adapter.CampaignRepository
	expenseRepo  adapter.ExpenseRepository
	saleRepo     adapter.SaleRepository
	attribution  AttributionStrategy
	now          func() time.Time
}

// NewGetDetailedROIUseCase creates a new GetDetailedROIUseCase instance
// using the default platform+window attribution strategy.
func NewGetDetailedROIUseCase(
	campaignRepo adapter.CampaignRepository,
	expenseRepo adapter.ExpenseRepository,
	saleRepo adapter.SaleRepository,
) *GetDetailedROIUseCase {
	return &GetDetailedROIUseCase{
		campaignRepo: campaignRepo,
		expenseRepo:  expenseRepo,
		saleRepo:     saleRepo,
		attribution:  PlatformWindowAttribution,
		now:          time.Now,
	}
}

// Execute computes totals, per-month buckets and per-campaign rows for the
// user. The three sub-aggregates share one set of loaded records, so the
// result is consistent within the call. A read failure yields the
// empty-but-well-formed fallback, never an error.
func (uc *GetDetailedROIUseCase) Execute(ctx context.Context, input GetDetailedROIInput) *GetDetailedROIOutput {
	ctx, cancel := context.WithTimeout(ctx, defaultAggregationTimeout)
	defer cancel()

	campaigns, err := uc.campaignRepo.ListForUser(ctx, input.UserID)
	if err != nil {
		slog.Error("detailed ROI: failed to load campaigns", "user_id", input.UserID, "error", err)
		return fallbackDetailedROI()
	}

	expenses, err := uc.expenseRepo.ListForUserCampaigns(ctx, input.UserID)
	if err != nil {
		slog.Error("detailed ROI: failed to load expenses", "user_id", input.UserID, "error", err)
		return fallbackDetailedROI()
	}

	sales, err := uc.saleRepo.ListForUser(ctx, input.UserID, nil)
	if err != nil {
		slog.Error("detailed ROI: failed to load sales", "user_id", input.UserID, "error", err)
		return fallbackDetailedROI()
	}

	today := dateOnly(uc.now())

	out := &GetDetailedROIOutput{
		ByPeriod:   uc.buildPeriodBuckets(sales, expenses),
		ByCampaign: uc.buildCampaignRows(campaigns, expenses, sales, today),
	}

	for _, s := range sales {
		out.TotalRevenue = out.TotalRevenue.Add(s.TotalValue())
	}
	for _, e := range expenses {
		out.TotalInvestment = out.TotalInvestment.Add(e.Amount)
	}
	out.TotalProfit = out.TotalRevenue.Sub(out.TotalInvestment)
	out.ROI = roiOf(out.TotalRevenue, out.TotalInvestment)

	return out
}

// buildPeriodBuckets groups sales into YYYY-MM buckets and joins each bucket
// to the expenses of the same month. Months with sales but no expenses keep
// investment = 0 and therefore ROI = 0. Buckets come back sorted ascending
// by period key.
func (uc *GetDetailedROIUseCase) buildPeriodBuckets(sales []*entity.Sale, expenses []*entity.Expense) []PeriodROI {
	revenueByMonth := make(map[string]decimal.Decimal)
	for _, s := range sales {
		key := monthBucket(s.SaleDate)
		revenueByMonth[key] = revenueByMonth[key].Add(s.TotalValue())
	}

	investmentByMonth := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		key := monthBucket(e.Date)
		investmentByMonth[key] = investmentByMonth[key].Add(e.Amount)
	}

	periods := make([]string, 0, len(revenueByMonth))
	for key := range revenueByMonth {
		periods = append(periods, key)
	}
	sort.Strings(periods)

	buckets := make([]PeriodROI, 0, len(periods))
	for _, period := range periods {
		revenue := revenueByMonth[period]
		investment := investmentByMonth[period]
		buckets = append(buckets, PeriodROI{
			Period:     period,
			Revenue:    revenue,
			Investment: investment,
			ROI:        roiOf(revenue, investment),
		})
	}

	return buckets
}

// buildCampaignRows emits one row per campaign, including campaigns with no
// attributed sales.
func (uc *GetDetailedROIUseCase) buildCampaignRows(
	campaigns []*entity.Campaign,
	expenses []*entity.Expense,
	sales []*entity.Sale,
	today time.Time,
) []CampaignROI {
	investmentByCampaign := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range expenses {
		investmentByCampaign[e.CampaignID] = investmentByCampaign[e.CampaignID].Add(e.Amount)
	}

	rows := make([]CampaignROI, 0, len(campaigns))
	for _, c := range campaigns {
		revenue := decimal.Zero
		for _, s := range sales {
			if uc.attribution(c, s, today) {
				revenue = revenue.Add(s.TotalValue())
			}
		}

		investment := investmentByCampaign[c.ID]
		rows = append(rows, CampaignROI{
			CampaignID:   c.ID,
			CampaignName: c.Name,
			Platform:     c.Platform,
			Budget:       c.Budget,
			Revenue:      revenue,
			Investment:   investment,
			ROI:          roiOf(revenue, investment),
			StartDate:    c.StartDate,
			EndDate:      c.EffectiveEndDate(today),
		})
	}

	return rows
}

func fallbackDetailedROI() *GetDetailedROIOutput {
	return &GetDetailedROIOutput{
		TotalRevenue:    decimal.Zero,
		TotalInvestment: decimal.Zero,
		TotalProfit:     decimal.Zero,
		ROI:             decimal.Zero,
		ByPeriod:        []PeriodROI{},
		ByCampaign:      []CampaignROI{},
		ErrorKind:       ErrorKindDataAccess,
	}
}
