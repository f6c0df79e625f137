package dto

import (
	"github.com/marketing-manager/backend/internal/application/usecase/roi"
)

// BasicROIResponse represents the dashboard summary aggregate.
type BasicROIResponse struct {
	Revenue   float64 `json:"revenue"`
	Expenses  float64 `json:"expenses"`
	Profit    float64 `json:"profit"`
	ROI       float64 `json:"roi"`
	ErrorKind string  `json:"error_kind,omitempty"`
}

// PeriodROIResponse represents one calendar month's aggregate.
type PeriodROIResponse struct {
	Period     string  `json:"period"`
	Revenue    float64 `json:"revenue"`
	Investment float64 `json:"investment"`
	ROI        float64 `json:"roi"`
}

// CampaignROIResponse represents one campaign's aggregate.
type CampaignROIResponse struct {
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Platform     string  `json:"platform"`
	Budget       float64 `json:"budget"`
	Revenue      float64 `json:"revenue"`
	Investment   float64 `json:"investment"`
	ROI          float64 `json:"roi"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

// DetailedROIResponse represents the full ROI breakdown.
type DetailedROIResponse struct {
	TotalRevenue    float64               `json:"total_revenue"`
	TotalInvestment float64               `json:"total_investment"`
	TotalProfit     float64               `json:"total_profit"`
	ROI             float64               `json:"roi"`
	ByPeriod        []PeriodROIResponse   `json:"roi_by_period"`
	ByCampaign      []CampaignROIResponse `json:"campaigns_roi"`
	ErrorKind       string                `json:"error_kind,omitempty"`
}

// SaleProfitRowResponse represents one sale with its derived totals.
type SaleProfitRowResponse struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"product_name"`
	Amount       float64 `json:"amount"`
	Quantity     int     `json:"quantity"`
	SaleDate     string  `json:"sale_date"`
	Platform     string  `json:"platform"`
	Cost         float64 `json:"cost"`
	TotalSale    float64 `json:"total_sale"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

// SalesProfitResponse represents the per-sale profit detail for a window.
type SalesProfitResponse struct {
	Rows        []SaleProfitRowResponse `json:"rows"`
	StartDate   string                  `json:"start_date"`
	EndDate     string                  `json:"end_date"`
	TotalSales  float64                 `json:"total_sales"`
	TotalProfit float64                 `json:"total_profit"`
	AvgMargin   float64                 `json:"avg_margin"`
	Warnings    []string                `json:"warnings,omitempty"`
	ErrorKind   string                  `json:"error_kind,omitempty"`
}

// ToBasicROIResponse converts the basic ROI aggregate to its DTO.
func ToBasicROIResponse(output *roi.GetBasicROIOutput) BasicROIResponse {
	return BasicROIResponse{
		Revenue:   output.Revenue.InexactFloat64(),
		Expenses:  output.Expenses.InexactFloat64(),
		Profit:    output.Profit.InexactFloat64(),
		ROI:       output.ROI.InexactFloat64(),
		ErrorKind: output.ErrorKind,
	}
}

// ToDetailedROIResponse converts the detailed ROI aggregate to its DTO.
func ToDetailedROIResponse(output *roi.GetDetailedROIOutput) DetailedROIResponse {
	byPeriod := make([]PeriodROIResponse, len(output.ByPeriod))
	for i, p := range output.ByPeriod {
		byPeriod[i] = PeriodROIResponse{
			Period:     p.Period,
			Revenue:    p.Revenue.InexactFloat64(),
			Investment: p.Investment.InexactFloat64(),
			ROI:        p.ROI.InexactFloat64(),
		}
	}

	byCampaign := make([]CampaignROIResponse, len(output.ByCampaign))
	for i, c := range output.ByCampaign {
		byCampaign[i] = CampaignROIResponse{
			CampaignID:   c.CampaignID.String(),
			CampaignName: c.CampaignName,
			Platform:     string(c.Platform),
			Budget:       c.Budget.InexactFloat64(),
			Revenue:      c.Revenue.InexactFloat64(),
			Investment:   c.Investment.InexactFloat64(),
			ROI:          c.ROI.InexactFloat64(),
			StartDate:    c.StartDate.Format("2006-01-02"),
			EndDate:      c.EndDate.Format("2006-01-02"),
		}
	}

	return DetailedROIResponse{
		TotalRevenue:    output.TotalRevenue.InexactFloat64(),
		TotalInvestment: output.TotalInvestment.InexactFloat64(),
		TotalProfit:     output.TotalProfit.InexactFloat64(),
		ROI:             output.ROI.InexactFloat64(),
		ByPeriod:        byPeriod,
		ByCampaign:      byCampaign,
		ErrorKind:       output.ErrorKind,
	}
}

// ToSalesProfitResponse converts the sales profit detail to its DTO.
func ToSalesProfitResponse(output *roi.GetSalesProfitOutput) SalesProfitResponse {
	rows := make([]SaleProfitRowResponse, len(output.Rows))
	for i, r := range output.Rows {
		rows[i] = SaleProfitRowResponse{
			ID:           r.SaleID.String(),
			ProductName:  r.ProductName,
			Amount:       r.Amount.InexactFloat64(),
			Quantity:     r.Quantity,
			SaleDate:     r.SaleDate.Format("2006-01-02"),
			Platform:     string(r.Platform),
			Cost:         r.Cost.InexactFloat64(),
			TotalSale:    r.TotalSale.InexactFloat64(),
			Profit:       r.Profit.InexactFloat64(),
			ProfitMargin: r.ProfitMargin.InexactFloat64(),
		}
	}

	return SalesProfitResponse{
		Rows:        rows,
		StartDate:   output.StartDate.Format("2006-01-02"),
		EndDate:     output.EndDate.Format("2006-01-02"),
		TotalSales:  output.TotalSales.InexactFloat64(),
		TotalProfit: output.TotalProfit.InexactFloat64(),
		AvgMargin:   output.AvgMargin.InexactFloat64(),
		Warnings:    output.Warnings,
		ErrorKind:   output.ErrorKind,
	}
}
