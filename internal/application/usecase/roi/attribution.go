// Package roi contains the metrics-engine use cases.
package roi

import (
	"time"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// AttributionStrategy decides whether a sale counts against a campaign.
// Sales carry no campaign reference, so attribution is inferred, not stored.
type AttributionStrategy func(campaign *entity.Campaign, sale *entity.Sale, today time.Time) bool

// PlatformWindowAttribution is the default strategy: a sale is attributed to
// a campaign when their platforms match and the sale date falls inside the
// campaign window [start_date, end_date-or-today], inclusive on both ends.
//
// Two campaigns on the same platform with overlapping windows both claim the
// same sale. That double-counting is the documented behavior of the inferred
// join; changing it requires an explicit campaign reference on sales.
func PlatformWindowAttribution(campaign *entity.Campaign, sale *entity.Sale, today time.Time) bool {
	if sale.Platform != campaign.Platform {
		return false
	}

	saleDate := dateOnly(sale.SaleDate)
	start := dateOnly(campaign.StartDate)
	end := dateOnly(campaign.EffectiveEndDate(today))

	return !saleDate.Before(start) && !saleDate.After(end)
}
