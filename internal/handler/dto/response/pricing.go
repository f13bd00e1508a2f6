package response

import (
	"pass-config-engine/internal/usecase/queries"
)

type PreviewCellResponse struct {
	Guests int    `json:"guests"`
	Days   int    `json:"days"`
	Price  string `json:"price"`
}

type PricePreviewResponse struct {
	SessionID     string                  `json:"session_id"`
	Pricing       PricingResponse         `json:"pricing"`
	DefaultGuests int                     `json:"default_guests"`
	DefaultDays   int                     `json:"default_days"`
	Rows          [][]PreviewCellResponse `json:"rows"`
}

func FromPricePreview(p *queries.PricePreview) *PricePreviewResponse {
	rows := make([][]PreviewCellResponse, len(p.Matrix.Cells))
	for i, row := range p.Matrix.Cells {
		rows[i] = make([]PreviewCellResponse, len(row))
		for j, cell := range row {
			rows[i][j] = PreviewCellResponse{Guests: cell.Guests, Days: cell.Days, Price: cell.Price.DisplayString()}
		}
	}
	return &PricePreviewResponse{
		SessionID:     p.SessionID,
		Pricing:       FromPricing(p.Params),
		DefaultGuests: p.DefaultGuests,
		DefaultDays:   p.DefaultDays,
		Rows:          rows,
	}
}

type QuoteResponse struct {
	ConfigurationID string            `json:"configuration_id"`
	Guests          int               `json:"guests"`
	Days            int               `json:"days"`
	Breakdown       BreakdownResponse `json:"breakdown"`
}

func FromQuote(q *queries.Quote) *QuoteResponse {
	return &QuoteResponse{
		ConfigurationID: q.ConfigurationID.String(),
		Guests:          q.Guests,
		Days:            q.Days,
		Breakdown:       fromBreakdown(q.Breakdown),
	}
}
