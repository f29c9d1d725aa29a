package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// CreateGoldRateRequest publishes a new active rate.
type CreateGoldRateRequest struct {
	BuyPrice      decimal.Decimal `json:"buyPrice" binding:"required,dgt0"`
	SellPrice     decimal.Decimal `json:"sellPrice" binding:"required,dgt0"`
	EffectiveDate *time.Time      `json:"effectiveDate"` // defaults to now
}

// GoldRateResponse defines the structure for API responses containing gold rate details.
type GoldRateResponse struct {
	GoldRateID    string          `json:"goldRateID"`
	BuyPrice      decimal.Decimal `json:"buyPrice"`
	SellPrice     decimal.Decimal `json:"sellPrice"`
	IsActive      bool            `json:"isActive"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListGoldRatesResponse is a page of the rate history.
type ListGoldRatesResponse struct {
	GoldRates []GoldRateResponse `json:"goldRates"`
	Total     int                `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// ToGoldRateResponse converts a domain.GoldRate to GoldRateResponse DTO
func ToGoldRateResponse(rate *domain.GoldRate) GoldRateResponse {
	return GoldRateResponse{
		GoldRateID:    rate.GoldRateID,
		BuyPrice:      rate.BuyPrice,
		SellPrice:     rate.SellPrice,
		IsActive:      rate.IsActive,
		EffectiveDate: rate.EffectiveDate,
		CreatedAt:     rate.CreatedAt,
		CreatedBy:     rate.CreatedBy,
		LastUpdatedAt: rate.LastUpdatedAt,
		LastUpdatedBy: rate.LastUpdatedBy,
	}
}

// ToListGoldRatesResponse converts a slice of domain.GoldRate to a ListGoldRatesResponse.
func ToListGoldRatesResponse(rates []domain.GoldRate, total, limit, offset int) ListGoldRatesResponse {
	resp := ListGoldRatesResponse{
		GoldRates: make([]GoldRateResponse, len(rates)),
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}
	for i := range rates {
		resp.GoldRates[i] = ToGoldRateResponse(&rates[i])
	}
	return resp
}
