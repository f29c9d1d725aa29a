package dto

// TradeURI binds the :tradeID path parameter.
type TradeURI struct {
	TradeID string `uri:"tradeID" binding:"required,uuid"`
}

// GoldRateURI binds the :goldRateID path parameter.
type GoldRateURI struct {
	GoldRateID string `uri:"goldRateID" binding:"required,uuid"`
}

// MemberURI binds the :memberID path parameter.
type MemberURI struct {
	MemberID string `uri:"memberID" binding:"required,uuid"`
}
