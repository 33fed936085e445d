package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Price is the quote which the pricing service reports for a single
// vehicle. It is an immutable snapshot taken per lookup call; this
// project does not own it and never writes it back anywhere.
type Price struct {
	VehicleID uuid.UUID       `json:"vehicleId"` // quoted vehicle identifier
	Currency  string          `json:"currency"`  // ISO 4217 currency code
	Amount    decimal.Decimal `json:"amount"`    // decimal monetary amount
}
