package fridge

import (
	"time"

	"frigo/internal/models"
)

// AddItemRequest carries everything a caller may say about a new item.
// Every transport (MCP tool, WebSocket, tests) funnels through this one
// type, so validation happens in exactly one place.
type AddItemRequest struct {
	Name           string              `json:"name"`
	Category       models.ItemCategory `json:"category"`
	Quantity       float64             `json:"quantity"`
	Unit           models.QuantityUnit `json:"unit"`
	ZoneID         string              `json:"zoneId,omitempty"`
	ExpirationDate string              `json:"expirationDate,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	Barcode        string              `json:"barcode,omitempty"`
}

// Validate checks every field constraint and returns a *ValidationError
// naming the first offending field, or nil. It never mutates anything, so
// a failed request leaves the store untouched.
func (r AddItemRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !r.Category.Valid() {
		return &ValidationError{Field: "category", Reason: "unknown category " + string(r.Category)}
	}
	if r.Quantity <= 0 {
		return &ValidationError{Field: "quantity.value", Reason: "must be greater than zero"}
	}
	if !r.Unit.Valid() {
		return &ValidationError{Field: "quantity.unit", Reason: "unknown unit " + string(r.Unit)}
	}
	if r.ExpirationDate != "" {
		if _, err := time.Parse(time.RFC3339, r.ExpirationDate); err != nil {
			return &ValidationError{Field: "expirationDate", Reason: "not a valid RFC 3339 timestamp"}
		}
	}
	return nil
}

// expiration returns the parsed expiration date, or nil when none was given.
// Validate must have passed first.
func (r AddItemRequest) expiration() *time.Time {
	if r.ExpirationDate == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, r.ExpirationDate)
	if err != nil {
		return nil
	}
	return &t
}
