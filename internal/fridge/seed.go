package fridge

import (
	"time"

	"frigo/internal/models"
)

// SeedFridge returns the fixed demo dataset the server starts from: one
// kitchen fridge with a top shelf, a vegetable drawer, and a door shelf.
// Ids are stable so demos and tests are deterministic.
func SeedFridge() models.Fridge {
	topShelfTemp := 4.0

	return models.Fridge{
		ID:          "fridge-001",
		Name:        "Kitchen Fridge",
		LastUpdated: time.Now().UTC(),
		Zones: []models.Zone{
			{
				ID:          "zone-top-shelf",
				Name:        "Top Shelf",
				Type:        models.ZoneShelf,
				Temperature: &topShelfTemp,
				Items: []models.Item{
					{
						ID:             "item-001",
						Name:           "Whole Milk",
						Category:       models.CategoryDairy,
						Quantity:       models.Quantity{Value: 1, Unit: models.UnitLiter},
						ExpirationDate: ts("2025-10-20T00:00:00Z"),
						AddedDate:      mustTime("2025-10-10T08:00:00Z"),
						Status:         models.StatusFresh,
						Barcode:        "012345678901",
					},
					{
						ID:             "item-002",
						Name:           "Cheddar Cheese",
						Category:       models.CategoryDairy,
						Quantity:       models.Quantity{Value: 200, Unit: models.UnitGram},
						ExpirationDate: ts("2025-10-15T00:00:00Z"),
						AddedDate:      mustTime("2025-10-08T12:00:00Z"),
						Status:         models.StatusExpiringSoon,
						Notes:          "Sharp cheddar",
					},
				},
			},
			{
				ID:   "zone-veggie-drawer",
				Name: "Vegetable Drawer",
				Type: models.ZoneDrawer,
				Items: []models.Item{
					{
						ID:        "item-003",
						Name:      "Carrots",
						Category:  models.CategoryVegetables,
						Quantity:  models.Quantity{Value: 6, Unit: models.UnitCount},
						AddedDate: mustTime("2025-10-11T00:00:00Z"),
						Status:    models.StatusFresh,
						Notes:     "Organic",
					},
					{
						ID:             "item-004",
						Name:           "Lettuce",
						Category:       models.CategoryVegetables,
						Quantity:       models.Quantity{Value: 1, Unit: models.UnitCount},
						ExpirationDate: ts("2025-10-14T00:00:00Z"),
						AddedDate:      mustTime("2025-10-12T00:00:00Z"),
						Status:         models.StatusExpiringSoon,
					},
				},
			},
			{
				ID:   "zone-door",
				Name: "Door Shelf",
				Type: models.ZoneDoor,
				Items: []models.Item{
					{
						ID:             "item-005",
						Name:           "Ketchup",
						Category:       models.CategoryCondiments,
						Quantity:       models.Quantity{Value: 1, Unit: models.UnitContainer},
						ExpirationDate: ts("2026-01-15T00:00:00Z"),
						AddedDate:      mustTime("2025-09-01T00:00:00Z"),
						Status:         models.StatusFresh,
					},
				},
			},
		},
	}
}

func ts(value string) *time.Time {
	t := mustTime(value)
	return &t
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
