package models

import "time"

// Fridge is the root aggregate: one fridge, its zones, and everything in them.
// Field names follow the widget wire format and must stay JSON-stable.
type Fridge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LastUpdated time.Time `json:"lastUpdated"`
	Zones       []Zone    `json:"zones"`
}

// Zone represents a compartment in the fridge. Items are kept in insertion
// order; the zone is the exclusive owner of its items.
type Zone struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        ZoneType `json:"type"`
	Temperature *float64 `json:"temperature,omitempty"`
	Items       []Item   `json:"items"`
}

// Item is a single inventory entry.
type Item struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Category       ItemCategory `json:"category"`
	Quantity       Quantity     `json:"quantity"`
	ExpirationDate *time.Time   `json:"expirationDate,omitempty"`
	AddedDate      time.Time    `json:"addedDate"`
	Status         ItemStatus   `json:"status"`
	Image          string       `json:"image,omitempty"`
	Barcode        string       `json:"barcode,omitempty"`
	Notes          string       `json:"notes,omitempty"`
}

// Quantity pairs a positive value with its unit.
type Quantity struct {
	Value float64      `json:"value"`
	Unit  QuantityUnit `json:"unit"`
}

// ZoneType represents the kind of compartment
type ZoneType string

const (
	ZoneShelf   ZoneType = "shelf"
	ZoneDrawer  ZoneType = "drawer"
	ZoneDoor    ZoneType = "door"
	ZoneFreezer ZoneType = "freezer"
)

// ItemStatus represents the freshness classification of an item
type ItemStatus string

const (
	StatusFresh        ItemStatus = "fresh"
	StatusExpiringSoon ItemStatus = "expiring-soon"
	StatusExpired      ItemStatus = "expired"
)

// ItemCategory represents the food category of an item
type ItemCategory string

const (
	CategoryDairy      ItemCategory = "dairy"
	CategoryMeat       ItemCategory = "meat"
	CategorySeafood    ItemCategory = "seafood"
	CategoryVegetables ItemCategory = "vegetables"
	CategoryFruits     ItemCategory = "fruits"
	CategoryBeverages  ItemCategory = "beverages"
	CategoryCondiments ItemCategory = "condiments"
	CategoryLeftovers  ItemCategory = "leftovers"
	CategoryEggs       ItemCategory = "eggs"
	CategoryBakery     ItemCategory = "bakery"
	CategoryFrozen     ItemCategory = "frozen"
	CategoryOther      ItemCategory = "other"
)

// QuantityUnit represents the unit of measurement for a quantity
type QuantityUnit string

const (
	UnitCount      QuantityUnit = "count"
	UnitGram       QuantityUnit = "g"
	UnitKilogram   QuantityUnit = "kg"
	UnitMilliliter QuantityUnit = "ml"
	UnitLiter      QuantityUnit = "l"
	UnitOunce      QuantityUnit = "oz"
	UnitPound      QuantityUnit = "lb"
	UnitPackage    QuantityUnit = "package"
	UnitContainer  QuantityUnit = "container"
)

// Categories lists every valid item category.
func Categories() []ItemCategory {
	return []ItemCategory{
		CategoryDairy, CategoryMeat, CategorySeafood, CategoryVegetables,
		CategoryFruits, CategoryBeverages, CategoryCondiments, CategoryLeftovers,
		CategoryEggs, CategoryBakery, CategoryFrozen, CategoryOther,
	}
}

// Units lists every valid quantity unit.
func Units() []QuantityUnit {
	return []QuantityUnit{
		UnitCount, UnitGram, UnitKilogram, UnitMilliliter, UnitLiter,
		UnitOunce, UnitPound, UnitPackage, UnitContainer,
	}
}

// Valid reports whether c is one of the known categories.
func (c ItemCategory) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Valid reports whether u is one of the known units.
func (u QuantityUnit) Valid() bool {
	for _, known := range Units() {
		if u == known {
			return true
		}
	}
	return false
}

// ItemCount returns the total number of items across all zones.
func (f *Fridge) ItemCount() int {
	n := 0
	for _, z := range f.Zones {
		n += len(z.Items)
	}
	return n
}

// Clone returns a deep copy of the fridge, including all zones and items.
func (f *Fridge) Clone() Fridge {
	out := *f
	out.Zones = make([]Zone, len(f.Zones))
	for i, z := range f.Zones {
		out.Zones[i] = z.Clone()
	}
	return out
}

// Clone returns a deep copy of the zone and its items.
func (z *Zone) Clone() Zone {
	out := *z
	if z.Temperature != nil {
		t := *z.Temperature
		out.Temperature = &t
	}
	out.Items = make([]Item, len(z.Items))
	for i, it := range z.Items {
		out.Items[i] = it.Clone()
	}
	return out
}

// Clone returns a copy of the item with no shared pointers.
func (it *Item) Clone() Item {
	out := *it
	if it.ExpirationDate != nil {
		t := *it.ExpirationDate
		out.ExpirationDate = &t
	}
	return out
}
