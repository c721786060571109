package fridge

import "frigo/internal/models"

// ZonePolicy maps item categories to the zone an item lands in when the
// caller does not name one. It is plain data so deployments can swap the
// routing without touching the add-item algorithm.
type ZonePolicy struct {
	// ByCategory routes specific categories to specific zone ids.
	ByCategory map[models.ItemCategory]string
	// FallbackZoneID catches every category not present in ByCategory.
	FallbackZoneID string
}

// DefaultZonePolicy returns the routing table the seeded fridge uses:
// produce to the vegetable drawer, frozen goods to the freezer, condiments
// to the door, everything else to the top shelf.
func DefaultZonePolicy() ZonePolicy {
	return ZonePolicy{
		ByCategory: map[models.ItemCategory]string{
			models.CategoryVegetables: "zone-veggie-drawer",
			models.CategoryFruits:     "zone-veggie-drawer",
			models.CategoryFrozen:     "zone-freezer",
			models.CategoryCondiments: "zone-door",
		},
		FallbackZoneID: "zone-top-shelf",
	}
}

// Resolve returns the zone id for a category.
func (p ZonePolicy) Resolve(category models.ItemCategory) string {
	if id, ok := p.ByCategory[category]; ok {
		return id
	}
	return p.FallbackZoneID
}
