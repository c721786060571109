package fridge

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"frigo/internal/models"
)

func validRequest() AddItemRequest {
	return AddItemRequest{
		Name:     "Orange Juice",
		Category: models.CategoryBeverages,
		Quantity: 1,
		Unit:     models.UnitLiter,
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	store := NewStore(SeedFridge())

	first := store.Snapshot()
	second := store.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Error("two snapshots with no intervening mutation differ")
	}
}

func TestSnapshotIsIsolatedFromStore(t *testing.T) {
	store := NewStore(SeedFridge())

	snap := store.Snapshot()
	snap.Zones[0].Items[0].Name = "tampered"
	snap.Zones[0].Items = nil
	snap.Name = "tampered"

	fresh := store.Snapshot()
	if fresh.Name != "Kitchen Fridge" {
		t.Errorf("store name changed through a snapshot: %q", fresh.Name)
	}
	if len(fresh.Zones[0].Items) != 2 {
		t.Errorf("store items changed through a snapshot: %d items", len(fresh.Zones[0].Items))
	}
	if fresh.Zones[0].Items[0].Name != "Whole Milk" {
		t.Errorf("store item mutated through a snapshot: %q", fresh.Zones[0].Items[0].Name)
	}
}

func TestAddItemInvariants(t *testing.T) {
	store := NewStore(SeedFridge())
	before := store.Snapshot()

	existing := map[string]bool{}
	for _, z := range before.Zones {
		for _, it := range z.Items {
			existing[it.ID] = true
		}
	}

	item, zone, err := store.AddItem(validRequest())
	if err != nil {
		t.Fatalf("AddItem() error: %v", err)
	}

	if existing[item.ID] {
		t.Errorf("AddItem() reused existing id %q", item.ID)
	}

	after := store.Snapshot()
	if got, want := after.ItemCount(), before.ItemCount()+1; got != want {
		t.Errorf("item count after add = %d, want %d", got, want)
	}
	if after.LastUpdated.Before(before.LastUpdated) {
		t.Errorf("lastUpdated went backwards: %v -> %v", before.LastUpdated, after.LastUpdated)
	}

	// The item must appear in exactly one zone, at the end.
	appearances := 0
	for _, z := range after.Zones {
		for i, it := range z.Items {
			if it.ID == item.ID {
				appearances++
				if z.ID != zone.ID {
					t.Errorf("item placed in zone %q but AddItem returned zone %q", z.ID, zone.ID)
				}
				if i != len(z.Items)-1 {
					t.Errorf("item at position %d of %d, want last", i, len(z.Items))
				}
			}
		}
	}
	if appearances != 1 {
		t.Errorf("item appears in %d zones, want 1", appearances)
	}
}

func TestAddItemSetsDerivedFields(t *testing.T) {
	store := NewStore(SeedFridge())
	now := mustTime("2025-10-10T00:00:00Z")
	store.SetClock(func() time.Time { return now })

	req := validRequest()
	req.ExpirationDate = "2025-10-11T00:00:00Z"

	item, _, err := store.AddItem(req)
	if err != nil {
		t.Fatalf("AddItem() error: %v", err)
	}

	if !item.AddedDate.Equal(now) {
		t.Errorf("addedDate = %v, want %v", item.AddedDate, now)
	}
	if item.Status != models.StatusExpiringSoon {
		t.Errorf("status = %q, want %q", item.Status, models.StatusExpiringSoon)
	}

	snap := store.Snapshot()
	if !snap.LastUpdated.Equal(now) {
		t.Errorf("lastUpdated = %v, want %v", snap.LastUpdated, now)
	}
}

func TestAddItemDefaultZoneRouting(t *testing.T) {
	cases := []struct {
		category models.ItemCategory
		wantZone string
	}{
		{models.CategoryFruits, "zone-veggie-drawer"},
		{models.CategoryVegetables, "zone-veggie-drawer"},
		{models.CategoryCondiments, "zone-door"},
		{models.CategoryDairy, "zone-top-shelf"},
		{models.CategoryMeat, "zone-top-shelf"},
		// The seed fridge has no freezer, so frozen falls through the
		// missing policy target to the first zone.
		{models.CategoryFrozen, "zone-top-shelf"},
	}

	for _, tc := range cases {
		store := NewStore(SeedFridge())
		req := validRequest()
		req.Category = tc.category

		_, zone, err := store.AddItem(req)
		if err != nil {
			t.Fatalf("AddItem(%s) error: %v", tc.category, err)
		}
		if zone.ID != tc.wantZone {
			t.Errorf("AddItem(%s) placed in %q, want %q", tc.category, zone.ID, tc.wantZone)
		}
	}
}

func TestAddItemExplicitZoneWins(t *testing.T) {
	store := NewStore(SeedFridge())

	req := validRequest()
	req.Category = models.CategoryFruits
	req.ZoneID = "zone-door"

	_, zone, err := store.AddItem(req)
	if err != nil {
		t.Fatalf("AddItem() error: %v", err)
	}
	if zone.ID != "zone-door" {
		t.Errorf("explicit zone ignored: placed in %q", zone.ID)
	}
}

func TestAddItemUnknownZoneFallsBack(t *testing.T) {
	store := NewStore(SeedFridge())

	req := validRequest()
	req.Category = models.CategoryDairy
	req.ZoneID = "does-not-exist"

	_, zone, err := store.AddItem(req)
	if err != nil {
		t.Fatalf("AddItem() error: %v", err)
	}
	if zone.ID != "zone-top-shelf" {
		t.Errorf("unknown zone fell back to %q, want the first zone", zone.ID)
	}
}

func TestAddItemValidationRejectsAndDoesNotMutate(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*AddItemRequest)
		wantField string
	}{
		{"empty name", func(r *AddItemRequest) { r.Name = "" }, "name"},
		{"bad category", func(r *AddItemRequest) { r.Category = "plastics" }, "category"},
		{"zero quantity", func(r *AddItemRequest) { r.Quantity = 0 }, "quantity.value"},
		{"negative quantity", func(r *AddItemRequest) { r.Quantity = -1 }, "quantity.value"},
		{"bad unit", func(r *AddItemRequest) { r.Unit = "furlong" }, "quantity.unit"},
		{"bad expiration", func(r *AddItemRequest) { r.ExpirationDate = "next tuesday" }, "expirationDate"},
	}

	for _, tc := range cases {
		store := NewStore(SeedFridge())
		before := store.Snapshot()

		req := validRequest()
		tc.mutate(&req)

		_, _, err := store.AddItem(req)
		ve, ok := AsValidationError(err)
		if !ok {
			t.Fatalf("%s: AddItem() error = %v, want ValidationError", tc.name, err)
		}
		if ve.Field != tc.wantField {
			t.Errorf("%s: error names field %q, want %q", tc.name, ve.Field, tc.wantField)
		}

		after := store.Snapshot()
		if !reflect.DeepEqual(before, after) {
			t.Errorf("%s: rejected request still mutated the fridge", tc.name)
		}
	}
}

func TestAddItemNoZones(t *testing.T) {
	store := NewStore(models.Fridge{ID: "empty", Name: "Empty"})

	_, _, err := store.AddItem(validRequest())
	if !errors.Is(err, ErrNoZoneAvailable) {
		t.Errorf("AddItem() on zoneless fridge: error = %v, want ErrNoZoneAvailable", err)
	}
}

func TestConcurrentAddsPreserveAll(t *testing.T) {
	store := NewStore(SeedFridge())
	beforeSnap := store.Snapshot()
	before := beforeSnap.ItemCount()

	const adds = 20
	var wg sync.WaitGroup
	wg.Add(adds)
	for i := 0; i < adds; i++ {
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.Name = fmt.Sprintf("Item %d", i)
			if _, _, err := store.AddItem(req); err != nil {
				t.Errorf("concurrent AddItem() error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	afterSnap := store.Snapshot()
	if got, want := afterSnap.ItemCount(), before+adds; got != want {
		t.Errorf("item count after %d concurrent adds = %d, want %d (lost update)", adds, got, want)
	}
}

func TestZonePolicyOverride(t *testing.T) {
	store := NewStore(SeedFridge())
	store.SetZonePolicy(ZonePolicy{
		ByCategory:     map[models.ItemCategory]string{models.CategoryBeverages: "zone-door"},
		FallbackZoneID: "zone-veggie-drawer",
	})

	_, zone, err := store.AddItem(validRequest())
	if err != nil {
		t.Fatalf("AddItem() error: %v", err)
	}
	if zone.ID != "zone-door" {
		t.Errorf("overridden policy routed to %q, want zone-door", zone.ID)
	}
}
