package fridge

import (
	"sync"
	"time"

	"frigo/internal/models"

	"github.com/google/uuid"
)

// Store owns the single Fridge aggregate for the lifetime of the process.
// Every mutation runs under one mutex, and every value leaving the store is
// a deep copy, so callers can never reach the internal slices.
type Store struct {
	mu     sync.Mutex
	fridge models.Fridge
	policy ZonePolicy

	now   func() time.Time
	newID func() string
}

// NewStore creates a store seeded with the given fridge and the default
// zone-routing policy.
func NewStore(seed models.Fridge) *Store {
	return &Store{
		fridge: seed.Clone(),
		policy: DefaultZonePolicy(),
		now:    time.Now,
		newID:  func() string { return "item-" + uuid.NewString() },
	}
}

// SetClock overrides the store's clock. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetZonePolicy replaces the category routing table.
func (s *Store) SetZonePolicy(policy ZonePolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = policy
}

// Snapshot returns a consistent deep copy of the current fridge state. It
// never observes a half-applied mutation.
func (s *Store) Snapshot() models.Fridge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fridge.Clone()
}

// AddItem validates the request, creates the item, routes it to a zone, and
// appends it there. The whole operation is atomic: a validation failure
// leaves the fridge exactly as it was, including lastUpdated.
//
// Zone resolution: an existing explicitly named zone wins; otherwise the
// category policy decides; if the policy's pick does not exist in this
// fridge the item lands in the first zone; a fridge with no zones at all
// fails with ErrNoZoneAvailable.
func (s *Store) AddItem(req AddItemRequest) (models.Item, models.Zone, error) {
	if err := req.Validate(); err != nil {
		return models.Item{}, models.Zone{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	zone := s.resolveZone(req)
	if zone == nil {
		return models.Item{}, models.Zone{}, ErrNoZoneAvailable
	}

	now := s.now()
	item := models.Item{
		ID:             s.newID(),
		Name:           req.Name,
		Category:       req.Category,
		Quantity:       models.Quantity{Value: req.Quantity, Unit: req.Unit},
		ExpirationDate: req.expiration(),
		AddedDate:      now,
		Status:         ComputeStatus(req.expiration(), now),
		Notes:          req.Notes,
		Barcode:        req.Barcode,
	}

	zone.Items = append(zone.Items, item)
	s.fridge.LastUpdated = now

	return item.Clone(), zone.Clone(), nil
}

// resolveZone picks the target zone for a request. Caller holds the lock.
// An explicitly named zone that does not exist routes to the fallback zone,
// not through the category table.
func (s *Store) resolveZone(req AddItemRequest) *models.Zone {
	targetID := s.policy.Resolve(req.Category)
	if req.ZoneID != "" {
		if z := s.findZone(req.ZoneID); z != nil {
			return z
		}
		targetID = s.policy.FallbackZoneID
	}
	if z := s.findZone(targetID); z != nil {
		return z
	}
	if len(s.fridge.Zones) > 0 {
		return &s.fridge.Zones[0]
	}
	return nil
}

func (s *Store) findZone(id string) *models.Zone {
	for i := range s.fridge.Zones {
		if s.fridge.Zones[i].ID == id {
			return &s.fridge.Zones[i]
		}
	}
	return nil
}
