package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by retention and routing needs.
type EventCategory string

const (
	// CategoryCompliance covers events that move funds or change who governs
	// the registry. These are retained and must not be sampled.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine registry activity.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted after a registry mutation commits. It stays
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	Action    string
	// Subject is the farm id for farm events, or the setting name for
	// registry configuration changes.
	Subject   string
	ActorID   string
	RequestID string
	// Height is the logical clock value at commit.
	Height uint64
	// Amount carries the fee charged or the new fee value, when relevant.
	Amount uint64
	Reason string
}

type AuditEvent string

const (
	EventFarmRegistered         AuditEvent = "farm_registered"
	EventFarmUpdated            AuditEvent = "farm_updated"
	EventAuthorityContractBound AuditEvent = "authority_contract_bound"
	EventRegistrationFeeChanged AuditEvent = "registration_fee_changed"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventFarmRegistered:         CategoryCompliance,
	EventAuthorityContractBound: CategoryCompliance,
	EventRegistrationFeeChanged: CategoryCompliance,
	EventFarmUpdated:            CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubject(ctx context.Context, subject string) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
