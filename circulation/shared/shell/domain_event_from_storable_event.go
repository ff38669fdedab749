package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.BookCatalogedEventType:
		return unmarshalDomainEvent[core.BookCataloged](storableEvent.PayloadJSON)

	case core.CatalogingBookFailedEventType:
		return unmarshalDomainEvent[core.CatalogingBookFailed](storableEvent.PayloadJSON)

	case core.PatronRegisteredEventType:
		return unmarshalDomainEvent[core.PatronRegistered](storableEvent.PayloadJSON)

	case core.RegisteringPatronFailedEventType:
		return unmarshalDomainEvent[core.RegisteringPatronFailed](storableEvent.PayloadJSON)

	case core.BookCheckedOutEventType:
		return unmarshalDomainEvent[core.BookCheckedOut](storableEvent.PayloadJSON)

	case core.CheckingOutBookFailedEventType:
		return unmarshalDomainEvent[core.CheckingOutBookFailed](storableEvent.PayloadJSON)

	case core.BookReturnedEventType:
		return unmarshalDomainEvent[core.BookReturned](storableEvent.PayloadJSON)

	case core.ReturningBookFailedEventType:
		return unmarshalDomainEvent[core.ReturningBookFailed](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalDomainEvent[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
