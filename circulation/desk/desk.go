package desk

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/clock"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/command/catalogbook"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/command/checkoutbook"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/command/registerpatron"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/command/returnbook"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/activeloans"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/bookbycode"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/booksincatalog"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/finishedloans"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/overdueloans"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/patronbyid"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/patronloans"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/registeredpatrons"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/searchcatalog"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell/observable"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore/memengine"
)

// Desk is one circulation desk session. It is safe for concurrent use.
// The zero value is not usable, create it with New.
type Desk struct {
	eventStore *memengine.EventStore
	clock      *clock.Clock
	finePolicy core.FinePolicy

	catalogBook    shell.CommandHandler[catalogbook.Command]
	registerPatron shell.CommandHandler[registerpatron.Command]
	checkOutBook   shell.CommandHandler[checkoutbook.Command]
	returnBook     shell.CommandHandler[returnbook.Command]

	booksInCatalog    shell.QueryHandler[booksincatalog.Query, booksincatalog.BooksInCatalog]
	bookByCode        shell.QueryHandler[bookbycode.Query, core.Book]
	searchCatalog     shell.QueryHandler[searchcatalog.Query, searchcatalog.SearchResult]
	registeredPatrons shell.QueryHandler[registeredpatrons.Query, registeredpatrons.RegisteredPatrons]
	patronByID        shell.QueryHandler[patronbyid.Query, core.Patron]
	activeLoans       shell.QueryHandler[activeloans.Query, activeloans.ActiveLoans]
	overdueLoans      shell.QueryHandler[overdueloans.Query, overdueloans.OverdueLoans]
	finishedLoans     shell.QueryHandler[finishedloans.Query, finishedloans.FinishedLoans]
	patronLoans       shell.QueryHandler[patronloans.Query, patronloans.PatronLoans]
}

// New creates a Desk with an empty catalog, an empty directory and a clock on day 1.
func New(opts ...Option) (*Desk, error) {
	s := settings{finePolicy: core.DefaultFinePolicy()}

	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}

	if s.clock == nil {
		s.clock = clock.New()
	}

	es, err := memengine.NewEventStore(s.eventStoreOptions...)
	if err != nil {
		return nil, err
	}

	d := &Desk{
		eventStore: es,
		clock:      s.clock,
		finePolicy: s.finePolicy,
	}

	if err = d.wireCommandHandlers(s); err != nil {
		return nil, err
	}

	if err = d.wireQueryHandlers(s); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Desk) wireCommandHandlers(s settings) error {
	var err error

	if d.catalogBook, err = observable.NewCommandWrapper[catalogbook.Command](
		catalogbook.NewCommandHandler(d.eventStore, catalogbook.WithRetryOptions(s.retryOptions...)),
		s.instrumentation...,
	); err != nil {
		return err
	}

	if d.registerPatron, err = observable.NewCommandWrapper[registerpatron.Command](
		registerpatron.NewCommandHandler(d.eventStore, registerpatron.WithRetryOptions(s.retryOptions...)),
		s.instrumentation...,
	); err != nil {
		return err
	}

	if d.checkOutBook, err = observable.NewCommandWrapper[checkoutbook.Command](
		checkoutbook.NewCommandHandler(d.eventStore, checkoutbook.WithRetryOptions(s.retryOptions...)),
		s.instrumentation...,
	); err != nil {
		return err
	}

	if d.returnBook, err = observable.NewCommandWrapper[returnbook.Command](
		returnbook.NewCommandHandler(
			d.eventStore,
			returnbook.WithRetryOptions(s.retryOptions...),
			returnbook.WithFinePolicy(s.finePolicy),
		),
		s.instrumentation...,
	); err != nil {
		return err
	}

	return nil
}

func (d *Desk) wireQueryHandlers(s settings) error {
	var err error

	if d.booksInCatalog, err = observable.NewQueryWrapper[booksincatalog.Query, booksincatalog.BooksInCatalog](
		booksincatalog.NewQueryHandler(d.eventStore), s.instrumentation...,
	); err != nil {
		return err
	}

	if d.bookByCode, err = observable.NewQueryWrapper[bookbycode.Query, core.Book](
		bookbycode.NewQueryHandler(d.eventStore), s.instrumentation...,
	); err != nil {
		return err
	}

	if d.searchCatalog, err = observable.NewQueryWrapper[searchcatalog.Query, searchcatalog.SearchResult](
		searchcatalog.NewQueryHandler(d.eventStore), s.instrumentation...,
	); err != nil {
		return err
	}

	if d.registeredPatrons, err = observable.NewQueryWrapper[registeredpatrons.Query, registeredpatrons.RegisteredPatrons](
		registeredpatrons.NewQueryHandler(d.eventStore), s.instrumentation...,
	); err != nil {
		return err
	}

	if d.patronByID, err = observable.NewQueryWrapper[patronbyid.Query, core.Patron](
		patronbyid.NewQueryHandler(d.eventStore), s.instrumentation...,
	); err != nil {
		return err
	}

	if d.activeLoans, err = observable.NewQueryWrapper[activeloans.Query, activeloans.ActiveLoans](
		activeloans.NewQueryHandler(d.eventStore), s.instrumentation...,
	); err != nil {
		return err
	}

	if d.overdueLoans, err = observable.NewQueryWrapper[overdueloans.Query, overdueloans.OverdueLoans](
		overdueloans.NewQueryHandler(d.eventStore, overdueloans.WithFinePolicy(s.finePolicy)), s.instrumentation...,
	); err != nil {
		return err
	}

	if d.finishedLoans, err = observable.NewQueryWrapper[finishedloans.Query, finishedloans.FinishedLoans](
		finishedloans.NewQueryHandler(d.eventStore), s.instrumentation...,
	); err != nil {
		return err
	}

	if d.patronLoans, err = observable.NewQueryWrapper[patronloans.Query, patronloans.PatronLoans](
		patronloans.NewQueryHandler(d.eventStore), s.instrumentation...,
	); err != nil {
		return err
	}

	return nil
}

// FinePolicy returns the fine policy of this session.
func (d *Desk) FinePolicy() core.FinePolicy {
	return d.finePolicy
}

// EventStore exposes the session's event store for read-only inspection, e.g. in tests.
func (d *Desk) EventStore() shell.QueriesEvents {
	return d.eventStore
}
