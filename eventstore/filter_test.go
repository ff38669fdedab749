package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

func Test_FilterBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() eventstore.Filter
		validate func(t *testing.T, filter eventstore.Filter)
	}{
		{
			name: "matching_any_event_creates_empty_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().MatchingAnyEvent()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Empty(t, f.Items())
			},
		},
		{
			name: "event_types_are_sorted_and_deduplicated",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookReturned", "BookCheckedOut", "", "BookReturned").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BookCheckedOut", "BookReturned"}, f.Items()[0].EventTypes())
				assert.Empty(t, f.Items()[0].Predicates())
			},
		},
		{
			name: "partial_predicates_are_removed",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyPredicateOf(eventstore.P("PatronID", "P1"), eventstore.P("", "x"), eventstore.P("BookCode", "")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Equal(t, []eventstore.FilterPredicate{eventstore.P("PatronID", "P1")}, f.Items()[0].Predicates())
				assert.False(t, f.Items()[0].AllPredicatesMustMatch())
			},
		},
		{
			name: "event_types_and_all_predicates",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookCheckedOut").
					AndAllPredicatesOf(eventstore.P("PatronID", "P1"), eventstore.P("BookCode", "B1")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.True(t, f.Items()[0].AllPredicatesMustMatch())
				assert.Equal(
					t,
					[]eventstore.FilterPredicate{eventstore.P("BookCode", "B1"), eventstore.P("PatronID", "P1")},
					f.Items()[0].Predicates(),
				)
			},
		},
		{
			name: "multiple_items_combined_with_or",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyPredicateOf(eventstore.P("BookCode", "B1")).
					AndAnyEventTypeOf("BookCataloged").
					OrMatching().
					AnyEventTypeOf("PatronRegistered").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 2)
				assert.Equal(t, []string{"PatronRegistered"}, f.Items()[1].EventTypes())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.build())
		})
	}
}

func Test_Filter_Matches(t *testing.T) {
	payload := map[string]string{"BookCode": "B1", "PatronID": "P1"}
	lookup := func(key string) (string, bool) {
		val, ok := payload[key]
		return val, ok
	}

	tests := []struct {
		name      string
		filter    eventstore.Filter
		eventType string
		expected  bool
	}{
		{
			name:      "empty_filter_matches_everything",
			filter:    eventstore.BuildEventFilter().MatchingAnyEvent(),
			eventType: "Anything",
			expected:  true,
		},
		{
			name:      "event_type_mismatch",
			filter:    eventstore.BuildEventFilter().Matching().AnyEventTypeOf("BookReturned").Finalize(),
			eventType: "BookCheckedOut",
			expected:  false,
		},
		{
			name: "any_predicate_hit",
			filter: eventstore.BuildEventFilter().
				Matching().
				AnyPredicateOf(eventstore.P("BookCode", "B2"), eventstore.P("PatronID", "P1")).
				Finalize(),
			eventType: "BookCheckedOut",
			expected:  true,
		},
		{
			name: "all_predicates_one_miss",
			filter: eventstore.BuildEventFilter().
				Matching().
				AllPredicatesOf(eventstore.P("BookCode", "B2"), eventstore.P("PatronID", "P1")).
				Finalize(),
			eventType: "BookCheckedOut",
			expected:  false,
		},
		{
			name: "all_predicates_hit",
			filter: eventstore.BuildEventFilter().
				Matching().
				AnyEventTypeOf("BookCheckedOut").
				AndAllPredicatesOf(eventstore.P("BookCode", "B1"), eventstore.P("PatronID", "P1")).
				Finalize(),
			eventType: "BookCheckedOut",
			expected:  true,
		},
		{
			name: "missing_field_does_not_match",
			filter: eventstore.BuildEventFilter().
				Matching().
				AnyPredicateOf(eventstore.P("LoanID", "loan-1")).
				Finalize(),
			eventType: "BookCheckedOut",
			expected:  false,
		},
		{
			name: "second_item_matches",
			filter: eventstore.BuildEventFilter().
				Matching().
				AnyEventTypeOf("BookCataloged").
				OrMatching().
				AnyPredicateOf(eventstore.P("PatronID", "P1")).
				Finalize(),
			eventType: "BookReturned",
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(tt.eventType, lookup))
		})
	}
}

func Test_Filter_String(t *testing.T) {
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("BookCheckedOut", "BookReturned").
		AndAllPredicatesOf(eventstore.P("BookCode", "B1"), eventstore.P("PatronID", "P1")).
		Finalize()

	assert.Equal(t, "(BookCheckedOut|BookReturned AND [BookCode=B1 AND PatronID=P1])", filter.String())
	assert.Equal(t, "(any event)", eventstore.BuildEventFilter().MatchingAnyEvent().String())
}
