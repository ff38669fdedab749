// Package shell is the imperative shell around the functional core of the circulation desk.
//
// It converts between domain events and storable events, builds event metadata,
// retries command handlers on concurrency conflicts, validates commands, generates loan ids,
// and provides the observability helpers used by the handler wrappers in package observable.
package shell
