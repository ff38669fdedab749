// Package registerpatron implements the Register Patron use case.
//
// A patron is registered with an id, a name and a category (student or teacher).
// Duplicate ids and unknown categories are rejected and recorded as RegisteringPatronFailed.
package registerpatron
