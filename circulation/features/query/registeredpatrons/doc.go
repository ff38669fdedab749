// Package registeredpatrons implements the Registered Patrons query use case.
package registeredpatrons
