package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Galaxy errors

type GalaxyError struct {
	*DomainError
}

func NewGalaxyError(message string) *GalaxyError {
	return &GalaxyError{DomainError: &DomainError{Message: message}}
}

// UnknownSystemError is returned when a solar system id is not part of the starmap
type UnknownSystemError struct {
	*GalaxyError
	ID SolarSystemID
}

func NewUnknownSystemError(id SolarSystemID) *UnknownSystemError {
	return &UnknownSystemError{
		GalaxyError: NewGalaxyError(fmt.Sprintf("unknown solar system %s", id)),
		ID:          id,
	}
}

// InvalidPlayerCountError is returned when homeworlds are requested for an unsupported number of players
type InvalidPlayerCountError struct {
	*GalaxyError
	Expected int
	Got      int
}

func NewInvalidPlayerCountError(expected, got int) *InvalidPlayerCountError {
	return &InvalidPlayerCountError{
		GalaxyError: NewGalaxyError(fmt.Sprintf("invalid player count: homeworlds need exactly %d players, got %d", expected, got)),
		Expected:    expected,
		Got:         got,
	}
}

// Fleet errors

type FleetError struct {
	*DomainError
}

func NewFleetError(message string) *FleetError {
	return &FleetError{DomainError: &DomainError{Message: message}}
}

// InsufficientShipsError is returned when a transfer asks for more ships of a class than a fleet holds.
// Class is the ship class name so this package stays free of fleet types.
type InsufficientShipsError struct {
	*FleetError
	Class     string
	Requested int
	Available int
}

func NewInsufficientShipsError(class string, requested, available int) *InsufficientShipsError {
	return &InsufficientShipsError{
		FleetError: NewFleetError(fmt.Sprintf("insufficient ships: need %d %s, have %d", requested, class, available)),
		Class:      class,
		Requested:  requested,
		Available:  available,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
