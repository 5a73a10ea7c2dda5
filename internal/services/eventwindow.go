package services

import (
	"time"

	"github.com/1RJB/green-neighbourhood-backend/internal/models"
)

// EventPhase classifies an event relative to a point in time. This is the
// single definition used everywhere; registration, volunteering, and listings
// must not re-derive their own window arithmetic.
type EventPhase string

const (
	// PhaseUpcoming: registration has not opened yet.
	PhaseUpcoming EventPhase = "UPCOMING"
	// PhaseOpen: within the registration window, [EventDate - 1 month, EventDate).
	PhaseOpen EventPhase = "OPEN"
	// PhasePast: the event date has arrived or passed.
	PhasePast EventPhase = "PAST"
)

// RegistrationOpensAt returns the instant sign-ups open: one calendar month
// before the event date.
func RegistrationOpensAt(e *models.Event) time.Time {
	return e.EventDate.AddDate(0, -1, 0)
}

// EventPhaseAt returns the phase of e at time now.
func EventPhaseAt(e *models.Event, now time.Time) EventPhase {
	if !now.Before(e.EventDate) {
		return PhasePast
	}
	if now.Before(RegistrationOpensAt(e)) {
		return PhaseUpcoming
	}
	return PhaseOpen
}

// RegistrationOpen reports whether sign-ups (participants and volunteers) are
// currently accepted for e.
func RegistrationOpen(e *models.Event, now time.Time) bool {
	return EventPhaseAt(e, now) == PhaseOpen
}
