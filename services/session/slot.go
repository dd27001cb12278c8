package session

import (
	"errors"
	"time"

	"driveacademy/models"
)

// Business hours for scheduling: sessions may start at or after 09:00 and
// must end by 17:00. A session may run until closing but not start at closing.
const (
	businessOpenHour  = 9
	businessCloseHour = 17
)

// pastStartGrace tolerates clock skew and request latency when rejecting
// sessions that start in the past.
const pastStartGrace = time.Minute

// RejectionReason identifies why a candidate slot was refused. The set is
// closed; checks run in a fixed priority order and the first failure wins.
type RejectionReason string

const (
	PastStart                 RejectionReason = "PAST_START"
	EndBeforeOrEqualStart     RejectionReason = "END_BEFORE_OR_EQUAL_START"
	OutsideBusinessHoursStart RejectionReason = "OUTSIDE_BUSINESS_HOURS_START"
	OutsideBusinessHoursEnd   RejectionReason = "OUTSIDE_BUSINESS_HOURS_END"
	OverlapsExisting          RejectionReason = "OVERLAPS_EXISTING"
)

// ErrInvalidSlotInput signals a malformed candidate (missing timestamps).
// It is distinct from every business-rule rejection.
var ErrInvalidSlotInput = errors.New("slot candidate has missing or invalid timestamps")

// SlotRejection is a business-rule refusal of a candidate slot.
type SlotRejection struct {
	Reason RejectionReason
}

func (e SlotRejection) Error() string {
	switch e.Reason {
	case PastStart:
		return "Start time cannot be in the past"
	case EndBeforeOrEqualStart:
		return "End time must be after start time"
	case OutsideBusinessHoursStart:
		return "Sessions must start between 9:00 AM and 5:00 PM (business hours)"
	case OutsideBusinessHoursEnd:
		return "Sessions must end by 5:00 PM (business hours)"
	case OverlapsExisting:
		return "This time slot overlaps with an existing session. Please choose a different time."
	}
	return string(e.Reason)
}

// SlotCandidate is the time window of a session being created or edited.
type SlotCandidate struct {
	StartTime time.Time
	EndTime   time.Time
}

// SlotValidator decides whether a candidate session window may be saved.
// It is a pure function of its inputs; Now is injectable for tests and
// defaults to time.Now.
type SlotValidator struct {
	Now func() time.Time
}

func (v SlotValidator) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

// Validate checks the candidate against the scheduling rules and the existing
// sessions. When editingID is non-empty the matching existing session is
// excluded from the overlap comparison. On refusal it returns exactly one
// SlotRejection; checks short-circuit in priority order.
func (v SlotValidator) Validate(candidate SlotCandidate, existing []models.Session, editingID string) error {
	if candidate.StartTime.IsZero() || candidate.EndTime.IsZero() {
		return ErrInvalidSlotInput
	}

	if candidate.StartTime.Before(v.now().Add(-pastStartGrace)) {
		return SlotRejection{Reason: PastStart}
	}

	if !candidate.EndTime.After(candidate.StartTime) {
		return SlotRejection{Reason: EndBeforeOrEqualStart}
	}

	// Start must be at or after opening and strictly before closing;
	// end may touch closing exactly but not pass it.
	open, closing := businessWindow(candidate.StartTime)
	if candidate.StartTime.Before(open) || !candidate.StartTime.Before(closing) {
		return SlotRejection{Reason: OutsideBusinessHoursStart}
	}

	_, endClosing := businessWindow(candidate.EndTime)
	if candidate.EndTime.After(endClosing) {
		return SlotRejection{Reason: OutsideBusinessHoursEnd}
	}

	for _, s := range existing {
		if editingID != "" && s.ID == editingID {
			continue
		}
		if Overlaps(candidate.StartTime, candidate.EndTime, s.StartTime, s.EndTime) {
			return SlotRejection{Reason: OverlapsExisting}
		}
	}

	return nil
}

// businessWindow returns the opening and closing instants for the day t falls on.
func businessWindow(t time.Time) (open, closing time.Time) {
	y, m, d := t.Date()
	open = time.Date(y, m, d, businessOpenHour, 0, 0, 0, t.Location())
	closing = time.Date(y, m, d, businessCloseHour, 0, 0, 0, t.Location())
	return open, closing
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// share at least one instant. Back-to-back sessions do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
