package session

import (
	"errors"
	"testing"
	"time"

	"driveacademy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// All tests run against a frozen clock on an arbitrary weekday morning.
var testNow = time.Date(2026, time.September, 14, 8, 0, 0, 0, time.UTC)

func testValidator() SlotValidator {
	return SlotValidator{Now: func() time.Time { return testNow }}
}

// at builds a timestamp on the test day.
func at(hour, min, sec int) time.Time {
	return time.Date(2026, time.September, 14, hour, min, sec, 0, time.UTC)
}

func candidate(start, end time.Time) SlotCandidate {
	return SlotCandidate{StartTime: start, EndTime: end}
}

func existingSession(id string, start, end time.Time) models.Session {
	return models.Session{
		ID:        id,
		StartTime: start,
		EndTime:   end,
		Status:    models.SessionScheduled,
	}
}

func rejectionReason(t *testing.T, err error) RejectionReason {
	t.Helper()
	var rej SlotRejection
	require.True(t, errors.As(err, &rej), "expected SlotRejection, got %v", err)
	return rej.Reason
}

func TestValidateAcceptsWellFormedSlot(t *testing.T) {
	v := testValidator()
	err := v.Validate(candidate(at(10, 0, 0), at(11, 0, 0)), nil, "")
	assert.NoError(t, err)
}

func TestValidateRejectsMissingTimestamps(t *testing.T) {
	v := testValidator()

	assert.ErrorIs(t, v.Validate(SlotCandidate{}, nil, ""), ErrInvalidSlotInput)
	assert.ErrorIs(t, v.Validate(SlotCandidate{StartTime: at(10, 0, 0)}, nil, ""), ErrInvalidSlotInput)
	assert.ErrorIs(t, v.Validate(SlotCandidate{EndTime: at(11, 0, 0)}, nil, ""), ErrInvalidSlotInput)

	// Malformed input is not a business-rule rejection.
	var rej SlotRejection
	assert.False(t, errors.As(v.Validate(SlotCandidate{}, nil, ""), &rej))
}

func TestValidatePastStart(t *testing.T) {
	// Anchor the clock inside business hours so only the past check can fire.
	now := at(10, 0, 0)
	v := SlotValidator{Now: func() time.Time { return now }}

	// 90 seconds ago is beyond the one-minute grace.
	err := v.Validate(candidate(now.Add(-90*time.Second), at(11, 0, 0)), nil, "")
	assert.Equal(t, PastStart, rejectionReason(t, err))

	// 30 seconds ago is within the grace window.
	err = v.Validate(candidate(now.Add(-30*time.Second), at(11, 0, 0)), nil, "")
	assert.NoError(t, err)
}

func TestValidateEndBeforeOrEqualStart(t *testing.T) {
	v := testValidator()

	err := v.Validate(candidate(at(11, 0, 0), at(10, 0, 0)), nil, "")
	assert.Equal(t, EndBeforeOrEqualStart, rejectionReason(t, err))

	// Zero-length sessions are refused too.
	err = v.Validate(candidate(at(11, 0, 0), at(11, 0, 0)), nil, "")
	assert.Equal(t, EndBeforeOrEqualStart, rejectionReason(t, err))
}

func TestValidateBusinessHoursBoundaries(t *testing.T) {
	v := testValidator()

	// Opening boundary: 09:00:00 sharp is allowed, one second earlier is not.
	assert.NoError(t, v.Validate(candidate(at(9, 0, 0), at(10, 0, 0)), nil, ""))
	err := v.Validate(candidate(at(8, 59, 59), at(10, 0, 0)), nil, "")
	assert.Equal(t, OutsideBusinessHoursStart, rejectionReason(t, err))

	// Closing boundary: a session may run until 17:00:00 exactly.
	assert.NoError(t, v.Validate(candidate(at(16, 0, 0), at(17, 0, 0)), nil, ""))
	err = v.Validate(candidate(at(16, 0, 0), at(17, 0, 1)), nil, "")
	assert.Equal(t, OutsideBusinessHoursEnd, rejectionReason(t, err))

	// A session may not start at closing.
	err = v.Validate(candidate(at(17, 0, 0), at(17, 30, 0)), nil, "")
	assert.Equal(t, OutsideBusinessHoursStart, rejectionReason(t, err))
}

func TestValidateOverlapDetection(t *testing.T) {
	v := testValidator()
	existing := []models.Session{existingSession("s1", at(10, 0, 0), at(11, 0, 0))}

	cases := []struct {
		name       string
		start, end time.Time
		overlaps   bool
	}{
		{"partial overlap from inside", at(10, 30, 0), at(11, 30, 0), true},
		{"partial overlap from before", at(9, 30, 0), at(10, 30, 0), true},
		{"identical window", at(10, 0, 0), at(11, 0, 0), true},
		{"candidate contains existing", at(9, 30, 0), at(11, 30, 0), true},
		{"candidate inside existing", at(10, 15, 0), at(10, 45, 0), true},
		{"back-to-back after", at(11, 0, 0), at(12, 0, 0), false},
		{"back-to-back before", at(9, 0, 0), at(10, 0, 0), false},
		{"fully clear", at(13, 0, 0), at(14, 0, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(candidate(tc.start, tc.end), existing, "")
			if tc.overlaps {
				assert.Equal(t, OverlapsExisting, rejectionReason(t, err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEditingExcludesOwnSession(t *testing.T) {
	v := testValidator()
	existing := []models.Session{
		existingSession("s1", at(10, 0, 0), at(11, 0, 0)),
		existingSession("s2", at(14, 0, 0), at(15, 0, 0)),
	}

	// Rescheduling s1 within its own window is fine.
	assert.NoError(t, v.Validate(candidate(at(10, 0, 0), at(11, 30, 0)), existing, "s1"))

	// But it still may not collide with s2.
	err := v.Validate(candidate(at(14, 30, 0), at(15, 30, 0)), existing, "s1")
	assert.Equal(t, OverlapsExisting, rejectionReason(t, err))

	// Without the editing exclusion the same window is refused.
	err = v.Validate(candidate(at(10, 0, 0), at(11, 30, 0)), existing, "")
	assert.Equal(t, OverlapsExisting, rejectionReason(t, err))
}

func TestValidatePriorityOrder(t *testing.T) {
	now := at(10, 0, 0)
	v := SlotValidator{Now: func() time.Time { return now }}
	existing := []models.Session{existingSession("s1", at(10, 0, 0), at(11, 0, 0))}

	// In the past and inverted: the past check fires first.
	err := v.Validate(candidate(at(9, 0, 0), at(8, 0, 0)), existing, "")
	assert.Equal(t, PastStart, rejectionReason(t, err))

	// Inverted and outside business hours: the ordering check fires first.
	err = v.Validate(candidate(at(18, 0, 0), at(17, 30, 0)), existing, "")
	assert.Equal(t, EndBeforeOrEqualStart, rejectionReason(t, err))

	// Ends past closing and overlapping: business hours fire first.
	err = v.Validate(candidate(at(10, 30, 0), at(17, 30, 0)), existing, "")
	assert.Equal(t, OutsideBusinessHoursEnd, rejectionReason(t, err))
}

func TestValidateIsDeterministic(t *testing.T) {
	v := testValidator()
	existing := []models.Session{existingSession("s1", at(10, 0, 0), at(11, 0, 0))}
	cand := candidate(at(10, 30, 0), at(11, 30, 0))

	first := v.Validate(cand, existing, "")
	second := v.Validate(cand, existing, "")
	assert.Equal(t, first, second)
}

func TestOverlapsSymmetry(t *testing.T) {
	windows := [][2]time.Time{
		{at(9, 0, 0), at(10, 0, 0)},
		{at(9, 30, 0), at(10, 30, 0)},
		{at(10, 0, 0), at(11, 0, 0)},
		{at(9, 0, 0), at(12, 0, 0)},
		{at(11, 0, 0), at(12, 0, 0)},
	}
	for _, a := range windows {
		for _, b := range windows {
			assert.Equal(t,
				Overlaps(a[0], a[1], b[0], b[1]),
				Overlaps(b[0], b[1], a[0], a[1]),
				"overlap must be symmetric for %v vs %v", a, b)
		}
	}
}

// The two-comparison overlap test must agree with enumerating the four
// overlap shapes (straddles start, straddles end, contained, containing).
func TestOverlapsMatchesCaseEnumeration(t *testing.T) {
	base := at(10, 0, 0)
	enumerated := func(s1, e1, s2, e2 time.Time) bool {
		straddlesStart := !s1.After(s2) && e1.After(s2) // covers s2
		straddlesEnd := s1.Before(e2) && !e1.Before(e2) // covers e2
		contained := !s1.Before(s2) && !e1.After(e2)
		containing := !s2.Before(s1) && !e2.After(e1)
		return straddlesStart || straddlesEnd || contained || containing
	}

	for s1 := 0; s1 < 8; s1++ {
		for d1 := 1; d1 <= 4; d1++ {
			for s2 := 0; s2 < 8; s2++ {
				for d2 := 1; d2 <= 4; d2++ {
					a0 := base.Add(time.Duration(s1) * 30 * time.Minute)
					a1 := a0.Add(time.Duration(d1) * 30 * time.Minute)
					b0 := base.Add(time.Duration(s2) * 30 * time.Minute)
					b1 := b0.Add(time.Duration(d2) * 30 * time.Minute)
					assert.Equal(t,
						enumerated(a0, a1, b0, b1),
						Overlaps(a0, a1, b0, b1),
						"disagreement for [%v,%v) vs [%v,%v)", a0, a1, b0, b1)
				}
			}
		}
	}
}
