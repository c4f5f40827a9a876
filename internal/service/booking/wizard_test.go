package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pranavthakur-code/get-health-help/internal/model/doctor"
)

var fixedNow = time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type recorder struct {
	notices []Notice
}

func (r *recorder) Notify(n Notice) { r.notices = append(r.notices, n) }

func availableDoctor(t *testing.T) doctor.Doctor {
	t.Helper()
	d, ok := doctor.NewMemoryStore(doctor.Seed()).FindByID("1")
	require.True(t, ok)
	require.True(t, d.Available)
	return d
}

func TestDatesCoverNextSevenDays(t *testing.T) {
	dates := Dates(fixedNow)
	require.Len(t, dates, 7)
	require.Equal(t, "2025-03-10", dates[0])
	require.Equal(t, "2025-03-16", dates[6])
}

func TestWizardHappyPath(t *testing.T) {
	rec := &recorder{}
	w := NewWizard(availableDoctor(t), rec, clock)
	require.Equal(t, StepSchedule, w.Step())

	require.NoError(t, w.SelectSlot("2025-03-11", "10:00 AM"))
	require.Equal(t, StepDetails, w.Step())

	appt, err := w.SubmitDetails(Contact{Name: "Ana", Phone: "555-0100", Email: "ana@example.com"})
	require.NoError(t, err)
	require.Equal(t, StepConfirmed, w.Step())
	require.Equal(t, "2025-03-11", appt.Date)
	require.Equal(t, "10:00 AM", appt.Time)
	require.NotEmpty(t, appt.ID)
	require.Equal(t, []Notice{{Level: LevelSuccess, Text: bookingSuccess}}, rec.notices)

	confirmed, ok := w.Confirmed()
	require.True(t, ok)
	require.Equal(t, appt, confirmed)
}

func TestWizardRejectsBadSlots(t *testing.T) {
	w := NewWizard(availableDoctor(t), &recorder{}, clock)

	require.ErrorIs(t, w.SelectSlot("", "10:00 AM"), ErrSlotRequired)
	require.ErrorIs(t, w.SelectSlot("2025-03-11", ""), ErrSlotRequired)
	require.ErrorIs(t, w.SelectSlot("2025-03-30", "10:00 AM"), ErrInvalidSlot)
	require.ErrorIs(t, w.SelectSlot("2025-03-11", "7:00 PM"), ErrInvalidSlot)
	require.Equal(t, StepSchedule, w.Step())
}

func TestWizardMissingContactNotifiesError(t *testing.T) {
	rec := &recorder{}
	w := NewWizard(availableDoctor(t), rec, clock)
	require.NoError(t, w.SelectSlot("2025-03-10", "9:00 AM"))

	_, err := w.SubmitDetails(Contact{Name: "Ana", Phone: "  "})
	require.ErrorIs(t, err, ErrContactRequired)
	require.Equal(t, StepDetails, w.Step())
	require.Equal(t, []Notice{{Level: LevelError, Text: missingFields}}, rec.notices)
}

func TestWizardStepOrderAndReset(t *testing.T) {
	w := NewWizard(availableDoctor(t), &recorder{}, clock)

	_, err := w.SubmitDetails(Contact{Name: "a", Phone: "b", Email: "c"})
	require.ErrorIs(t, err, ErrStepOrder)

	require.NoError(t, w.SelectSlot("2025-03-10", "9:00 AM"))
	require.ErrorIs(t, w.SelectSlot("2025-03-10", "9:00 AM"), ErrStepOrder)

	w.Back()
	require.Equal(t, StepSchedule, w.Step())

	w.Reset()
	require.Equal(t, StepSchedule, w.Step())
	require.Empty(t, w.date)
}

func TestWizardUnavailableDoctor(t *testing.T) {
	d, _ := doctor.NewMemoryStore(doctor.Seed()).FindByID("4")
	w := NewWizard(d, &recorder{}, clock)

	err := w.SelectSlot("2025-03-10", "9:00 AM")
	if !errors.Is(err, ErrDoctorUnavailable) {
		t.Fatalf("expected ErrDoctorUnavailable, got %v", err)
	}
}

func TestServiceBook(t *testing.T) {
	rec := &recorder{}
	svc := NewService(doctor.NewMemoryStore(doctor.Seed()), rec, clock)
	ctx := context.Background()

	_, err := svc.Book(ctx, Request{DoctorID: "missing"})
	require.ErrorIs(t, err, ErrDoctorNotFound)

	appt, err := svc.Book(ctx, Request{
		DoctorID: "3",
		Date:     "2025-03-12",
		Time:     "2:00 PM",
		Contact:  Contact{Name: "Ana", Phone: "555-0100", Email: "ana@example.com", Reason: "rash"},
	})
	require.NoError(t, err)
	require.Equal(t, "Dermatologist", appt.Specialty)
	require.Len(t, svc.Appointments(), 1)

	avail, err := svc.Slots(ctx, "3")
	require.NoError(t, err)
	require.Len(t, avail.Dates, 7)
	require.Equal(t, TimeSlots, avail.Times)

	_, err = svc.Slots(ctx, "4")
	require.ErrorIs(t, err, ErrDoctorUnavailable)
}
