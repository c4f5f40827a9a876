package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pranavthakur-code/get-health-help/internal/model/doctor"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorUnavailable = errors.New("doctor is not accepting bookings")
	ErrSlotRequired      = errors.New("date and time are required")
	ErrInvalidSlot       = errors.New("requested slot is not offered")
	ErrContactRequired   = errors.New("name, phone and email are required")
	ErrStepOrder         = errors.New("booking step out of order")
)

// Step is the position of a Wizard in the linear booking flow.
type Step int

const (
	StepSchedule Step = iota + 1
	StepDetails
	StepConfirmed
)

const (
	dateLayout     = "2006-01-02"
	bookingWindow  = 7
	missingFields  = "Please fill in all required fields"
	bookingSuccess = "Appointment booked successfully!"
)

// TimeSlots are the consultation times offered every day.
var TimeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

// Dates returns today and the following six days as YYYY-MM-DD.
func Dates(now time.Time) []string {
	out := make([]string, 0, bookingWindow)
	for i := 0; i < bookingWindow; i++ {
		out = append(out, now.AddDate(0, 0, i).Format(dateLayout))
	}
	return out
}

// Contact holds the patient details collected in the second step.
type Contact struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Reason string `json:"reason,omitempty"`
}

// Appointment is a confirmed booking.
type Appointment struct {
	ID         string    `json:"id"`
	DoctorID   string    `json:"doctorId"`
	DoctorName string    `json:"doctorName"`
	Specialty  string    `json:"specialty"`
	Fee        int       `json:"fee"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Contact    Contact   `json:"contact"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Wizard walks one booking through slot selection, contact details and
// confirmation.
type Wizard struct {
	doctor   doctor.Doctor
	notifier Notifier
	now      func() time.Time

	step    Step
	date    string
	slot    string
	contact Contact
	booked  *Appointment
}

// NewWizard starts a booking for d at the first step.
func NewWizard(d doctor.Doctor, notifier Notifier, now func() time.Time) *Wizard {
	if now == nil {
		now = time.Now
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Wizard{doctor: d, notifier: notifier, now: now, step: StepSchedule}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// SelectSlot records the date and time and advances to the details step.
func (w *Wizard) SelectSlot(date, slot string) error {
	if w.step != StepSchedule {
		return ErrStepOrder
	}
	if !w.doctor.Available {
		return fmt.Errorf("%s: %w", w.doctor.Name, ErrDoctorUnavailable)
	}

	date, slot = strings.TrimSpace(date), strings.TrimSpace(slot)
	if date == "" || slot == "" {
		return ErrSlotRequired
	}
	if !contains(Dates(w.now()), date) {
		return fmt.Errorf("date %s: %w", date, ErrInvalidSlot)
	}
	if !contains(TimeSlots, slot) {
		return fmt.Errorf("time %s: %w", slot, ErrInvalidSlot)
	}

	w.date, w.slot = date, slot
	w.step = StepDetails
	return nil
}

// Back returns from the details step to slot selection, keeping the slot.
func (w *Wizard) Back() {
	if w.step == StepDetails {
		w.step = StepSchedule
	}
}

// SubmitDetails validates the contact details and confirms the booking.
func (w *Wizard) SubmitDetails(c Contact) (Appointment, error) {
	if w.step != StepDetails {
		return Appointment{}, ErrStepOrder
	}

	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Reason = strings.TrimSpace(c.Reason)
	if c.Name == "" || c.Phone == "" || c.Email == "" {
		w.notifier.Notify(Notice{Level: LevelError, Text: missingFields})
		return Appointment{}, ErrContactRequired
	}

	w.contact = c
	appt := Appointment{
		ID:         uuid.NewString(),
		DoctorID:   w.doctor.ID,
		DoctorName: w.doctor.Name,
		Specialty:  w.doctor.Specialty,
		Fee:        w.doctor.Fee,
		Date:       w.date,
		Time:       w.slot,
		Contact:    c,
		CreatedAt:  w.now(),
	}
	w.booked = &appt
	w.step = StepConfirmed
	w.notifier.Notify(Notice{Level: LevelSuccess, Text: bookingSuccess})
	return appt, nil
}

// Confirmed returns the booked appointment once the last step is reached.
func (w *Wizard) Confirmed() (Appointment, bool) {
	if w.booked == nil {
		return Appointment{}, false
	}
	return *w.booked, true
}

// Reset clears every field and returns to the first step.
func (w *Wizard) Reset() {
	w.step = StepSchedule
	w.date, w.slot = "", ""
	w.contact = Contact{}
	w.booked = nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
