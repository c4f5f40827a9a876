package booking

import (
	"context"
	"sync"
	"time"

	"github.com/pranavthakur-code/get-health-help/internal/model/doctor"
)

// Request carries a complete booking submitted in one call.
type Request struct {
	DoctorID string  `json:"doctorId"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Contact  Contact `json:"contact"`
}

// Availability lists the bookable dates and times of a doctor.
type Availability struct {
	DoctorID string   `json:"doctorId"`
	Dates    []string `json:"dates"`
	Times    []string `json:"times"`
}

// Service books appointments against the doctor directory.
type Service struct {
	doctors  doctor.Store
	notifier Notifier
	now      func() time.Time

	mu           sync.RWMutex
	appointments []Appointment
}

// NewService creates a booking service. A nil notifier logs notices.
func NewService(doctors doctor.Store, notifier Notifier, now func() time.Time) *Service {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	if now == nil {
		now = time.Now
	}
	return &Service{doctors: doctors, notifier: notifier, now: now}
}

// Slots returns what can be booked with the doctor.
func (s *Service) Slots(_ context.Context, doctorID string) (Availability, error) {
	d, ok := s.doctors.FindByID(doctorID)
	if !ok {
		return Availability{}, ErrDoctorNotFound
	}
	if !d.Available {
		return Availability{DoctorID: d.ID}, ErrDoctorUnavailable
	}
	return Availability{
		DoctorID: d.ID,
		Dates:    Dates(s.now()),
		Times:    append([]string(nil), TimeSlots...),
	}, nil
}

// Book runs the wizard steps for req and stores the confirmed appointment.
func (s *Service) Book(_ context.Context, req Request) (Appointment, error) {
	d, ok := s.doctors.FindByID(req.DoctorID)
	if !ok {
		return Appointment{}, ErrDoctorNotFound
	}

	w := NewWizard(d, s.notifier, s.now)
	if err := w.SelectSlot(req.Date, req.Time); err != nil {
		return Appointment{}, err
	}
	appt, err := w.SubmitDetails(req.Contact)
	if err != nil {
		return Appointment{}, err
	}

	s.mu.Lock()
	s.appointments = append(s.appointments, appt)
	s.mu.Unlock()
	return appt, nil
}

// Appointments returns the confirmed bookings in creation order.
func (s *Service) Appointments() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Appointment(nil), s.appointments...)
}
