package hospital

import (
	"fmt"
	"time"
)

// Patient owns its appointments in insertion order. Patients have no
// working-hours window; only the overlap rule applies.
type Patient struct {
	ID          int64
	FirstName   string
	LastName    string
	DateOfBirth time.Time

	appointments []*Appointment
}

// Appointments returns the patient's bookings in insertion order as a copy.
func (p *Patient) Appointments() []*Appointment {
	out := make([]*Appointment, len(p.appointments))
	copy(out, p.appointments)
	return out
}

// AddAppointment admits the candidate unless it overlaps an existing
// booking on the same date.
func (p *Patient) AddAppointment(candidate *Appointment) error {
	if !CanAccept(p, candidate) {
		return fmt.Errorf("patient %d, slot %s-%s on %s: %w",
			p.ID, candidate.Start, candidate.End, FormatDate(candidate.Date), ErrConflict)
	}
	p.appointments = append(p.appointments, candidate)
	return nil
}

func (p *Patient) String() string {
	return fmt.Sprintf("Patient {ID=%d, First name=%s, Last name=%s, Date of birth=%s}",
		p.ID, p.FirstName, p.LastName, FormatDate(p.DateOfBirth))
}
