package hospital

import "fmt"

// Doctor has a daily working window [WorkStart, WorkEnd) and owns the
// appointments booked against it, in insertion order.
type Doctor struct {
	ID        int64
	FirstName string
	LastName  string
	Specialty Specialty
	WorkStart TimeOfDay
	WorkEnd   TimeOfDay

	appointments []*Appointment
}

// Appointments returns the doctor's bookings in insertion order. The
// returned slice is a copy; appending goes through AddAppointment only.
func (d *Doctor) Appointments() []*Appointment {
	out := make([]*Appointment, len(d.appointments))
	copy(out, d.appointments)
	return out
}

// WithinWorkingHours applies the strict-exclusive bounds rule: a candidate
// flush against either end of the window is rejected.
func (d *Doctor) WithinWorkingHours(candidate *Appointment) bool {
	return candidate.Start.After(d.WorkStart) && candidate.End.Before(d.WorkEnd)
}

// AddAppointment admits the candidate or reports why it cannot be taken.
func (d *Doctor) AddAppointment(candidate *Appointment) error {
	if !d.WithinWorkingHours(candidate) {
		return fmt.Errorf("doctor %d, slot %s-%s on %s: %w",
			d.ID, candidate.Start, candidate.End, FormatDate(candidate.Date), ErrOutOfHours)
	}
	if !CanAccept(d, candidate) {
		return fmt.Errorf("doctor %d, slot %s-%s on %s: %w",
			d.ID, candidate.Start, candidate.End, FormatDate(candidate.Date), ErrConflict)
	}
	d.appointments = append(d.appointments, candidate)
	return nil
}

func (d *Doctor) String() string {
	return fmt.Sprintf("Doctor {ID=%d, First name=%s, Last name=%s, Specialty=%s, Working hours=%s-%s, Appointments=%d}",
		d.ID, d.FirstName, d.LastName, d.Specialty.Label(), d.WorkStart, d.WorkEnd, len(d.appointments))
}
