package hospital

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusClosed    Status = "CLOSED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus resolves a stored status name.
func ParseStatus(name string) (Status, error) {
	switch Status(name) {
	case StatusActive, StatusClosed, StatusCancelled:
		return Status(name), nil
	}
	return "", fmt.Errorf("unknown appointment status %q: %w", name, ErrInvalidArgument)
}

// Appointment links a doctor and a patient to a time range on a calendar
// date. Appointments are never mutated after they are attached to both
// parties; they are created only by the nearest-slot search or by the
// document loader.
type Appointment struct {
	Doctor  *Doctor
	Patient *Patient
	Date    time.Time
	Start   TimeOfDay
	End     TimeOfDay
	Status  Status
}

// Equal compares by doctor, patient, date and time range. Status is not
// part of an appointment's identity.
func (a *Appointment) Equal(other *Appointment) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Doctor.ID == other.Doctor.ID &&
		a.Patient.ID == other.Patient.ID &&
		a.Date.Equal(other.Date) &&
		a.Start == other.Start &&
		a.End == other.End
}

func (a *Appointment) String() string {
	return fmt.Sprintf("Appointment: %s %s with Dr. %s %s (%s), date %s, %s-%s, status %s",
		a.Patient.FirstName, a.Patient.LastName,
		a.Doctor.FirstName, a.Doctor.LastName, a.Doctor.Specialty.Label(),
		FormatDate(a.Date), a.Start, a.End, a.Status)
}
