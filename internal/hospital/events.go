package hospital

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventDoctorCreated     = "DOCTOR_CREATED"
	EventDoctorUpdated     = "DOCTOR_UPDATED"
	EventDoctorDeleted     = "DOCTOR_DELETED"
	EventPatientCreated    = "PATIENT_CREATED"
	EventPatientUpdated    = "PATIENT_UPDATED"
	EventPatientDeleted    = "PATIENT_DELETED"
	EventAppointmentBooked = "APPOINTMENT_BOOKED"
)

// Event is one entry of the registry's in-process audit trail. The trail
// is informational only; it is not part of the exported document.
type Event struct {
	ID        uuid.UUID
	EventType string
	Payload   map[string]any
	CreatedAt time.Time
}

func (r *Registry) logEvent(eventType string, payload map[string]any) {
	ev := Event{
		ID:        uuid.New(),
		EventType: eventType,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	r.events = append(r.events, ev)
	r.log.Debug().Str("event", eventType).Fields(payload).Msg("registry event")
}

// Events returns a snapshot of the audit trail, oldest first.
func (r *Registry) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
