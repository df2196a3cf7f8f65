package hospital

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicore/hospital/internal/config"
)

// SlotDuration is the fixed length of every bookable slot.
const SlotDuration = 30 * time.Minute

// CreateNearestAvailableAppointment books the chronologically earliest
// 30-minute slot both parties can accept, scanning from tomorrow at the
// doctor's workStart in 30-minute increments and rolling over day by day.
//
// The scan is capped at the configured horizon and fails with
// ErrNoSlotFound once it is exhausted. A working window that can never
// admit a slot (shorter than an hour under the strict-exclusive bounds)
// must terminate rather than loop forever.
func (r *Registry) CreateNearestAvailableAppointment(ctx context.Context, patient *Patient, doctor *Doctor) (*Appointment, error) {
	if patient == nil || doctor == nil {
		return nil, fmt.Errorf("create nearest appointment: %w", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	horizon := r.cfg.SearchHorizonDays
	if horizon < 1 {
		horizon = config.DefaultSearchHorizonDays
	}

	date := Tomorrow()
	for day := 0; day < horizon; day++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for start := doctor.WorkStart; !start.Add(SlotDuration).After(doctor.WorkEnd); start = start.Add(SlotDuration) {
			candidate := &Appointment{
				Doctor:  doctor,
				Patient: patient,
				Date:    date,
				Start:   start,
				End:     start.Add(SlotDuration),
				Status:  StatusActive,
			}

			if !doctor.WithinWorkingHours(candidate) || !CanAccept(doctor, candidate) || !CanAccept(patient, candidate) {
				continue
			}

			// The doctor's admission runs first and is authoritative.
			if err := doctor.AddAppointment(candidate); err != nil {
				return nil, fmt.Errorf("commit to doctor %d: %w", doctor.ID, err)
			}
			if err := patient.AddAppointment(candidate); err != nil {
				return nil, fmt.Errorf("commit to patient %d: %w", patient.ID, err)
			}

			r.logEvent(EventAppointmentBooked, map[string]any{
				"doctor_id":  doctor.ID,
				"patient_id": patient.ID,
				"date":       FormatDate(candidate.Date),
				"start":      candidate.Start.String(),
				"end":        candidate.End.String(),
			})
			r.log.Info().
				Int64("doctor_id", doctor.ID).
				Int64("patient_id", patient.ID).
				Str("date", FormatDate(candidate.Date)).
				Str("slot", candidate.Start.String()+"-"+candidate.End.String()).
				Msg("appointment booked")

			return candidate, nil
		}

		date = date.AddDate(0, 0, 1)
	}

	return nil, fmt.Errorf("doctor %d, patient %d, horizon %d days: %w",
		doctor.ID, patient.ID, horizon, ErrNoSlotFound)
}
