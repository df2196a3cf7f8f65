package hospital

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/hospital/internal/config"
)

// Registry is the aggregate root owning all doctors and patients. One
// registry is constructed per process and passed around explicitly.
//
// All operations are short and CPU-bound; a single coarse mutex makes the
// registry safe for concurrent callers.
type Registry struct {
	mu sync.Mutex

	doctors  map[int64]*Doctor
	patients map[int64]*Patient

	// Allocation cursors. They only ever move forward: a freed lower id
	// is never backfilled.
	doctorIDCursor  int64
	patientIDCursor int64

	events []Event

	cfg config.Config
	log zerolog.Logger
}

func NewRegistry(cfg config.Config, log zerolog.Logger) *Registry {
	return &Registry{
		doctors:         make(map[int64]*Doctor),
		patients:        make(map[int64]*Patient),
		doctorIDCursor:  1,
		patientIDCursor: 1,
		cfg:             cfg,
		log:             log,
	}
}

// DoctorUpdate carries the optional fields of an update; nil fields are
// left untouched.
type DoctorUpdate struct {
	FirstName *string
	LastName  *string
	WorkStart *TimeOfDay
	WorkEnd   *TimeOfDay
}

// PatientUpdate carries the optional fields of an update; nil fields are
// left untouched.
type PatientUpdate struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
}

// -- Doctors --

func (r *Registry) CreateDoctor(firstName, lastName string, specialty Specialty, workStart, workEnd TimeOfDay) (*Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := nextFreeID(&r.doctorIDCursor, func(id int64) bool {
		_, taken := r.doctors[id]
		return taken
	})
	if err != nil {
		return nil, fmt.Errorf("allocate doctor id: %w", err)
	}

	doctor := &Doctor{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Specialty: specialty,
		WorkStart: workStart,
		WorkEnd:   workEnd,
	}
	r.doctors[id] = doctor

	r.logEvent(EventDoctorCreated, map[string]any{"doctor_id": id, "specialty": string(specialty)})
	return doctor, nil
}

func (r *Registry) GetDoctor(id int64) (*Doctor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.doctors[id]
	return d, ok
}

// GetAllDoctors returns all doctors in map iteration order.
func (r *Registry) GetAllDoctors() []*Doctor {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, d)
	}
	return out
}

// UpdateDoctor overwrites exactly the fields set in upd. Changing working
// hours does not re-validate appointments already booked; they may end up
// outside the new window.
func (r *Registry) UpdateDoctor(id int64, upd DoctorUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doctor, ok := r.doctors[id]
	if !ok {
		return fmt.Errorf("update doctor %d: %w", id, ErrDoctorNotFound)
	}
	if upd.FirstName != nil {
		doctor.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		doctor.LastName = *upd.LastName
	}
	if upd.WorkStart != nil {
		doctor.WorkStart = *upd.WorkStart
	}
	if upd.WorkEnd != nil {
		doctor.WorkEnd = *upd.WorkEnd
	}

	r.logEvent(EventDoctorUpdated, map[string]any{"doctor_id": id})
	return nil
}

// DeleteDoctor removes the doctor. Appointments referencing the doctor
// stay listed under their patients; deletion does not cascade.
func (r *Registry) DeleteDoctor(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.doctors[id]; !ok {
		return fmt.Errorf("delete doctor %d: %w", id, ErrDoctorNotFound)
	}
	delete(r.doctors, id)

	r.logEvent(EventDoctorDeleted, map[string]any{"doctor_id": id})
	return nil
}

func (r *Registry) FindDoctorsBySpecialty(specialty Specialty) ([]*Doctor, error) {
	if !specialty.Valid() {
		return nil, fmt.Errorf("find doctors by specialty %q: %w", specialty, ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := []*Doctor{}
	for _, d := range r.doctors {
		if d.Specialty == specialty {
			out = append(out, d)
		}
	}
	return out, nil
}

// AddDoctor inserts a doctor that already carries an id, e.g. one rebuilt
// from an imported document. The allocation cursor is not advanced; it
// skips occupied ids on the next create.
func (r *Registry) AddDoctor(doctor *Doctor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doctors[doctor.ID] = doctor
}

// -- Patients --

func (r *Registry) CreatePatient(firstName, lastName string, dateOfBirth time.Time) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := nextFreeID(&r.patientIDCursor, func(id int64) bool {
		_, taken := r.patients[id]
		return taken
	})
	if err != nil {
		return nil, fmt.Errorf("allocate patient id: %w", err)
	}

	patient := &Patient{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: DateOf(dateOfBirth),
	}
	r.patients[id] = patient

	r.logEvent(EventPatientCreated, map[string]any{"patient_id": id})
	return patient, nil
}

func (r *Registry) GetPatient(id int64) (*Patient, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[id]
	return p, ok
}

// GetAllPatients returns all patients in map iteration order.
func (r *Registry) GetAllPatients() []*Patient {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, p)
	}
	return out
}

func (r *Registry) UpdatePatient(id int64, upd PatientUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	patient, ok := r.patients[id]
	if !ok {
		return fmt.Errorf("update patient %d: %w", id, ErrPatientNotFound)
	}
	if upd.FirstName != nil {
		patient.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		patient.LastName = *upd.LastName
	}
	if upd.DateOfBirth != nil {
		patient.DateOfBirth = DateOf(*upd.DateOfBirth)
	}

	r.logEvent(EventPatientUpdated, map[string]any{"patient_id": id})
	return nil
}

// DeletePatient removes the patient. The counterpart doctors keep any
// appointments referencing the deleted patient.
func (r *Registry) DeletePatient(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[id]; !ok {
		return fmt.Errorf("delete patient %d: %w", id, ErrPatientNotFound)
	}
	delete(r.patients, id)

	r.logEvent(EventPatientDeleted, map[string]any{"patient_id": id})
	return nil
}

// AddPatient inserts a patient that already carries an id (bulk-load path).
func (r *Registry) AddPatient(patient *Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.patients[patient.ID] = patient
}

// nextFreeID scans upward from the cursor until an unoccupied id is found.
// The cursor never moves backward, so a deleted id below it is not reused.
func nextFreeID(cursor *int64, taken func(int64) bool) (int64, error) {
	for taken(*cursor) {
		if *cursor == math.MaxInt64 {
			return 0, ErrCapacityExhausted
		}
		*cursor++
	}
	return *cursor, nil
}
