// Package document implements the structured-document projection of a
// registry: three flat arrays of doctors, patients and appointments. The
// field names and value formats are the persistence contract; importers
// of previously exported files depend on them.
package document

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/clinicore/hospital/internal/config"
	"github.com/clinicore/hospital/internal/hospital"
)

type Document struct {
	Doctors      []DoctorRecord      `json:"doctors"`
	Patients     []PatientRecord     `json:"patients"`
	Appointments []AppointmentRecord `json:"appointments"`
}

type DoctorRecord struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Specialization string `json:"specialization"`
	WorkStart      string `json:"workStart"`
	WorkEnd        string `json:"workEnd"`
}

type PatientRecord struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
}

type AppointmentRecord struct {
	Doctor  int64  `json:"doctor"`
	Patient int64  `json:"patient"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// SortOrder selects how the flattened appointment array is ordered on
// export. SortNone keeps doctor-collection order.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortByDate
	SortByStartTime
	SortByPatientID
	SortByDoctorID
)

var sortOrderNames = map[SortOrder]string{
	SortNone:        "Unsorted",
	SortByDate:      "Appointment date",
	SortByStartTime: "Start time",
	SortByPatientID: "Patient (ID)",
	SortByDoctorID:  "Doctor (ID)",
}

func (o SortOrder) String() string {
	if name, ok := sortOrderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// SortOrders lists the selectable orders for a numbered chooser.
func SortOrders() []SortOrder {
	return []SortOrder{SortByDate, SortByStartTime, SortByPatientID, SortByDoctorID}
}

// Snapshot projects the registry into a document. Appointments are
// flattened from the doctors' collections, then optionally sorted.
func Snapshot(reg *hospital.Registry, order SortOrder) *Document {
	doc := &Document{
		Doctors:      []DoctorRecord{},
		Patients:     []PatientRecord{},
		Appointments: []AppointmentRecord{},
	}

	var appointments []*hospital.Appointment
	for _, d := range reg.GetAllDoctors() {
		doc.Doctors = append(doc.Doctors, DoctorRecord{
			ID:             d.ID,
			FirstName:      d.FirstName,
			LastName:       d.LastName,
			Specialization: string(d.Specialty),
			WorkStart:      d.WorkStart.String(),
			WorkEnd:        d.WorkEnd.String(),
		})
		appointments = append(appointments, d.Appointments()...)
	}

	for _, p := range reg.GetAllPatients() {
		doc.Patients = append(doc.Patients, PatientRecord{
			ID:          p.ID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			DateOfBirth: hospital.FormatDate(p.DateOfBirth),
		})
	}

	sortAppointments(appointments, order)

	for _, a := range appointments {
		doc.Appointments = append(doc.Appointments, AppointmentRecord{
			Doctor:  a.Doctor.ID,
			Patient: a.Patient.ID,
			Date:    hospital.FormatDate(a.Date),
			Status:  string(a.Status),
			Start:   a.Start.String(),
			End:     a.End.String(),
		})
	}

	return doc
}

func sortAppointments(appointments []*hospital.Appointment, order SortOrder) {
	switch order {
	case SortByDate:
		sort.SliceStable(appointments, func(i, j int) bool {
			return appointments[i].Date.Before(appointments[j].Date)
		})
	case SortByStartTime:
		sort.SliceStable(appointments, func(i, j int) bool {
			return appointments[i].Start.Before(appointments[j].Start)
		})
	case SortByPatientID:
		sort.SliceStable(appointments, func(i, j int) bool {
			return appointments[i].Patient.ID < appointments[j].Patient.ID
		})
	case SortByDoctorID:
		sort.SliceStable(appointments, func(i, j int) bool {
			return appointments[i].Doctor.ID < appointments[j].Doctor.ID
		})
	}
}

// Restore rebuilds a registry from the document: all doctors and patients
// first, keeping their persisted ids, then every appointment re-attached
// to both referenced parties. A dangling doctor or patient reference fails
// the whole restore.
func (doc *Document) Restore(cfg config.Config, log zerolog.Logger) (*hospital.Registry, error) {
	reg := hospital.NewRegistry(cfg, log)

	for _, rec := range doc.Doctors {
		specialty, err := hospital.ParseSpecialty(rec.Specialization)
		if err != nil {
			return nil, fmt.Errorf("doctor %d: %w", rec.ID, err)
		}
		workStart, err := hospital.ParseTimeOfDay(rec.WorkStart)
		if err != nil {
			return nil, fmt.Errorf("doctor %d: %w", rec.ID, err)
		}
		workEnd, err := hospital.ParseTimeOfDay(rec.WorkEnd)
		if err != nil {
			return nil, fmt.Errorf("doctor %d: %w", rec.ID, err)
		}
		reg.AddDoctor(&hospital.Doctor{
			ID:        rec.ID,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Specialty: specialty,
			WorkStart: workStart,
			WorkEnd:   workEnd,
		})
	}

	for _, rec := range doc.Patients {
		dob, err := hospital.ParseDate(rec.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("patient %d: %w", rec.ID, err)
		}
		reg.AddPatient(&hospital.Patient{
			ID:          rec.ID,
			FirstName:   rec.FirstName,
			LastName:    rec.LastName,
			DateOfBirth: dob,
		})
	}

	for i, rec := range doc.Appointments {
		doctor, ok := reg.GetDoctor(rec.Doctor)
		if !ok {
			return nil, fmt.Errorf("appointment %d references doctor %d: %w", i, rec.Doctor, hospital.ErrDoctorNotFound)
		}
		patient, ok := reg.GetPatient(rec.Patient)
		if !ok {
			return nil, fmt.Errorf("appointment %d references patient %d: %w", i, rec.Patient, hospital.ErrPatientNotFound)
		}

		date, err := hospital.ParseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("appointment %d: %w", i, err)
		}
		start, err := hospital.ParseTimeOfDay(rec.Start)
		if err != nil {
			return nil, fmt.Errorf("appointment %d: %w", i, err)
		}
		end, err := hospital.ParseTimeOfDay(rec.End)
		if err != nil {
			return nil, fmt.Errorf("appointment %d: %w", i, err)
		}
		status, err := hospital.ParseStatus(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("appointment %d: %w", i, err)
		}

		appt := &hospital.Appointment{
			Doctor:  doctor,
			Patient: patient,
			Date:    date,
			Start:   start,
			End:     end,
			Status:  status,
		}
		if err := doctor.AddAppointment(appt); err != nil {
			return nil, fmt.Errorf("appointment %d: %w", i, err)
		}
		if err := patient.AddAppointment(appt); err != nil {
			return nil, fmt.Errorf("appointment %d: %w", i, err)
		}
	}

	return reg, nil
}
