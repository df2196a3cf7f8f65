package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/clinicore/hospital/internal/document"
	"github.com/clinicore/hospital/internal/hospital"
)

// -- Scheduling --

func (c *Console) handleFindDoctorsBySpecialty() {
	specialty, ok := c.promptSpecialty()
	if !ok {
		return
	}

	doctors, err := c.reg.FindDoctorsBySpecialty(specialty)
	if err != nil {
		c.renderError(err)
		return
	}
	if len(doctors) == 0 {
		fmt.Fprintf(c.out, "No doctors with specialty %s.\n", specialty.Label())
		return
	}
	for _, d := range doctors {
		fmt.Fprintln(c.out, d)
	}
}

func (c *Console) handleBookAppointment(ctx context.Context) {
	patientID, ok := c.promptID("Patient ID: ")
	if !ok {
		return
	}
	patient, found := c.reg.GetPatient(patientID)
	if !found {
		c.renderError(hospital.ErrPatientNotFound)
		return
	}

	doctorID, ok := c.promptID("Doctor ID: ")
	if !ok {
		return
	}
	doctor, found := c.reg.GetDoctor(doctorID)
	if !found {
		c.renderError(hospital.ErrDoctorNotFound)
		return
	}

	appt, err := c.reg.CreateNearestAvailableAppointment(ctx, patient, doctor)
	if err != nil {
		c.renderError(err)
		return
	}
	fmt.Fprintf(c.out, "Booked: %s\n", appt)
}

// -- Patients --

func (c *Console) handleCreatePatient() {
	firstName, ok := c.prompt("Patient first name: ")
	if !ok {
		return
	}
	lastName, ok := c.prompt("Patient last name: ")
	if !ok {
		return
	}
	raw, ok := c.prompt("Date of birth (yyyy-mm-dd, Enter to skip): ")
	if !ok {
		return
	}

	dob := time.Now().AddDate(-20, 0, 0)
	if raw != "" {
		parsed, err := hospital.ParseDate(raw)
		if err != nil {
			c.renderError(err)
			return
		}
		dob = parsed
	}

	patient, err := c.reg.CreatePatient(firstName, lastName, dob)
	if err != nil {
		c.renderError(err)
		return
	}
	fmt.Fprintf(c.out, "Patient created. ID: %d\n", patient.ID)
}

func (c *Console) handleFindPatient() {
	id, ok := c.promptID("Patient ID: ")
	if !ok {
		return
	}
	patient, found := c.reg.GetPatient(id)
	if !found {
		c.renderError(hospital.ErrPatientNotFound)
		return
	}
	fmt.Fprintln(c.out, patient)
}

func (c *Console) handleListPatients() {
	for _, p := range c.reg.GetAllPatients() {
		fmt.Fprintln(c.out, p)
	}
}

func (c *Console) handleUpdatePatient() {
	id, ok := c.promptID("Patient ID: ")
	if !ok {
		return
	}

	var upd hospital.PatientUpdate
	if v, ok := c.prompt("New first name (Enter to keep): "); !ok {
		return
	} else if v != "" {
		upd.FirstName = &v
	}
	if v, ok := c.prompt("New last name (Enter to keep): "); !ok {
		return
	} else if v != "" {
		upd.LastName = &v
	}
	if v, ok := c.prompt("New date of birth (yyyy-mm-dd, Enter to keep): "); !ok {
		return
	} else if v != "" {
		dob, err := hospital.ParseDate(v)
		if err != nil {
			c.renderError(err)
			return
		}
		upd.DateOfBirth = &dob
	}

	if err := c.reg.UpdatePatient(id, upd); err != nil {
		c.renderError(err)
		return
	}
	fmt.Fprintln(c.out, "Patient updated.")
}

func (c *Console) handleDeletePatient() {
	id, ok := c.promptID("Patient ID: ")
	if !ok {
		return
	}
	if err := c.reg.DeletePatient(id); err != nil {
		c.renderError(err)
		return
	}
	fmt.Fprintln(c.out, "Patient deleted.")
}

// -- Doctors --

func (c *Console) handleCreateDoctor() {
	firstName, ok := c.prompt("Doctor first name: ")
	if !ok {
		return
	}
	lastName, ok := c.prompt("Doctor last name: ")
	if !ok {
		return
	}
	specialty, ok := c.promptSpecialty()
	if !ok {
		return
	}
	workStart, ok := c.promptClock("Work start (hh:mm): ")
	if !ok {
		return
	}
	workEnd, ok := c.promptClock("Work end (hh:mm): ")
	if !ok {
		return
	}

	doctor, err := c.reg.CreateDoctor(firstName, lastName, specialty, workStart, workEnd)
	if err != nil {
		c.renderError(err)
		return
	}
	fmt.Fprintf(c.out, "Doctor created. ID: %d\n", doctor.ID)
}

func (c *Console) handleFindDoctor() {
	id, ok := c.promptID("Doctor ID: ")
	if !ok {
		return
	}
	doctor, found := c.reg.GetDoctor(id)
	if !found {
		c.renderError(hospital.ErrDoctorNotFound)
		return
	}
	fmt.Fprintln(c.out, doctor)
	for _, appt := range doctor.Appointments() {
		fmt.Fprintf(c.out, "    %s\n", appt)
	}
}

func (c *Console) handleListDoctors() {
	for _, d := range c.reg.GetAllDoctors() {
		fmt.Fprintln(c.out, d)
	}
}

func (c *Console) handleUpdateDoctor() {
	id, ok := c.promptID("Doctor ID: ")
	if !ok {
		return
	}

	var upd hospital.DoctorUpdate
	if v, ok := c.prompt("New first name (Enter to keep): "); !ok {
		return
	} else if v != "" {
		upd.FirstName = &v
	}
	if v, ok := c.prompt("New last name (Enter to keep): "); !ok {
		return
	} else if v != "" {
		upd.LastName = &v
	}
	if v, ok := c.prompt("New work start (hh:mm, Enter to keep): "); !ok {
		return
	} else if v != "" {
		t, err := hospital.ParseTimeOfDay(v)
		if err != nil {
			c.renderError(err)
			return
		}
		upd.WorkStart = &t
	}
	if v, ok := c.prompt("New work end (hh:mm, Enter to keep): "); !ok {
		return
	} else if v != "" {
		t, err := hospital.ParseTimeOfDay(v)
		if err != nil {
			c.renderError(err)
			return
		}
		upd.WorkEnd = &t
	}

	if err := c.reg.UpdateDoctor(id, upd); err != nil {
		c.renderError(err)
		return
	}
	fmt.Fprintln(c.out, "Doctor updated.")
}

func (c *Console) handleDeleteDoctor() {
	id, ok := c.promptID("Doctor ID: ")
	if !ok {
		return
	}
	if err := c.reg.DeleteDoctor(id); err != nil {
		c.renderError(err)
		return
	}
	fmt.Fprintln(c.out, "Doctor deleted.")
}

// -- Documents --

func (c *Console) handleImport() {
	path, ok := c.promptPath("Import from")
	if !ok {
		return
	}

	doc, err := document.Load(path)
	if err != nil {
		c.renderError(err)
		return
	}
	reg, err := doc.Restore(c.cfg, c.log)
	if err != nil {
		c.renderError(err)
		return
	}

	c.reg = reg
	fmt.Fprintf(c.out, "Imported %d doctors, %d patients, %d appointments from %s.\n",
		len(doc.Doctors), len(doc.Patients), len(doc.Appointments), path)
}

func (c *Console) handleExport() {
	path, ok := c.promptPath("Export to")
	if !ok {
		return
	}

	orders := document.SortOrders()
	fmt.Fprintln(c.out, "Sort appointments by:")
	for i, o := range orders {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, o)
	}
	raw, ok := c.prompt("Choose an order (Enter for unsorted): ")
	if !ok {
		return
	}

	order := document.SortNone
	if raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 1 || idx > len(orders) {
			c.renderError(hospital.ErrInvalidSelection)
			return
		}
		order = orders[idx-1]
	}

	doc := document.Snapshot(c.reg, order)
	if err := document.Save(path, doc); err != nil {
		c.renderError(err)
		return
	}
	fmt.Fprintf(c.out, "Exported %d doctors, %d patients, %d appointments to %s.\n",
		len(doc.Doctors), len(doc.Patients), len(doc.Appointments), path)
}

// -- Events --

func (c *Console) handleEvents() {
	events := c.reg.Events()
	if len(events) == 0 {
		fmt.Fprintln(c.out, "No events yet.")
		return
	}
	for _, ev := range events {
		fmt.Fprintf(c.out, "%s %s %v\n", ev.CreatedAt.Format(time.RFC3339), ev.EventType, ev.Payload)
	}
}

// -- Shared prompts --

func (c *Console) promptSpecialty() (hospital.Specialty, bool) {
	for i, s := range hospital.Specialties() {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, s.Label())
	}
	raw, ok := c.prompt("Choose a specialty: ")
	if !ok {
		return "", false
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		c.renderError(hospital.ErrInvalidSelection)
		return "", false
	}
	specialty, err := hospital.SpecialtyAt(idx - 1)
	if err != nil {
		c.renderError(err)
		return "", false
	}
	return specialty, true
}

func (c *Console) promptClock(label string) (hospital.TimeOfDay, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	t, err := hospital.ParseTimeOfDay(raw)
	if err != nil {
		c.renderError(err)
		return 0, false
	}
	return t, true
}

func (c *Console) promptPath(verb string) (string, bool) {
	raw, ok := c.prompt(fmt.Sprintf("%s file (Enter for %s): ", verb, c.cfg.DataFile))
	if !ok {
		return "", false
	}
	if raw == "" {
		return c.cfg.DataFile, true
	}
	return raw, true
}

// renderError maps core error kinds to one-line console messages; anything
// unrecognized is shown as-is.
func (c *Console) renderError(err error) {
	switch {
	case errors.Is(err, hospital.ErrDoctorNotFound):
		fmt.Fprintln(c.out, "No doctor with that id.")
	case errors.Is(err, hospital.ErrPatientNotFound):
		fmt.Fprintln(c.out, "No patient with that id.")
	case errors.Is(err, hospital.ErrInvalidSelection):
		fmt.Fprintln(c.out, "Selection out of range, try again.")
	case errors.Is(err, hospital.ErrInvalidArgument):
		fmt.Fprintln(c.out, "Invalid input, try again.")
	case errors.Is(err, hospital.ErrConflict):
		fmt.Fprintln(c.out, "That slot overlaps an existing appointment.")
	case errors.Is(err, hospital.ErrOutOfHours):
		fmt.Fprintln(c.out, "That slot is outside the doctor's working hours.")
	case errors.Is(err, hospital.ErrNoSlotFound):
		fmt.Fprintln(c.out, "No free slot within the search horizon.")
	case errors.Is(err, hospital.ErrCapacityExhausted):
		fmt.Fprintln(c.out, "The registry cannot allocate any more ids.")
	default:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}
