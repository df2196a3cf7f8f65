package hospital

import "strings"

// FullReport renders a human-readable listing of all doctors with their
// appointments, followed by all patients. Read-only.
func (r *Registry) FullReport() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder

	b.WriteString("<-- Doctors and their appointments -->\n")
	for _, doctor := range r.doctors {
		b.WriteString(doctor.String())
		b.WriteByte('\n')
		if len(doctor.appointments) == 0 {
			b.WriteString("    No appointments\n")
			continue
		}
		for _, appt := range doctor.appointments {
			b.WriteString("    ")
			b.WriteString(appt.String())
			b.WriteByte('\n')
		}
	}

	b.WriteString("\n<-- Patients -->\n")
	for _, patient := range r.patients {
		b.WriteString(patient.String())
		b.WriteByte('\n')
	}

	return b.String()
}
