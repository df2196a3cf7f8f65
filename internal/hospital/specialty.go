package hospital

import "fmt"

// Specialty is one of the fixed set of medical specialties. The constant
// names double as the wire representation in exported documents.
type Specialty string

const (
	Cardiologist  Specialty = "CARDIOLOGIST"
	Dermatologist Specialty = "DERMATOLOGIST"
	Neurologist   Specialty = "NEUROLOGIST"
	Pediatrician  Specialty = "PEDIATRICIAN"
	Radiologist   Specialty = "RADIOLOGIST"
	Surgeon       Specialty = "SURGEON"
	Psychiatrist  Specialty = "PSYCHIATRIST"
)

var specialties = []Specialty{
	Cardiologist,
	Dermatologist,
	Neurologist,
	Pediatrician,
	Radiologist,
	Surgeon,
	Psychiatrist,
}

var specialtyLabels = map[Specialty]string{
	Cardiologist:  "Cardiologist",
	Dermatologist: "Dermatologist",
	Neurologist:   "Neurologist",
	Pediatrician:  "Pediatrician",
	Radiologist:   "Radiologist",
	Surgeon:       "Surgeon",
	Psychiatrist:  "Psychiatrist",
}

// Specialties returns the catalog in its fixed display order.
func Specialties() []Specialty {
	out := make([]Specialty, len(specialties))
	copy(out, specialties)
	return out
}

// SpecialtyAt maps a zero-based catalog index back to a specialty, as
// selected from a numbered menu.
func SpecialtyAt(index int) (Specialty, error) {
	if index < 0 || index >= len(specialties) {
		return "", fmt.Errorf("specialty index %d: %w", index, ErrInvalidSelection)
	}
	return specialties[index], nil
}

// ParseSpecialty resolves a stored specialty name, e.g. from an imported
// document.
func ParseSpecialty(name string) (Specialty, error) {
	s := Specialty(name)
	if _, ok := specialtyLabels[s]; !ok {
		return "", fmt.Errorf("unknown specialty %q: %w", name, ErrInvalidArgument)
	}
	return s, nil
}

// Valid reports whether s is a member of the catalog.
func (s Specialty) Valid() bool {
	_, ok := specialtyLabels[s]
	return ok
}

// Label is the human-readable display name.
func (s Specialty) Label() string {
	if label, ok := specialtyLabels[s]; ok {
		return label
	}
	return string(s)
}
