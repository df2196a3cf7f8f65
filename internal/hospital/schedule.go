package hospital

// Scheduled is the capability shared by doctors and patients: anything
// holding an ordered list of appointments that a candidate booking must
// not collide with.
type Scheduled interface {
	Appointments() []*Appointment
}

// CanAccept reports whether the candidate collides with none of the
// party's existing appointments on the same date. Pure query.
func CanAccept(party Scheduled, candidate *Appointment) bool {
	for _, existing := range party.Appointments() {
		if existing.Date.Equal(candidate.Date) &&
			timesOverlap(existing.Start, existing.End, candidate.Start, candidate.End) {
			return false
		}
	}
	return true
}

// timesOverlap treats the ranges as boundary-inclusive: a booking ending
// at 10:00 conflicts with one starting at 10:00.
func timesOverlap(start1, end1, start2, end2 TimeOfDay) bool {
	return !start1.After(end2) && !start2.After(end1)
}
