package hospital

import "errors"

var (
	ErrInvalidArgument   = errors.New("required argument is missing")
	ErrInvalidSelection  = errors.New("selection index out of range")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrConflict          = errors.New("appointment overlaps an existing one")
	ErrOutOfHours        = errors.New("appointment is outside working hours")
	ErrCapacityExhausted = errors.New("identifier space exhausted")
	ErrNoSlotFound       = errors.New("no free slot within the search horizon")
)
