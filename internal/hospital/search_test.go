package hospital_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/hospital/internal/config"
	"github.com/clinicore/hospital/internal/hospital"
)

func TestSearch_FirstSlotSkipsWorkStartBoundary(t *testing.T) {
	reg := newTestRegistry(t)
	d, _ := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(9, 0), hospital.ClockTime(17, 0))
	p, _ := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))

	appt, err := reg.CreateNearestAvailableAppointment(context.Background(), p, d)
	require.NoError(t, err)

	// 09:00-09:30 touches workStart and the bound is exclusive, so the
	// first admissible slot is 09:30-10:00 tomorrow.
	require.True(t, appt.Date.Equal(hospital.Tomorrow()))
	require.Equal(t, hospital.ClockTime(9, 30), appt.Start)
	require.Equal(t, hospital.ClockTime(10, 0), appt.End)
	require.Equal(t, hospital.StatusActive, appt.Status)

	// The booking lands in both collections.
	require.Len(t, d.Appointments(), 1)
	require.Len(t, p.Appointments(), 1)
	require.True(t, d.Appointments()[0].Equal(appt))
	require.True(t, p.Appointments()[0].Equal(appt))
}

func TestSearch_SecondBookingSkipsTakenAndTouchingSlots(t *testing.T) {
	reg := newTestRegistry(t)
	d, _ := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(9, 0), hospital.ClockTime(17, 0))
	p, _ := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))
	ctx := context.Background()

	first, err := reg.CreateNearestAvailableAppointment(ctx, p, d)
	require.NoError(t, err)
	require.Equal(t, hospital.ClockTime(9, 30), first.Start)

	// 10:00-10:30 touches the first booking's end, and touching counts as
	// overlap, so the second booking lands at 10:30.
	second, err := reg.CreateNearestAvailableAppointment(ctx, p, d)
	require.NoError(t, err)
	require.True(t, second.Date.Equal(first.Date))
	require.Equal(t, hospital.ClockTime(10, 30), second.Start)
	require.Equal(t, hospital.ClockTime(11, 0), second.End)
}

func TestSearch_PatientConflictWithOtherDoctorSkipsSlot(t *testing.T) {
	reg := newTestRegistry(t)
	d1, _ := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(9, 0), hospital.ClockTime(17, 0))
	d2, _ := reg.CreateDoctor("James", "Wilson", hospital.Cardiologist, hospital.ClockTime(9, 0), hospital.ClockTime(17, 0))
	p, _ := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))
	ctx := context.Background()

	_, err := reg.CreateNearestAvailableAppointment(ctx, p, d1)
	require.NoError(t, err)

	// d2's 09:30 slot is free for the doctor but busy for the patient.
	appt, err := reg.CreateNearestAvailableAppointment(ctx, p, d2)
	require.NoError(t, err)
	require.Equal(t, hospital.ClockTime(10, 30), appt.Start)
}

func TestSearch_RollsOverToNextDay(t *testing.T) {
	reg := newTestRegistry(t)
	// Only one admissible slot per day: 09:30-10:00 (10:00-10:30 touches
	// it once booked, 10:30-11:00 is flush against workEnd).
	d, _ := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(9, 0), hospital.ClockTime(11, 0))
	p, _ := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))
	ctx := context.Background()

	first, err := reg.CreateNearestAvailableAppointment(ctx, p, d)
	require.NoError(t, err)
	require.True(t, first.Date.Equal(hospital.Tomorrow()))
	require.Equal(t, hospital.ClockTime(9, 30), first.Start)

	second, err := reg.CreateNearestAvailableAppointment(ctx, p, d)
	require.NoError(t, err)
	require.True(t, second.Date.Equal(hospital.Tomorrow().AddDate(0, 0, 1)))
	require.Equal(t, hospital.ClockTime(9, 30), second.Start)
}

func TestSearch_DegenerateWindowFailsAtHorizon(t *testing.T) {
	reg := hospital.NewRegistry(config.Config{SearchHorizonDays: 3}, zerolog.Nop())

	// A 30-minute window can never admit a slot under the strict bounds.
	d, _ := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(9, 0), hospital.ClockTime(9, 30))
	p, _ := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))

	_, err := reg.CreateNearestAvailableAppointment(context.Background(), p, d)
	require.ErrorIs(t, err, hospital.ErrNoSlotFound)
	require.Empty(t, d.Appointments())
	require.Empty(t, p.Appointments())
}

func TestSearch_NilPartyIsInvalid(t *testing.T) {
	reg := newTestRegistry(t)
	d, _ := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(9, 0), hospital.ClockTime(17, 0))
	p, _ := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))
	ctx := context.Background()

	_, err := reg.CreateNearestAvailableAppointment(ctx, nil, d)
	require.ErrorIs(t, err, hospital.ErrInvalidArgument)
	_, err = reg.CreateNearestAvailableAppointment(ctx, p, nil)
	require.ErrorIs(t, err, hospital.ErrInvalidArgument)
}

func TestSearch_CancelledContextStopsScan(t *testing.T) {
	reg := newTestRegistry(t)
	d, _ := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(9, 0), hospital.ClockTime(17, 0))
	p, _ := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reg.CreateNearestAvailableAppointment(ctx, p, d)
	require.ErrorIs(t, err, context.Canceled)
}
