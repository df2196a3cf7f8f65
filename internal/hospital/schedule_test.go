package hospital_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/hospital/internal/config"
	"github.com/clinicore/hospital/internal/hospital"
)

func testConfig() config.Config {
	return config.Config{
		Env:               "test",
		SearchHorizonDays: 30,
	}
}

func newTestRegistry(t *testing.T) *hospital.Registry {
	t.Helper()
	return hospital.NewRegistry(testConfig(), zerolog.Nop())
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func appt(d *hospital.Doctor, p *hospital.Patient, day time.Time, start, end hospital.TimeOfDay) *hospital.Appointment {
	return &hospital.Appointment{
		Doctor:  d,
		Patient: p,
		Date:    day,
		Start:   start,
		End:     end,
		Status:  hospital.StatusActive,
	}
}

func TestCanAccept_EmptySchedule(t *testing.T) {
	reg := newTestRegistry(t)
	d, err := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(9, 0), hospital.ClockTime(17, 0))
	require.NoError(t, err)
	p, err := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))
	require.NoError(t, err)

	candidate := appt(d, p, date(2030, time.June, 10), hospital.ClockTime(10, 0), hospital.ClockTime(10, 30))
	require.True(t, hospital.CanAccept(d, candidate))
	require.True(t, hospital.CanAccept(p, candidate))
}

func TestCanAccept_OverlapRules(t *testing.T) {
	day := date(2030, time.June, 10)

	cases := []struct {
		name       string
		start, end hospital.TimeOfDay
		accepted   bool
	}{
		{"same range", hospital.ClockTime(10, 0), hospital.ClockTime(10, 30), false},
		{"contained", hospital.ClockTime(10, 10), hospital.ClockTime(10, 20), false},
		{"touching after", hospital.ClockTime(10, 30), hospital.ClockTime(11, 0), false},
		{"touching before", hospital.ClockTime(9, 30), hospital.ClockTime(10, 0), false},
		{"gap after", hospital.ClockTime(10, 31), hospital.ClockTime(11, 0), true},
		{"gap before", hospital.ClockTime(9, 0), hospital.ClockTime(9, 59), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := newTestRegistry(t)
			d, err := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(8, 0), hospital.ClockTime(18, 0))
			require.NoError(t, err)
			p, err := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))
			require.NoError(t, err)

			existing := appt(d, p, day, hospital.ClockTime(10, 0), hospital.ClockTime(10, 30))
			require.NoError(t, p.AddAppointment(existing))

			candidate := appt(d, p, day, tc.start, tc.end)
			require.Equal(t, tc.accepted, hospital.CanAccept(p, candidate))
		})
	}
}

func TestCanAccept_OverlapIsSymmetric(t *testing.T) {
	day := date(2030, time.June, 10)

	reg := newTestRegistry(t)
	d, _ := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(8, 0), hospital.ClockTime(18, 0))

	first, _ := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))
	require.NoError(t, first.AddAppointment(appt(d, first, day, hospital.ClockTime(10, 0), hospital.ClockTime(10, 30))))
	require.False(t, hospital.CanAccept(first, appt(d, first, day, hospital.ClockTime(10, 30), hospital.ClockTime(11, 0))))

	second, _ := reg.CreatePatient("Jane", "Smith", date(1991, time.April, 6))
	require.NoError(t, second.AddAppointment(appt(d, second, day, hospital.ClockTime(10, 30), hospital.ClockTime(11, 0))))
	require.False(t, hospital.CanAccept(second, appt(d, second, day, hospital.ClockTime(10, 0), hospital.ClockTime(10, 30))))
}

func TestCanAccept_DifferentDatesNeverConflict(t *testing.T) {
	reg := newTestRegistry(t)
	d, _ := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(8, 0), hospital.ClockTime(18, 0))
	p, _ := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))

	require.NoError(t, p.AddAppointment(appt(d, p, date(2030, time.June, 10), hospital.ClockTime(10, 0), hospital.ClockTime(10, 30))))

	sameSlotNextDay := appt(d, p, date(2030, time.June, 11), hospital.ClockTime(10, 0), hospital.ClockTime(10, 30))
	require.True(t, hospital.CanAccept(p, sameSlotNextDay))
}
