package hospital_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clinicore/hospital/internal/hospital"
)

func TestTimeOfDay_ParseAndFormat(t *testing.T) {
	parsed, err := hospital.ParseTimeOfDay("09:05")
	require.NoError(t, err)
	require.Equal(t, hospital.ClockTime(9, 5), parsed)
	require.Equal(t, "09:05", parsed.String())

	_, err = hospital.ParseTimeOfDay("25:00")
	require.Error(t, err)
	_, err = hospital.ParseTimeOfDay("nine")
	require.Error(t, err)
}

func TestTimeOfDay_AddAndCompare(t *testing.T) {
	start := hospital.ClockTime(9, 30)
	end := start.Add(30 * time.Minute)

	require.Equal(t, hospital.ClockTime(10, 0), end)
	require.True(t, end.After(start))
	require.True(t, start.Before(end))
	require.False(t, start.After(start))
}

func TestDates(t *testing.T) {
	d, err := hospital.ParseDate("2030-06-10")
	require.NoError(t, err)
	require.Equal(t, "2030-06-10", hospital.FormatDate(d))

	_, err = hospital.ParseDate("10.06.2030")
	require.Error(t, err)

	// DateOf strips the clock part regardless of input location.
	local := time.Date(2030, time.June, 10, 23, 45, 0, 0, time.Local)
	require.Equal(t, "2030-06-10", hospital.FormatDate(hospital.DateOf(local)))

	require.True(t, hospital.Tomorrow().After(hospital.DateOf(time.Now())))
}

func TestAppointment_EqualIgnoresStatus(t *testing.T) {
	reg := newTestRegistry(t)
	d, _ := reg.CreateDoctor("Gregory", "House", hospital.Neurologist, hospital.ClockTime(9, 0), hospital.ClockTime(17, 0))
	p, _ := reg.CreatePatient("John", "Smith", date(1990, time.March, 5))
	day := date(2030, time.June, 10)

	a := appt(d, p, day, hospital.ClockTime(10, 0), hospital.ClockTime(10, 30))
	b := appt(d, p, day, hospital.ClockTime(10, 0), hospital.ClockTime(10, 30))
	b.Status = hospital.StatusCancelled
	require.True(t, a.Equal(b))

	c := appt(d, p, day, hospital.ClockTime(10, 30), hospital.ClockTime(11, 0))
	require.False(t, a.Equal(c))

	nextDay := appt(d, p, day.AddDate(0, 0, 1), hospital.ClockTime(10, 0), hospital.ClockTime(10, 30))
	require.False(t, a.Equal(nextDay))
}
