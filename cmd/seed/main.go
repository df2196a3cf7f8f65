package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"

	"github.com/clinicore/hospital/internal/config"
	"github.com/clinicore/hospital/internal/document"
	"github.com/clinicore/hospital/internal/hospital"
)

const (
	doctorCount      = 10
	patientCount     = 40
	appointmentCount = 60
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger.Info().Str("file", cfg.DataFile).Msg("seed starting")

	gofakeit.Seed(time.Now().UnixNano())

	reg := hospital.NewRegistry(cfg, logger)

	if err := seedDoctors(reg, doctorCount); err != nil {
		logger.Fatal().Err(err).Msg("seed doctors")
	}
	if err := seedPatients(reg, patientCount); err != nil {
		logger.Fatal().Err(err).Msg("seed patients")
	}
	if err := seedAppointments(context.Background(), reg, appointmentCount); err != nil {
		logger.Fatal().Err(err).Msg("seed appointments")
	}

	if err := document.Save(cfg.DataFile, document.Snapshot(reg, document.SortByDate)); err != nil {
		logger.Fatal().Err(err).Msg("write document")
	}

	logger.Info().Msg("seed complete")
}

func seedDoctors(reg *hospital.Registry, count int) error {
	specialties := hospital.Specialties()

	for i := 0; i < count; i++ {
		specialty := specialties[gofakeit.Number(0, len(specialties)-1)]

		// Shifts start on the hour between 07:00 and 11:00 and run 6-9 hours.
		workStart := hospital.ClockTime(gofakeit.Number(7, 11), 0)
		workEnd := workStart.Add(time.Duration(gofakeit.Number(6, 9)) * time.Hour)

		if _, err := reg.CreateDoctor(gofakeit.FirstName(), gofakeit.LastName(), specialty, workStart, workEnd); err != nil {
			return err
		}
	}
	return nil
}

func seedPatients(reg *hospital.Registry, count int) error {
	for i := 0; i < count; i++ {
		dob := gofakeit.DateRange(
			time.Now().AddDate(-90, 0, 0),
			time.Now().AddDate(-18, 0, 0),
		)
		if _, err := reg.CreatePatient(gofakeit.FirstName(), gofakeit.LastName(), dob); err != nil {
			return err
		}
	}
	return nil
}

func seedAppointments(ctx context.Context, reg *hospital.Registry, count int) error {
	doctors := reg.GetAllDoctors()
	patients := reg.GetAllPatients()

	for i := 0; i < count; i++ {
		doctor := doctors[gofakeit.Number(0, len(doctors)-1)]
		patient := patients[gofakeit.Number(0, len(patients)-1)]

		if _, err := reg.CreateNearestAvailableAppointment(ctx, patient, doctor); err != nil {
			return err
		}
	}
	return nil
}
