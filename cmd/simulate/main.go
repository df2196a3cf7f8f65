package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"

	"github.com/clinicore/hospital/internal/config"
	"github.com/clinicore/hospital/internal/hospital"
)

// The simulator exercises the booking path in-process: a worker pool races
// nearest-slot bookings for random doctor/patient pairs against the
// registry's coarse lock and reports latency and outcome distribution.

type SimConfig struct {
	Workers  int
	Bookings int
	Doctors  int
	Patients int
}

type OperationMetrics struct {
	Total     int64
	Success   int64
	Exhausted int64
	Error     int64
	Latencies []time.Duration
	mu        sync.Mutex
}

func (om *OperationMetrics) Record(latency time.Duration, err error) {
	atomic.AddInt64(&om.Total, 1)
	switch {
	case err == nil:
		atomic.AddInt64(&om.Success, 1)
	case errors.Is(err, hospital.ErrNoSlotFound):
		atomic.AddInt64(&om.Exhausted, 1)
	default:
		atomic.AddInt64(&om.Error, 1)
	}

	om.mu.Lock()
	om.Latencies = append(om.Latencies, latency)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (avg, min, max, p50, p95 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.Latencies) == 0 {
		return 0, 0, 0, 0, 0
	}

	latencies := make([]time.Duration, len(om.Latencies))
	copy(latencies, om.Latencies)

	sort.Slice(latencies, func(i, j int) bool {
		return latencies[i] < latencies[j]
	})

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	avg = sum / time.Duration(len(latencies))
	min = latencies[0]
	max = latencies[len(latencies)-1]

	p50Idx := len(latencies) * 50 / 100
	if p50Idx >= len(latencies) {
		p50Idx = len(latencies) - 1
	}
	p50 = latencies[p50Idx]

	p95Idx := len(latencies) * 95 / 100
	if p95Idx >= len(latencies) {
		p95Idx = len(latencies) - 1
	}
	p95 = latencies[p95Idx]

	return avg, min, max, p50, p95
}

func main() {
	baseCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	simCfg := SimConfig{
		Workers:  getInt("SIM_WORKERS", 8),
		Bookings: getInt("SIM_BOOKINGS", 500),
		Doctors:  getInt("SIM_DOCTORS", 5),
		Patients: getInt("SIM_PATIENTS", 50),
	}

	logger.Info().
		Int("workers", simCfg.Workers).
		Int("bookings", simCfg.Bookings).
		Int("doctors", simCfg.Doctors).
		Int("patients", simCfg.Patients).
		Msg("simulator starting")

	gofakeit.Seed(time.Now().UnixNano())

	reg := hospital.NewRegistry(baseCfg, logger.Level(zerolog.WarnLevel))
	doctors, patients := buildFixture(reg, simCfg, logger)

	var metrics OperationMetrics
	remaining := int64(simCfg.Bookings)

	ctx := context.Background()
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < simCfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			for atomic.AddInt64(&remaining, -1) >= 0 {
				doctor := doctors[rng.Intn(len(doctors))]
				patient := patients[rng.Intn(len(patients))]

				opStart := time.Now()
				_, err := reg.CreateNearestAvailableAppointment(ctx, patient, doctor)
				metrics.Record(time.Since(opStart), err)
			}
		}()
	}
	wg.Wait()

	elapsed := time.Since(start)
	avg, min, max, p50, p95 := metrics.Stats()

	fmt.Println("=== booking simulation ===")
	fmt.Printf("elapsed:    %s\n", elapsed)
	fmt.Printf("total:      %d\n", metrics.Total)
	fmt.Printf("booked:     %d\n", metrics.Success)
	fmt.Printf("exhausted:  %d\n", metrics.Exhausted)
	fmt.Printf("errors:     %d\n", metrics.Error)
	fmt.Printf("latency:    avg=%s min=%s max=%s p50=%s p95=%s\n", avg, min, max, p50, p95)
}

func buildFixture(reg *hospital.Registry, simCfg SimConfig, logger zerolog.Logger) ([]*hospital.Doctor, []*hospital.Patient) {
	specialties := hospital.Specialties()

	doctors := make([]*hospital.Doctor, 0, simCfg.Doctors)
	for i := 0; i < simCfg.Doctors; i++ {
		workStart := hospital.ClockTime(gofakeit.Number(7, 10), 0)
		workEnd := workStart.Add(time.Duration(gofakeit.Number(6, 9)) * time.Hour)

		d, err := reg.CreateDoctor(
			gofakeit.FirstName(), gofakeit.LastName(),
			specialties[gofakeit.Number(0, len(specialties)-1)],
			workStart, workEnd,
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("fixture doctor")
		}
		doctors = append(doctors, d)
	}

	patients := make([]*hospital.Patient, 0, simCfg.Patients)
	for i := 0; i < simCfg.Patients; i++ {
		dob := gofakeit.DateRange(time.Now().AddDate(-90, 0, 0), time.Now().AddDate(-18, 0, 0))
		p, err := reg.CreatePatient(gofakeit.FirstName(), gofakeit.LastName(), dob)
		if err != nil {
			logger.Fatal().Err(err).Msg("fixture patient")
		}
		patients = append(patients, p)
	}

	return doctors, patients
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		fmt.Fprintf(os.Stderr, "invalid integer for %s=%q, using default %d\n", key, v, def)
	}
	return def
}
