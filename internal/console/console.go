// Package console is the interactive front end: a numbered text menu that
// drives the registry. It owns all prompting and input parsing; every core
// error is rendered as a one-line message and the menu reprompts.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinicore/hospital/internal/config"
	"github.com/clinicore/hospital/internal/hospital"
)

const optionList = `<-- Scheduling -->
 1. Find doctors by specialty
 2. Book nearest appointment
 3. Full report
<-- Patients -->
 4. Create patient
 5. Find patient
 6. List patients
 7. Update patient
 8. Delete patient
<-- Doctors -->
 9. Create doctor
10. Find doctor
11. List doctors
12. Update doctor
13. Delete doctor
<-- Documents -->
14. Import registry from file
15. Export registry to file
<-- Misc -->
16. Show event trail
 0. Quit`

type Console struct {
	reg *hospital.Registry
	cfg config.Config
	log zerolog.Logger

	in  *bufio.Scanner
	out io.Writer
}

func New(reg *hospital.Registry, cfg config.Config, log zerolog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		reg: reg,
		cfg: cfg,
		log: log,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Registry exposes the current registry; a document import swaps it.
func (c *Console) Registry() *hospital.Registry {
	return c.reg
}

// Run loops over the menu until the user quits, input ends, or the context
// is cancelled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(c.out, optionList)
		option, ok := c.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		if option == "0" {
			return nil
		}
		c.dispatch(ctx, option)
	}
}

func (c *Console) dispatch(ctx context.Context, option string) {
	switch option {
	case "1":
		c.handleFindDoctorsBySpecialty()
	case "2":
		c.handleBookAppointment(ctx)
	case "3":
		fmt.Fprint(c.out, c.reg.FullReport())
	case "4":
		c.handleCreatePatient()
	case "5":
		c.handleFindPatient()
	case "6":
		c.handleListPatients()
	case "7":
		c.handleUpdatePatient()
	case "8":
		c.handleDeletePatient()
	case "9":
		c.handleCreateDoctor()
	case "10":
		c.handleFindDoctor()
	case "11":
		c.handleListDoctors()
	case "12":
		c.handleUpdateDoctor()
	case "13":
		c.handleDeleteDoctor()
	case "14":
		c.handleImport()
	case "15":
		c.handleExport()
	case "16":
		c.handleEvents()
	default:
		fmt.Fprintln(c.out, "Unknown option, try again.")
	}
}

// prompt reads one trimmed line; ok is false once input is exhausted.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) promptID(label string) (int64, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintf(c.out, "Not a numeric id: %q\n", raw)
		return 0, false
	}
	return id, true
}
