package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/smileynet/contactbook/internal/config"
	"github.com/smileynet/contactbook/internal/console"
	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/menu"
	"github.com/smileynet/contactbook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for contactbook.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Run     RunCmd           `cmd:"" default:"1" help:"Start the interactive contact book (default)."`
	Check   CheckCmd         `cmd:"" help:"Validate contact field values without starting a session."`
}

// RunCmd starts an interactive contact book session.
type RunCmd struct {
	Config  string `help:"Extra config file layered over user and project config." type:"path" placeholder:"FILE"`
	Color   string `help:"Colour output: auto, always or never."`
	NoPager bool   `help:"Print the contact list instead of opening the pager." default:"false"`
	NoClear bool   `help:"Do not clear the screen between sections." default:"false"`
}

// loadConfig loads layered config from user and project paths, an optional
// explicit file, and env overrides.
func loadConfig(extra string) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/contactbook/config.yaml"),
		".contactbook.yaml",
	}
	if extra != "" {
		if _, err := os.Stat(extra); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		paths = append(paths, extra)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the run command.
func (r *RunCmd) Run() error {
	cfg, err := loadConfig(r.Config)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	r.applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	viewer := tui.NewViewer(tui.ViewerOptions{
		Writer:     os.Stdout,
		Input:      os.Stdin,
		ForcePlain: !cfg.Display.Pager,
	})
	return r.run(os.Stdin, os.Stdout, cfg, viewer)
}

// applyFlags applies CLI flag overrides on top of file and env config.
func (r *RunCmd) applyFlags(cfg *config.Config) {
	if r.Color != "" {
		cfg.Display.Color = r.Color
	}
	if r.NoPager {
		cfg.Display.Pager = false
	}
	if r.NoClear {
		cfg.Display.ClearScreen = false
	}
}

// run wires a console and session over the given streams, enabling testable wiring.
func (r *RunCmd) run(in io.Reader, out io.Writer, cfg *config.Config, viewer tui.Viewer) error {
	con := console.New(in, out,
		console.WithClearScreen(cfg.Display.ClearScreen),
		console.WithHeaderWidth(cfg.Display.HeaderWidth),
		console.WithColor(console.ColorMode(cfg.Display.Color)),
	)
	session := menu.NewSession(con, menu.WithViewer(viewer))
	if err := session.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// CheckCmd validates field values given on the command line.
type CheckCmd struct {
	Name      string `help:"Name to validate."`
	Phone     string `help:"Phone number to validate and format."`
	Email     string `help:"Email address to validate."`
	Address   string `help:"Address to validate."`
	Birthdate string `help:"Birthdate (DD/MM/YYYY) to validate."`
}

// errNothingToCheck is returned when check is run without any field flags.
var errNothingToCheck = errors.New("check: no fields given (try --phone 09244561530)")

// Run executes the check command.
func (c *CheckCmd) Run() error {
	return c.run(os.Stdout)
}

// run validates each supplied field, printing one line per field.
func (c *CheckCmd) run(w io.Writer) error {
	values := contact.Contact{
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Birthdate: c.Birthdate,
	}

	checked := 0
	var failed []error
	for _, f := range contact.Fields {
		v := values.Get(f)
		if v == "" {
			continue
		}
		checked++

		if err := contact.Validate(f, v); err != nil {
			failed = append(failed, err)
			_, _ = fmt.Fprintf(w, "%-9s invalid  %s\n", f, strings.ReplaceAll(f.Message(), "\n", " "))
			continue
		}
		if f == contact.FieldPhone {
			v = contact.FormatPhone(v)
		}
		_, _ = fmt.Fprintf(w, "%-9s ok       %s\n", f, v)
	}

	if checked == 0 {
		return errNothingToCheck
	}
	if len(failed) > 0 {
		return fmt.Errorf("check: %d of %d fields invalid: %w", len(failed), checked, errors.Join(failed...))
	}
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitInvalid = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var fe *contact.FieldError
	if errors.As(err, &fe) {
		return exitInvalid
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contactbook"),
		kong.Description("In-memory contact book manager."),
		kong.UsageOnError(),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
