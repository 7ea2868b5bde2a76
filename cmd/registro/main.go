package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for registro.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Serve the registration form over HTTP."`
	Check   CheckCmd   `cmd:"" help:"Validate a JSON registration from a file or stdin."`
	Schema  SchemaCmd  `cmd:"" help:"Print field rules and select options as JSON."`
	Version VersionCmd `cmd:"" help:"Show version."`
}

// streams holds the process I/O so commands can be driven from tests.
type streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// errInvalid marks a check that found validation errors. The details have
// already been printed.
var errInvalid = errors.New("registration is invalid")

// VersionCmd prints build information.
type VersionCmd struct{}

// Run prints the version line.
func (VersionCmd) Run(s *streams) error {
	_, err := fmt.Fprintf(s.Out, "registro %s (%s, %s)\n", version, commit, date)
	return err
}

func exitCode(err error) int {
	if errors.Is(err, errInvalid) {
		return 1
	}
	return 2
}

func run(args []string, s *streams, opts ...kong.Option) error {
	var cli CLI
	opts = append([]kong.Option{
		kong.Name("registro"),
		kong.Description("Registration form service."),
		kong.UsageOnError(),
		kong.Writers(s.Out, s.Err),
	}, opts...)

	parser, err := kong.New(&cli, opts...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(s)
}

func main() {
	s := &streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if err := run(os.Args[1:], s); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(exitCode(err))
	}
}
