package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/registro/pkg/validator"
	"github.com/dmitrymomot/registro/registration"
)

// CheckCmd validates one registration document.
type CheckCmd struct {
	File   string `arg:"" optional:"" default:"-" help:"JSON file to read, or - for stdin."`
	Format string `help:"Output format." enum:"text,json" default:"text"`
}

type checkResult struct {
	Valid        bool                       `json:"valid"`
	Registration *registration.Registration `json:"registration,omitempty"`
	Errors       map[string][]string        `json:"errors,omitempty"`
}

// Run reads the draft, validates it and prints the outcome. Validation
// failures return errInvalid after the errors are printed.
func (c *CheckCmd) Run(s *streams) error {
	draft, err := c.read(s.In)
	if err != nil {
		return err
	}

	reg, err := registration.Validate(draft)
	verrs := validator.ExtractValidationErrors(err)
	if err != nil && verrs == nil {
		return err
	}

	res := checkResult{Valid: verrs == nil}
	if res.Valid {
		res.Registration = &reg
	} else {
		res.Errors = verrs.Values()
	}

	if err := c.print(s.Out, res, verrs); err != nil {
		return err
	}
	if !res.Valid {
		return errInvalid
	}
	return nil
}

func (c *CheckCmd) read(stdin io.Reader) (registration.Draft, error) {
	var draft registration.Draft
	r := stdin
	if c.File != "" && c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return draft, err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&draft); err != nil {
		return draft, fmt.Errorf("decode registration: %w", err)
	}
	return draft, nil
}

func (c *CheckCmd) print(w io.Writer, res checkResult, verrs validator.ValidationErrors) error {
	if c.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if res.Valid {
		_, err := fmt.Fprintln(w, "ok")
		return err
	}
	var errs []error
	for _, e := range verrs {
		_, err := fmt.Fprintf(w, "%s: %s\n", e.Field, e.Message)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SchemaCmd prints the field rules.
type SchemaCmd struct{}

// Run writes registration.Schema as indented JSON.
func (SchemaCmd) Run(s *streams) error {
	enc := json.NewEncoder(s.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(registration.Schema())
}
