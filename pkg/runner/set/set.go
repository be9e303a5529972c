package set

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/retain/pkg/screen"
	"tableflip.dev/retain/pkg/store"
)

// Set stores one setting. With Interactive, missing parts are picked from a
// prompt.
type Set struct {
	Name        string
	Value       string
	Interactive bool
	Persistence store.Persistence

	In  io.Reader
	Out io.Writer

	// choose picks one of items; tests replace the prompt with it.
	choose func(label string, items []string, cursor int) (int, error)
}

func (s *Set) Do(_ context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not set, no persistence")
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}
	values := screen.Bind(s.Persistence)

	if s.Name == "" {
		if !s.Interactive {
			return errors.New("setting name required")
		}
		fields := values.Fields()
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.GetName()
		}
		i, err := s.pick("Setting", names, 0)
		if err != nil {
			return err
		}
		s.Name = names[i]
	}

	f, ok := values.Lookup(s.Name)
	if !ok {
		return fmt.Errorf("unknown setting %q", s.Name)
	}

	if s.Value == "" {
		if !s.Interactive {
			return fmt.Errorf("value required, one of %s", strings.Join(f.Choices(), ", "))
		}
		choices := f.Choices()
		cursor := 0
		for i, c := range choices {
			if c == f.Current() {
				cursor = i
			}
		}
		i, err := s.pick(f.GetName(), choices, cursor)
		if err != nil {
			return err
		}
		s.Value = choices[i]
	}

	if err := f.Choose(s.Value); err != nil {
		return err
	}
	bold := color.New(color.Bold)
	_, _ = fmt.Fprintf(out, "%s = %s\n", f.GetName(), bold.Sprint(f.Current()))
	return nil
}

func (s *Set) pick(label string, items []string, cursor int) (int, error) {
	if s.choose != nil {
		return s.choose(label, items, cursor)
	}
	in := s.In
	if in == nil {
		in = os.Stdin
	}
	out := s.Out
	if out == nil {
		out = os.Stdout
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: cursor,
		Size:      10,
		HideHelp:  true,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}?",
			Active:   "➜  {{ . | bold }}",
			Inactive: "   {{ . }}",
			Selected: "{{ . | green }}",
		},
		Stdin:  io.NopCloser(in),
		Stdout: nopWriteCloser{out},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}
	return i, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
