package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pbaille/blueprint/internal/domain"
	"github.com/pbaille/blueprint/internal/render"
	"github.com/pbaille/blueprint/internal/submission"
)

var errQuit = errors.New("quit")

type prompter interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

type submitter interface {
	Submit(ctx context.Context, input domain.BirthInput) (*domain.Reading, error)
}

func runInteractive(ctx context.Context, svc submitter) error {
	homeDir, _ := os.UserHomeDir()

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     filepath.Join(homeDir, ".blueprint-history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		Stdin:  readline.NewCancelableStdin(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	return birthForm(ctx, rl, svc, os.Stdout)
}

// birthForm asks for birth details until a reading is shown and the user
// declines to start over. Ctrl+C or Ctrl+D leaves the form.
func birthForm(ctx context.Context, p prompter, svc submitter, out io.Writer) error {
	fmt.Fprintln(out, "Discover Your Cosmic Blueprint")
	fmt.Fprintln(out)

	for {
		input, err := askInput(p)
		if errors.Is(err, errQuit) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}

		reading, err := svc.Submit(ctx, input)
		if err != nil {
			render.TextError(out, submission.UserMessage(err))
			fmt.Fprintln(out)
			continue
		}

		fmt.Fprintln(out)
		if err := render.Text(out, reading); err != nil {
			return err
		}
		fmt.Fprintln(out)

		again, err := ask(p, "Start over? [y/N]: ")
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if !isYes(again) {
			return nil
		}
		fmt.Fprintln(out)
	}
}

func askInput(p prompter) (domain.BirthInput, error) {
	var in domain.BirthInput
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Full name: ", &in.FullName},
		{"Date of birth (YYYY-MM-DD): ", &in.BirthDate},
		{"Time of birth (HH:MM, optional): ", &in.BirthTime},
		{"Place of birth (optional): ", &in.BirthPlace},
	}

	for _, f := range fields {
		v, err := ask(p, f.prompt)
		if err != nil {
			return domain.BirthInput{}, err
		}
		*f.dest = v
	}
	return in, nil
}

func ask(p prompter, prompt string) (string, error) {
	p.SetPrompt(prompt)
	line, err := p.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", errQuit
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func isYes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "y" || s == "yes"
}
