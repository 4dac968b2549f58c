package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-propername/pkg/propername"
)

// PartPrompt asks for one sub-part of a name.
type PartPrompt struct {
	Part    propername.Part
	Label   string
	Default string
	Help    string
}

// PromptDriver is the terminal seam used by Editor. Tests script it; the
// default implementation talks to survey.
type PromptDriver interface {
	// AskPart returns the raw answer for one part.
	AskPart(ctx context.Context, prompt PartPrompt) (string, error)
	// AskMore asks whether another record should be added to a repeatable
	// field that already holds count records.
	AskMore(ctx context.Context, count int) (bool, error)
	Say(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out io.Writer
}

func (d surveyDriver) AskPart(ctx context.Context, prompt PartPrompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: prompt.Label,
		Default: prompt.Default,
		Help:    prompt.Help,
	}, &answer)
	return answer, surveyErr(err)
}

func (d surveyDriver) AskMore(ctx context.Context, count int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var more bool
	err := survey.AskOne(&survey.Confirm{
		Message: "Add another name?",
		Default: count == 0,
	}, &more)
	return more, surveyErr(err)
}

func (d surveyDriver) Say(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func surveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
