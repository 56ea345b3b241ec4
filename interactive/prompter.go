package interactive

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter asks the user questions. Survey is the terminal implementation.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(message string, def bool) (bool, error)
	// Input asks for a line of text. An empty answer yields def.
	// suggest may be nil.
	Input(message, def string, suggest func(string) []string) (string, error)
	// Select asks to pick one of options and returns its index.
	Select(message string, options []string) (int, error)
}

// Survey prompts on the terminal with survey/v2.
type Survey struct{}

func (Survey) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{
		Message: message,
		Default: def,
	}, &answer)
	return answer, err
}

func (Survey) Input(message, def string, suggest func(string) []string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Default: def,
		Suggest: suggest,
	}, &answer)
	return strings.TrimSpace(answer), err
}

func (Survey) Select(message string, options []string) (int, error) {
	var answer int
	err := survey.AskOne(&survey.Select{
		Message: message,
		Options: options,
	}, &answer)
	return answer, err
}
