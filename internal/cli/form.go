package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/gesta/internal/cli/formatter"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func gestaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var errTitleRequired = errors.New("a quest needs a title")

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errTitleRequired
	}
	return nil
}

func difficultyOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.AllDifficulties))
	for _, d := range domain.AllDifficulties {
		opts = append(opts, huh.NewOption(strings.ToLower(string(d)), string(d)))
	}
	return opts
}

// statOptions leads with an empty choice so the classifier decides.
func statOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("detect from text", "")}
	for _, s := range domain.AllStats {
		opts = append(opts, huh.NewOption(strings.ToLower(string(s)), string(s)))
	}
	return opts
}

// questForm asks for the fields of a manual quest, prefilled from in.
func questForm(in *questInput) *huh.Form {
	if in.difficulty == "" {
		in.difficulty = string(domain.DifficultyStandard)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("go to the gym").
				Value(&in.title).
				Validate(validateTitle),
			huh.NewText().
				Title("Description").
				Value(&in.description),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(difficultyOptions()...).
				Value(&in.difficulty),
			huh.NewSelect[string]().
				Title("Stat").
				Options(statOptions()...).
				Value(&in.stat),
			huh.NewConfirm().
				Title("Repeat daily?").
				Value(&in.daily),
		),
	).WithTheme(gestaHuhTheme()).WithShowHelp(false)
}
