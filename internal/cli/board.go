package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gesta/internal/cli/formatter"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/repository"
	"github.com/alexanderramin/gesta/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Browse and complete open quests interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Quests.ResetDailies(cmd.Context()); err != nil {
				return fmt.Errorf("resetting dailies: %w", err)
			}
			p := tea.NewProgram(newBoardModel(app), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}

type boardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Complete: key.NewBinding(key.WithKeys("enter", "x"), key.WithHelp("enter", "complete")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Complete, k.Refresh, k.Quit}
}

type boardQuestsMsg struct {
	quests []*domain.Quest
	err    error
}

type boardCompletedMsg struct {
	result *service.CompletionResult
	err    error
}

// boardModel lists open quests and completes the one under the cursor.
type boardModel struct {
	app     *App
	keys    boardKeyMap
	quests  []*domain.Quest
	cursor  int
	loading bool
	err     error
	last    *service.CompletionResult
	width   int
}

func newBoardModel(app *App) boardModel {
	return boardModel{app: app, keys: defaultBoardKeys(), loading: true}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadQuests()
}

func (m boardModel) loadQuests() tea.Cmd {
	quests := m.app.Quests
	return func() tea.Msg {
		qs, err := quests.List(context.Background(), repository.QuestFilter{State: repository.QuestStateOpen})
		return boardQuestsMsg{quests: qs, err: err}
	}
}

func (m boardModel) complete(id string) tea.Cmd {
	quests := m.app.Quests
	return func() tea.Msg {
		res, err := quests.Complete(context.Background(), id)
		return boardCompletedMsg{result: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case boardQuestsMsg:
		m.loading = false
		m.err = msg.err
		m.quests = msg.quests
		if m.cursor >= len(m.quests) {
			m.cursor = max(len(m.quests)-1, 0)
		}
		return m, nil

	case boardCompletedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.last = msg.result
		}
		return m, m.loadQuests()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.quests)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadQuests()
		case key.Matches(msg, m.keys.Complete):
			if m.cursor < len(m.quests) {
				return m, m.complete(m.quests[m.cursor].ID)
			}
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Quest board") + "\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + formatter.Dim("Loading quests...") + "\n")
	case len(m.quests) == 0:
		b.WriteString("  " + formatter.Dim("No open quests. Add one with `gesta quest add`.") + "\n")
	}

	for i, q := range m.quests {
		cursor := "  "
		title := formatter.StyleFg.Render(formatter.Truncate(q.Title, 50))
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			title = formatter.StyleBold.Render(formatter.Truncate(q.Title, 50))
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			cursor,
			formatter.StatBadge(q.TargetStat),
			padRight(title, 52),
			formatter.StyleYellow.Render(fmt.Sprintf("%d XP", q.ExperienceReward)),
		))
	}

	if m.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	if m.last != nil {
		b.WriteString("\n" + formatter.FormatCompletion(m.last) + "\n")
	}

	b.WriteString("\n" + renderHelp(m.keys.ShortHelp()))
	return b.String()
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, formatter.StyleBold.Render(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" · "))
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
