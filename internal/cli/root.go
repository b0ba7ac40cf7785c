package cli

import (
	"time"

	"github.com/alexanderramin/gesta/internal/classify"
	"github.com/alexanderramin/gesta/internal/llm"
	"github.com/alexanderramin/gesta/internal/progression"
	"github.com/alexanderramin/gesta/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and rule tables the commands run against.
type App struct {
	Quests     service.QuestService
	Players    service.PlayerService
	Rules      *progression.Rules
	Classifier *classify.Classifier

	// LLM is nil when the external generator is disabled.
	LLM llm.LLMClient

	// IsInteractive reports whether stdin is a terminal. Nil means never,
	// which keeps tests and pipes away from forms.
	IsInteractive func() bool

	// Now defaults to time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "gesta" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gesta",
		Short:         "Turn your tasks into quests and level up",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newQuestCmd(app),
		newStatusCmd(app),
		newUnlocksCmd(app),
		newHistoryCmd(app),
		newClassifyCmd(app),
		newConflictsCmd(),
		newBoardCmd(app),
	)

	return root
}
