package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/gesta/internal/cli/formatter"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/importer"
	"github.com/alexanderramin/gesta/internal/progression"
	"github.com/alexanderramin/gesta/internal/repository"
	"github.com/alexanderramin/gesta/internal/service"
	"github.com/spf13/cobra"
)

func newQuestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quest",
		Aliases: []string{"q"},
		Short:   "Manage quests",
	}

	cmd.AddCommand(
		newQuestAddCmd(app),
		newQuestGenerateCmd(app),
		newQuestListCmd(app),
		newQuestShowCmd(app),
		newQuestDoneCmd(app),
		newQuestRemoveCmd(app),
		newQuestImportCmd(app),
	)

	return cmd
}

func newQuestAddCmd(app *App) *cobra.Command {
	var in questInput
	var difficulty difficultyFlag
	var stat statFlag
	var reward int

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a quest by hand",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				in.title = args[0]
			}
			in.difficulty = string(difficulty.value)
			in.stat = string(stat.value)

			if strings.TrimSpace(in.title) == "" && strings.TrimSpace(in.description) == "" && app.interactive() {
				if err := questForm(&in).RunWithContext(cmd.Context()); err != nil {
					return err
				}
			}

			draft := in.draft()
			if cmd.Flags().Changed("reward") {
				draft.ExperienceReward = &reward
			}

			q, err := app.Quests.CreateManual(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCreated(q))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.title, "title", "", "Quest title")
	cmd.Flags().StringVarP(&in.description, "description", "d", "", "Quest description")
	cmd.Flags().Var(&difficulty, "difficulty", "quick, standard, long or epic")
	cmd.Flags().Var(&stat, "stat", "Target stat (detected from the text when omitted)")
	cmd.Flags().BoolVar(&in.daily, "daily", false, "Repeat every day")
	cmd.Flags().StringSliceVar(&in.tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().IntVar(&reward, "reward", 0, "XP reward, used only when no stat applies")

	return cmd
}

func newQuestGenerateCmd(app *App) *cobra.Command {
	var difficulty difficultyFlag
	var stat statFlag

	cmd := &cobra.Command{
		Use:   "generate <what you want to do>",
		Short: "Turn a plain request into an epic quest",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := app.Quests.CreateFromPrompt(cmd.Context(), service.GenerateRequest{
				Prompt:     strings.Join(args, " "),
				Preferred:  stat.value,
				Difficulty: difficulty.value,
			})
			var gate *progression.GateError
			if errors.As(err, &gate) {
				return fmt.Errorf("%w; keep completing quests to unlock it", gate)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCreated(q))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(q.Description))
			return nil
		},
	}

	cmd.Flags().Var(&difficulty, "difficulty", "quick, standard, long or epic")
	cmd.Flags().Var(&stat, "stat", "Stat the quest should train")

	return cmd
}

func newQuestListCmd(app *App) *cobra.Command {
	var all, done, daily bool
	var stat statFlag
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := app.Quests.ResetDailies(ctx); err != nil {
				return fmt.Errorf("resetting dailies: %w", err)
			}

			f := repository.QuestFilter{
				State:     repository.QuestStateOpen,
				DailyOnly: daily,
				Stat:      stat.value,
				Limit:     limit,
			}
			switch {
			case all:
				f.State = repository.QuestStateAll
			case done:
				f.State = repository.QuestStateCompleted
			}

			quests, err := app.Quests.List(ctx, f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuestList(quests))
			if len(quests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed quests")
	cmd.Flags().BoolVar(&done, "done", false, "Only completed quests")
	cmd.Flags().BoolVar(&daily, "daily", false, "Only daily quests")
	cmd.Flags().Var(&stat, "stat", "Only quests for this stat")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of quests")
	cmd.MarkFlagsMutuallyExclusive("all", "done")

	return cmd
}

func newQuestShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := app.Quests.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuest(q, app.now()))
			return nil
		},
	}
}

func newQuestDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete"},
		Short:   "Complete a quest and collect its reward",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Quests.Complete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCompletion(res))
			return nil
		},
	}
}

func newQuestRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a quest",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := app.Quests.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.Quests.Delete(cmd.Context(), q.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s\n", formatter.Dim(formatter.ShortID(q.ID)), q.Title)
			return nil
		},
	}
}

func newQuestImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Create quests from a JSON file",
		Long:  `The file holds {"quests": [...]} where each entry uses the fields title, description, difficulty, targetStat, experienceReward, isDaily and tags.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := importer.LoadImportFile(args[0])
			if err != nil {
				return fmt.Errorf("loading import file: %w", err)
			}
			res, err := app.Quests.Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			for _, q := range res.Quests {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCreated(q))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d quests\n", len(res.Quests))
			return nil
		},
	}
}

// questInput collects the add form or flags before they become a draft.
type questInput struct {
	title       string
	description string
	difficulty  string
	stat        string
	daily       bool
	tags        []string
}

func (in *questInput) draft() *domain.QuestDraft {
	d := &domain.QuestDraft{
		Difficulty: in.difficulty,
		TargetStat: in.stat,
		IsDaily:    in.daily,
	}
	if s := strings.TrimSpace(in.title); s != "" {
		d.Title = &s
	}
	if s := strings.TrimSpace(in.description); s != "" {
		d.Description = &s
	}
	if len(in.tags) > 0 {
		d.Tags = domain.Tags(in.tags...)
	}
	return d
}
