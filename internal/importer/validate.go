package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gesta/internal/domain"
)

// ValidateImportFile reports every problem in f before anything is stored.
// Unlike the interactive paths, an import rejects unknown difficulty and stat
// names instead of coercing them, since a typo in a file is easy to fix.
func ValidateImportFile(f *ImportFile) []error {
	if f == nil || len(f.Quests) == 0 {
		return []error{fmt.Errorf("quests: at least one quest is required")}
	}

	var errs []error
	for i := range f.Quests {
		errs = append(errs, validateDraft(fmt.Sprintf("quests[%d]", i), &f.Quests[i])...)
	}
	return errs
}

func validateDraft(path string, d *domain.QuestDraft) []error {
	var errs []error

	if blank(d.Title) && blank(d.Description) {
		errs = append(errs, fmt.Errorf("%s: title or description is required", path))
	}
	if d.Difficulty != "" && !domain.Difficulty(strings.ToUpper(strings.TrimSpace(d.Difficulty))).IsValid() {
		errs = append(errs, fmt.Errorf("%s.difficulty: invalid value %q", path, d.Difficulty))
	}
	if d.TargetStat != "" {
		if _, ok := domain.ParseStat(d.TargetStat); !ok {
			errs = append(errs, fmt.Errorf("%s.targetStat: invalid value %q", path, d.TargetStat))
		}
	}
	if d.ExperienceReward != nil && *d.ExperienceReward < 0 {
		errs = append(errs, fmt.Errorf("%s.experienceReward: must be >= 0, got %d", path, *d.ExperienceReward))
	}
	if d.Tags.Present && !d.Tags.IsList {
		errs = append(errs, fmt.Errorf("%s.tags: must be a list of strings", path))
	}

	return errs
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
