package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/spf13/pflag"
)

// difficultyFlag rejects unknown names on the command line. The enhancer
// would silently coerce them to STANDARD, which hides typos.
type difficultyFlag struct {
	value domain.Difficulty
}

var _ pflag.Value = (*difficultyFlag)(nil)

func (f *difficultyFlag) String() string { return string(f.value) }
func (f *difficultyFlag) Type() string   { return "difficulty" }

func (f *difficultyFlag) Set(s string) error {
	d := domain.Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if !d.IsValid() {
		return fmt.Errorf("unknown difficulty %q (want one of %s)", s, joinDifficulties())
	}
	f.value = d
	return nil
}

type statFlag struct {
	value domain.Stat
}

var _ pflag.Value = (*statFlag)(nil)

func (f *statFlag) String() string { return string(f.value) }
func (f *statFlag) Type() string   { return "stat" }

func (f *statFlag) Set(s string) error {
	st, ok := parseStatArg(s)
	if !ok {
		return fmt.Errorf("unknown stat %q (want strength, dexterity, wisdom or charisma)", s)
	}
	f.value = st
	return nil
}

// parseStatArg also accepts the three-letter abbreviations shown in lists.
func parseStatArg(s string) (domain.Stat, bool) {
	if st, ok := domain.ParseStat(s); ok {
		return st, true
	}
	abbr := strings.ToUpper(strings.TrimSpace(s))
	if len(abbr) != 3 {
		return domain.StatNone, false
	}
	for _, st := range domain.AllStats {
		if strings.HasPrefix(string(st), abbr) {
			return st, true
		}
	}
	return domain.StatNone, false
}

func joinDifficulties() string {
	names := make([]string, len(domain.AllDifficulties))
	for i, d := range domain.AllDifficulties {
		names[i] = strings.ToLower(string(d))
	}
	return strings.Join(names, ", ")
}
