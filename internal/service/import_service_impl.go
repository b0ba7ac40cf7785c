package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gesta/internal/db"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/importer"
	"github.com/alexanderramin/gesta/internal/repository"
)

func (s *questService) Import(ctx context.Context, f *importer.ImportFile) (result *ImportResult, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import-quests", fields, time.Now(), &err)

	if errs := importer.ValidateImportFile(f); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	quests := make([]*domain.Quest, 0, len(f.Quests))
	for i := range f.Quests {
		q, err := s.enhancer.EnhanceManual(&f.Quests[i])
		if err != nil {
			return nil, fmt.Errorf("quests[%d]: %w", i, err)
		}
		s.finalize(q)
		quests = append(quests, q)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteQuestRepo(tx)
		for _, q := range quests {
			if err := repo.Create(ctx, q); err != nil {
				return fmt.Errorf("creating quest %q: %w", q.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["count"] = len(quests)
	return &ImportResult{Quests: quests}, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	for _, e := range errs {
		b.WriteString("\n  - " + e.Error())
	}
	return fmt.Errorf("%w (%d errors):%s", ErrInvalidImport, len(errs), b.String())
}
