package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/gesta/internal/domain"
)

// ImportFile is the top-level JSON structure for a quest import. Each entry
// uses the same field names as generator output.
type ImportFile struct {
	Quests []domain.QuestDraft `json:"quests"`
}

// LoadImportFile reads and parses a quest import JSON file.
func LoadImportFile(path string) (*ImportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportFile(data)
}

func ParseImportFile(data []byte) (*ImportFile, error) {
	var f ImportFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &f, nil
}

// ReadConflictReport parses the JSON written by the scheduling-conflict
// detector.
func ReadConflictReport(r io.Reader) (*domain.ConflictReport, error) {
	var report domain.ConflictReport
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("parsing conflict report: %w", err)
	}
	return &report, nil
}
