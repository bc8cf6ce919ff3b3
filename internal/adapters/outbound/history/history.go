package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bewertigo/bewertigo/internal/domain"
)

// File is where audit records are kept, relative to the history directory.
const File = ".bewertigo/history.json"

// FileHistory implements domain.AuditHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dir string, record domain.AuditRecord) error {
	records, err := h.Load(dir)
	if err != nil {
		return err
	}

	records = append(records, record)

	fp := filepath.Join(dir, File)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

// Load returns every saved record, oldest first. No history file yields nil.
func (h *FileHistory) Load(dir string) ([]domain.AuditRecord, error) {
	fp := filepath.Join(dir, File)

	data, err := os.ReadFile(fp)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.AuditRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", File, err)
	}

	return records, nil
}
