package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/transcript-flow/internal/models"
)

// Write stamps the record, then writes it as indented JSON to destination.
// The document is written to a temp file in the same directory and renamed into place,
// so readers never see a partial file.
func (w *implWriter) Write(record models.OutputRecord, destination string) (models.OutputRecord, error) {
	if record.GeneratedAt.IsZero() {
		record.GeneratedAt = w.now()
	}
	if record.SummaryPoints == nil {
		record.SummaryPoints = []string{}
	}
	if record.ActionsList == nil {
		record.ActionsList = []string{}
	}

	data, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return models.OutputRecord{}, fmt.Errorf("encode record: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(destination)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return models.OutputRecord{}, fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(destination)+".tmp-*")
	if err != nil {
		return models.OutputRecord{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return models.OutputRecord{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return models.OutputRecord{}, fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return models.OutputRecord{}, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return models.OutputRecord{}, fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destination); err != nil {
		return models.OutputRecord{}, fmt.Errorf("rename into place: %w", err)
	}

	committed = true
	return record, nil
}
