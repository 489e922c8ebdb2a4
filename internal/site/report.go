package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// BuildReport captures high-level metrics about a site generation run. It is
// written as build-report.json into the output directory so deploy tooling can
// inspect what a run produced.
type BuildReport struct {
	BuildID    string    `json:"build_id"`
	Repository string    `json:"repository"`
	Posts      int       `json:"posts"`
	Published  int       `json:"published"`
	Drafts     int       `json:"drafts"`
	Assets     int       `json:"assets"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	DurationMS int64     `json:"duration_ms"`
}

// NewBuildReport starts a report for a repository build.
func NewBuildReport(repository string) *BuildReport {
	return &BuildReport{
		BuildID:    uuid.NewString(),
		Repository: repository,
		Start:      time.Now(),
	}
}

// Finish stamps the end time and duration.
func (r *BuildReport) Finish() {
	r.End = time.Now()
	r.DurationMS = r.End.Sub(r.Start).Milliseconds()
}

// Write persists the report as build-report.json in the output directory.
func (r *BuildReport) Write(outputDir string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal build report: %w", err)
	}

	path := filepath.Join(outputDir, "build-report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write build report: %w", err)
	}
	return nil
}
