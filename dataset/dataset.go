// Package dataset assembles generated samples into persistent dataset
// files and validates their structure on both the write and read paths.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/logger"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/sample"
)

// Dataset is a complete batch of flattened samples plus its metadata
// header, matching the on-disk JSON layout.
type Dataset struct {
	Name           string          `json:"dataset_name"`
	ID             string          `json:"dataset_id"`
	TotalSamples   int             `json:"total_samples"`
	ControlSamples int             `json:"control_samples"`
	TestSamples    int             `json:"test_samples"`
	Samples        []sample.Record `json:"samples"`
}

// Build flattens control samples then test samples under sequential ids
// starting at zero, control first.
func Build(name string, control, test []*sample.Sample) (*Dataset, error) {
	if name == "" {
		return nil, errors.NewConfigErrorf("dataset name must not be empty")
	}

	d := &Dataset{
		Name:           name,
		ID:             uuid.NewString(),
		TotalSamples:   len(control) + len(test),
		ControlSamples: len(control),
		TestSamples:    len(test),
		Samples:        make([]sample.Record, 0, len(control)+len(test)),
	}

	id := 0
	for _, s := range control {
		rec, err := s.ToRecord(id, sample.TypeControl)
		if err != nil {
			return nil, err
		}
		d.Samples = append(d.Samples, rec)
		id++
	}
	for _, s := range test {
		rec, err := s.ToRecord(id, sample.TypeTest)
		if err != nil {
			return nil, err
		}
		d.Samples = append(d.Samples, rec)
		id++
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the header arithmetic and every sample record. All
// problems are collected so one pass reports everything wrong.
func (d *Dataset) Validate() error {
	var problems []string

	if d.Name == "" {
		problems = append(problems, "dataset name must not be empty")
	}
	if d.ControlSamples < 0 || d.TestSamples < 0 {
		problems = append(problems, "sample counts must be non-negative")
	}
	if d.TotalSamples != d.ControlSamples+d.TestSamples {
		problems = append(problems, fmt.Sprintf(
			"total_samples (%d) != control_samples + test_samples (%d)",
			d.TotalSamples, d.ControlSamples+d.TestSamples))
	}
	if len(d.Samples) != d.TotalSamples {
		problems = append(problems, fmt.Sprintf(
			"found %d samples, header says %d", len(d.Samples), d.TotalSamples))
	}

	controlCount, testCount := 0, 0
	for i := range d.Samples {
		rec := &d.Samples[i]
		switch rec.SampleType {
		case sample.TypeControl:
			controlCount++
		case sample.TypeTest:
			testCount++
		default:
			problems = append(problems, fmt.Sprintf(
				"sample %d: sample_type must be %q or %q, got %q",
				i, sample.TypeControl, sample.TypeTest, rec.SampleType))
		}
		problems = append(problems, validateRecord(i, rec)...)
	}
	if controlCount != d.ControlSamples {
		problems = append(problems, fmt.Sprintf(
			"found %d control samples, expected %d", controlCount, d.ControlSamples))
	}
	if testCount != d.TestSamples {
		problems = append(problems, fmt.Sprintf(
			"found %d test samples, expected %d", testCount, d.TestSamples))
	}

	if len(problems) > 0 {
		return errors.NewConfigErrorf("dataset validation failed:\n  - %s",
			strings.Join(problems, "\n  - "))
	}
	return nil
}

func validateRecord(i int, rec *sample.Record) []string {
	var problems []string

	if rec.SampleID < 0 {
		problems = append(problems, fmt.Sprintf("sample %d: sample_id must be non-negative", i))
	}
	if _, err := question.ParseRuleKind(rec.SelectionRuleType); err != nil {
		problems = append(problems, fmt.Sprintf(
			"sample %d: unknown selection_rule_type %q", i, rec.SelectionRuleType))
	}
	if rec.Question.Type != sample.QuestionStandard && rec.Question.Type != sample.QuestionRelational {
		problems = append(problems, fmt.Sprintf(
			"sample %d: question_type must be %q or %q, got %q",
			i, sample.QuestionStandard, sample.QuestionRelational, rec.Question.Type))
	}

	if rec.Grid.Width <= 0 || rec.Grid.Height <= 0 {
		problems = append(problems, fmt.Sprintf("sample %d: grid dimensions must be positive", i))
	} else if len(rec.Grid.Items) != rec.Grid.Width*rec.Grid.Height {
		problems = append(problems, fmt.Sprintf(
			"sample %d: grid has %d cell entries, want %d",
			i, len(rec.Grid.Items), rec.Grid.Width*rec.Grid.Height))
	}

	if len(rec.Answers.ParticipantCoordinates) == 0 {
		problems = append(problems, fmt.Sprintf("sample %d: participant answer list is empty", i))
	}
	if len(rec.Answers.DirectorCoordinates) == 0 {
		problems = append(problems, fmt.Sprintf("sample %d: director answer list is empty", i))
	}

	// The label and the stored ambiguity flag must agree: control samples
	// read the same from both viewpoints, test samples must not.
	switch rec.SampleType {
	case sample.TypeControl:
		if rec.Answers.IsAmbiguous {
			problems = append(problems, fmt.Sprintf("sample %d: control sample marked ambiguous", i))
		}
	case sample.TypeTest:
		if !rec.Answers.IsAmbiguous {
			problems = append(problems, fmt.Sprintf("sample %d: test sample not marked ambiguous", i))
		}
	}

	return problems
}

// Save writes the dataset to dir/<name>/<name>.json and returns the file
// path. An existing dataset file is never overwritten.
func (d *Dataset) Save(dir string) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	datasetDir := filepath.Join(dir, d.Name)
	path := filepath.Join(datasetDir, d.Name+".json")
	if _, err := os.Stat(path); err == nil {
		return "", errors.NewConfigErrorf("dataset file already exists: %s", path)
	}
	if err := os.MkdirAll(datasetDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating dataset directory %s", datasetDir)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", errors.Wrapf(err, "encoding dataset %s", d.Name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "writing dataset file %s", path)
	}

	logger.Infow("dataset saved",
		"name", d.Name,
		"path", path,
		"total_samples", d.TotalSamples)
	return path, nil
}

// Load reads and validates a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading dataset file %s", path)
	}

	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.NewConfigErrorf("invalid JSON in dataset file %s: %v", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, errors.Wrapf(err, "dataset validation failed for %s", path)
	}
	return &d, nil
}
