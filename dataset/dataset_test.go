package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/sample"
)

func newItem(t *testing.T, name string, bools map[string]bool, size float64) *item.Item {
	t.Helper()
	return item.New(catalog.Default(), name, "", bools, map[string]float64{"size": size})
}

func controlSample(t *testing.T) *sample.Sample {
	t.Helper()
	g := grid.MustNew(2, 2)
	require.NoError(t, g.Set(newItem(t, "car_red", map[string]bool{"car": true, "red": true}, 2), 0, 0))

	q := &question.Question{
		TargetType: "car",
		Filter:     map[string]bool{"car": true},
		RuleKind:   question.KindNone,
	}
	answer, err := q.FindTarget(g)
	require.NoError(t, err)

	s, err := sample.New(g, q, answer, nil, question.KindNone, false)
	require.NoError(t, err)
	return s
}

func testSample(t *testing.T) *sample.Sample {
	t.Helper()
	g := grid.MustNew(2, 2)
	require.NoError(t, g.Set(newItem(t, "car_small", map[string]bool{"car": true, "red": true}, 1), 0, 0))
	require.NoError(t, g.Set(newItem(t, "car_large", map[string]bool{"car": true, "red": true}, 3), 1, 1))
	require.NoError(t, g.SetOccluded(1, 1, true))

	q := &question.Question{
		TargetType:        "car",
		Filter:            map[string]bool{"car": true},
		Rule:              question.Largest,
		SelectionProperty: "size",
		RuleKind:          question.KindSizeRelated,
	}
	answer, err := q.FindTarget(g)
	require.NoError(t, err)

	s, err := sample.New(g, q, answer, nil, question.KindSizeRelated, false)
	require.NoError(t, err)
	return s
}

func buildFixture(t *testing.T) *Dataset {
	t.Helper()
	d, err := Build("unit",
		[]*sample.Sample{controlSample(t), controlSample(t)},
		[]*sample.Sample{testSample(t)})
	require.NoError(t, err)
	return d
}

func TestBuildAssignsSequentialIDs(t *testing.T) {
	d := buildFixture(t)

	assert.Equal(t, "unit", d.Name)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, 3, d.TotalSamples)
	assert.Equal(t, 2, d.ControlSamples)
	assert.Equal(t, 1, d.TestSamples)

	require.Len(t, d.Samples, 3)
	for i, rec := range d.Samples {
		assert.Equal(t, i, rec.SampleID)
	}
	assert.Equal(t, sample.TypeControl, d.Samples[0].SampleType)
	assert.Equal(t, sample.TypeControl, d.Samples[1].SampleType)
	assert.Equal(t, sample.TypeTest, d.Samples[2].SampleType)
	assert.False(t, d.Samples[0].Answers.IsAmbiguous)
	assert.True(t, d.Samples[2].Answers.IsAmbiguous)
}

func TestBuildRejectsEmptyName(t *testing.T) {
	_, err := Build("", nil, []*sample.Sample{testSample(t)})
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestValidateCatchesTampering(t *testing.T) {
	cases := []struct {
		name    string
		tamper  func(d *Dataset)
		message string
	}{
		{"wrong total", func(d *Dataset) { d.TotalSamples = 7 }, "total_samples (7)"},
		{"bad sample type", func(d *Dataset) { d.Samples[0].SampleType = "calibration" }, `sample_type must be "control" or "test"`},
		{"negative id", func(d *Dataset) { d.Samples[1].SampleID = -4 }, "sample_id must be non-negative"},
		{"bad rule kind", func(d *Dataset) { d.Samples[0].SelectionRuleType = "psychic" }, `unknown selection_rule_type "psychic"`},
		{"mislabelled test", func(d *Dataset) { d.Samples[2].Answers.IsAmbiguous = false }, "test sample not marked ambiguous"},
		{"mislabelled control", func(d *Dataset) { d.Samples[0].Answers.IsAmbiguous = true }, "control sample marked ambiguous"},
		{"truncated grid", func(d *Dataset) { d.Samples[0].Grid.Items = d.Samples[0].Grid.Items[:2] }, "grid has 2 cell entries, want 4"},
		{"empty answers", func(d *Dataset) { d.Samples[0].Answers.ParticipantCoordinates = nil }, "participant answer list is empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := buildFixture(t)
			tc.tamper(d)
			err := d.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsConfigError(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := buildFixture(t)
	dir := t.TempDir()

	path, err := d.Save(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "unit", "unit.json"), path)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d.ID, loaded.ID)
	assert.Equal(t, d.TotalSamples, loaded.TotalSamples)
	require.Len(t, loaded.Samples, 3)
	assert.Equal(t, d.Samples[2].Question.NaturalLanguage, loaded.Samples[2].Question.NaturalLanguage)
	assert.Equal(t, d.Samples[2].Answers.ParticipantCoordinates, loaded.Samples[2].Answers.ParticipantCoordinates)
}

func TestSaveRefusesOverwrite(t *testing.T) {
	d := buildFixture(t)
	dir := t.TempDir()

	_, err := d.Save(dir)
	require.NoError(t, err)

	_, err = d.Save(dir)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "already exists")
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	garbled := filepath.Join(dir, "garbled.json")
	require.NoError(t, os.WriteFile(garbled, []byte("{not json"), 0o644))
	_, err = Load(garbled)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "invalid JSON")
}
