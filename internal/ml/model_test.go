package ml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorlabs/course-advisor/internal/models"
)

func TestModelSaveLoadRoundTrip(t *testing.T) {
	model := fittedModel(t)
	path := filepath.Join(t.TempDir(), "course_model.json")

	require.NoError(t, model.Save(path))

	loaded, err := LoadModel(path)
	require.NoError(t, err)

	assert.Equal(t, model.Encoder, loaded.Encoder)
	assert.Equal(t, model.Classifier.Classes, loaded.Classifier.Classes)
	assert.Equal(t, model.Classifier.Weights, loaded.Classifier.Weights)
	assert.Equal(t, model.Classifier.Intercept, loaded.Classifier.Intercept)
	assert.Equal(t, model.Rows, loaded.Rows)
	assert.Equal(t, model.Seed, loaded.Seed)

	profile := models.Profile{
		CGPA:       3.7,
		Interest:   "Data Science",
		CareerGoal: "Data Analyst",
		SkillLevel: "Advanced",
	}

	want, err := model.Predict(profile)
	require.NoError(t, err)
	got, err := loaded.Predict(profile)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadModelRejectsIncompleteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"encoder": null, "classifier": null}`), 0o644))

	_, err := LoadModel(path)
	assert.Error(t, err)
}

func TestTrainRejectsEmptyDataset(t *testing.T) {
	_, err := Train(nil, 42, 1000)
	assert.Error(t, err)
}
