package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/advisorlabs/course-advisor/internal/models"
	"github.com/advisorlabs/course-advisor/pkg/logger"
)

// Model is the trained artifact: the frozen encoder vocabulary plus the
// fitted classifier. It is written once by the offline training step and
// loaded read-only at server startup; it is never mutated after training.
type Model struct {
	Encoder    *OneHotEncoder      `json:"encoder"`
	Classifier *LogisticRegression `json:"classifier"`
	TrainedAt  time.Time           `json:"trained_at"`
	Rows       int                 `json:"rows"`
	Seed       int64               `json:"seed"`
}

// Train fits the encoder and classifier on the synthetic rows.
func Train(rows []models.TrainingRow, seed int64, maxIter int) (*Model, error) {
	log := logger.WithComponent("training")

	if len(rows) == 0 {
		return nil, fmt.Errorf("cannot train on an empty dataset")
	}

	encoder := FitEncoder(rows)
	features := encoder.TransformAll(rows)

	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = string(row.RecommendedCategory)
	}

	classifier := NewLogisticRegression(maxIter)
	if err := classifier.Fit(features, labels); err != nil {
		return nil, fmt.Errorf("failed to fit classifier: %w", err)
	}

	log.Info().
		Int("rows", len(rows)).
		Int("features", encoder.Width()).
		Strs("classes", classifier.Classes).
		Int("iterations", classifier.Iters).
		Bool("converged", classifier.Converged).
		Msg("Model trained")

	return &Model{
		Encoder:    encoder,
		Classifier: classifier,
		TrainedAt:  time.Now().UTC(),
		Rows:       len(rows),
		Seed:       seed,
	}, nil
}

// Predict encodes the profile and returns the predicted category. The
// result is always one of the categories seen at training time, even for
// profiles whose categorical fields were never observed.
func (m *Model) Predict(profile models.Profile) (models.Category, error) {
	label, err := m.Classifier.Predict(m.Encoder.Transform(profile))
	if err != nil {
		return "", err
	}
	return models.Category(label), nil
}

// Save writes the artifact as JSON to path.
func (m *Model) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize model: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model artifact: %w", err)
	}
	return nil
}

// LoadModel reads an artifact written by Save. The format is private to
// this package; there is no cross-version guarantee.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}
	if model.Encoder == nil || model.Classifier == nil || len(model.Classifier.Classes) == 0 {
		return nil, fmt.Errorf("model artifact at %s is incomplete", path)
	}
	return &model, nil
}
