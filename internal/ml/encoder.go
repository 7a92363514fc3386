package ml

import (
	"sort"

	"github.com/advisorlabs/course-advisor/internal/models"
)

// OneHotEncoder maps a profile to a fixed-width feature vector: one-hot
// blocks for interest, career_goal and skill_level followed by the cgpa
// passthrough. The vocabulary is frozen at fit time and serialized with
// the model; it is never recomputed at inference time, otherwise columns
// could shift out from under the classifier weights.
type OneHotEncoder struct {
	Interests   []string `json:"interests"`
	CareerGoals []string `json:"career_goals"`
	SkillLevels []string `json:"skill_levels"`
}

// FitEncoder builds the encoder vocabulary from the training rows. Values
// are sorted so column positions are reproducible across runs.
func FitEncoder(rows []models.TrainingRow) *OneHotEncoder {
	return &OneHotEncoder{
		Interests:   uniqueSorted(rows, func(r models.TrainingRow) string { return r.Interest }),
		CareerGoals: uniqueSorted(rows, func(r models.TrainingRow) string { return r.CareerGoal }),
		SkillLevels: uniqueSorted(rows, func(r models.TrainingRow) string { return r.SkillLevel }),
	}
}

// Width returns the encoded vector length.
func (e *OneHotEncoder) Width() int {
	return len(e.Interests) + len(e.CareerGoals) + len(e.SkillLevels) + 1
}

// Transform encodes a profile. A categorical value absent from the
// training vocabulary contributes an all-zero block; it never errors.
func (e *OneHotEncoder) Transform(p models.Profile) []float64 {
	vec := make([]float64, 0, e.Width())
	vec = append(vec, oneHot(e.Interests, p.Interest)...)
	vec = append(vec, oneHot(e.CareerGoals, p.CareerGoal)...)
	vec = append(vec, oneHot(e.SkillLevels, p.SkillLevel)...)
	vec = append(vec, p.CGPA)
	return vec
}

// TransformAll encodes a batch of training rows in order.
func (e *OneHotEncoder) TransformAll(rows []models.TrainingRow) [][]float64 {
	features := make([][]float64, len(rows))
	for i, row := range rows {
		features[i] = e.Transform(row.Profile)
	}
	return features
}

func oneHot(vocab []string, value string) []float64 {
	block := make([]float64, len(vocab))
	for i, v := range vocab {
		if v == value {
			block[i] = 1
			break
		}
	}
	return block
}

func uniqueSorted(rows []models.TrainingRow, field func(models.TrainingRow) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, row := range rows {
		v := field(row)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}
