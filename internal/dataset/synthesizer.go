package dataset

import (
	"math"
	"math/rand"

	"github.com/advisorlabs/course-advisor/internal/models"
)

// Default value sets the synthesizer samples from. The label rule only
// inspects career_goal, so interest, cgpa and skill_level carry no
// predictive signal; that is an intentional property of the toy dataset.
var (
	DefaultInterests = []string{"Data Science", "Business", "Computer Science"}
	DefaultCareers   = []string{"Data Analyst", "Software Engineer", "Business Analyst"}
	DefaultSkills    = []string{"Beginner", "Intermediate", "Advanced"}
)

// Synthesizer generates labeled training rows from fixed value sets.
type Synthesizer struct {
	interests []string
	careers   []string
	skills    []string
}

// NewSynthesizer builds a synthesizer over the default value sets.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		interests: DefaultInterests,
		careers:   DefaultCareers,
		skills:    DefaultSkills,
	}
}

// NewSynthesizerWithSets overrides the sampled value sets; empty slices
// keep the defaults.
func NewSynthesizerWithSets(interests, careers, skills []string) *Synthesizer {
	s := NewSynthesizer()
	if len(interests) > 0 {
		s.interests = interests
	}
	if len(careers) > 0 {
		s.careers = careers
	}
	if len(skills) > 0 {
		s.skills = skills
	}
	return s
}

// Generate produces n training rows from the given seed. cgpa is uniform
// over [2.5, 4.0] rounded to two decimals; categorical fields are drawn
// uniformly with replacement. The same seed always yields the same rows.
func (s *Synthesizer) Generate(n int, seed int64) []models.TrainingRow {
	rng := rand.New(rand.NewSource(seed))

	rows := make([]models.TrainingRow, n)
	for i := range rows {
		profile := models.Profile{
			CGPA:       roundTo(models.CGPAMin+rng.Float64()*(models.CGPAMax-models.CGPAMin), 2),
			Interest:   s.interests[rng.Intn(len(s.interests))],
			CareerGoal: s.careers[rng.Intn(len(s.careers))],
			SkillLevel: s.skills[rng.Intn(len(s.skills))],
		}
		rows[i] = models.TrainingRow{
			Profile:             profile,
			RecommendedCategory: LabelFor(profile.CareerGoal),
		}
	}
	return rows
}

// LabelFor is the deterministic labeling rule: Data Analyst maps to Data,
// Software Engineer to Programming, everything else to Business.
func LabelFor(careerGoal string) models.Category {
	switch careerGoal {
	case "Data Analyst":
		return models.CategoryData
	case "Software Engineer":
		return models.CategoryProgramming
	default:
		return models.CategoryBusiness
	}
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
