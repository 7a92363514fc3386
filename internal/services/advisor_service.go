package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/advisorlabs/course-advisor/internal/advisory"
	"github.com/advisorlabs/course-advisor/internal/catalog"
	"github.com/advisorlabs/course-advisor/internal/models"
	"github.com/advisorlabs/course-advisor/pkg/logger"
)

var (
	ErrInvalidProfile = errors.New("invalid profile data")
	ErrCourseNotFound = errors.New("no catalog course matches the predicted category")
)

// categoryKeywords resolves a predicted category to the catalog keyword
// group used for title matching. Anything outside the trained categories
// falls through to the Business group.
var categoryKeywords = map[models.Category][]string{
	models.CategoryData:        {"data", "analytics"},
	models.CategoryProgramming: {"python", "program", "software"},
	models.CategoryBusiness:    {"business", "management"},
}

var institutions = map[models.Category]string{
	models.CategoryData:        "University of Michigan / Google / IBM",
	models.CategoryProgramming: "Harvard University (CS50) / MIT",
	models.CategoryBusiness:    "Wharton School / INSEAD",
}

const defaultInstitution = "Top Global University"

// Predictor is the trained-model dependency of the advisor.
type Predictor interface {
	Predict(profile models.Profile) (models.Category, error)
}

// CatalogStore is the catalog dependency of the advisor.
type CatalogStore interface {
	FirstMatch(keywords []string) (string, error)
	CountMatching(keywords []string) int
	Titles() []string
	Len() int
}

// AdvisorService answers recommendation, advisory and trend requests. All
// its dependencies are loaded once at startup and read-only, so a single
// instance is safe for concurrent requests.
type AdvisorService struct {
	model   Predictor
	catalog CatalogStore
}

func NewAdvisorService(model Predictor, store CatalogStore) *AdvisorService {
	return &AdvisorService{
		model:   model,
		catalog: store,
	}
}

// Recommend predicts the course category for a profile and resolves it to
// a concrete course title and suggested institution.
func (s *AdvisorService) Recommend(ctx context.Context, profile models.Profile) (*models.Recommendation, error) {
	log := logger.WithComponent("advisor")

	if err := profile.Validate(); err != nil {
		log.Debug().
			Float64("cgpa", profile.CGPA).
			Str("career_goal", profile.CareerGoal).
			Err(err).
			Msg("Invalid profile")
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	category, err := s.model.Predict(profile)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}

	title, err := s.CourseFor(category)
	if err != nil {
		log.Warn().
			Str("category", string(category)).
			Msg("No catalog course for predicted category")
		return nil, err
	}

	log.Debug().
		Str("category", string(category)).
		Str("course", title).
		Str("career_goal", profile.CareerGoal).
		Msg("Recommendation resolved")

	return &models.Recommendation{
		PredictedCategory: category,
		CourseTitle:       title,
		Institution:       s.InstitutionFor(category),
	}, nil
}

// CourseFor returns the first catalog title, in file order, matching the
// category's keyword group. Returns ErrCourseNotFound when the catalog has
// no matching entry; callers surface that instead of a default title.
func (s *AdvisorService) CourseFor(category models.Category) (string, error) {
	title, err := s.catalog.FirstMatch(keywordsFor(category))
	if err != nil {
		if errors.Is(err, catalog.ErrNoMatch) {
			return "", ErrCourseNotFound
		}
		return "", err
	}
	return title, nil
}

// InstitutionFor returns the suggested institution for a category. It
// never fails; unmapped categories get the documented default.
func (s *AdvisorService) InstitutionFor(category models.Category) string {
	if name, ok := institutions[category]; ok {
		return name
	}
	return defaultInstitution
}

// Roadmap returns the career roadmap for a career goal.
func (s *AdvisorService) Roadmap(career string) models.Roadmap {
	return advisory.RoadmapFor(career)
}

// StudyPlan returns the study plan for a skill level and career goal.
func (s *AdvisorService) StudyPlan(skill models.SkillLevel, career string) models.StudyPlan {
	return advisory.StudyPlanFor(skill, career)
}

// Trends counts catalog entries per category keyword group for the
// distribution chart.
func (s *AdvisorService) Trends() []models.CategoryCount {
	categories := []models.Category{
		models.CategoryData,
		models.CategoryProgramming,
		models.CategoryBusiness,
	}

	counts := make([]models.CategoryCount, 0, len(categories))
	for _, c := range categories {
		counts = append(counts, models.CategoryCount{
			Category: c,
			Count:    s.catalog.CountMatching(keywordsFor(c)),
		})
	}
	return counts
}

// CatalogPreview returns the first limit catalog titles in file order.
func (s *AdvisorService) CatalogPreview(limit int) []string {
	titles := s.catalog.Titles()
	if limit <= 0 || limit > len(titles) {
		return titles
	}
	return titles[:limit]
}

func keywordsFor(category models.Category) []string {
	if kws, ok := categoryKeywords[category]; ok {
		return kws
	}
	return categoryKeywords[models.CategoryBusiness]
}
