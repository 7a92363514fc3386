package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/advisorlabs/course-advisor/internal/catalog"
	"github.com/advisorlabs/course-advisor/internal/mocks"
	"github.com/advisorlabs/course-advisor/internal/models"
	"github.com/advisorlabs/course-advisor/internal/services"
)

func validProfile() models.Profile {
	return models.Profile{
		CGPA:       3.7,
		Interest:   "Data Science",
		CareerGoal: "Data Analyst",
		SkillLevel: "Advanced",
	}
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves category to course and institution", func(t *testing.T) {
		predictor := new(mocks.MockPredictor)
		store := new(mocks.MockCatalogStore)
		service := services.NewAdvisorService(predictor, store)

		predictor.On("Predict", validProfile()).Return(models.CategoryData, nil)
		store.On("FirstMatch", []string{"data", "analytics"}).Return("Intro to Data Analytics", nil)

		rec, err := service.Recommend(ctx, validProfile())
		require.NoError(t, err)

		assert.Equal(t, models.CategoryData, rec.PredictedCategory)
		assert.Equal(t, "Intro to Data Analytics", rec.CourseTitle)
		assert.Equal(t, "University of Michigan / Google / IBM", rec.Institution)
		predictor.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("rejects invalid profiles", func(t *testing.T) {
		predictor := new(mocks.MockPredictor)
		store := new(mocks.MockCatalogStore)
		service := services.NewAdvisorService(predictor, store)

		tests := []struct {
			name    string
			profile models.Profile
		}{
			{name: "cgpa below range", profile: models.Profile{CGPA: 2.0, Interest: "Business", CareerGoal: "Business Analyst", SkillLevel: "Beginner"}},
			{name: "cgpa above range", profile: models.Profile{CGPA: 4.5, Interest: "Business", CareerGoal: "Business Analyst", SkillLevel: "Beginner"}},
			{name: "missing interest", profile: models.Profile{CGPA: 3.0, CareerGoal: "Business Analyst", SkillLevel: "Beginner"}},
			{name: "missing career goal", profile: models.Profile{CGPA: 3.0, Interest: "Business", SkillLevel: "Beginner"}},
			{name: "missing skill level", profile: models.Profile{CGPA: 3.0, Interest: "Business", CareerGoal: "Business Analyst"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Recommend(ctx, tt.profile)
				assert.ErrorIs(t, err, services.ErrInvalidProfile)
			})
		}

		predictor.AssertNotCalled(t, "Predict", mock.Anything)
	})

	t.Run("surfaces catalog miss as ErrCourseNotFound", func(t *testing.T) {
		predictor := new(mocks.MockPredictor)
		store := new(mocks.MockCatalogStore)
		service := services.NewAdvisorService(predictor, store)

		predictor.On("Predict", validProfile()).Return(models.CategoryData, nil)
		store.On("FirstMatch", []string{"data", "analytics"}).Return("", catalog.ErrNoMatch)

		_, err := service.Recommend(ctx, validProfile())
		assert.ErrorIs(t, err, services.ErrCourseNotFound)
	})
}

func TestCourseForFallsBackToBusinessKeywords(t *testing.T) {
	predictor := new(mocks.MockPredictor)
	store := new(mocks.MockCatalogStore)
	service := services.NewAdvisorService(predictor, store)

	// Anything outside the trained categories resolves via the business
	// keyword group.
	store.On("FirstMatch", []string{"business", "management"}).Return("Business Foundations", nil)

	title, err := service.CourseFor(models.Category("Astrology"))
	require.NoError(t, err)
	assert.Equal(t, "Business Foundations", title)
}

func TestInstitutionFor(t *testing.T) {
	service := services.NewAdvisorService(nil, nil)

	tests := []struct {
		category models.Category
		want     string
	}{
		{category: models.CategoryData, want: "University of Michigan / Google / IBM"},
		{category: models.CategoryProgramming, want: "Harvard University (CS50) / MIT"},
		{category: models.CategoryBusiness, want: "Wharton School / INSEAD"},
		{category: models.Category("Astrology"), want: "Top Global University"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, service.InstitutionFor(tt.category))
		})
	}
}

func TestTrends(t *testing.T) {
	predictor := new(mocks.MockPredictor)
	store := new(mocks.MockCatalogStore)
	service := services.NewAdvisorService(predictor, store)

	store.On("CountMatching", []string{"data", "analytics"}).Return(6)
	store.On("CountMatching", []string{"python", "program", "software"}).Return(4)
	store.On("CountMatching", []string{"business", "management"}).Return(5)

	counts := service.Trends()

	assert.Equal(t, []models.CategoryCount{
		{Category: models.CategoryData, Count: 6},
		{Category: models.CategoryProgramming, Count: 4},
		{Category: models.CategoryBusiness, Count: 5},
	}, counts)
}

func TestCatalogPreview(t *testing.T) {
	predictor := new(mocks.MockPredictor)
	store := new(mocks.MockCatalogStore)
	service := services.NewAdvisorService(predictor, store)

	titles := []string{"A", "B", "C"}
	store.On("Titles").Return(titles)

	assert.Equal(t, []string{"A", "B"}, service.CatalogPreview(2))
	assert.Equal(t, titles, service.CatalogPreview(0))
	assert.Equal(t, titles, service.CatalogPreview(10))
}

func TestAdvisoryLookups(t *testing.T) {
	service := services.NewAdvisorService(nil, nil)

	roadmap := service.Roadmap("Data Analyst")
	assert.Equal(t, "Data Analyst", roadmap.Career)
	assert.NotEmpty(t, roadmap.CoreSkills)

	plan := service.StudyPlan(models.SkillBeginner, "Data Analyst")
	assert.Equal(t, "Build strong fundamentals", plan.Focus)
	assert.NotEmpty(t, plan.CareerNote)
}
