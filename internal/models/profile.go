package models

import (
	"errors"
	"fmt"
)

type Category string
type SkillLevel string

const (
	CategoryData        Category = "Data"
	CategoryProgramming Category = "Programming"
	CategoryBusiness    Category = "Business"
)

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
)

const (
	CGPAMin = 2.5
	CGPAMax = 4.0
)

// Careers is the closed set of career goals the advisory surface offers.
// The encoder itself accepts any string; values outside the trained
// vocabulary degrade to a zero indicator block.
var Careers = []string{
	"Data Analyst",
	"Data Scientist",
	"Software Engineer",
	"AI / ML Engineer",
	"Business Analyst",
	"Cybersecurity Analyst",
	"Product Manager",
}

// Profile is the four-field student input to a recommendation request.
type Profile struct {
	CGPA       float64 `json:"cgpa"`
	Interest   string  `json:"interest"`
	CareerGoal string  `json:"career_goal"`
	SkillLevel string  `json:"skill_level"`
}

// Validate performs basic validation on the profile
func (p *Profile) Validate() error {
	if p.CGPA < CGPAMin || p.CGPA > CGPAMax {
		return fmt.Errorf("cgpa must be between %.1f and %.1f, got %.2f", CGPAMin, CGPAMax, p.CGPA)
	}

	if p.Interest == "" {
		return errors.New("interest is required")
	}

	if p.CareerGoal == "" {
		return errors.New("career goal is required")
	}

	if p.SkillLevel == "" {
		return errors.New("skill level is required")
	}

	return nil
}

// TrainingRow is one synthetic sample: a profile plus the category label
// derived from its career goal.
type TrainingRow struct {
	Profile
	RecommendedCategory Category `json:"recommended_category"`
}

// Recommendation is the result of a single inference request.
type Recommendation struct {
	PredictedCategory Category `json:"predicted_category"`
	CourseTitle       string   `json:"course_title"`
	Institution       string   `json:"institution"`
}

// CategoryCount is one bar of the catalog distribution chart.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}
