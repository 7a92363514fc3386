package models

// Roadmap describes a career path: what the role does, what to learn,
// which tools to pick up, and the usual progression.
type Roadmap struct {
	Career      string   `json:"career"`
	Overview    string   `json:"overview"`
	CoreSkills  []string `json:"core_skills"`
	Tools       []string `json:"tools"`
	Progression []string `json:"progression"`
}

// StudyPlan is skill-level guidance with a career-specific note.
type StudyPlan struct {
	SkillLevel SkillLevel `json:"skill_level"`
	Focus      string     `json:"focus"`
	Actions    []string   `json:"actions"`
	CareerNote string     `json:"career_note"`
}
