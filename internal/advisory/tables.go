package advisory

import (
	"github.com/advisorlabs/course-advisor/internal/models"
)

// roadmaps keys the career guidance table by career goal.
var roadmaps = map[string]models.Roadmap{
	"Data Analyst": {
		Overview:    "Analyze structured data to support operational and strategic decisions.",
		CoreSkills:  []string{"Statistics and probability", "SQL and Python", "Data visualization"},
		Tools:       []string{"Excel", "SQL", "Python", "Power BI"},
		Progression: []string{"Junior Data Analyst", "Senior Data Analyst", "Data Scientist"},
	},
	"Data Scientist": {
		Overview:    "Develop predictive models and advanced analytics solutions.",
		CoreSkills:  []string{"Machine learning", "Advanced statistics", "Big data processing"},
		Tools:       []string{"Python", "R", "TensorFlow", "Spark"},
		Progression: []string{"Data Scientist", "Senior Data Scientist", "AI Engineer"},
	},
	"Software Engineer": {
		Overview:    "Design, build, and maintain scalable software systems.",
		CoreSkills:  []string{"Algorithms and data structures", "System design", "Software testing"},
		Tools:       []string{"Python", "Java", "Git", "Docker"},
		Progression: []string{"Junior Software Engineer", "Senior Software Engineer", "Technical Lead"},
	},
	"AI / ML Engineer": {
		Overview:    "Deploy and optimize AI and machine learning systems.",
		CoreSkills:  []string{"Deep learning", "Model optimization", "MLOps"},
		Tools:       []string{"PyTorch", "TensorFlow", "MLflow"},
		Progression: []string{"ML Engineer", "AI Engineer", "AI Architect"},
	},
	"Business Analyst": {
		Overview:    "Translate business problems into data-driven solutions.",
		CoreSkills:  []string{"Business analysis", "Decision modeling", "Communication"},
		Tools:       []string{"Excel", "SQL", "Power BI"},
		Progression: []string{"Business Analyst", "Senior BA", "Product Manager"},
	},
	"Cybersecurity Analyst": {
		Overview:    "Protect systems and data from cyber threats.",
		CoreSkills:  []string{"Network security", "Risk assessment", "Incident response"},
		Tools:       []string{"Wireshark", "Metasploit", "SIEM tools"},
		Progression: []string{"Security Analyst", "Security Engineer", "Security Architect"},
	},
	"Product Manager": {
		Overview:    "Define product vision and coordinate cross-functional teams.",
		CoreSkills:  []string{"Product strategy", "User research", "Stakeholder management"},
		Tools:       []string{"JIRA", "Figma", "Analytics tools"},
		Progression: []string{"Associate PM", "Product Manager", "Senior PM"},
	},
}

// skillFocus keys the study-plan table by skill level.
var skillFocus = map[models.SkillLevel]struct {
	focus   string
	actions []string
}{
	models.SkillBeginner: {
		focus:   "Build strong fundamentals",
		actions: []string{"Take introductory courses", "Practice basic exercises", "Learn core tools"},
	},
	models.SkillIntermediate: {
		focus:   "Apply knowledge practically",
		actions: []string{"Complete hands-on projects", "Work with real datasets", "Participate in internships"},
	},
	models.SkillAdvanced: {
		focus:   "Specialize and master skills",
		actions: []string{"Advanced coursework", "Research papers", "Capstone projects"},
	},
}

var careerNotes = map[string]string{
	"Data Analyst":          "Focus on dashboards and business reporting.",
	"Data Scientist":        "Improve model tuning and feature engineering.",
	"Software Engineer":     "Practice system design and scalability.",
	"AI / ML Engineer":      "Deploy and optimize ML pipelines.",
	"Business Analyst":      "Strengthen decision analysis and communication.",
	"Cybersecurity Analyst": "Practice penetration testing and monitoring.",
	"Product Manager":       "Work on product case studies and roadmaps.",
}

// RoadmapFor returns the career roadmap for a career goal. Unknown careers
// get an explicit zero-value roadmap carrying just the career name, never
// an error; advisory lookups must not block the recommendation flow.
func RoadmapFor(career string) models.Roadmap {
	roadmap, ok := roadmaps[career]
	if !ok {
		return models.Roadmap{Career: career}
	}
	roadmap.Career = career
	return roadmap
}

// StudyPlanFor returns skill-level guidance plus a career-specific note.
// Unknown skill levels or careers produce a plan with the known parts
// filled in and the rest left empty.
func StudyPlanFor(skill models.SkillLevel, career string) models.StudyPlan {
	plan := models.StudyPlan{SkillLevel: skill}

	if general, ok := skillFocus[skill]; ok {
		plan.Focus = general.focus
		plan.Actions = append([]string(nil), general.actions...)
	}
	if note, ok := careerNotes[career]; ok {
		plan.CareerNote = note
	}
	return plan
}

// KnownCareer reports whether a career has a full advisory entry.
func KnownCareer(career string) bool {
	_, ok := roadmaps[career]
	return ok
}
