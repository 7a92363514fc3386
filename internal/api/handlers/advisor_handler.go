package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/advisorlabs/course-advisor/internal/dataset"
	"github.com/advisorlabs/course-advisor/internal/models"
	"github.com/advisorlabs/course-advisor/internal/services"
	"github.com/advisorlabs/course-advisor/internal/telemetry"
	"github.com/advisorlabs/course-advisor/pkg/logger"
)

// AdvisorHandler exposes the advisor service over HTTP.
type AdvisorHandler struct {
	service *services.AdvisorService
}

func NewAdvisorHandler(service *services.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{service: service}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Recommend handles POST /recommendations.
func (h *AdvisorHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	log := logger.WithComponent("advisor_handler")

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Debug().Err(err).Msg("Invalid recommendation payload")
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	rec, err := h.service.Recommend(r.Context(), profile)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProfile):
			writeError(w, http.StatusBadRequest, "invalid_profile", err.Error())
		case errors.Is(err, services.ErrCourseNotFound):
			telemetry.RecordCatalogMiss()
			writeError(w, http.StatusNotFound, "course_not_found",
				"no catalog course matches the predicted category")
		default:
			log.Error().Err(err).Msg("Recommendation failed")
			writeError(w, http.StatusInternalServerError, "internal_error", "recommendation failed")
		}
		return
	}

	telemetry.RecordRecommendation(string(rec.PredictedCategory))
	writeJSON(w, http.StatusOK, rec)
}

// GetRoadmap handles GET /careers/{career}/roadmap. The router matches on
// the encoded path, so the career variable arrives escaped and is decoded
// here.
func (h *AdvisorHandler) GetRoadmap(w http.ResponseWriter, r *http.Request) {
	career, err := url.PathUnescape(mux.Vars(r)["career"])
	if err != nil || career == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "career is required")
		return
	}

	writeJSON(w, http.StatusOK, h.service.Roadmap(career))
}

// GetStudyPlan handles GET /study-plans?career=...&skill=...
func (h *AdvisorHandler) GetStudyPlan(w http.ResponseWriter, r *http.Request) {
	career := r.URL.Query().Get("career")
	skill := r.URL.Query().Get("skill")
	if career == "" || skill == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "career and skill are required")
		return
	}

	plan := h.service.StudyPlan(models.SkillLevel(skill), career)
	writeJSON(w, http.StatusOK, plan)
}

// GetOptions handles GET /options: the value sets and bounds a client
// needs to render profile inputs.
func (h *AdvisorHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cgpa_min":     models.CGPAMin,
		"cgpa_max":     models.CGPAMax,
		"interests":    dataset.DefaultInterests,
		"career_goals": models.Careers,
		"skill_levels": []models.SkillLevel{
			models.SkillBeginner,
			models.SkillIntermediate,
			models.SkillAdvanced,
		},
	})
}

// GetTrends handles GET /catalog/trends.
func (h *AdvisorHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Trends())
}

// PreviewCatalog handles GET /catalog/preview?limit=N.
func (h *AdvisorHandler) PreviewCatalog(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "bad_request", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"course_titles": h.service.CatalogPreview(limit),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log := logger.WithComponent("advisor_handler")
		log.Debug().Err(err).Msg("Response write failed")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}
