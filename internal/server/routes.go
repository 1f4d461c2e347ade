package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yonatank/prepair/internal/interview"
	"github.com/yonatank/prepair/internal/store"
)

// Router builds the chi router with the global middleware stack and all
// API routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))

	r.Post("/users/ensure", h.ensureUser)
	r.Post("/jd/ingest", h.ingestJD)
	r.Get("/jd/{jobSpecID}", h.getJD)
	r.Post("/interviews", h.startInterview)
	r.Post("/interviews/{sessionID}/turn", h.processTurn)
	r.Get("/progress/overview", h.progressOverview)

	return r
}

type ensureUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *Handler) ensureUser(w http.ResponseWriter, r *http.Request) {
	var req ensureUserRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		Error(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := h.users.Ensure(r.Context(), req.Email, req.Name)
	if err != nil {
		Error(w, http.StatusInternalServerError, "ensure user failed")
		return
	}
	JSON(w, http.StatusOK, map[string]string{"user_id": user.ID})
}

type ingestJDRequest struct {
	JDText string `json:"jd_text"`
	CVText string `json:"cv_text"`
}

type jobSpecResponse struct {
	JobSpecID string          `json:"job_spec_id"`
	JDHash    string          `json:"jd_hash"`
	Profile   *profilePayload `json:"profile"`
	CreatedAt time.Time       `json:"created_at"`
}

type profilePayload struct {
	RoleTitle  string             `json:"role_title"`
	Seniority  string             `json:"seniority"`
	Topics     map[string]float64 `json:"topics"`
	FocusAreas []string           `json:"focus_areas"`
}

// ingestJD deduplicates job descriptions by content hash: posting the
// same text twice returns the existing job spec without another
// extraction call.
func (h *Handler) ingestJD(w http.ResponseWriter, r *http.Request) {
	var req ingestJDRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.JDText) == "" {
		Error(w, http.StatusBadRequest, "jd_text is required")
		return
	}

	rec, created, err := h.jobSpecs.Ingest(r.Context(), req.JDText, req.CVText)
	if err != nil {
		Error(w, http.StatusInternalServerError, "ingest job spec failed")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	JSON(w, status, toJobSpecResponse(rec))
}

func (h *Handler) getJD(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jobSpecID")
	rec, err := h.jobSpecs.Get(r.Context(), id)
	if err != nil {
		Error(w, http.StatusInternalServerError, "load job spec failed")
		return
	}
	if rec == nil {
		Error(w, http.StatusNotFound, "job spec not found")
		return
	}
	JSON(w, http.StatusOK, toJobSpecResponse(rec))
}

func toJobSpecResponse(rec *store.JobSpecRecord) jobSpecResponse {
	resp := jobSpecResponse{
		JobSpecID: rec.ID,
		JDHash:    rec.JDHash,
		CreatedAt: rec.CreatedAt,
	}
	if rec.Profile != nil {
		topics := make(map[string]float64, len(rec.Profile.Topics))
		for _, t := range rec.Profile.Topics {
			topics[t.Name] = t.Weight
		}
		resp.Profile = &profilePayload{
			RoleTitle:  rec.Profile.RoleTitle,
			Seniority:  rec.Profile.Seniority,
			Topics:     topics,
			FocusAreas: rec.Profile.FocusAreas,
		}
	}
	return resp
}

type startInterviewRequest struct {
	UserID    string `json:"user_id"`
	JobSpecID string `json:"job_spec_id"`
	Language  string `json:"language"`
	Persona   string `json:"persona"`
	NumOpen   int    `json:"num_open"`
	NumCode   int    `json:"num_code"`
}

type planItemPayload struct {
	QuestionID string   `json:"question_id"`
	Section    string   `json:"section"`
	Difficulty string   `json:"difficulty,omitempty"`
	Topics     []string `json:"topics,omitempty"`
}

type startInterviewResponse struct {
	SessionID string            `json:"session_id"`
	Plan      []planItemPayload `json:"plan"`
	StartedAt time.Time         `json:"started_at"`
}

func (h *Handler) startInterview(w http.ResponseWriter, r *http.Request) {
	var req startInterviewRequest
	if !decode(w, r, &req) {
		return
	}
	if req.UserID == "" {
		Error(w, http.StatusBadRequest, "user_id is required")
		return
	}

	rec, err := h.service.Start(r.Context(), interview.StartInput{
		UserID:    req.UserID,
		JobSpecID: req.JobSpecID,
		Language:  req.Language,
		Persona:   req.Persona,
		NumOpen:   req.NumOpen,
		NumCode:   req.NumCode,
	})
	if err != nil {
		Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	plan := make([]planItemPayload, 0, len(rec.Plan))
	for _, item := range rec.Plan {
		plan = append(plan, planItemPayload{
			QuestionID: item.QuestionID,
			Section:    item.Section,
			Difficulty: item.Difficulty,
			Topics:     item.Topics,
		})
	}
	JSON(w, http.StatusCreated, startInterviewResponse{
		SessionID: rec.ID,
		Plan:      plan,
		StartedAt: rec.StartedAt,
	})
}

type turnRequest struct {
	Transcript  string `json:"transcript"`
	Code        string `json:"code"`
	ElapsedSecs int    `json:"elapsed_secs"`
}

func (h *Handler) processTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.engine.ProcessTurn(r.Context(), interview.TurnRequest{
		SessionID:   chi.URLParam(r, "sessionID"),
		Transcript:  req.Transcript,
		Code:        req.Code,
		ElapsedSecs: req.ElapsedSecs,
	})
	if err != nil {
		if errors.Is(err, interview.ErrSessionNotFound) {
			Error(w, http.StatusNotFound, "session not found")
			return
		}
		Error(w, http.StatusInternalServerError, "process turn failed")
		return
	}
	JSON(w, http.StatusOK, resp)
}

func (h *Handler) progressOverview(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		Error(w, http.StatusBadRequest, "user_id is required")
		return
	}
	jobSpecID := r.URL.Query().Get("job_spec_id")

	overview, err := h.progress.GetOverview(r.Context(), userID, jobSpecID)
	if err != nil {
		Error(w, http.StatusInternalServerError, "load progress failed")
		return
	}
	JSON(w, http.StatusOK, overview)
}
