package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shazhupan/activity-portal/internal/common"
	"github.com/shazhupan/activity-portal/internal/server/activities"
	"github.com/shazhupan/activity-portal/internal/server/auth"
	"github.com/shazhupan/activity-portal/internal/server/codes"
	"github.com/shazhupan/activity-portal/internal/server/phone"
)

type sendCodeRequest struct {
	Phone string `json:"phone"`
}

type loginRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "activity portal API", map[string]any{
		"version": "1.0.0",
		"endpoints": map[string]string{
			"POST /api/send-code":         "request a verification code",
			"POST /api/login":             "log in with phone and code",
			"GET /api/verify-token":       "validate the session token",
			"GET /api/activities":         "list activities (token required)",
			"GET /api/activities/{id}":    "activity detail (token required)",
			"POST /api/activities":        "create activity (token required)",
			"DELETE /api/activities/{id}": "delete activity (token required)",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "ok", nil)
}

func (s *Server) handleSendCode(w http.ResponseWriter, r *http.Request) {
	var req sendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !phone.IsValid(req.Phone) {
		writeError(w, http.StatusBadRequest, "please enter a valid phone number")
		return
	}

	code, err := s.codes.Issue(r.Context(), req.Phone)
	if err != nil {
		s.logger.Error(r.Context(), "issuing verification code", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "could not send verification code")
		return
	}

	var data any
	if s.devEchoCode {
		// Development convenience only. Production deployments deliver
		// the code out of band and leave data empty.
		data = map[string]string{"code": code}
	}

	writeJSON(w, http.StatusOK, "verification code sent", data)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !phone.IsValid(req.Phone) {
		writeError(w, http.StatusBadRequest, "please enter a valid phone number")
		return
	}

	if !codes.IsValidCode(req.Code) {
		writeError(w, http.StatusBadRequest, "please enter the 6-digit verification code")
		return
	}

	if err := s.codes.Consume(r.Context(), req.Phone, req.Code); err != nil {
		switch {
		case errors.Is(err, common.ErrCodeNotFound):
			writeError(w, http.StatusBadRequest, "verification code not found or expired, please request a new one")
		case errors.Is(err, common.ErrCodeExpired):
			writeError(w, http.StatusBadRequest, "verification code expired, please request a new one")
		case errors.Is(err, common.ErrCodeMismatch):
			writeError(w, http.StatusBadRequest, "incorrect verification code")
		default:
			s.logger.Error(r.Context(), "consuming verification code", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	user, err := s.users.EnsureUser(r.Context(), req.Phone)
	if err != nil {
		s.logger.Error(r.Context(), "ensuring user", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := auth.GenerateToken(req.Phone, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(r.Context(), "generating token", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	s.logger.Info(r.Context(), "user logged in", "phone", req.Phone)

	writeJSON(w, http.StatusOK, "login successful", map[string]any{
		"token": token,
		"user":  map[string]string{"phone": user.Phone},
	})
}

func (s *Server) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "token valid", map[string]any{
		"user": map[string]string{"phone": phoneFromContext(r.Context())},
	})
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	items, err := s.activities.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing activities", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "could not load activities")
		return
	}

	writeJSON(w, http.StatusOK, "activities retrieved", items)
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.activityID(w, r)
	if !ok {
		return
	}

	activity, err := s.activities.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, "activity not found")
			return
		}
		s.logger.Error(r.Context(), "loading activity", "id", id, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "could not load activity")
		return
	}

	writeJSON(w, http.StatusOK, "activity retrieved", activity)
}

func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	var draft activities.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	activity, err := s.activities.Create(r.Context(), draft)
	if err != nil {
		if errors.Is(err, common.ErrTitleRequired) {
			writeError(w, http.StatusBadRequest, "title is required")
			return
		}
		s.logger.Error(r.Context(), "creating activity", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "could not create activity")
		return
	}

	s.logger.Info(r.Context(), "activity created", "id", activity.ID, "by", phoneFromContext(r.Context()))

	writeJSON(w, http.StatusOK, "activity created", activity)
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.activityID(w, r)
	if !ok {
		return
	}

	deleted, err := s.activities.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, "activity not found")
			return
		}
		s.logger.Error(r.Context(), "deleting activity", "id", id, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "could not delete activity")
		return
	}

	s.logger.Info(r.Context(), "activity deleted", "id", deleted, "by", phoneFromContext(r.Context()))

	writeJSON(w, http.StatusOK, "activity deleted", map[string]int64{"id": deleted})
}

// activityID parses the {id} route parameter, writing a 400 itself when
// the value is not an integer.
func (s *Server) activityID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activity id")
		return 0, false
	}
	return id, true
}
