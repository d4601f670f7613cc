package httpapi

import (
	"encoding/json"
	"net/http"
	"time"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type catchRequest struct {
	Name string `json:"name"`
}

type registerResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type ownedCreatureResponse struct {
	RecordID string    `json:"record_id"`
	Name     string    `json:"name"`
	CaughtAt time.Time `json:"caught_at"`
}

type listResponse struct {
	Creatures []ownedCreatureResponse `json:"creatures"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, err := s.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusCreated, registerResponse{
		ID:      user.ID,
		Email:   user.Email,
		Message: "user registered",
	})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, loginResponse{Token: token})
}

func (s *HTTPServer) handleCatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		s.writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	var req catchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	owned, err := s.catches.Catch(ctx, userID, req.Name)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusCreated, ownedCreatureResponse{
		RecordID: owned.RecordID,
		Name:     owned.Name,
		CaughtAt: owned.CaughtAt,
	})
}

func (s *HTTPServer) handleRelease(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		s.writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	recordID := r.PathValue("id")
	if recordID == "" {
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "missing record id"})
		return
	}

	if err := s.catches.Release(ctx, userID, recordID); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, messageResponse{Message: "creature released"})
}

func (s *HTTPServer) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		s.writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	owned, err := s.catches.List(ctx, userID)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	resp := listResponse{Creatures: make([]ownedCreatureResponse, 0, len(owned))}
	for _, o := range owned {
		resp.Creatures = append(resp.Creatures, ownedCreatureResponse{
			RecordID: o.RecordID,
			Name:     o.Name,
			CaughtAt: o.CaughtAt,
		})
	}

	s.writeJSON(ctx, w, http.StatusOK, resp)
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.dbPing != nil {
		if err := s.dbPing(ctx); err != nil {
			s.logger.Error(ctx, "health check failed", "error", err)
			s.writeJSON(ctx, w, http.StatusServiceUnavailable, errorResponse{Error: "database unavailable"})
			return
		}
	}

	s.writeJSON(ctx, w, http.StatusOK, messageResponse{Message: "OK"})
}
