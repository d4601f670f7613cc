package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/critterkeep/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *HTTPServer) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error(ctx, "error encoding response", "error", err)
	}
}

// writeError maps domain sentinels to HTTP statuses. Anything unmapped is a
// 500 with a generic body, the detail goes to the log only.
func (s *HTTPServer) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, common.ErrorValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorAlreadyExists):
		status, message = http.StatusConflict, "user already exists"
	case errors.Is(err, common.ErrorNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrorInvalidCredentials):
		status, message = http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, common.ErrCreatureNotFound):
		status, message = http.StatusNotFound, "unknown creature"
	case errors.Is(err, common.ErrCatalogUnavailable):
		status, message = http.StatusBadGateway, "catalog unavailable"
	case errors.Is(err, common.ErrorNotOwned):
		status, message = http.StatusNotFound, "record not found"
	default:
		s.logger.Error(ctx, "internal error", "error", err)
		status, message = http.StatusInternalServerError, "internal error"
	}

	s.writeJSON(ctx, w, status, errorResponse{Error: message})
}
