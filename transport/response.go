package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	cerrors "github.com/muhammadheryan/marketplace/utils/errors"
)

// ErrorResponse is the single error envelope for every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, payload)
}

func writeCreated(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusCreated, payload)
}

// writeError maps taxonomy errors to their HTTP code. Anything else is
// reported as a generic internal failure so no detail leaks out.
func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(cerrors.CustomError)
	if !ok {
		ce = cerrors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}
