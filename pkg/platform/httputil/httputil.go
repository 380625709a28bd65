// Package httputil writes JSON responses and the shared error envelope.
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	dErrors "studyhub/pkg/domain-errors"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the envelope every failed request receives.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

var statusByCode = map[dErrors.Code]int{
	dErrors.CodeBadRequest:         http.StatusBadRequest,
	dErrors.CodeValidation:         http.StatusBadRequest,
	dErrors.CodeInvalidInput:       http.StatusBadRequest,
	dErrors.CodeInvalidCapacity:    http.StatusUnprocessableEntity,
	dErrors.CodeUnauthorized:       http.StatusUnauthorized,
	dErrors.CodeForbidden:          http.StatusForbidden,
	dErrors.CodeOwnerCannotLeave:   http.StatusForbidden,
	dErrors.CodeCannotRemoveOwner:  http.StatusForbidden,
	dErrors.CodeNotFound:           http.StatusNotFound,
	dErrors.CodeNotMember:          http.StatusNotFound,
	dErrors.CodeConflict:           http.StatusConflict,
	dErrors.CodeGroupFull:          http.StatusConflict,
	dErrors.CodeAlreadyMember:      http.StatusConflict,
	dErrors.CodeDuplicatePending:   http.StatusConflict,
	dErrors.CodeAlreadyTerminal:    http.StatusConflict,
	dErrors.CodeTimeout:            http.StatusServiceUnavailable,
	dErrors.CodeInvariantViolation: http.StatusInternalServerError,
	dErrors.CodeInternal:           http.StatusInternalServerError,
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code dErrors.Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError writes the error envelope. Server-side failures never expose
// their message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := StatusFor(code)

	resp := ErrorResponse{Error: string(code)}
	var de *dErrors.Error
	if status < http.StatusInternalServerError && errors.As(err, &de) {
		resp.ErrorDescription = de.Message
	}
	WriteJSON(w, status, resp)
}

// WriteJSON encodes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// DecodeJSON reads a single JSON object from r into dst, rejecting unknown
// fields and oversized bodies.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return dErrors.New(dErrors.CodeBadRequest, "request body is required")
		}
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}
