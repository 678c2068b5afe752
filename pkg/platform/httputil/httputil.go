package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
)

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore encoding errors.
	// The response body may be incomplete, but headers are already sent.
	_ = json.NewEncoder(w).Encode(response)
}

// wireError is how a domain code appears on the wire.
type wireError struct {
	status int
	code   string
}

var wireErrors = map[dErrors.Code]wireError{
	dErrors.CodeNotFound:           {http.StatusNotFound, "not_found"},
	dErrors.CodeBadRequest:         {http.StatusBadRequest, "bad_request"},
	dErrors.CodeInvalidInput:       {http.StatusBadRequest, "bad_request"},
	dErrors.CodeValidation:         {http.StatusBadRequest, "validation_error"},
	dErrors.CodeConflict:           {http.StatusConflict, "conflict"},
	dErrors.CodeUnauthorized:       {http.StatusUnauthorized, "unauthorized"},
	dErrors.CodeForbidden:          {http.StatusForbidden, "forbidden"},
	dErrors.CodeInternal:           {http.StatusInternalServerError, "internal_error"},
	dErrors.CodeInvariantViolation: {http.StatusInternalServerError, "internal_error"},
}

func wireErrorFor(code dErrors.Code) wireError {
	if we, ok := wireErrors[code]; ok {
		return we
	}
	return wireErrors[dErrors.CodeInternal]
}

// WriteError writes err as {"error", "error_description"}. Errors without a
// domain code and all 5xx responses go out without a description.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if !errors.As(err, &domainErr) {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"error": wireErrors[dErrors.CodeInternal].code,
		})
		return
	}
	we := wireErrorFor(domainErr.Code)
	response := map[string]string{"error": we.code}
	if domainErr.Message != "" && we.status < http.StatusInternalServerError {
		response["error_description"] = domainErr.Message
	}
	WriteJSON(w, we.status, response)
}

// DomainCodeToHTTPStatus returns the HTTP status for code.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	return wireErrorFor(code).status
}

// DomainCodeToHTTPCode returns the "error" field value for code.
func DomainCodeToHTTPCode(code dErrors.Code) string {
	return wireErrorFor(code).code
}

// RequireViewer extracts the authenticated account ID from context.
// Returns an unauthorized domain error when the request is anonymous.
func RequireViewer(ctx context.Context, logger *slog.Logger, requestID string) (id.AccountID, error) {
	accountID := requestcontext.AccountID(ctx)
	if accountID.IsNil() {
		if logger != nil {
			logger.WarnContext(ctx, "viewer missing from context",
				"request_id", requestID)
		}
		return id.AccountID{}, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return accountID, nil
}
