package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/bidding-wars/pkg/api"
	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/bidding"
	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/chris/bidding-wars/pkg/settlement"
	"github.com/chris/bidding-wars/pkg/storage"
)

// Error codes returned in api.Error.Code besides the bid rejection reasons.
const (
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeForbidden         = "FORBIDDEN"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeConflict          = "CONFLICT"
	CodeWrongItemKind     = "WRONG_ITEM_KIND"
	CodeValidation        = "VALIDATION"
	CodeNotFound          = "NOT_FOUND"
	CodePaymentPlatform   = "PAYMENT_PLATFORM_UNAVAILABLE"
	CodeInternal          = "INTERNAL"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Decode reads a JSON request body into v, answering 400 itself when it cannot.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		JSON(w, http.StatusBadRequest, api.Error{Code: CodeValidation, Message: fmt.Sprintf("Invalid request body: %v", err)})
		return false
	}
	return true
}

// Caller returns the identity resolved by the identity middleware, answering 401 when there is none.
func Caller(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	id := auth.FromContext(r.Context())
	if id == nil || id.UserId == "" {
		JSON(w, http.StatusUnauthorized, api.Error{Code: CodeUnauthenticated, Message: "missing user token"})
		return nil, false
	}
	return id, true
}

// Status maps an error to its HTTP status and error code.
func Status(err error) (int, string) {
	var rejection *bidding.Rejection
	switch {
	case errors.As(err, &rejection):
		if rejection.Reason == bidding.ReasonNotFound {
			return http.StatusNotFound, string(rejection.Reason)
		}
		return http.StatusUnprocessableEntity, string(rejection.Reason)
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, CodeUnauthenticated
	case errors.Is(err, lifecycle.ErrForbidden), errors.Is(err, auth.ErrNoAccess):
		return http.StatusForbidden, CodeForbidden
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return http.StatusConflict, CodeInvalidTransition
	case errors.Is(err, storage.ErrConcurrentUpdate):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, lifecycle.ErrWrongItemKind):
		return http.StatusBadRequest, CodeWrongItemKind
	case errors.Is(err, lifecycle.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, settlement.ErrPaymentLookup):
		return http.StatusBadGateway, CodePaymentPlatform
	}
	return http.StatusInternalServerError, CodeInternal
}

// Error writes err as an api.Error. Server-side failures are logged and their details withheld.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, code := Status(err)
	body := api.Error{Code: code, Message: err.Error()}

	var rejection *bidding.Rejection
	if errors.As(err, &rejection) && rejection.NextMinAmountCents > 0 {
		next := rejection.NextMinAmountCents
		body.NextMinAmountCents = &next
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		body.Message = http.StatusText(status)
	}
	JSON(w, status, body)
}
