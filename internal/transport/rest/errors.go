package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sectorflow/demand-service/internal/domain"
)

// statusBody is the 400 response for validation failures.
type statusBody struct {
	Status []string `json:"status"`
}

// messageBody is the response for every other failure.
type messageBody struct {
	Message string `json:"message"`
}

// errorWriter translates service errors into responses. Failures outside the
// domain taxonomy get the fallback status: 500 for category and alert
// listings, newest demands and creation, 400 everywhere else.
type errorWriter struct {
	log *slog.Logger
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error, fallback int, fallbackMsg string) {
	var (
		ve *domain.ValidationError
		ue *domain.UpstreamError
	)

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, statusBody{Status: ve.Messages()})
	case errors.As(err, &ue):
		writeJSON(w, http.StatusBadRequest, messageBody{Message: ue.Message})
	case errors.Is(err, domain.ErrSizeLimit):
		writeJSON(w, http.StatusBadRequest, messageBody{Message: "File bigger than 5MB."})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusBadRequest, messageBody{Message: "Invalid ID or not found."})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, messageBody{Message: "The demand was changed by another request, try again."})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, messageBody{Message: "Already exists."})
	default:
		e.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, fallback, messageBody{Message: fallbackMsg})
	}
}

// badRequest answers 400 with a single message.
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, messageBody{Message: message})
}
