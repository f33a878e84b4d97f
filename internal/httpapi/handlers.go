package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"sqlflow/internal/feedback"
	"sqlflow/internal/progress"
	"sqlflow/internal/validate"
)

const maxBodyBytes = 1 << 20

func (a *API) HandleLessons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	writeJSON(w, http.StatusOK, a.catalog.All())
}

// HandleValidate runs a learner's query against the lesson's reference
// solution. Verdicts are always 200: guard rejections and SQL errors surface
// inside the verdict body, not at the HTTP-status level.
func (a *API) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	defer r.Body.Close()

	var request validateRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	verdict := a.validator.Validate(r.Context(),
		strings.TrimSpace(request.Query), string(request.LessonID), strings.TrimSpace(request.ExerciseID))
	writeJSON(w, http.StatusOK, verdict)
}

func (a *API) HandleExecute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	defer r.Body.Close()

	var request executeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	query := strings.TrimSpace(request.Query)
	if request.LessonID == "" || query == "" {
		writeError(w, http.StatusBadRequest, "Missing parameters")
		return
	}

	rows, columns, err := a.validator.RunLessonQuery(r.Context(), string(request.LessonID), query)
	if err != nil {
		var queryErr *validate.QueryError
		if errors.As(err, &queryErr) {
			// Guard rejections and learner SQL errors are expected outcomes.
			writeJSON(w, http.StatusOK, errorResponse{Error: queryErr.Error()})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, executeResponse{
		Success: true,
		Data:    rows,
		Columns: columns,
	})
}

func (a *API) HandleProgress(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.handleGetProgress(w, r)
	case http.MethodPut:
		a.handlePutProgress(w, r)
	default:
		writeMethodNotAllowed(w, http.MethodGet+", "+http.MethodPut)
	}
}

func (a *API) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	if isGuestRequest(r) {
		writeJSON(w, http.StatusOK, json.RawMessage(`[]`))
		return
	}

	userID := authToken(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	doc, err := a.progress.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, progress.ErrNoProgress) {
			writeJSON(w, http.StatusOK, json.RawMessage(`[]`))
			return
		}
		log.Printf("progress read failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (a *API) handlePutProgress(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Guest progress lives only in the browser; echo it back unsaved.
	if isGuestRequest(r) {
		writeJSON(w, http.StatusOK, json.RawMessage(body))
		return
	}

	userID := authToken(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	stored, err := a.progress.Put(r.Context(), userID, body)
	if err != nil {
		log.Printf("progress write failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

func (a *API) HandleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	if !a.limiter.allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many submissions from this IP. Please try again later.")
		return
	}

	defer r.Body.Close()

	var request feedbackRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	submission := feedback.Submission{
		Name:      strings.TrimSpace(request.Name),
		Email:     strings.TrimSpace(request.Email),
		Message:   request.Message,
		IssueType: request.IssueType,
		PageURL:   r.Referer(),
	}

	response, err := a.feedback.Submit(r.Context(), submission)
	if err != nil {
		if errors.Is(err, feedback.ErrMessageTooShort) || errors.Is(err, feedback.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("feedback relay failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (a *API) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found")
}

func authToken(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("x-auth-token"))
}

func isGuestRequest(r *http.Request) bool {
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("x-guest-mode")), "true")
}
