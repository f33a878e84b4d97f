package httpapi

import "net/http"

func NewRouter(api *API) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/lessons", api.HandleLessons)
	mux.HandleFunc("/api/validate", api.HandleValidate)
	mux.HandleFunc("/api/execute", api.HandleExecute)
	mux.HandleFunc("/api/progress", api.HandleProgress)
	mux.HandleFunc("/api/submit-feedback", api.HandleSubmitFeedback)
	mux.HandleFunc("/", api.HandleNotFound)

	return withMiddleware(mux)
}
