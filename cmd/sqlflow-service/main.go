package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"sqlflow/internal/feedback"
	"sqlflow/internal/httpapi"
	"sqlflow/internal/lesson"
	progresssqlite "sqlflow/internal/progress/sqlite"
	"sqlflow/internal/validate"
)

func main() {
	// Optional .env file, same contract as the frontend's deployment setup.
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("ADDR", ":5000"), "HTTP listen address")
	lessonsFile := flag.String("lessons", envOr("LESSONS_FILE", "lesson-data/lessons.json"), "path to the lesson catalog JSON")
	dataDir := flag.String("data-dir", envOr("LESSON_DATA_DIR", "lesson-data"), "directory holding lesson_<id>.db files")
	progressPath := flag.String("progress-db", envOr("PROGRESS_DB_PATH", "progress.db"), "path to the user progress database")
	flag.Parse()

	catalog, err := lesson.Load(*lessonsFile)
	if err != nil {
		log.Fatalf("load lesson catalog: %v", err)
	}

	store, err := progresssqlite.NewStore(*progressPath)
	if err != nil {
		log.Fatalf("open progress store: %v", err)
	}
	defer store.Close()

	feedbackClient := feedback.NewClient(os.Getenv("WEB3FORMS_KEY"), &http.Client{Timeout: 10 * time.Second})
	validator := validate.NewValidator(catalog, *dataDir)
	api := httpapi.NewAPI(catalog, validator, store, feedbackClient)

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(api),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("sqlflow-service listening on %s (lessons=%d)", *addr, len(catalog.All()))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
