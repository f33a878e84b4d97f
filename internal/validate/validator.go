package validate

import (
	"context"
	"sync"

	"sqlflow/internal/lesson"
)

const (
	messageCorrect   = "Correct! Well done."
	messageIncorrect = "Incorrect. Compare your results with the expected output."
)

// Verdict is the structured outcome of one validation call. The two pairs of
// result fields are mutually exclusive: userResult/correctResult on the
// normal path, userRes/correctRes on the user-query-error path. The
// asymmetric field names are part of the public wire contract and must not be
// unified.
type Verdict struct {
	Valid         bool       `json:"valid"`
	Message       string     `json:"message"`
	UserResult    *ResultSet `json:"userResult,omitempty"`
	CorrectResult *ResultSet `json:"correctResult,omitempty"`
	UserRes       *ResultSet `json:"userRes,omitempty"`
	CorrectRes    *ResultSet `json:"correctRes,omitempty"`
}

// Validator coordinates the guard, executor and comparator for validation
// requests. It holds no per-request state: concurrent calls are independent
// and each opens its own database handle.
type Validator struct {
	catalog *lesson.Catalog
	dataDir string
}

func NewValidator(catalog *lesson.Catalog, dataDir string) *Validator {
	return &Validator{catalog: catalog, dataDir: dataDir}
}

// Validate runs userQuery and the exercise's reference solution against the
// lesson database and compares the result sets. It never returns an error:
// every failure is folded into the verdict.
func (v *Validator) Validate(ctx context.Context, userQuery, lessonID, exerciseID string) Verdict {
	if userQuery == "" {
		return failureVerdict("Empty query")
	}

	lessonItem, ok := v.catalog.Lesson(lessonID)
	if !ok {
		return failureVerdict("Lesson not found")
	}

	exercise, err := lessonItem.FindExercise(exerciseID)
	if err != nil {
		return failureVerdict("Exercise not found")
	}

	db, err := OpenLessonDB(v.dataDir, lessonID, true)
	if err != nil {
		return failureVerdict(err.Error())
	}
	defer db.Close()

	var (
		wg          sync.WaitGroup
		userRows    ResultSet
		userErr     error
		correctRows ResultSet
		correctErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		userRows, userErr = Execute(ctx, db, userQuery)
	}()
	go func() {
		defer wg.Done()
		correctRows, correctErr = Execute(ctx, db, exercise.Solution)
	}()
	wg.Wait()

	// A failing reference solution is a content bug, not a learner mistake.
	if correctErr != nil {
		return failureVerdict(correctErr.Error())
	}

	if userErr != nil {
		empty := ResultSet{}
		return Verdict{
			Valid:      false,
			Message:    "Query Error: " + userErr.Error(),
			UserRes:    &empty,
			CorrectRes: &correctRows,
		}
	}

	isEqual := Equal(userRows, correctRows)
	message := messageIncorrect
	if isEqual {
		message = messageCorrect
	}
	return Verdict{
		Valid:         isEqual,
		Message:       message,
		UserResult:    &userRows,
		CorrectResult: &correctRows,
	}
}

// RunLessonQuery executes one guarded ad-hoc query against a lesson database
// and reports the statement's column order alongside the rows. It backs the
// sandbox execute endpoint; the handle is scoped to this call.
func (v *Validator) RunLessonQuery(ctx context.Context, lessonID, query string) (ResultSet, []string, error) {
	db, err := OpenLessonDB(v.dataDir, lessonID, true)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	return executeColumns(ctx, db, query)
}

func failureVerdict(message string) Verdict {
	userResult := ResultSet{}
	correctResult := ResultSet{}
	return Verdict{
		Valid:         false,
		Message:       message,
		UserResult:    &userResult,
		CorrectResult: &correctResult,
	}
}
