package lesson

import "errors"

var ErrExerciseNotFound = errors.New("exercise not found")

// Exercise is a single free-standing SQL task with a canonical solution query.
type Exercise struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Solution    string `json:"solution"`
}

// Step is one part of a multi-part challenge. Steps share the exercise
// identifier namespace for lookup purposes.
type Step struct {
	StepID      string `json:"stepId"`
	Description string `json:"description"`
	Solution    string `json:"solution"`
}

type Challenge struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Steps []Step `json:"steps"`
}

// Lesson is a unit of curriculum content paired with one dedicated lesson
// database on disk.
type Lesson struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Practice   []Exercise  `json:"practice"`
	Challenges []Challenge `json:"challenges,omitempty"`
}

// FindExercise locates the exercise for exerciseID. Practice items are
// searched first; if none matches, challenges are scanned in order and the
// first step with a matching stepId wins. Matching steps are normalized into
// the Exercise shape so callers only deal with one type.
func (l Lesson) FindExercise(exerciseID string) (Exercise, error) {
	for _, item := range l.Practice {
		if item.ID == exerciseID {
			return item, nil
		}
	}

	for _, challenge := range l.Challenges {
		for _, step := range challenge.Steps {
			if step.StepID == exerciseID {
				return Exercise{
					ID:          step.StepID,
					Description: step.Description,
					Solution:    step.Solution,
				}, nil
			}
		}
	}

	return Exercise{}, ErrExerciseNotFound
}
