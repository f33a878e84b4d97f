package httpapi

import (
	"encoding/json"

	"sqlflow/internal/validate"
)

// flexibleID accepts a JSON string or number, normalizing to the string form
// used in lesson database file names. The UI sends lesson ids both ways.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*f = flexibleID(asString)
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return err
	}
	*f = flexibleID(asNumber.String())
	return nil
}

type validateRequest struct {
	LessonID   flexibleID `json:"lessonId"`
	ExerciseID string     `json:"exerciseId"`
	Query      string     `json:"query"`
}

type executeRequest struct {
	LessonID flexibleID `json:"lessonId"`
	Query    string     `json:"query"`
}

type executeResponse struct {
	Success bool               `json:"success"`
	Data    validate.ResultSet `json:"data"`
	Columns []string           `json:"columns"`
}

type feedbackRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	IssueType string `json:"issueType"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
