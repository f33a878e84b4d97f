package httpapi

import (
	"sqlflow/internal/feedback"
	"sqlflow/internal/lesson"
	"sqlflow/internal/progress"
	"sqlflow/internal/validate"
)

type API struct {
	catalog   *lesson.Catalog
	validator *validate.Validator
	progress  progress.Store
	feedback  *feedback.Client
	limiter   *ipLimiter
}

func NewAPI(catalog *lesson.Catalog, validator *validate.Validator, store progress.Store, feedbackClient *feedback.Client) *API {
	return &API{
		catalog:   catalog,
		validator: validator,
		progress:  store,
		feedback:  feedbackClient,
		limiter:   newIPLimiter(feedbackRateWindow, feedbackRateMax),
	}
}
