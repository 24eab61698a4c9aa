package core

import (
	"context"

	"github.com/Atul9/coveralls-api/pkg/report"
)

// Requests is a util interface for making API Requests
type Requests interface {
	// MakeAPIRequest makes an HTTP request and returns the response body and status code
	MakeAPIRequest(ctx context.Context, httpMethod, endpoint string, body []byte, query map[string]interface{},
		headers map[string]string) (rawbody []byte, statusCode int, err error)
}

// Submitter sends reports to a coveralls compatible endpoint
type Submitter interface {
	// Submit posts the report to endpoint
	Submit(ctx context.Context, rpt *report.Report, endpoint string) (*SubmitResult, error)
	// SubmitToCoveralls posts the report to the public coveralls API
	SubmitToCoveralls(ctx context.Context, rpt *report.Report) (*SubmitResult, error)
}

// Collector builds a report out of per-file coverage profiles
type Collector interface {
	// Collect builds a Source for every profiled file and adds them to rpt in profile order
	Collect(ctx context.Context, rpt *report.Report, files []FileProfile) error
}
