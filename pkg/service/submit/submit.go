package submit

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Atul9/coveralls-api/pkg/core"
	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/Atul9/coveralls-api/pkg/global"
	"github.com/Atul9/coveralls-api/pkg/lumber"
	"github.com/Atul9/coveralls-api/pkg/report"
)

type submitter struct {
	logger   lumber.Logger
	requests core.Requests
}

// New returns a new instance of Submitter
func New(requests core.Requests, logger lumber.Logger) core.Submitter {
	return &submitter{
		logger:   logger,
		requests: requests,
	}
}

// SubmitToCoveralls posts the report to the public coveralls jobs API.
func (s *submitter) SubmitToCoveralls(ctx context.Context, rpt *report.Report) (*core.SubmitResult, error) {
	return s.Submit(ctx, rpt, global.CoverallsEndpoint)
}

// Submit posts the report to endpoint. Transport errors are returned as is,
// together with whatever response the transport got.
func (s *submitter) Submit(ctx context.Context, rpt *report.Report, endpoint string) (*core.SubmitResult, error) {
	if rpt == nil {
		return nil, errs.ErrNilReport
	}
	reqBody, err := rpt.Serialize()
	if err != nil {
		s.logger.Errorf("failed to marshal request body %v", err)
		return nil, err
	}

	headers := map[string]string{"Content-Type": global.ContentTypeJSON}
	s.logger.Debugf("sending coverage of %d files to %s", rpt.Len(), endpoint)
	respBody, statusCode, err := s.requests.MakeAPIRequest(ctx, http.MethodPost, endpoint, reqBody, nil, headers)

	result := &core.SubmitResult{StatusCode: statusCode, Body: respBody}
	// not every endpoint answers with a coveralls job body
	job := new(core.JobResponse)
	if len(respBody) > 0 && json.Unmarshal(respBody, job) == nil {
		result.Job = job
	}
	if err != nil {
		s.logger.Errorf("error while sending coverage data %v", err)
		return result, err
	}
	s.logger.Infof("submitted coverage of %d files, status code %d", rpt.Len(), statusCode)
	return result, nil
}
