package requestutils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Atul9/coveralls-api/pkg/core"
	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/Atul9/coveralls-api/pkg/lumber"
	"github.com/cenkalti/backoff/v4"
)

type requests struct {
	logger  lumber.Logger
	client  http.Client
	backoff backoff.BackOff
}

// New returns a Requests that retries according to b. A nil b makes a single attempt.
func New(logger lumber.Logger, timeout time.Duration, b backoff.BackOff) core.Requests {
	if b == nil {
		b = &backoff.StopBackOff{}
	}
	return &requests{
		logger:  logger,
		client:  http.Client{Timeout: timeout},
		backoff: b,
	}
}

func (r *requests) MakeAPIRequest(ctx context.Context, httpMethod, endpoint string, body []byte,
	query map[string]interface{}, headers map[string]string) (rawBody []byte, statusCode int, err error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		r.logger.Errorf("error while parsing endpoint %s, %v", endpoint, err)
		return nil, 0, err
	}
	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			q.Set(k, fmt.Sprintf("%v", v))
		}
		u.RawQuery = q.Encode()
	}

	operation := func() error {
		req, reqErr := http.NewRequestWithContext(ctx, httpMethod, u.String(), bytes.NewReader(body))
		if reqErr != nil {
			r.logger.Errorf("error while creating http request %v", reqErr)
			return backoff.Permanent(reqErr)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, doErr := r.client.Do(req)
		if doErr != nil {
			r.logger.Errorf("error while sending http request %v", doErr)
			return doErr
		}
		defer resp.Body.Close()

		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			r.logger.Errorf("error while reading http response body %v", readErr)
			return readErr
		}
		rawBody, statusCode = respBody, resp.StatusCode

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			r.logger.Errorf("non 2xx status code %d: %s", resp.StatusCode, string(respBody))
			apiErr := errs.ErrAPIStatus(resp.StatusCode, string(respBody))
			if resp.StatusCode >= http.StatusInternalServerError {
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}
		return nil
	}

	err = backoff.Retry(operation, backoff.WithContext(r.backoff, ctx))
	return rawBody, statusCode, err
}
