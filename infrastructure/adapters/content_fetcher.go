package adapters

import (
	"io"
	"net/http"
	"time"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
)

// FetchedResponse carries the raw body regardless of status code so callers
// can surface vendor error payloads verbatim.
type FetchedResponse struct {
	StatusCode int
	Body       []byte
}

func (r *FetchedResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type ContentFetcher interface {
	FetchContent(req *http.Request) (*FetchedResponse, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) (*FetchedResponse, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"method": req.Method,
				"URL":    req.URL.String(),
			})
		}
	}(res.Body)

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	if res.StatusCode >= 300 {
		c.logger.WarnWithFields("HTTP request returned non-success status code", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
			"status": res.StatusCode,
		})
	}

	return &FetchedResponse{StatusCode: res.StatusCode, Body: payload}, nil
}
