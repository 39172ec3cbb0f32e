package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentstation/jettonmap/pkg/constants"
	"github.com/agentstation/jettonmap/pkg/errors"
)

// DecodeResponse decodes a JSON response into target and closes the body.
// Non-2xx statuses become *errors.APIError and undecodable bodies
// *errors.ParseError.
func DecodeResponse(resp *http.Response, source string, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseSize))
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &errors.APIError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Message:    truncate(string(body), 200),
			Endpoint:   endpoint(resp),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response from "+source, err)
	}

	return nil
}

func endpoint(resp *http.Response) string {
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
