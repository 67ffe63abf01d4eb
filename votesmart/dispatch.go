package votesmart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Params holds the query parameters of one call. Empty values are treated
// as absent and never sent.
type Params map[string]string

// reservedParams are set by the client on every request and cannot be
// overridden through Params.
var reservedParams = map[string]bool{"key": true, "o": true}

// call performs one request and returns the decoded top-level envelope.
// Credential and required-parameter checks happen before any I/O.
func (c *Client) call(ctx context.Context, op Operation, params Params) (map[string]any, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%s: %w", op.Name, ErrMissingCredential)
	}

	for _, name := range op.Required {
		if strings.TrimSpace(params[name]) == "" {
			return nil, fmt.Errorf("%s: %w: %s", op.Name, ErrMissingParameter, name)
		}
	}

	requestID := uuid.NewString()
	logger := c.logger.With().
		Str("operation", op.Name).
		Str("request_id", requestID).
		Logger()

	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("o", "JSON")
	for _, name := range sortedParamNames(params) {
		value := params[name]
		if value == "" {
			continue
		}
		if reservedParams[name] {
			logger.Warn().Str("param", name).Msg("Ignoring reserved parameter")
			continue
		}
		if !op.accepts(name) {
			logger.Warn().Str("param", name).Msg("Sending parameter not declared for operation")
		}
		query.Set(name, value)
	}

	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, op.Name, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{Operation: op.Name, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	logger.Debug().
		Str("url", redactKey(requestURL)).
		Msg("Making Vote Smart API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Operation: op.Name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{
			Operation:  op.Name,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response body: %w", err),
		}
	}

	logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Vote Smart API response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			Operation:  op.Name,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &DecodeError{Operation: op.Name, Reason: "response is not valid JSON", Err: err}
	}

	envelope, ok := decoded.(map[string]any)
	if !ok {
		return nil, &DecodeError{
			Operation: op.Name,
			Reason:    fmt.Sprintf("expected top-level object, got %s", describe(decoded)),
		}
	}

	if errNode, ok := envelope["error"]; ok {
		return nil, &ServiceError{Operation: op.Name, Message: serviceMessage(errNode)}
	}

	return envelope, nil
}

// serviceMessage extracts errorMessage from the service's error object
func serviceMessage(node any) string {
	if obj, ok := node.(map[string]any); ok {
		if msg, ok := obj["errorMessage"].(string); ok {
			return msg
		}
		if msg, ok := obj["errorMessage"]; ok && msg != nil {
			return fmt.Sprintf("%v", msg)
		}
	}
	if s, ok := node.(string); ok {
		return s
	}
	return "unknown service error"
}

// redactKey hides the API key so request URLs can be logged
func redactKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func sortedParamNames(params Params) []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
