package votesmart

import "time"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	httpClient HTTPDoer
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   30 * time.Second,
		userAgent: "votesmart-go",
	}
}

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout.
// It has no effect when WithHTTPClient supplies the transport.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient replaces the HTTP transport.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(o *clientOptions) {
		o.httpClient = doer
	}
}
