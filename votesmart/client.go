package votesmart

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public Project Vote Smart API endpoint
const DefaultBaseURL = "http://api.votesmart.org"

// HTTPDoer performs HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client wraps the Project Vote Smart API
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient HTTPDoer
	logger     zerolog.Logger
	mapper     *mapper

	Address      *AddressService
	CandidateBio *CandidateBioService
	Candidates   *CandidatesService
	Committee    *CommitteeService
	District     *DistrictService
	Election     *ElectionService
	Leadership   *LeadershipService
	Local        *LocalService
	Measure      *MeasureService
	Npat         *NpatService
	Office       *OfficeService
	Officials    *OfficialsService
	Rating       *RatingService
	State        *StateService
	Votes        *VotesService
}

// NewClient creates a new Vote Smart client.
// An empty apiKey is accepted here; every call then fails with
// ErrMissingCredential without touching the network.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	c := &Client{
		baseURL:    strings.TrimRight(o.baseURL, "/"),
		apiKey:     strings.TrimSpace(apiKey),
		userAgent:  o.userAgent,
		httpClient: httpClient,
		logger:     logger,
		mapper:     &mapper{logger: logger},
	}

	c.Address = &AddressService{c: c}
	c.CandidateBio = &CandidateBioService{c: c}
	c.Candidates = &CandidatesService{c: c}
	c.Committee = &CommitteeService{c: c}
	c.District = &DistrictService{c: c}
	c.Election = &ElectionService{c: c}
	c.Leadership = &LeadershipService{c: c}
	c.Local = &LocalService{c: c}
	c.Measure = &MeasureService{c: c}
	c.Npat = &NpatService{c: c}
	c.Office = &OfficeService{c: c}
	c.Officials = &OfficialsService{c: c}
	c.Rating = &RatingService{c: c}
	c.State = &StateService{c: c}
	c.Votes = &VotesService{c: c}

	return c
}

// BaseURL returns the endpoint the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasCredential reports whether an API key is configured
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

// TestConnection tests the connection and API key with a cheap call
func (c *Client) TestConnection(ctx context.Context) error {
	start := time.Now()
	states, err := c.State.GetStateIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to Vote Smart: %w", err)
	}

	c.logger.Debug().
		Int("states", len(states)).
		Dur("elapsed", time.Since(start)).
		Msg("Vote Smart connection OK")
	return nil
}

// Invoke calls any operation from the operation table by its qualified name
// and returns the mapped records without typed decoding.
func (c *Client) Invoke(ctx context.Context, name string, params Params) ([]Record, error) {
	op, ok := LookupOperation(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return c.invoke(ctx, op, params)
}

func (c *Client) invoke(ctx context.Context, op Operation, params Params) ([]Record, error) {
	envelope, err := c.call(ctx, op, params)
	if err != nil {
		return nil, err
	}
	return c.mapper.mapEnvelope(op, envelope)
}

// fetchList runs a list-shaped operation and decodes every record into T
func fetchList[T any](ctx context.Context, c *Client, name string, params Params) ([]T, error) {
	op := mustOperation(name)

	records, err := c.invoke(ctx, op, params)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		v, err := decodeRecord[T](op.Name, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// fetchOne runs a single-shaped operation and decodes its record into T
func fetchOne[T any](ctx context.Context, c *Client, name string, params Params) (*T, error) {
	op := mustOperation(name)

	records, err := c.invoke(ctx, op, params)
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, &DecodeError{
			Operation: op.Name,
			Reason:    fmt.Sprintf("expected exactly one result, got %d", len(records)),
		}
	}

	v, err := decodeRecord[T](op.Name, records[0])
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func mustOperation(name string) Operation {
	op, ok := LookupOperation(name)
	if !ok {
		panic("votesmart: operation missing from table: " + name)
	}
	return op
}
