package votesmart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDoer records how many requests reach the transport
type countingDoer struct {
	calls int
	err   error
}

func (d *countingDoer) Do(*http.Request) (*http.Response, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}, nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-key", zerolog.Nop(), WithBaseURL(server.URL))
}

func respondJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	client := NewClient("  test-key ", logger)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.True(t, client.HasCredential())
	assert.Equal(t, "test-key", client.apiKey)
	assert.NotNil(t, client.Candidates)
	assert.NotNil(t, client.Votes)

	client = NewClient("", logger, WithBaseURL("http://localhost:8080/"))
	assert.False(t, client.HasCredential())
	assert.Equal(t, "http://localhost:8080", client.BaseURL())
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client := NewClient("k", logger, WithTimeout(5*time.Second))
		httpClient, ok := client.httpClient.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, 5*time.Second, httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		doer := &countingDoer{}
		client := NewClient("k", logger, WithHTTPClient(doer), WithTimeout(time.Second))
		assert.Same(t, doer, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
			fmt.Fprint(w, `{"stateList":{"list":{"state":[]}}}`)
		})
		client.userAgent = "custom-agent"
		_, err := client.State.GetStateIDs(context.Background())
		require.NoError(t, err)
	})
}

func TestMissingCredentialMakesNoRequest(t *testing.T) {
	doer := &countingDoer{}
	client := NewClient("", zerolog.Nop(), WithHTTPClient(doer))

	_, err := client.Invoke(context.Background(), "Candidates.getByOfficeState", Params{"officeId": "6"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Equal(t, KindMissingCredential, KindOf(err))

	_, err = client.CandidateBio.GetBio(context.Background(), "9490")
	assert.ErrorIs(t, err, ErrMissingCredential)

	assert.Equal(t, 0, doer.calls)
}

func TestEveryOperationRequiresCredential(t *testing.T) {
	doer := &countingDoer{}
	client := NewClient("", zerolog.Nop(), WithHTTPClient(doer))

	for _, o := range Operations() {
		t.Run(o.Name, func(t *testing.T) {
			params := Params{}
			for _, name := range o.Required {
				params[name] = "1"
			}

			_, err := client.Invoke(context.Background(), o.Name, params)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingCredential)
			assert.Equal(t, KindMissingCredential, KindOf(err))
		})
	}

	assert.Equal(t, 0, doer.calls)
}

func TestMissingRequiredParameterMakesNoRequest(t *testing.T) {
	doer := &countingDoer{}
	client := NewClient("k", zerolog.Nop(), WithHTTPClient(doer))

	_, err := client.District.GetByOfficeState(context.Background(), "5", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.Contains(t, err.Error(), "stateId")
	assert.Equal(t, 0, doer.calls)
}

func TestInvokeUnknownOperation(t *testing.T) {
	doer := &countingDoer{}
	client := NewClient("k", zerolog.Nop(), WithHTTPClient(doer))

	_, err := client.Invoke(context.Background(), "Candidates.getByShoeSize", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Equal(t, 0, doer.calls)
}

func TestRequestURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/Candidates.getByOfficeState", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("key"))
		assert.Equal(t, "JSON", q.Get("o"))
		assert.Equal(t, "6", q.Get("officeId"))
		assert.Equal(t, "NY", q.Get("stateId"))
		assert.False(t, q.Has("electionYear"), "empty params must not be sent")

		fmt.Fprint(w, `{"candidateList":{"candidate":{"candidateId":"1","firstName":"Ada","lastName":"Lovelace"}}}`)
	})

	candidates, err := client.Candidates.GetByOfficeState(context.Background(), "6", "NY", "")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "1", candidates[0].CandidateID)
	assert.Equal(t, "Ada Lovelace", candidates[0].String())
}

func TestUndeclaredParamsAreStillSent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "x", r.URL.Query().Get("bogus"))
		fmt.Fprint(w, `{"stateList":{"list":{"state":{"stateId":"NY","name":"New York"}}}}`)
	})

	records, err := client.Invoke(context.Background(), "State.getStateIDs", Params{"bogus": "x"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "New York", records[0].Display())
}

func TestReservedParamsCannotOverride(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, []string{"test-key"}, q["key"])
		assert.Equal(t, []string{"JSON"}, q["o"])
		fmt.Fprint(w, `{"stateList":{"list":{"state":{"stateId":"NY","name":"New York"}}}}`)
	})

	records, err := client.Invoke(context.Background(), "State.getStateIDs", Params{"o": "XML", "key": "stolen"})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestServiceError(t *testing.T) {
	client := newTestClient(t, respondJSON(`{"error":{"errorMessage":"Authorization failed"}}`))

	_, err := client.Invoke(context.Background(), "State.getStateIDs", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrService)
	assert.Equal(t, KindServiceError, KindOf(err))

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "Authorization failed", svcErr.Message)
	assert.Equal(t, "State.getStateIDs", svcErr.Operation)
}

func TestInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>maintenance</html>")
	})

	_, err := client.Invoke(context.Background(), "State.getStateIDs", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Equal(t, KindDecodeFailure, KindOf(err))
	assert.Contains(t, err.Error(), "Invalid Response")
}

func TestTopLevelNotObject(t *testing.T) {
	client := newTestClient(t, respondJSON(`["a","b"]`))

	_, err := client.Invoke(context.Background(), "State.getStateIDs", nil)
	require.Error(t, err)
	assert.Equal(t, KindDecodeFailure, KindOf(err))
}

func TestNon2xxStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "key revoked")
	})

	_, err := client.Invoke(context.Background(), "State.getStateIDs", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, KindTransportFailure, KindOf(err))

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, http.StatusForbidden, tErr.StatusCode)
	assert.Equal(t, "key revoked", tErr.Body)
	assert.True(t, tErr.IsUnauthorized())
	assert.Contains(t, err.Error(), "key revoked")
}

func TestTransportFailure(t *testing.T) {
	boom := errors.New("connection refused")
	doer := &countingDoer{err: boom}
	client := NewClient("k", zerolog.Nop(), WithHTTPClient(doer))

	_, err := client.State.GetStateIDs(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, KindTransportFailure, KindOf(err))
	assert.Equal(t, 1, doer.calls)
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, respondJSON(`{}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.State.GetStateIDs(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, KindTransportFailure, KindOf(err))
}

func TestTestConnection(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		client := newTestClient(t, respondJSON(`{"stateList":{"list":{"state":[{"stateId":"NY","name":"New York"},{"stateId":"VT","name":"Vermont"}]}}}`))
		assert.NoError(t, client.TestConnection(context.Background()))
	})

	t.Run("bad key", func(t *testing.T) {
		client := newTestClient(t, respondJSON(`{"error":{"errorMessage":"Authorization failed"}}`))
		err := client.TestConnection(context.Background())
		require.Error(t, err)
		assert.Equal(t, KindServiceError, KindOf(err))
	})
}

func TestGetBill(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Votes.getBill", r.URL.Path)
		assert.Equal(t, "17623", r.URL.Query().Get("billId"))
		fmt.Fprint(w, `{"bill":{
			"billId":"17623","billNumber":"HR 1","title":"Stimulus",
			"sponsors":{"sponsor":{"candidateId":"26976","name":"Obey, David","type":"Sponsor"}},
			"actions":{"action":[{"actionId":"1","stage":"Introduced"},{"actionId":"2","stage":"Passage"}]},
			"amendments":""
		}}`)
	})

	bill, err := client.Votes.GetBill(context.Background(), "17623")
	require.NoError(t, err)
	assert.Equal(t, "HR 1 Stimulus", bill.String())
	require.Len(t, bill.Sponsors, 1)
	assert.Equal(t, "Obey, David", bill.Sponsors[0].Name)
	require.Len(t, bill.Actions, 2)
	assert.Equal(t, "Passage", bill.Actions[1].Stage)
	assert.Empty(t, bill.Amendments)
	assert.NotContains(t, bill.Extra, "amendments")
}

func TestGetElection(t *testing.T) {
	client := newTestClient(t, respondJSON(`{"elections":{"election":{
		"electionId":"2100","name":"General","stateId":"NY","electionYear":2020,
		"stage":[{"stageId":"P","name":"Primary","electionDate":"2020-03-01"},{"stageId":"G","name":"General","electionDate":"2020-11-03"}]
	}}}`))

	election, err := client.Election.GetElection(context.Background(), "2100")
	require.NoError(t, err)
	assert.Equal(t, "2020", election.ElectionYear)
	require.Len(t, election.Stages, 2)
	assert.Equal(t, "Primary (2020-03-01)", election.Stages[0].String())
	assert.NotContains(t, election.Extra, "stage")
}

func TestGetCampaignAddress(t *testing.T) {
	client := newTestClient(t, respondJSON(`{"address":{"office":{
		"address":{"street":"1 Main St","city":"Albany","state":"NY","zip":"12207"},
		"phone":{"phone1":"555-0100"}
	}}}`))

	addresses, err := client.Address.GetCampaign(context.Background(), "9490")
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "1 Main St", addresses[0].Street)
	assert.Equal(t, "555-0100", addresses[0].Phone1)
	assert.Empty(t, addresses[0].Note)
}

func TestRedactKey(t *testing.T) {
	redacted := redactKey("http://api.votesmart.org/State.getStateIDs?key=secret&o=JSON")
	assert.NotContains(t, redacted, "secret")
	assert.Contains(t, redacted, "key=REDACTED")
	assert.Contains(t, redacted, "o=JSON")
}
