package impl_rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	impl_rest "github.com/PedroCamargo-dev/fineract-core-connector/internal/impl/gateway/rest"

	goerrors "github.com/goliatone/go-errors"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDoer struct {
	calls int
	err   error
}

func (d *failingDoer) Do(*http.Request) (*http.Response, error) {
	d.calls++
	return nil, d.err
}

func TestClient_SendsJSONWithDefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/things", r.URL.Path)
		assert.Equal(t, "deposit", r.URL.Query().Get("command"))
		assert.Equal(t, "tenant-a", r.Header.Get("X-Tenant"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"amount":"10.5"}`, string(raw))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client, err := impl_rest.New(impl_rest.Options{
		Name:    "test",
		BaseURL: server.URL + "/api/v1/",
		Headers: map[string]string{"X-Tenant": "tenant-a"},
	})
	require.NoError(t, err)

	res, err := client.Do(context.Background(), impl_rest.Request{
		Method: http.MethodPost,
		Path:   "things",
		Query:  url.Values{"command": {"deposit"}},
		Body:   map[string]string{"amount": "10.5"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var body struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, impl_rest.DecodeJSON(res, &body))
	assert.True(t, body.OK)
}

func TestClient_NonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := impl_rest.New(impl_rest.Options{Name: "test", BaseURL: server.URL})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		res, err := client.Do(context.Background(), impl_rest.Request{Path: "/x"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	}

	assert.True(t, client.Healthy())
}

func TestClient_TransportErrorIsExternal(t *testing.T) {
	doer := &failingDoer{err: errors.New("connection refused")}

	client, err := impl_rest.New(impl_rest.Options{Name: "test", BaseURL: "http://ledger.local", Doer: doer})
	require.NoError(t, err)

	_, err = client.Do(context.Background(), impl_rest.Request{Path: "/x"})
	require.Error(t, err)

	var rich *goerrors.Error
	require.True(t, goerrors.As(err, &rich))
	assert.Equal(t, goerrors.CategoryExternal, rich.Category)
	assert.Equal(t, http.StatusBadGateway, rich.Code)
	assert.Equal(t, impl_rest.TextCodeExternal, rich.TextCode)
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	doer := &failingDoer{err: errors.New("connection refused")}

	client, err := impl_rest.New(impl_rest.Options{
		Name:    "test",
		BaseURL: "http://ledger.local",
		Doer:    doer,
		Breaker: impl_rest.BreakerConfig{
			MaxRequests:         1,
			Interval:            time.Minute,
			OpenTimeout:         time.Minute,
			ConsecutiveFailures: 3,
		},
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := client.Do(context.Background(), impl_rest.Request{Path: "/x"})
		require.Error(t, err)
	}
	assert.False(t, client.Healthy())

	_, err = client.Do(context.Background(), impl_rest.Request{Path: "/x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, doer.calls, "open breaker must not reach the backend")

	var rich *goerrors.Error
	require.True(t, goerrors.As(err, &rich))
	assert.Equal(t, http.StatusServiceUnavailable, rich.Code)
	assert.Equal(t, goerrors.CategoryExternal, rich.Category)
	assert.Equal(t, impl_rest.TextCodeUnavailable, rich.TextCode)
}

func TestClient_CallerCancellationDoesNotTripBreaker(t *testing.T) {
	doer := &failingDoer{err: context.Canceled}

	client, err := impl_rest.New(impl_rest.Options{
		Name:    "test",
		BaseURL: "http://ledger.local",
		Doer:    doer,
		Breaker: impl_rest.BreakerConfig{MaxRequests: 1, OpenTimeout: time.Minute, ConsecutiveFailures: 1},
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := client.Do(context.Background(), impl_rest.Request{Path: "/x"})
		require.ErrorIs(t, err, context.Canceled)
	}

	assert.True(t, client.Healthy())
	assert.Equal(t, 3, doer.calls)
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	_, err := impl_rest.New(impl_rest.Options{Name: "test", BaseURL: "not a url"})
	require.Error(t, err)

	var rich *goerrors.Error
	require.True(t, goerrors.As(err, &rich))
	assert.Equal(t, goerrors.CategoryBadInput, rich.Category)
}

func TestDecodeJSON_WrapsMalformedBody(t *testing.T) {
	var v map[string]any
	err := impl_rest.DecodeJSON(impl_rest.Response{StatusCode: 200, Body: []byte("{")}, &v)
	require.Error(t, err)

	var syntax *json.SyntaxError
	assert.ErrorAs(t, err, &syntax)
}
