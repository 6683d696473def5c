package jira

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{BaseURL: "  "}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base url is required")
}

func TestClientIssue_SendsExpectedRequestAndDecodesBody(t *testing.T) {
	t.Parallel()

	var gotAuth, gotAccept, gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"123","key":"PROJ-123","fields":{"summary":"Fix login bug"}}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:  srv.URL + "/",
		User:     "user@example.com",
		APIToken: "api-token-123",
	}, srv.Client())
	require.NoError(t, err)

	issue, err := client.Issue(context.Background(), "PROJ-123")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/rest/api/2/issue/PROJ-123", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	require.True(t, strings.HasPrefix(gotAuth, "Basic "), "expected Basic auth prefix")
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(gotAuth, "Basic "))
	require.NoError(t, err)
	assert.Equal(t, "user@example.com:api-token-123", string(decoded))

	assert.Equal(t, "123", issue["id"])
	assert.Equal(t, "PROJ-123", issue.Key())
	assert.Equal(t, "Fix login bug", issue.Summary())
}

func TestClientIssue_EmptyTicketID(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{BaseURL: "http://127.0.0.1"}, nil)
	require.NoError(t, err)

	_, err = client.Issue(context.Background(), " ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticket id cannot be empty")
}

func TestClientIssue_NotFoundReturnsStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errorMessages":["Issue does not exist or you do not have permission to see it."]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL}, srv.Client())
	require.NoError(t, err)

	issue, err := client.Issue(context.Background(), "PROJ-404")
	require.Error(t, err)
	assert.Nil(t, issue)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "Issue does not exist")
	assert.Contains(t, err.Error(), "status 404")
}

func TestClientIssue_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>login</html>`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL}, srv.Client())
	require.NoError(t, err)

	_, err = client.Issue(context.Background(), "PROJ-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse jira response")
}

func TestClientIssue_NullBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL}, srv.Client())
	require.NoError(t, err)

	_, err = client.Issue(context.Background(), "PROJ-1")
	require.Error(t, err)
}

func TestClientIssue_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := NewClient(Config{BaseURL: url}, nil)
	require.NoError(t, err)

	_, err = client.Issue(context.Background(), "PROJ-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch jira issue")
}

func TestClientIssueURL_EscapesTicketID(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{BaseURL: "https://example.atlassian.net/"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.atlassian.net/rest/api/2/issue/PROJ-1", client.IssueURL("PROJ-1"))
	assert.Equal(t, "https://example.atlassian.net/rest/api/2/issue/a%2Fb", client.IssueURL("a/b"))
}

func TestIssueAccessors_MissingFields(t *testing.T) {
	t.Parallel()

	issue := Issue{"fields": "not-a-map"}
	assert.Empty(t, issue.Key())
	assert.Empty(t, issue.Summary())
}
