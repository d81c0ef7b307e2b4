package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cantara-client/internal/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, 5*time.Second)
}

func TestDoDecodesErrorBody(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"database exploded"}`))
	})

	_, err := client.AuthStatus(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	require.Equal(t, "database exploded", apiErr.Message)
	require.Contains(t, apiErr.Error(), "database exploded")
}

func TestDoFallsBackToMessageField(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream down"}`))
	})

	_, err := client.AuthStatus(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "upstream down", apiErr.Message)
}

func TestDoUndecodableErrorKeepsStatus(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`<html>nope</html>`))
	})

	_, err := client.AuthStatus(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	require.Empty(t, apiErr.Message)
}

func TestLoginRejectionIsNotATransportError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid username or password"}`))
	})

	result, err := client.Login(context.Background(), models.LoginRequest{Username: "ada", Password: "no"})

	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "Invalid username or password", result.Error)
}

func TestCookiesPersistAcrossRequests(t *testing.T) {
	var sawCookie bool
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "cantara_session", Value: "tok", Path: "/"})
			w.Write([]byte(`{"success":true,"username":"ada"}`))
		case "/api/auth/status":
			if c, err := r.Cookie("cantara_session"); err == nil && c.Value == "tok" {
				sawCookie = true
			}
			w.Write([]byte(`{"logged_in":true,"username":"ada"}`))
		}
	})

	_, err := client.Login(context.Background(), models.LoginRequest{Username: "ada", Password: "pw"})
	require.NoError(t, err)

	_, err = client.AuthStatus(context.Background())
	require.NoError(t, err)
	require.True(t, sawCookie, "session cookie travels on subsequent calls")
}

func TestChatHistoryCacheBusts(t *testing.T) {
	var query url.Values
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"history":[{"question":"q","answer":"a","timestamp":"2026-08-28 10:00:00"}]}`))
	})

	items, err := client.ChatHistory(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotEmpty(t, query.Get("t"), "history requests carry a cache-busting timestamp")
}

func TestQuizQuestionsSendsCount(t *testing.T) {
	var query url.Values
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"questions":[]}`))
	})

	_, err := client.QuizQuestions(context.Background(), 5)

	require.NoError(t, err)
	require.Equal(t, "5", query.Get("count"))
}

func TestContextCancellationPropagates(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.AuthStatus(ctx)
	require.Error(t, err)
}
