package service_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dgiurgev/portfolio42/internal/config"
	"github.com/dgiurgev/portfolio42/internal/service"

	"gotest.tools/v3/assert"
)

var profileFixture = `{
	"first_name": "Jane",
	"last_name": "Doe",
	"login": "jdoe",
	"image": {"link": "https://cdn.intra.42.fr/users/jdoe.jpg"},
	"campus": [{"name": "Heilbronn", "address": "Bildungscampus 9"}],
	"cursus_users": [
		{"cursus_id": 21, "begin_at": "2020-01-15T00:00:00.000Z", "end_at": null}
	],
	"projects_users": [
		{"status": "finished", "final_mark": 115, "cursus_ids": [21], "project": {"name": "libft"}}
	]
}`

func newTestOAuthService(provider *httptest.Server) *service.OAuthService {
	return newTestOAuthServiceWithTimeout(provider, 5)
}

func newTestOAuthServiceWithTimeout(provider *httptest.Server, timeoutSeconds int) *service.OAuthService {
	oauthService := service.NewOAuthService(config.OAuthServiceConfig{
		ClientID:       "some-client-id",
		ClientSecret:   "some-client-secret",
		RedirectURI:    "http://localhost:5000/callback",
		AuthURL:        provider.URL + "/oauth/authorize",
		TokenURL:       provider.URL + "/oauth/token",
		ProfileURL:     provider.URL + "/v2/me",
		RequestTimeout: timeoutSeconds,
	})
	oauthService.Init()
	return oauthService
}

func newProvider(tokenHandler http.HandlerFunc, profileCalls *atomic.Int32) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", tokenHandler)
	mux.HandleFunc("/v2/me", func(w http.ResponseWriter, r *http.Request) {
		if profileCalls != nil {
			profileCalls.Add(1)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error": "invalid_token"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, profileFixture)
	})
	return httptest.NewServer(mux)
}

func validTokenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"access_token": "test-token", "token_type": "bearer", "expires_in": 7200}`)
}

func TestExchange(t *testing.T) {
	provider := newProvider(validTokenHandler, nil)
	defer provider.Close()

	oauthService := newTestOAuthService(provider)

	profile, err := oauthService.Exchange("valid-code")
	assert.NilError(t, err)

	assert.Equal(t, "Jane", profile.FirstName)
	assert.Equal(t, "jdoe", profile.Login)
	assert.Equal(t, 1, len(profile.ProjectsUsers))
	assert.Equal(t, "libft", profile.ProjectsUsers[0].Project.Name)
	assert.Equal(t, 115, *profile.ProjectsUsers[0].FinalMark)
	assert.Equal(t, 21, profile.CursusUsers[0].CursusID)
	assert.Equal(t, "", profile.CursusUsers[0].EndAt)
}

func TestExchangeMissingCode(t *testing.T) {
	var profileCalls atomic.Int32
	var tokenCalls atomic.Int32

	provider := newProvider(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		validTokenHandler(w, r)
	}, &profileCalls)
	defer provider.Close()

	oauthService := newTestOAuthService(provider)

	_, err := oauthService.Exchange("")

	var authErr *service.AuthError
	assert.Assert(t, errors.As(err, &authErr))
	assert.Equal(t, service.AuthErrorMissingCode, authErr.Kind)

	// No outbound calls for an empty code
	assert.Equal(t, int32(0), tokenCalls.Load())
	assert.Equal(t, int32(0), profileCalls.Load())
}

func TestExchangeTokenFailure(t *testing.T) {
	var profileCalls atomic.Int32

	provider := newProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": "invalid_grant", "error_description": "The provided authorization grant is invalid."}`)
	}, &profileCalls)
	defer provider.Close()

	oauthService := newTestOAuthService(provider)

	_, err := oauthService.Exchange("bad-code")

	var authErr *service.AuthError
	assert.Assert(t, errors.As(err, &authErr))
	assert.Equal(t, service.AuthErrorTokenExchange, authErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Assert(t, len(authErr.Body) > 0)
	assert.ErrorContains(t, authErr, "invalid_grant")

	// Short-circuit, the profile endpoint is never called
	assert.Equal(t, int32(0), profileCalls.Load())
}

func TestExchangeProfileFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", validTokenHandler)
	mux.HandleFunc("/v2/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "upstream exploded")
	})
	provider := httptest.NewServer(mux)
	defer provider.Close()

	oauthService := newTestOAuthService(provider)

	_, err := oauthService.Exchange("valid-code")

	var authErr *service.AuthError
	assert.Assert(t, errors.As(err, &authErr))
	assert.Equal(t, service.AuthErrorProfileFetch, authErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, authErr.Status)
	assert.Equal(t, "upstream exploded", authErr.Body)
}

func TestExchangeTokenTimeout(t *testing.T) {
	var profileCalls atomic.Int32

	provider := newProvider(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		validTokenHandler(w, r)
	}, &profileCalls)
	defer provider.Close()

	oauthService := newTestOAuthServiceWithTimeout(provider, 1)

	_, err := oauthService.Exchange("valid-code")

	var authErr *service.AuthError
	assert.Assert(t, errors.As(err, &authErr))
	assert.Equal(t, service.AuthErrorTimeout, authErr.Kind)

	// A timed-out exchange never reaches the profile endpoint
	assert.Equal(t, int32(0), profileCalls.Load())
}

func TestExchangeProfileTimeout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", validTokenHandler)
	mux.HandleFunc("/v2/me", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, profileFixture)
	})
	provider := httptest.NewServer(mux)
	defer provider.Close()

	oauthService := newTestOAuthServiceWithTimeout(provider, 1)

	_, err := oauthService.Exchange("valid-code")

	var authErr *service.AuthError
	assert.Assert(t, errors.As(err, &authErr))
	assert.Equal(t, service.AuthErrorTimeout, authErr.Kind)
}

func TestGetAuthURL(t *testing.T) {
	provider := newProvider(validTokenHandler, nil)
	defer provider.Close()

	oauthService := newTestOAuthService(provider)

	authURL := oauthService.GetAuthURL("some-state")

	assert.Assert(t, len(authURL) > 0)
	assert.Assert(t, strings.Contains(authURL, "client_id=some-client-id"))
	assert.Assert(t, strings.Contains(authURL, "response_type=code"))
	assert.Assert(t, strings.Contains(authURL, "state=some-state"))
	assert.Assert(t, strings.Contains(authURL, "redirect_uri="+url.QueryEscape("http://localhost:5000/callback")))
}

func TestGenerateState(t *testing.T) {
	provider := newProvider(validTokenHandler, nil)
	defer provider.Close()

	oauthService := newTestOAuthService(provider)

	first := oauthService.GenerateState()
	second := oauthService.GenerateState()

	assert.Assert(t, len(first) > 0)
	assert.Assert(t, first != second)
}
