package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/dgiurgev/portfolio42/internal/config"

	"golang.org/x/oauth2"
)

// OAuthService performs the authorization-code flow against the 42 intranet:
// exchange the code for an access token, then fetch the user's profile with
// it. Both calls are sequential, single attempt, no retries.
type OAuthService struct {
	Config     oauth2.Config
	Context    context.Context
	ProfileURL string
	Timeout    time.Duration
}

func NewOAuthService(config config.OAuthServiceConfig) *OAuthService {
	return &OAuthService{
		Config: oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURI,
			Scopes:       []string{"public"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  config.AuthURL,
				TokenURL: config.TokenURL,
			},
		},
		ProfileURL: config.ProfileURL,
		Timeout:    time.Duration(config.RequestTimeout) * time.Second,
	}
}

func (o *OAuthService) Init() error {
	httpClient := &http.Client{
		Timeout: o.Timeout,
	}

	ctx := context.Background()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

	o.Context = ctx
	return nil
}

func (o *OAuthService) GenerateState() string {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return base64.RawURLEncoding.EncodeToString(fmt.Appendf(nil, "state-%d", time.Now().UnixNano()))
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func (o *OAuthService) GetAuthURL(state string) string {
	return o.Config.AuthCodeURL(state)
}

// Exchange runs the full flow for one authorization code and returns the raw
// profile payload. Failures come back as *AuthError; the profile endpoint is
// never called when the token exchange fails.
func (o *OAuthService) Exchange(code string) (*config.Profile, error) {
	if code == "" {
		return nil, &AuthError{Kind: AuthErrorMissingCode}
	}

	token, err := o.Config.Exchange(o.Context, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			status := 0
			if retrieveErr.Response != nil {
				status = retrieveErr.Response.StatusCode
			}
			return nil, &AuthError{Kind: AuthErrorTokenExchange, Status: status, Body: string(retrieveErr.Body), cause: err}
		}
		if isTimeout(err) {
			return nil, &AuthError{Kind: AuthErrorTimeout, cause: err}
		}
		return nil, &AuthError{Kind: AuthErrorTokenExchange, cause: err}
	}

	return o.fetchProfile(token)
}

// An empty access token is not rejected here, the provider's 401 on the
// profile call surfaces instead. The client is built by hand because
// oauth2.Config.Client drops the base client's timeout.
func (o *OAuthService) fetchProfile(token *oauth2.Token) (*config.Profile, error) {
	client := &http.Client{
		Timeout: o.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(token),
		},
	}

	res, err := client.Get(o.ProfileURL)
	if err != nil {
		if isTimeout(err) {
			return nil, &AuthError{Kind: AuthErrorTimeout, cause: err}
		}
		return nil, &AuthError{Kind: AuthErrorProfileFetch, cause: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &AuthError{Kind: AuthErrorProfileFetch, Status: res.StatusCode, cause: err}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &AuthError{Kind: AuthErrorProfileFetch, Status: res.StatusCode, Body: string(body)}
	}

	var profile config.Profile
	err = json.Unmarshal(body, &profile)
	if err != nil {
		return nil, &AuthError{Kind: AuthErrorProfileFetch, Status: res.StatusCode, cause: err}
	}

	return &profile, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
