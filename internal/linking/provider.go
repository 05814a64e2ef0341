package linking

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"finboard/internal/config"
	"finboard/internal/middlewares"
	"fmt"
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// NewProvider creates the brokerage link provider against the configured
// issuer. Discovery runs once at startup; a provider that cannot be reached
// fails the boot rather than every link attempt.
func NewProvider(ctx context.Context, cfg *config.LinkingConfig) (middlewares.LinkProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create link provider: %w", err)
	}

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       cfg.Scopes,
		RedirectURL:  cfg.RedirectURI,
	}

	return &Provider{
		provider:     provider,
		oauth2Config: oauth2Config,
	}, nil
}

type Provider struct {
	provider     *oidc.Provider
	oauth2Config *oauth2.Config
}

func generateRandString(bytes int) string {
	if bytes <= 0 {
		bytes = 32
	}

	b := make([]byte, bytes)
	_, _ = rand.Read(b)

	return base64.URLEncoding.EncodeToString(b)
}

func generateCodeVerifier() (string, string) {
	b := make([]byte, 56)
	_, _ = rand.Read(b)

	codeVerifier := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b)
	hash := sha256.Sum256([]byte(codeVerifier))
	codeChallenge := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(hash[:])
	return codeVerifier, codeChallenge
}

// StartLink begins the authorization flow: fresh state, nonce and PKCE
// verifier go into the session, and the caller redirects the browser to the
// returned authorize URL.
func (p *Provider) StartLink(ctx *middlewares.AppContext) (string, error) {
	state := generateRandString(32)
	nonce := generateRandString(32)
	codeVerifier, codeChallenge := generateCodeVerifier()

	ctx.SessionManager.SetLinkFlow(ctx, state, nonce, codeVerifier)

	authURL := p.oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	return authURL, nil
}

// HandleCallback finishes the flow: state check, code exchange with the PKCE
// verifier, ID token verification, nonce check. On success it returns the
// public token the brokerage issued, which the caller forwards upstream to
// complete the link.
func (p *Provider) HandleCallback(ctx *middlewares.AppContext) (string, error) {
	if errorParam := ctx.Request.URL.Query().Get("error"); errorParam != "" {
		errorDescription := ctx.Request.URL.Query().Get("error_description")

		errorURL := fmt.Sprintf("/error?error=%s", url.QueryEscape(errorParam))
		if errorDescription != "" {
			errorURL += "&error_description=" + url.QueryEscape(errorDescription)
		}

		ctx.SessionManager.ClearLinkFlow(ctx)
		return "", &LinkError{RedirectURL: errorURL, Message: errorParam}
	}

	storedState, storedNonce, codeVerifier := ctx.SessionManager.GetLinkFlow(ctx)
	if storedState == "" {
		return "", &LinkError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("No link state found in session"),
			Message:     "no link state found in session",
		}
	}

	receivedState := ctx.Request.URL.Query().Get("state")
	if receivedState != storedState {
		return "", &LinkError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("Invalid state parameter"),
			Message:     "invalid state parameter",
		}
	}

	ctx.SessionManager.ClearLinkFlow(ctx)

	code := ctx.Request.URL.Query().Get("code")
	if code == "" {
		return "", &LinkError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("No authorization code received"),
			Message:     "no authorization code received",
		}
	}

	token, err := p.oauth2Config.Exchange(ctx.Request.Context(), code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return "", &LinkError{
			RedirectURL: "/error?error=invalid_grant&error_description=" + url.QueryEscape("Failed to exchange code for token"),
			Message:     fmt.Sprintf("failed to exchange code for token: %v", err),
		}
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return "", &LinkError{
			RedirectURL: "/error?error=invalid_token&error_description=" + url.QueryEscape("No id_token found in oauth2 token"),
			Message:     "no id_token found in oauth2 token",
		}
	}

	verifier := p.provider.Verifier(&oidc.Config{ClientID: p.oauth2Config.ClientID})

	idToken, err := verifier.Verify(ctx.Request.Context(), rawIDToken)
	if err != nil {
		return "", &LinkError{
			RedirectURL: "/error?error=invalid_token&error_description=" + url.QueryEscape("Failed to verify ID Token"),
			Message:     fmt.Sprintf("failed to verify ID Token: %v", err),
		}
	}

	if idToken.Nonce != storedNonce {
		return "", &LinkError{
			RedirectURL: "/error?error=invalid_token&error_description=" + url.QueryEscape("Invalid Nonce"),
			Message:     "nonce in ID Token is invalid",
		}
	}

	publicToken, ok := token.Extra("public_token").(string)
	if !ok || publicToken == "" {
		publicToken = token.AccessToken
	}

	if publicToken == "" {
		return "", &LinkError{
			RedirectURL: "/error?error=server_error&error_description=" + url.QueryEscape("No public token issued"),
			Message:     "no public token issued",
		}
	}

	return publicToken, nil
}
