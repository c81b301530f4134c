package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"movietix-cli/model"
)

// GetLoginURL asks the user service for the Google authorization URL the
// user should visit to sign in.
func (c *Client) GetLoginURL(ctx context.Context, redirectURI string) (string, error) {
	if strings.TrimSpace(redirectURI) == "" {
		return "", errors.New("redirect uri is required")
	}
	endpoint := fmt.Sprintf("%s/auth/google/login?redirect_uri=%s", c.userURL, url.QueryEscape(redirectURI))

	var start model.LoginStart
	if err := c.getJSON(ctx, endpoint, &start); err != nil {
		return "", err
	}
	if start.AuthorizationUrl == "" {
		return "", errors.New("user service returned no authorization url")
	}
	return start.AuthorizationUrl, nil
}

// ExchangeCode trades the OAuth callback code for an access token and the
// signed-in user's profile.
func (c *Client) ExchangeCode(ctx context.Context, code string, redirectURI string) (model.LoginResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.LoginResult{}, errors.New("authorization code is required")
	}
	endpoint := fmt.Sprintf("%s/auth/google/callback", c.userURL)
	body := map[string]string{
		"code":         code,
		"redirect_uri": redirectURI,
	}

	var result model.LoginResult
	if err := c.postJSON(ctx, endpoint, body, nil, &result); err != nil {
		return model.LoginResult{}, err
	}
	if result.AccessToken == "" || result.User.Id == 0 {
		return model.LoginResult{}, errors.New("user service returned an incomplete login result")
	}
	return result, nil
}
