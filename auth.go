package pastebin

import (
	"context"
	"net/url"
	"strings"
)

// badRequestPrefix marks the service's error responses, which come back
// with a 200 status and an explanatory plain-text body.
const badRequestPrefix = "Bad API request"

// FetchSessionKey authenticates the given credentials and returns a session
// key for use in later calls. It does not modify the client; use Login to
// store the key and the account's paste defaults.
func (c *Client) FetchSessionKey(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("api_dev_key", c.devKey)
	form.Set("api_user_name", username)
	form.Set("api_user_password", password)

	body, err := c.postForm(ctx, loginPath, form)
	if err != nil {
		return "", err
	}

	key := strings.TrimSpace(body)
	if strings.HasPrefix(key, badRequestPrefix) {
		return "", &Error{Code: ErrAuthentication, Message: key}
	}
	return key, nil
}

// Login authenticates and stores the session key together with the
// account's default highlighting, expiration and visibility for later calls
// to fall back on. Nothing is stored unless both the key fetch and the
// profile fetch succeed.
func (c *Client) Login(ctx context.Context, username, password string) error {
	key, err := c.FetchSessionKey(ctx, username, password)
	if err != nil {
		return err
	}

	details, err := c.FetchUserDetailsWithOptions(ctx, FetchUserDetailsOptions{SessionKey: key})
	if err != nil {
		return err
	}

	c.sessionKey = key
	c.defaultHighlighting = details.DefaultHighlighting
	c.defaultExpiration = details.DefaultExpiration
	c.defaultVisibility = details.DefaultVisibility

	c.log.Info().Str("username", details.Username).Msg("logged in")
	return nil
}
