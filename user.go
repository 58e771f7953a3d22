package pastebin

import (
	"context"
	"encoding/xml"
	"net/url"
)

// FetchUserDetailsOptions configures user detail retrieval.
type FetchUserDetailsOptions struct {
	// SessionKey overrides the session key stored by Login.
	SessionKey string
}

// FetchUserDetails returns the logged-in account's profile and its paste
// defaults.
func (c *Client) FetchUserDetails(ctx context.Context) (*UserDetails, error) {
	return c.FetchUserDetailsWithOptions(ctx, FetchUserDetailsOptions{})
}

// FetchUserDetailsWithOptions returns the profile and paste defaults of the
// session's account.
func (c *Client) FetchUserDetailsWithOptions(ctx context.Context, opts FetchUserDetailsOptions) (*UserDetails, error) {
	form := url.Values{}
	form.Set("api_option", "userdetails")
	form.Set("api_dev_key", c.devKey)
	if sessionKey := c.sessionKeyOr(opts.SessionKey); sessionKey != "" {
		form.Set("api_user_key", sessionKey)
	}

	body, err := c.postForm(ctx, postPath, form)
	if err != nil {
		return nil, err
	}
	return parseUserDetails(body)
}

// xmlUser mirrors the single-root <user> document of a userdetails
// response.
type xmlUser struct {
	Name        string `xml:"user_name"`
	FormatShort string `xml:"user_format_short"`
	Expiration  string `xml:"user_expiration"`
	AvatarURL   string `xml:"user_avatar_url"`
	Private     int    `xml:"user_private"`
	Website     string `xml:"user_website"`
	Email       string `xml:"user_email"`
	Location    string `xml:"user_location"`
	AccountType int    `xml:"user_account_type"`
}

func parseUserDetails(body string) (*UserDetails, error) {
	var x xmlUser
	if err := xml.Unmarshal([]byte(body), &x); err != nil {
		return nil, &Error{Code: ErrParse, Message: "parsing user details", cause: err}
	}

	return &UserDetails{
		Username:            x.Name,
		AvatarURL:           x.AvatarURL,
		DefaultHighlighting: x.FormatShort,
		DefaultExpiration:   Lifespan(x.Expiration),
		DefaultVisibility:   visibilityFromCode(x.Private),
		Website:             x.Website,
		Email:               x.Email,
		Location:            x.Location,
		AccountType:         accountTypeFromCode(x.AccountType),
	}, nil
}
