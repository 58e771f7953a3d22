package pastebin

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// deleteAck is the exact body the service answers on successful
	// deletion.
	deleteAck = "Paste Removed"

	// noPastesBody is the body the service answers for an empty listing.
	noPastesBody = "No pastes found."

	// DefaultListLimit is the listing page size when none is given.
	DefaultListLimit = 50
)

// CreatePasteOptions configures paste creation. Zero-valued fields fall
// back to the defaults stored by Login and then to the service defaults
// (unlisted visibility, 10-minute lifespan).
type CreatePasteOptions struct {
	// Name is an optional paste title.
	Name string
	// Highlighting is a syntax tag such as "go" or "python"; see
	// ValidHighlighting for the allowed set.
	Highlighting string
	// Visibility is public, unlisted or private.
	Visibility Visibility
	// Lifespan picks when the service expires the paste.
	Lifespan Lifespan
	// FolderKey files the paste into a folder; requires a session.
	FolderKey string
	// SessionKey overrides the session key stored by Login.
	SessionKey string
}

// CreatePaste uploads text as a new paste using the stored defaults.
func (c *Client) CreatePaste(ctx context.Context, text string) (*PasteDetails, error) {
	return c.CreatePasteWithOptions(ctx, text, CreatePasteOptions{})
}

// CreatePasteWithOptions uploads text as a new paste and returns its
// metadata.
//
// The returned ExpiresAt is computed locally as CreatedAt plus the
// lifespan's fixed offset; listings later report the service's own value,
// which can differ by network latency.
func (c *Client) CreatePasteWithOptions(ctx context.Context, text string, opts CreatePasteOptions) (*PasteDetails, error) {
	highlighting := opts.Highlighting
	if highlighting == "" {
		highlighting = c.defaultHighlighting
	}
	visibility := opts.Visibility
	if visibility == "" {
		visibility = c.defaultVisibility
	}
	lifespan := opts.Lifespan
	if lifespan == "" {
		lifespan = c.defaultExpiration
	}

	// Service defaults when neither the call nor the login profile set one.
	if visibility == "" {
		visibility = VisibilityUnlisted
	}
	if lifespan == "" {
		lifespan = Lifespan10Minutes
	}

	if !visibility.Valid() {
		return nil, &Error{Code: ErrValidation, Message: fmt.Sprintf("invalid visibility: %q", visibility)}
	}
	if !lifespan.Valid() {
		return nil, &Error{Code: ErrValidation, Message: fmt.Sprintf("invalid lifespan: %q", lifespan)}
	}
	if highlighting != "" && !ValidHighlighting(highlighting) {
		return nil, &Error{Code: ErrValidation, Message: fmt.Sprintf("invalid highlighting: %q", highlighting)}
	}

	form := url.Values{}
	form.Set("api_dev_key", c.devKey)
	form.Set("api_option", "paste")
	form.Set("api_paste_code", text)
	form.Set("api_paste_private", strconv.Itoa(visibility.code()))
	form.Set("api_paste_expire_date", string(lifespan))
	if highlighting != "" {
		form.Set("api_paste_format", highlighting)
	}
	if opts.Name != "" {
		form.Set("api_paste_name", opts.Name)
	}
	if opts.FolderKey != "" {
		form.Set("api_folder_key", opts.FolderKey)
	}
	if sessionKey := c.sessionKeyOr(opts.SessionKey); sessionKey != "" {
		form.Set("api_user_key", sessionKey)
	}

	body, err := c.postForm(ctx, postPath, form)
	if err != nil {
		return nil, err
	}

	// A successful create answers with nothing but the paste URL.
	pasteURL := strings.TrimSpace(body)
	if !strings.HasPrefix(pasteURL, c.baseURL+"/") {
		return nil, &Error{Code: ErrAPI, Message: pasteURL}
	}
	key := pasteURL[strings.LastIndex(pasteURL, "/")+1:]

	now := time.Now().UTC()
	var expiresAt *time.Time
	if d, ok := lifespan.Duration(); ok {
		t := now.Add(d)
		expiresAt = &t
	}

	return &PasteDetails{
		Key:          key,
		URL:          pasteURL,
		Title:        opts.Name,
		Size:         len(text),
		CreatedAt:    now,
		ExpiresAt:    expiresAt,
		Visibility:   visibility,
		Highlighting: highlighting,
		Hits:         0,
	}, nil
}

// DeletePasteOptions configures paste deletion.
type DeletePasteOptions struct {
	// SessionKey overrides the session key stored by Login.
	SessionKey string
}

// DeletePaste removes a paste owned by the logged-in account.
func (c *Client) DeletePaste(ctx context.Context, key string) error {
	return c.DeletePasteWithOptions(ctx, key, DeletePasteOptions{})
}

// DeletePasteWithOptions removes a paste. The service only acknowledges
// deleting pastes the session owns.
func (c *Client) DeletePasteWithOptions(ctx context.Context, key string, opts DeletePasteOptions) error {
	form := url.Values{}
	form.Set("api_dev_key", c.devKey)
	form.Set("api_option", "delete")
	form.Set("api_paste_key", key)
	if sessionKey := c.sessionKeyOr(opts.SessionKey); sessionKey != "" {
		form.Set("api_user_key", sessionKey)
	}

	body, err := c.postForm(ctx, postPath, form)
	if err != nil {
		return err
	}

	if strings.TrimSpace(body) != deleteAck {
		return &Error{Code: ErrAPI, Message: strings.TrimSpace(body)}
	}
	return nil
}

// FetchRawOptions configures raw content retrieval.
type FetchRawOptions struct {
	// SessionKey overrides the session key stored by Login.
	SessionKey string
	// Public fetches through the unauthenticated raw endpoint instead of
	// the session-scoped one. Only public and unlisted pastes are reachable
	// that way; leave it false for private pastes and other pastes the
	// session owns.
	Public bool
}

// FetchRaw returns the raw text of a paste through the session-scoped
// endpoint.
func (c *Client) FetchRaw(ctx context.Context, key string) (string, error) {
	return c.FetchRawWithOptions(ctx, key, FetchRawOptions{})
}

// FetchRawWithOptions returns the raw text of a paste, exactly as served
// and without trimming.
func (c *Client) FetchRawWithOptions(ctx context.Context, key string, opts FetchRawOptions) (string, error) {
	if opts.Public {
		return c.get(ctx, publicRawPath+key)
	}

	form := url.Values{}
	form.Set("api_option", "show_paste")
	form.Set("api_dev_key", c.devKey)
	form.Set("api_paste_key", key)
	if sessionKey := c.sessionKeyOr(opts.SessionKey); sessionKey != "" {
		form.Set("api_user_key", sessionKey)
	}
	return c.postForm(ctx, rawPath, form)
}

// ListPastesOptions configures paste listing.
type ListPastesOptions struct {
	// SessionKey overrides the session key stored by Login.
	SessionKey string
	// Limit caps the number of results; the service accepts 1 to 1000.
	// Zero means DefaultListLimit.
	Limit int
}

// ListPastes returns the pastes owned by the logged-in account, newest
// first as the service orders them.
func (c *Client) ListPastes(ctx context.Context) ([]*PasteDetails, error) {
	return c.ListPastesWithOptions(ctx, ListPastesOptions{})
}

// ListPastesWithOptions returns the pastes owned by the session's account.
func (c *Client) ListPastesWithOptions(ctx context.Context, opts ListPastesOptions) ([]*PasteDetails, error) {
	limit := opts.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	form := url.Values{}
	form.Set("api_option", "list")
	form.Set("api_dev_key", c.devKey)
	form.Set("api_results_limit", strconv.Itoa(limit))
	if sessionKey := c.sessionKeyOr(opts.SessionKey); sessionKey != "" {
		form.Set("api_user_key", sessionKey)
	}

	body, err := c.postForm(ctx, postPath, form)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(body) == noPastesBody {
		return []*PasteDetails{}, nil
	}
	return parsePasteList(body)
}

// xmlPaste mirrors one <paste> element of a listing response.
type xmlPaste struct {
	Key         string `xml:"paste_key"`
	Date        int64  `xml:"paste_date"`
	Title       string `xml:"paste_title"`
	Size        int    `xml:"paste_size"`
	ExpireDate  int64  `xml:"paste_expire_date"`
	Private     int    `xml:"paste_private"`
	FormatShort string `xml:"paste_format_short"`
	URL         string `xml:"paste_url"`
	Hits        int    `xml:"paste_hits"`
}

// parsePasteList decodes a listing body. The service emits sibling <paste>
// elements with no document root, so the body is wrapped in a synthetic
// root element before decoding.
func parsePasteList(body string) ([]*PasteDetails, error) {
	var doc struct {
		Pastes []xmlPaste `xml:"paste"`
	}
	if err := xml.Unmarshal([]byte("<root>"+body+"</root>"), &doc); err != nil {
		return nil, &Error{Code: ErrParse, Message: "parsing paste list", cause: err}
	}

	pastes := make([]*PasteDetails, 0, len(doc.Pastes))
	for _, x := range doc.Pastes {
		pastes = append(pastes, x.details())
	}
	return pastes, nil
}

// details maps a decoded listing element onto the public container,
// applying the service's defaulting rules.
func (x xmlPaste) details() *PasteDetails {
	title := x.Title
	if title == "" {
		title = "Untitled"
	}

	var expiresAt *time.Time
	if x.ExpireDate != 0 {
		t := time.Unix(x.ExpireDate, 0).UTC()
		expiresAt = &t
	}

	return &PasteDetails{
		Key:          x.Key,
		URL:          x.URL,
		Title:        title,
		Size:         x.Size,
		CreatedAt:    time.Unix(x.Date, 0).UTC(),
		ExpiresAt:    expiresAt,
		Visibility:   visibilityFromCode(x.Private),
		Highlighting: x.FormatShort,
		Hits:         x.Hits,
	}
}
