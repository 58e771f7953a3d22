package pastebin

import (
	"fmt"
	"time"
)

// PasteDetails is the metadata for a single paste, as built by CreatePaste
// or decoded from a listing. Values are plain data; the client never
// mutates them after returning.
type PasteDetails struct {
	Key          string     `json:"key"`
	URL          string     `json:"url"`
	Title        string     `json:"title,omitempty"`
	Size         int        `json:"size"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"` // nil = never expires
	Visibility   Visibility `json:"visibility"`
	Highlighting string     `json:"highlighting,omitempty"`
	Hits         int        `json:"hits"`
}

// Map returns the paste as a plain key/value mapping: RFC 3339 strings for
// timestamps, nil for absent optional fields. The form is stable and
// suitable for JSON export.
func (p *PasteDetails) Map() map[string]any {
	return map[string]any{
		"key":          p.Key,
		"url":          p.URL,
		"title":        nilIfEmpty(p.Title),
		"size":         p.Size,
		"created_at":   p.CreatedAt.Format(time.RFC3339),
		"expires_at":   formatOptionalTime(p.ExpiresAt),
		"visibility":   string(p.Visibility),
		"highlighting": nilIfEmpty(p.Highlighting),
		"hits":         p.Hits,
	}
}

// PasteDetailsFromMap rebuilds a PasteDetails from its Map form. Numeric
// values may arrive as float64, as JSON decoding produces them.
func PasteDetailsFromMap(m map[string]any) (*PasteDetails, error) {
	created, err := parseMapTime(m["created_at"])
	if err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}

	var expires *time.Time
	if m["expires_at"] != nil {
		t, err := parseMapTime(m["expires_at"])
		if err != nil {
			return nil, fmt.Errorf("expires_at: %w", err)
		}
		expires = &t
	}

	return &PasteDetails{
		Key:          mapString(m, "key"),
		URL:          mapString(m, "url"),
		Title:        mapString(m, "title"),
		Size:         mapInt(m, "size"),
		CreatedAt:    created,
		ExpiresAt:    expires,
		Visibility:   Visibility(mapString(m, "visibility")),
		Highlighting: mapString(m, "highlighting"),
		Hits:         mapInt(m, "hits"),
	}, nil
}

// UserDetails describes an account and the paste defaults its profile
// carries.
type UserDetails struct {
	Username            string      `json:"username"`
	AvatarURL           string      `json:"avatar_url,omitempty"`
	DefaultHighlighting string      `json:"default_highlighting,omitempty"`
	DefaultExpiration   Lifespan    `json:"default_expiration,omitempty"`
	DefaultVisibility   Visibility  `json:"default_visibility"`
	Website             string      `json:"website,omitempty"`
	Email               string      `json:"email,omitempty"`
	Location            string      `json:"location,omitempty"`
	AccountType         AccountType `json:"account_type"`
}

// Map returns the user details as a plain key/value mapping, nil for absent
// optional fields.
func (u *UserDetails) Map() map[string]any {
	return map[string]any{
		"username":             u.Username,
		"avatar_url":           nilIfEmpty(u.AvatarURL),
		"default_highlighting": nilIfEmpty(u.DefaultHighlighting),
		"default_expiration":   nilIfEmpty(string(u.DefaultExpiration)),
		"default_visibility":   string(u.DefaultVisibility),
		"website":              nilIfEmpty(u.Website),
		"email":                nilIfEmpty(u.Email),
		"location":             nilIfEmpty(u.Location),
		"account_type":         string(u.AccountType),
	}
}

// UserDetailsFromMap rebuilds a UserDetails from its Map form.
func UserDetailsFromMap(m map[string]any) *UserDetails {
	return &UserDetails{
		Username:            mapString(m, "username"),
		AvatarURL:           mapString(m, "avatar_url"),
		DefaultHighlighting: mapString(m, "default_highlighting"),
		DefaultExpiration:   Lifespan(mapString(m, "default_expiration")),
		DefaultVisibility:   Visibility(mapString(m, "default_visibility")),
		Website:             mapString(m, "website"),
		Email:               mapString(m, "email"),
		Location:            mapString(m, "location"),
		AccountType:         AccountType(mapString(m, "account_type")),
	}
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func formatOptionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

func parseMapTime(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("not a timestamp string: %v", v)
	}
	return time.Parse(time.RFC3339, s)
}

// mapString reads a string value, treating nil or a missing key as "".
func mapString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// mapInt reads an integer value, accepting the float64 form JSON decoding
// produces.
func mapInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
