package pastebin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCreateStub answers every create with its own URL plus the given key,
// capturing the posted form.
func newCreateStub(t *testing.T, key string, form *url.Values) *Client {
	t.Helper()
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if form != nil {
			*form = r.PostForm
		}
		fmt.Fprint(w, ts.URL+"/"+key)
	}))
	t.Cleanup(ts.Close)
	return New("devkey123", WithBaseURL(ts.URL))
}

func TestCreatePaste(t *testing.T) {
	var form url.Values
	c := newCreateStub(t, "abc123", &form)

	before := time.Now().UTC()
	paste, err := c.CreatePasteWithOptions(context.Background(), "hello", CreatePasteOptions{
		Name:         "greeting",
		Highlighting: "python",
		Visibility:   VisibilityUnlisted,
		Lifespan:     LifespanNever,
	})
	after := time.Now().UTC()
	require.NoError(t, err)

	assert.Equal(t, "abc123", paste.Key)
	assert.Equal(t, c.baseURL+"/abc123", paste.URL)
	assert.Equal(t, "greeting", paste.Title)
	assert.Equal(t, 5, paste.Size, "size is the byte length of the text")
	assert.Nil(t, paste.ExpiresAt, "lifespan N never expires")
	assert.Equal(t, VisibilityUnlisted, paste.Visibility)
	assert.Equal(t, "python", paste.Highlighting)
	assert.Zero(t, paste.Hits)

	assert.False(t, paste.CreatedAt.Before(before))
	assert.False(t, paste.CreatedAt.After(after))

	assert.Equal(t, "paste", form.Get("api_option"))
	assert.Equal(t, "hello", form.Get("api_paste_code"))
	assert.Equal(t, "1", form.Get("api_paste_private"))
	assert.Equal(t, "N", form.Get("api_paste_expire_date"))
	assert.Equal(t, "python", form.Get("api_paste_format"))
	assert.Equal(t, "greeting", form.Get("api_paste_name"))
	assert.Empty(t, form.Get("api_user_key"), "no session, no user key")
}

func TestCreatePasteSizeCountsBytes(t *testing.T) {
	c := newCreateStub(t, "abc123", nil)

	// Multi-byte runes count as bytes, not characters.
	paste, err := c.CreatePaste(context.Background(), "héllo")
	require.NoError(t, err)
	assert.Equal(t, 6, paste.Size)
}

func TestCreatePasteLocalExpiry(t *testing.T) {
	offsets := map[Lifespan]time.Duration{
		Lifespan10Minutes: 10 * time.Minute,
		Lifespan1Hour:     time.Hour,
		Lifespan1Day:      24 * time.Hour,
		Lifespan1Week:     7 * 24 * time.Hour,
		Lifespan2Weeks:    14 * 24 * time.Hour,
		Lifespan1Month:    30 * 24 * time.Hour,
		Lifespan6Months:   180 * 24 * time.Hour,
		Lifespan1Year:     365 * 24 * time.Hour,
	}

	c := newCreateStub(t, "abc123", nil)

	for lifespan, offset := range offsets {
		t.Run(string(lifespan), func(t *testing.T) {
			paste, err := c.CreatePasteWithOptions(context.Background(), "x", CreatePasteOptions{Lifespan: lifespan})
			require.NoError(t, err)
			require.NotNil(t, paste.ExpiresAt)
			assert.Equal(t, offset, paste.ExpiresAt.Sub(paste.CreatedAt))
		})
	}
}

func TestCreatePasteValidationHappensBeforeRequest(t *testing.T) {
	var hits atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, "should never be reached")
	})
	c := newTestClient(t, handler)

	cases := []struct {
		name string
		opts CreatePasteOptions
	}{
		{"visibility", CreatePasteOptions{Visibility: "friends-only"}},
		{"lifespan", CreatePasteOptions{Lifespan: "3D"}},
		{"highlighting", CreatePasteOptions{Highlighting: "golang"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.CreatePasteWithOptions(context.Background(), "hello", tc.opts)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}

	assert.Zero(t, hits.Load(), "invalid arguments must not reach the network")
}

func TestCreatePasteUsesStoredDefaults(t *testing.T) {
	var form url.Values
	c := newCreateStub(t, "abc123", &form)

	// As Login would have stored them.
	c.sessionKey = "sessionkey123"
	c.defaultHighlighting = "go"
	c.defaultExpiration = Lifespan1Week
	c.defaultVisibility = VisibilityPrivate

	paste, err := c.CreatePaste(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, "2", form.Get("api_paste_private"))
	assert.Equal(t, "1W", form.Get("api_paste_expire_date"))
	assert.Equal(t, "go", form.Get("api_paste_format"))
	assert.Equal(t, "sessionkey123", form.Get("api_user_key"))
	assert.Equal(t, VisibilityPrivate, paste.Visibility)
}

func TestCreatePasteOptionsOverrideStoredDefaults(t *testing.T) {
	var form url.Values
	c := newCreateStub(t, "abc123", &form)

	c.sessionKey = "sessionkey123"
	c.defaultHighlighting = "go"
	c.defaultExpiration = Lifespan1Week
	c.defaultVisibility = VisibilityPrivate

	_, err := c.CreatePasteWithOptions(context.Background(), "hello", CreatePasteOptions{
		Highlighting: "python",
		Visibility:   VisibilityPublic,
		Lifespan:     Lifespan1Hour,
		SessionKey:   "overridekey456",
	})
	require.NoError(t, err)

	assert.Equal(t, "0", form.Get("api_paste_private"))
	assert.Equal(t, "1H", form.Get("api_paste_expire_date"))
	assert.Equal(t, "python", form.Get("api_paste_format"))
	assert.Equal(t, "overridekey456", form.Get("api_user_key"))
}

func TestCreatePasteServiceFallbackDefaults(t *testing.T) {
	var form url.Values
	c := newCreateStub(t, "abc123", &form)

	// No login, no options: unlisted for 10 minutes.
	paste, err := c.CreatePaste(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, "1", form.Get("api_paste_private"))
	assert.Equal(t, "10M", form.Get("api_paste_expire_date"))
	assert.False(t, form.Has("api_paste_format"))
	assert.False(t, form.Has("api_paste_name"))
	assert.Equal(t, VisibilityUnlisted, paste.Visibility)
	require.NotNil(t, paste.ExpiresAt)
	assert.Equal(t, 10*time.Minute, paste.ExpiresAt.Sub(paste.CreatedAt))
}

func TestCreatePasteAPIError(t *testing.T) {
	c := newTestClient(t, textResponse(http.StatusOK, "Bad API request, maximum number of 25 unlisted pastes exceeded"))

	_, err := c.CreatePaste(context.Background(), "hello")

	require.Error(t, err)
	assert.True(t, IsAPI(err))
	assert.Contains(t, err.Error(), "maximum number of 25 unlisted pastes")
}

func TestDeletePaste(t *testing.T) {
	var form url.Values
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		form = r.PostForm
		fmt.Fprint(w, "Paste Removed")
	})

	c := newTestClient(t, handler)
	c.sessionKey = "sessionkey123"

	require.NoError(t, c.DeletePaste(context.Background(), "abc123"))

	assert.Equal(t, "delete", form.Get("api_option"))
	assert.Equal(t, "abc123", form.Get("api_paste_key"))
	assert.Equal(t, "sessionkey123", form.Get("api_user_key"))
}

func TestDeletePasteAcceptsPaddedAck(t *testing.T) {
	c := newTestClient(t, textResponse(http.StatusOK, "Paste Removed\n"))
	assert.NoError(t, c.DeletePaste(context.Background(), "abc123"))
}

func TestDeletePasteRejectsAnythingElse(t *testing.T) {
	cases := []string{
		"Bad API request, invalid permission to remove paste",
		"paste removed",
		"Paste Removed.",
		"",
	}

	for _, body := range cases {
		c := newTestClient(t, textResponse(http.StatusOK, body))
		err := c.DeletePaste(context.Background(), "abc123")
		require.Error(t, err, "body %q", body)
		assert.True(t, IsAPI(err), "body %q", body)
	}
}

func TestFetchRawOwned(t *testing.T) {
	var form url.Values
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotPath = r.URL.Path
		form = r.PostForm
		fmt.Fprint(w, "line one\nline two\n")
	})

	c := newTestClient(t, handler)
	c.sessionKey = "sessionkey123"

	text, err := c.FetchRaw(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "line one\nline two\n", text, "raw content is never trimmed")
	assert.Equal(t, "/api/api_raw.php", gotPath)
	assert.Equal(t, "show_paste", form.Get("api_option"))
	assert.Equal(t, "abc123", form.Get("api_paste_key"))
	assert.Equal(t, "sessionkey123", form.Get("api_user_key"))
}

func TestFetchRawPublic(t *testing.T) {
	var gotPath, gotMethod string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		fmt.Fprint(w, "public content")
	})

	c := newTestClient(t, handler)

	text, err := c.FetchRawWithOptions(context.Background(), "abc123", FetchRawOptions{Public: true})
	require.NoError(t, err)

	assert.Equal(t, "public content", text)
	assert.Equal(t, "/raw/abc123", gotPath)
	assert.Equal(t, http.MethodGet, gotMethod)
}

func TestFetchRawNotFound(t *testing.T) {
	c := newTestClient(t, textResponse(http.StatusNotFound, "not found or expired"))

	_, err := c.FetchRawWithOptions(context.Background(), "gone", FetchRawOptions{Public: true})

	require.Error(t, err)
	assert.True(t, IsTransport(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

const testListXML = `<paste>
<paste_key>b7Qw12Xy</paste_key>
<paste_date>1709294400</paste_date>
<paste_title>deploy notes</paste_title>
<paste_size>512</paste_size>
<paste_expire_date>1709380800</paste_expire_date>
<paste_private>2</paste_private>
<paste_format_short>bash</paste_format_short>
<paste_url>https://pastebin.com/b7Qw12Xy</paste_url>
<paste_hits>14</paste_hits>
</paste>
<paste>
<paste_key>c3Ab45Cd</paste_key>
<paste_date>1709208000</paste_date>
<paste_title></paste_title>
<paste_size>9</paste_size>
<paste_expire_date>0</paste_expire_date>
<paste_private>7</paste_private>
<paste_format_short></paste_format_short>
<paste_url>https://pastebin.com/c3Ab45Cd</paste_url>
<paste_hits>0</paste_hits>
</paste>`

func TestListPastes(t *testing.T) {
	var form url.Values
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		form = r.PostForm
		fmt.Fprint(w, testListXML)
	})

	c := newTestClient(t, handler)
	c.sessionKey = "sessionkey123"

	pastes, err := c.ListPastes(context.Background())
	require.NoError(t, err)
	require.Len(t, pastes, 2)

	assert.Equal(t, "list", form.Get("api_option"))
	assert.Equal(t, "50", form.Get("api_results_limit"), "default limit")

	first := pastes[0]
	assert.Equal(t, "b7Qw12Xy", first.Key)
	assert.Equal(t, "deploy notes", first.Title)
	assert.Equal(t, 512, first.Size)
	assert.Equal(t, time.Unix(1709294400, 0).UTC(), first.CreatedAt)
	require.NotNil(t, first.ExpiresAt)
	assert.Equal(t, time.Unix(1709380800, 0).UTC(), *first.ExpiresAt)
	assert.Equal(t, VisibilityPrivate, first.Visibility)
	assert.Equal(t, "bash", first.Highlighting)
	assert.Equal(t, 14, first.Hits)

	second := pastes[1]
	assert.Equal(t, "Untitled", second.Title, "empty titles read as Untitled")
	assert.Nil(t, second.ExpiresAt, "expire timestamp 0 means never")
	assert.Equal(t, VisibilityPublic, second.Visibility, "unknown visibility code reads as public")
	assert.Empty(t, second.Highlighting)
}

func TestListPastesEmpty(t *testing.T) {
	for _, body := range []string{"No pastes found.", "No pastes found.\n", "  No pastes found.  "} {
		c := newTestClient(t, textResponse(http.StatusOK, body))
		c.sessionKey = "sessionkey123"

		pastes, err := c.ListPastes(context.Background())
		require.NoError(t, err, "body %q", body)
		assert.NotNil(t, pastes)
		assert.Empty(t, pastes)
	}
}

func TestListPastesCustomLimit(t *testing.T) {
	var form url.Values
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		form = r.PostForm
		fmt.Fprint(w, "No pastes found.")
	})

	c := newTestClient(t, handler)
	_, err := c.ListPastesWithOptions(context.Background(), ListPastesOptions{SessionKey: "k", Limit: 200})

	require.NoError(t, err)
	assert.Equal(t, "200", form.Get("api_results_limit"))
}

func TestListPastesMalformedXML(t *testing.T) {
	c := newTestClient(t, textResponse(http.StatusOK, "<paste><paste_key>abc"))
	c.sessionKey = "sessionkey123"

	_, err := c.ListPastes(context.Background())

	require.Error(t, err)
	assert.True(t, IsParse(err))
}

func TestListPastesPlainTextBodyDecodesAsEmpty(t *testing.T) {
	// Error texts other than "No pastes found." still wrap into valid XML
	// with no paste elements.
	c := newTestClient(t, textResponse(http.StatusOK, "Bad API request, invalid api_user_key"))

	pastes, err := c.ListPastes(context.Background())

	require.NoError(t, err)
	assert.Empty(t, pastes)
}
