// Package pastebintest runs an in-process fake of the Pastebin HTTP API
// for tests. The fake speaks the real service's wire formats: form-encoded
// requests, plain-text responses with errors behind a 200 status, rootless
// XML listings and a single-root user details document.
package pastebintest

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"

	"github.com/ZayaanRahman/pastebin-client/internal/util/randutil"
)

// Account is a user account known to the fake service.
type Account struct {
	Username string
	Password string

	// Profile fields served by the userdetails endpoint.
	AvatarURL   string
	Format      string // default highlighting, e.g. "go"
	Expiration  string // default expiration code, e.g. "10M"
	Private     int    // default visibility code 0, 1 or 2
	Website     string
	Email       string
	Location    string
	AccountType int // 0 normal, 1 pro
}

// Server is a fake Pastebin API bound to an httptest server.
type Server struct {
	ts    *httptest.Server
	store *memStore

	mu       sync.Mutex
	accounts map[string]Account // by username
	sessions map[string]string  // session key -> username
}

// expireSeconds is the service-side expiration table. The fake computes
// expiry from its own clock, like the real service does.
var expireSeconds = map[string]int64{
	"N":   0,
	"10M": 600,
	"1H":  3600,
	"1D":  86400,
	"1W":  7 * 86400,
	"2W":  14 * 86400,
	"1M":  30 * 86400,
	"6M":  180 * 86400,
	"1Y":  365 * 86400,
}

// New starts a fake service. Call Close when done.
func New() *Server {
	s := &Server{
		store:    newMemStore(),
		accounts: make(map[string]Account),
		sessions: make(map[string]string),
	}

	r := httprouter.New()
	r.POST("/api/api_login.php", s.login)
	r.POST("/api/api_post.php", s.post)
	r.POST("/api/api_raw.php", s.showPaste)
	r.GET("/raw/:key", s.publicRaw)

	s.ts = httptest.NewServer(r)
	return s
}

// URL returns the fake service's base URL.
func (s *Server) URL() string {
	return s.ts.URL
}

// Close shuts the underlying test server down.
func (s *Server) Close() {
	s.ts.Close()
}

// AddAccount registers an account the fake will authenticate.
func (s *Server) AddAccount(a Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.Username] = a
}

// SessionFor mints a valid session key for username without going through
// the login endpoint.
func (s *Server) SessionFor(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := randutil.SessionKey()
	s.sessions[key] = username
	return key
}

// HasPaste reports whether a paste is stored under key.
func (s *Server) HasPaste(key string) bool {
	_, ok := s.store.Get(key)
	return ok
}

// username resolves a session key, "" when the key is unknown or empty.
func (s *Server) username(sessionKey string) string {
	if sessionKey == "" {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[sessionKey]
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if r.FormValue("api_dev_key") == "" {
		writeText(w, http.StatusOK, "Bad API request, invalid api_dev_key")
		return
	}

	username := r.FormValue("api_user_name")
	password := r.FormValue("api_user_password")

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[username]
	if !ok || a.Password != password {
		writeText(w, http.StatusOK, "Bad API request, invalid login")
		return
	}

	key := randutil.SessionKey()
	s.sessions[key] = username
	log.Debug().Str("username", username).Msg("fake service login")
	writeText(w, http.StatusOK, key)
}

// post dispatches the multiplexed api_post.php endpoint on api_option, the
// way the real service does.
func (s *Server) post(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if r.FormValue("api_dev_key") == "" {
		writeText(w, http.StatusOK, "Bad API request, invalid api_dev_key")
		return
	}

	switch r.FormValue("api_option") {
	case "paste":
		s.createPaste(w, r)
	case "delete":
		s.deletePaste(w, r)
	case "list":
		s.listPastes(w, r)
	case "userdetails":
		s.userDetails(w, r)
	default:
		writeText(w, http.StatusOK, "Bad API request, invalid api_option")
	}
}

func (s *Server) createPaste(w http.ResponseWriter, r *http.Request) {
	content := r.FormValue("api_paste_code")
	if content == "" {
		writeText(w, http.StatusOK, "Bad API request, api_paste_code was empty")
		return
	}

	lifespan := r.FormValue("api_paste_expire_date")
	secs, ok := expireSeconds[lifespan]
	if !ok {
		writeText(w, http.StatusOK, "Bad API request, invalid api_paste_expire_date")
		return
	}

	private, _ := strconv.Atoi(r.FormValue("api_paste_private"))
	now := time.Now().UTC()

	p := &storedPaste{
		Owner:     s.username(r.FormValue("api_user_key")),
		Title:     r.FormValue("api_paste_name"),
		Content:   content,
		Format:    r.FormValue("api_paste_format"),
		Private:   private,
		CreatedAt: now,
	}
	if secs > 0 {
		p.ExpiresAt = now.Add(time.Duration(secs) * time.Second)
	}

	// Generate a unique key and store atomically.
	for tried := 0; tried < 10; tried++ {
		p.Key = randutil.PasteKey()
		if s.store.Create(p) {
			log.Debug().Str("key", p.Key).Msg("fake service stored paste")
			writeText(w, http.StatusOK, s.ts.URL+"/"+p.Key)
			return
		}
		// Collision, try again
	}

	writeText(w, http.StatusInternalServerError, "could not generate key")
}

func (s *Server) deletePaste(w http.ResponseWriter, r *http.Request) {
	owner := s.username(r.FormValue("api_user_key"))
	if owner == "" {
		writeText(w, http.StatusOK, "Bad API request, invalid api_user_key")
		return
	}

	key := r.FormValue("api_paste_key")
	p, ok := s.store.Get(key)
	if !ok || p.Owner != owner {
		writeText(w, http.StatusOK, "Bad API request, invalid permission to remove paste")
		return
	}

	s.store.Delete(key)
	writeText(w, http.StatusOK, "Paste Removed")
}

func (s *Server) listPastes(w http.ResponseWriter, r *http.Request) {
	owner := s.username(r.FormValue("api_user_key"))
	if owner == "" {
		writeText(w, http.StatusOK, "Bad API request, invalid api_user_key")
		return
	}

	limit, _ := strconv.Atoi(r.FormValue("api_results_limit"))
	if limit <= 0 {
		limit = 50
	}

	pastes := s.store.ListOwned(owner)
	if len(pastes) == 0 {
		writeText(w, http.StatusOK, "No pastes found.")
		return
	}
	if len(pastes) > limit {
		pastes = pastes[:limit]
	}

	var b strings.Builder
	for _, p := range pastes {
		s.writePasteXML(&b, p)
	}
	writeText(w, http.StatusOK, b.String())
}

// writePasteXML renders one <paste> fragment. The real service emits the
// fragments back to back with no enclosing document root.
func (s *Server) writePasteXML(b *strings.Builder, p *storedPaste) {
	var expire int64
	if !p.ExpiresAt.IsZero() {
		expire = p.ExpiresAt.Unix()
	}

	b.WriteString("<paste>\n")
	fmt.Fprintf(b, "<paste_key>%s</paste_key>\n", p.Key)
	fmt.Fprintf(b, "<paste_date>%d</paste_date>\n", p.CreatedAt.Unix())
	fmt.Fprintf(b, "<paste_title>%s</paste_title>\n", escapeXML(p.Title))
	fmt.Fprintf(b, "<paste_size>%d</paste_size>\n", len(p.Content))
	fmt.Fprintf(b, "<paste_expire_date>%d</paste_expire_date>\n", expire)
	fmt.Fprintf(b, "<paste_private>%d</paste_private>\n", p.Private)
	fmt.Fprintf(b, "<paste_format_short>%s</paste_format_short>\n", escapeXML(p.Format))
	fmt.Fprintf(b, "<paste_url>%s/%s</paste_url>\n", s.ts.URL, p.Key)
	fmt.Fprintf(b, "<paste_hits>%d</paste_hits>\n", p.Hits)
	b.WriteString("</paste>\n")
}

func (s *Server) userDetails(w http.ResponseWriter, r *http.Request) {
	owner := s.username(r.FormValue("api_user_key"))
	if owner == "" {
		writeText(w, http.StatusOK, "Bad API request, invalid api_user_key")
		return
	}

	s.mu.Lock()
	a := s.accounts[owner]
	s.mu.Unlock()

	var b strings.Builder
	b.WriteString("<user>\n")
	fmt.Fprintf(&b, "<user_name>%s</user_name>\n", escapeXML(a.Username))
	fmt.Fprintf(&b, "<user_format_short>%s</user_format_short>\n", escapeXML(a.Format))
	fmt.Fprintf(&b, "<user_expiration>%s</user_expiration>\n", escapeXML(a.Expiration))
	fmt.Fprintf(&b, "<user_avatar_url>%s</user_avatar_url>\n", escapeXML(a.AvatarURL))
	fmt.Fprintf(&b, "<user_private>%d</user_private>\n", a.Private)
	fmt.Fprintf(&b, "<user_website>%s</user_website>\n", escapeXML(a.Website))
	fmt.Fprintf(&b, "<user_email>%s</user_email>\n", escapeXML(a.Email))
	fmt.Fprintf(&b, "<user_location>%s</user_location>\n", escapeXML(a.Location))
	fmt.Fprintf(&b, "<user_account_type>%d</user_account_type>\n", a.AccountType)
	b.WriteString("</user>")
	writeText(w, http.StatusOK, b.String())
}

// showPaste serves the session-scoped raw endpoint, api_raw.php.
func (s *Server) showPaste(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if r.FormValue("api_option") != "show_paste" {
		writeText(w, http.StatusOK, "Bad API request, invalid api_option")
		return
	}

	owner := s.username(r.FormValue("api_user_key"))
	if owner == "" {
		writeText(w, http.StatusOK, "Bad API request, invalid api_user_key")
		return
	}

	p, ok := s.store.Touch(r.FormValue("api_paste_key"))
	if !ok || p.Owner != owner {
		writeText(w, http.StatusOK, "Bad API request, invalid permission to view this paste or invalid api_paste_key")
		return
	}

	writeText(w, http.StatusOK, p.Content)
}

// publicRaw serves the unauthenticated raw endpoint. Private pastes are not
// reachable through it.
func (s *Server) publicRaw(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	p, ok := s.store.Touch(ps.ByName("key"))
	if !ok {
		writeText(w, http.StatusNotFound, "not found or expired")
		return
	}
	if p.Private == 2 {
		writeText(w, http.StatusForbidden, "this paste is private")
		return
	}

	writeText(w, http.StatusOK, p.Content)
}

func escapeXML(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
