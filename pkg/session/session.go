// Package session provides cookie sessions persisted through pkg/cache.
//
// The middleware loads (or creates) a session for every request; handlers
// mutate it and call Save:
//
//	sess := session.FromCtx(r)
//	sess.Set(session.AdminLoggedIn, true)
//	sess.Save(w)
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/turboost/store/config"
	"github.com/turboost/store/pkg/cache"
)

// AdminLoggedIn is the single credential flag the admin routes check.
const AdminLoggedIn = "admin_logged_in"

// Options configures cookie behaviour and session lifetime.
type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns the production defaults; Secure flips on outside
// the local environment.
func DefaultOptions() Options {
	return Options{
		CookieName: config.SessionCookie(),
		TTL:        2 * time.Hour,
		HTTPOnly:   true,
		Secure:     config.AppEnv() == "production" || config.AppEnv() == "prod",
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

type ctxKey struct{}

// Session is the in-request session handle.
type Session struct {
	id      string
	data    map[string]interface{}
	opts    Options
	changed bool
}

func newID() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func storeKey(id string) string { return "session:" + id }

func load(id string) map[string]interface{} {
	data := map[string]interface{}{}
	if raw, ok := cache.Get(storeKey(id)); ok {
		_ = json.Unmarshal(raw, &data)
	}
	return data
}

// Set stores a value and marks the session dirty.
func (s *Session) Set(key string, value interface{}) {
	s.data[key] = value
	s.changed = true
}

// Get retrieves a value.
func (s *Session) Get(key string) (interface{}, bool) {
	v, ok := s.data[key]
	return v, ok
}

// GetBool retrieves a boolean value; absent or non-bool reads as false.
func (s *Session) GetBool(key string) bool {
	v, ok := s.data[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Delete removes a key.
func (s *Session) Delete(key string) {
	delete(s.data, key)
	s.changed = true
}

// Invalidate clears all session data (logout).
func (s *Session) Invalidate() {
	s.data = map[string]interface{}{}
	s.changed = true
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Save persists the session and writes the cookie.
func (s *Session) Save(w http.ResponseWriter) error {
	if !s.changed {
		return nil
	}

	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := cache.Set(storeKey(s.id), raw, s.opts.TTL); err != nil {
		return fmt.Errorf("session: store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    s.id,
		Path:     s.opts.Path,
		MaxAge:   int(s.opts.TTL.Seconds()),
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	s.changed = false
	return nil
}

// Middleware loads or creates the session and injects it into the request
// context.
func Middleware(opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{opts: opts}

			if cookie, err := r.Cookie(opts.CookieName); err == nil && cookie.Value != "" {
				sess.id = cookie.Value
				sess.data = load(sess.id)
			} else {
				sess.id = newID()
				sess.data = map[string]interface{}{}
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromCtx retrieves the request's session. Returns a fresh unsaved session
// when the middleware did not run (tests, mostly).
func FromCtx(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok {
		return s
	}
	return &Session{id: newID(), data: map[string]interface{}{}, opts: DefaultOptions()}
}
