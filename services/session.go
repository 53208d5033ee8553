package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one browsing session: a cart plus the admin bearer token, if
// the caller logged in. Sessions are created by the session middleware,
// kept in memory only, and expire with their TTL. Nothing here outlives
// the session.
type Session struct {
	ID   string
	Cart *Cart

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// ClearToken purges the stored bearer token. Called on logout and on any
// 401 from the backend.
func (s *Session) ClearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

func (s *Session) touch(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = time.Now().Add(ttl)
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *SessionStore) Create() *Session {
	session := &Session{
		ID:   uuid.NewString(),
		Cart: NewCart(),
	}
	session.touch(st.ttl)

	st.mu.Lock()
	st.purgeExpiredLocked()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	return session
}

// Get returns the live session for id, refreshing its TTL. Expired
// sessions are treated as gone: the cart died with the browsing session.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	session, ok := st.sessions[id]
	if ok && session.expired(time.Now()) {
		delete(st.sessions, id)
		ok = false
	}
	st.mu.Unlock()

	if !ok {
		return nil, false
	}
	session.touch(st.ttl)
	return session, true
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *SessionStore) purgeExpiredLocked() {
	now := time.Now()
	for id, session := range st.sessions {
		if session.expired(now) {
			delete(st.sessions, id)
		}
	}
}
