package server

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix"
)

const sessionCookie = "cbamatrix_session"

// sessionStore keeps one output cache per browser session.
type sessionStore struct {
	mu     sync.Mutex
	caches map[string]*cbamatrix.Cache
}

func newSessionStore() *sessionStore {
	return &sessionStore{caches: make(map[string]*cbamatrix.Cache)}
}

// cache returns the session cache for c, issuing a session cookie when needed.
func (s *sessionStore) cache(c *gin.Context) *cbamatrix.Cache {
	id, err := c.Cookie(sessionCookie)
	if err != nil || uuid.Validate(id) != nil {
		id = uuid.NewString()
		c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cache, ok := s.caches[id]
	if !ok {
		cache = &cbamatrix.Cache{}
		s.caches[id] = cache
	}
	return cache
}

// lookup returns the session cache for c without creating one.
func (s *sessionStore) lookup(c *gin.Context) *cbamatrix.Cache {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caches[id]
}
