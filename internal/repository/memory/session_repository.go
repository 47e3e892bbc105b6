package memory

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository maps opaque session tokens to user ids. Entries live in
// process memory only and are lost on restart. The configured expiry is
// enforced as the cache TTL; stale entries are purged in the background.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(expiry time.Duration) *SessionRepository {
	c := cache.New(expiry, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// Create generates a cryptographically random URL-safe token and records the
// token -> user id mapping.
func (r *SessionRepository) Create(userId uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)
	r.cache.Set(token, userId, cache.DefaultExpiration)
	return token, nil
}

func (r *SessionRepository) Resolve(token string) (uuid.UUID, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(uuid.UUID), true
	}
	return uuid.Nil, false
}

// Destroy removes the mapping unconditionally. Destroying an unknown token
// is a no-op.
func (r *SessionRepository) Destroy(token string) {
	r.cache.Delete(token)
}
