package memcache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

type entry struct {
	reply     string
	expiresAt time.Time
}

// ConsultationCache is an in-process TTL cache for advisor replies. A repeated
// consultation with the same instruction and message reuses the previous reply
// instead of hitting the provider again.
type ConsultationCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewConsultationCache() *ConsultationCache {
	return &ConsultationCache{
		data: make(map[string]entry),
	}
}

// Key builds a cache key from the consultation inputs.
func Key(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

func (s *ConsultationCache) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.reply, true
}

func (s *ConsultationCache) Set(key string, reply string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = entry{
		reply:     reply,
		expiresAt: time.Now().Add(ttl),
	}

	// Simple cleanup: remove expired entries if cache gets too large
	if len(s.data) > 1000 {
		for k, e := range s.data {
			if time.Now().After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}
