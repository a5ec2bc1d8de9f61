package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache defines the interface for caching raw search responses. Verdicts are
// never cached; only the search backend's results are, so repeated
// verifications of similar statements don't burn search quota.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// QueryKey generates a cache key for one search query against one provider
func QueryKey(provider, query string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s\x00%s", provider, query)))
	return "fakenews:v1:" + hex.EncodeToString(hash[:])
}
