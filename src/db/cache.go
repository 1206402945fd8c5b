package db

import (
	"log"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Cache holds tokens revoked by logout until their natural expiry. Entries
// evict themselves via TTL, so the set never outgrows the token lifetime.
var Cache *ristretto.Cache

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func RevokeToken(token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	Cache.SetWithTTL(token, struct{}{}, 1, ttl)
	Cache.Wait()
}

func IsTokenRevoked(token string) bool {
	if Cache == nil {
		return false
	}
	_, revoked := Cache.Get(token)
	return revoked
}
