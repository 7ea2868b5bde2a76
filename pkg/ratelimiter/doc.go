// Package ratelimiter throttles callers with a token bucket.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity: 10, RefillRate: 1, RefillInterval: 6 * time.Second,
//	})
//	r.With(ratelimiter.Middleware(bucket)).Post("/", submit)
//
// Each key starts with a full bucket of Capacity tokens. Every
// RefillInterval adds RefillRate tokens, up to Capacity.
package ratelimiter
