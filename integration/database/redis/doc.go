// Package redis provides Redis client initialization with retry logic,
// health checking, and a session.Store implementation backed by Redis
// hashes.
//
// # Connection Management
//
// Connect validates the Redis URL, creates a client, and verifies
// connectivity with a ping before returning:
//
//	cfg := redis.Config{ConnectionURL: os.Getenv("REDIS_URL")}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Both redis:// and rediss:// (TLS) URL schemes are supported.
//
// # Session Store
//
// SessionStore keeps each session in a hash whose key TTL matches the
// session expiry, so Redis reaps expired sessions natively. Users remain in
// a durable store and are hydrated on reads through a UserFinder, which the
// PostgreSQL store satisfies:
//
//	users := pg.NewStore(pool)           // durable users
//	store := redis.NewSessionStore(client, users)
//	sessions, err := session.NewManager(store)
//
// # Health Checking
//
// Healthcheck returns a probe function for readiness endpoints:
//
//	check := redis.Healthcheck(client)
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := check(r.Context()); err != nil {
//			http.Error(w, "redis unhealthy", http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
package redis
