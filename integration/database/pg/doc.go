// Package pg provides PostgreSQL-backed persistence for the authentication
// stack: connection management with retry logic, embedded schema migrations,
// health checking, and a Store implementing both session.Store and
// auth.UserStore.
//
// # Connection Management
//
// Connect creates a pgxpool.Pool from Config, retrying with exponential
// backoff and verifying connectivity with a ping before returning:
//
//	cfg := pg.Config{ConnectionString: os.Getenv("PG_CONN_URL")}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
// Configuration is typically loaded from the environment via core/config:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg) // reads PG_CONN_URL, PG_MAX_OPEN_CONNS, ...
//
// # Migrations
//
// The users and sessions tables ship as embedded goose migrations. Apply
// them during startup:
//
//	if err := pg.Migrate(ctx, pool, cfg, logger); err != nil {
//		log.Fatal(err)
//	}
//
// # Store
//
// NewStore returns the persistence adapter for session.Manager and
// auth.Service:
//
//	store := pg.NewStore(pool)
//	sessions, err := session.NewManager(store)
//	svc, err := auth.NewService(store, sessions)
//
// Username uniqueness is enforced by the database, so concurrent
// registrations of the same name resolve to a single winner; the loser
// receives auth.ErrUsernameTaken.
//
// # Transactions
//
// WithTx attaches a pgx.Tx to a context; store methods detect it and run
// their statements on the transaction instead of the pool:
//
//	tx, err := pool.Begin(ctx)
//	if err != nil {
//		return err
//	}
//	defer tx.Rollback(ctx) // safe after commit
//
//	ctx = pg.WithTx(ctx, tx)
//	// ... application writes plus store calls, all on tx ...
//	return tx.Commit(ctx)
//
// # Health Checking
//
// Healthcheck returns a probe function for readiness endpoints:
//
//	check := pg.Healthcheck(pool)
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := check(r.Context()); err != nil {
//			http.Error(w, "database unhealthy", http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
package pg
