// Package middleware provides net/http middleware for the authentication
// stack.
//
// Auth resolves the session cookie on every request, stores the
// authenticated user in the request context, and keeps the cookie expiry in
// sync with session renewal. Handlers read the result with UserFromContext:
//
//	mw := middleware.Auth(svc, carrier)
//	mux.Handle("/dashboard", mw(http.HandlerFunc(dashboard)))
//
//	func dashboard(w http.ResponseWriter, r *http.Request) {
//		user, ok := middleware.UserFromContext(r.Context())
//		if !ok {
//			http.Redirect(w, r, "/login", http.StatusFound)
//			return
//		}
//		// ...
//	}
//
// AuthWithConfig adds enforcement and customization:
//
//	protected := middleware.AuthWithConfig(svc, carrier, middleware.Config{
//		RequireAuth: true,
//		Skip: func(r *http.Request) bool {
//			return r.URL.Path == "/health"
//		},
//	})
package middleware
