// Package sessiontransport moves session tokens between auth operations and
// HTTP, keeping the core free of request/response types.
//
// Three pieces ship here:
//
//   - Cookie: the token carrier. Reads, sets and clears the signed session
//     cookie (HttpOnly, SameSite=Lax, path /, expiry synced to the session).
//   - API: JSON handlers for single-page apps. Credentials arrive as a JSON
//     body, results leave as JSON, the token travels in the cookie.
//   - Form: form handlers for server-rendered apps. Credentials arrive as
//     form fields and success redirects to configured targets.
//
// Both handler sets translate auth sentinel errors to HTTP statuses:
// 400 for malformed input, 401 for bad credentials or a missing session,
// 409 for a taken username, 500 (opaque) for everything else. Internal
// error details never reach the response body.
package sessiontransport
