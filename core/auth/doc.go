// Package auth implements the credential-facing workflows: register, login,
// logout and me. Operations take plain strings and return structured results,
// never HTTP types, so the same service backs SSR forms and JSON APIs.
//
// # Errors
//
// Expected failure modes are sentinel errors the caller can branch on:
//
//   - ErrInvalidInput: username or password fails shape validation
//   - ErrInvalidCredentials: unknown username or wrong password, deliberately
//     indistinguishable to prevent account enumeration
//   - ErrUsernameTaken: registration uniqueness violation
//   - ErrNotAuthenticated: no live session for the presented token
//
// Anything else (store outages, malformed stored hashes) is an opaque
// failure; internal details never cross the boundary.
//
// # Enumeration resistance
//
// Login verifies a password even when the username does not exist, against a
// throwaway hash generated at construction with the configured cost
// parameters, keeping the work per attempt independent of account existence.
//
// # Usage
//
//	svc, err := auth.NewService(userStore, sessionManager)
//	res, err := svc.Login(ctx, "alice", "secret1")
//	// res.Token goes to the client, res.ExpiresAt drives cookie expiry
package auth
