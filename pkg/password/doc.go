// Package password hashes and verifies credentials with argon2id.
//
// Hashes are encoded in PHC string format so every hash carries its own
// algorithm parameters and salt:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<base64 salt>$<base64 hash>
//
// Verify re-derives the key with the parameters embedded in the stored hash,
// which means cost parameters can be raised over time without invalidating
// existing hashes. Comparison is constant-time.
//
// The default parameters follow the OWASP minimum recommendation for
// argon2id (19 MiB memory, 2 iterations, 1 lane).
package password
