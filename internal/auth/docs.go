// Package auth provides session tokens and credential verification for
// the three dashboard roles. Tokens are HS256 JWTs carried in an
// httpOnly cookie or a bearer header; passwords are stored as bcrypt
// hashes in memory alongside the entity store.
package auth
