// Package credentials holds the in-memory user table that backs session
// authentication.
//
// A Store maps usernames to plaintext passwords and keeps at most one live
// session per user. It is the single source of truth: cookies presented by a
// client are only ever compared against what the Store holds.
//
// Passwords are kept in plaintext. The package exists to demonstrate cookie
// behaviour, not credential storage, and must not be reused where real
// accounts are involved.
//
// # Usage
//
//	store := credentials.New(map[string]string{"admin": "admin"})
//
//	if err := store.Authenticate("admin", "admin"); err != nil {
//	    // credentials.ErrUnknownUser or credentials.ErrCredentialMismatch
//	}
//
//	_ = store.SetSession("admin", "0f3a...", "strict.test")
//	sess, ok := store.Session("admin")
//
// All methods are safe for concurrent use. SetSession writes the token and the
// bound origin under a single lock so readers never observe one without the
// other.
package credentials
