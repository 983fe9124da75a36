// Package session issues, validates and revokes the opaque session tokens that
// prove a prior successful login.
//
// A Manager owns the mutation contract into a Store (normally a
// *credentials.Store). Each user holds at most one token: Issue overwrites the
// previous one, Revoke deletes it. There is no revocation list; a token is
// valid only while it is the exact value currently stored for the user.
//
// # Tokens
//
// Tokens are drawn from crypto/rand. Every random byte b is mapped to
// alphabet[b % len(alphabet)]. With the default 16-character hex alphabet the
// mapping is uniform because 16 divides 256; other alphabet sizes introduce a
// modulo bias. Manager.Unbiased reports which case applies.
//
// # Origin binding
//
// When WithOriginBinding(true) is set, Issue records the request host and
// Validate additionally requires the presenting request to come from the same
// host. A token issued on strict.test is then rejected on lax.test even though
// the username and token match.
//
// # Usage
//
//	store := credentials.New(map[string]string{"user1": "user1"})
//	mgr := session.New(store, session.WithOriginBinding(true))
//
//	token, err := mgr.Issue(ctx, "user1", "strict.test")
//	if err != nil {
//	    // session.ErrUnknownUser: cannot authenticate
//	}
//
//	if err := mgr.Validate(ctx, "user1", token, "strict.test"); err != nil {
//	    // session.ErrSessionInvalid
//	}
//
//	_ = mgr.Revoke(ctx, "user1")
//
// Token comparison uses crypto/subtle to avoid leaking matching prefixes
// through timing.
package session
