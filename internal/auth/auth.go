// Package auth gates the admin write surface. The game runs locally, so
// the shipped Authorizer is a trivial always-on flag; the interface
// exists so a real identity provider can slot in without touching the
// handlers.
package auth

import "sync/atomic"

// Authorizer answers whether the caller may edit world data.
type Authorizer interface {
	IsAuthorized() bool
}

// LocalAuthorizer mimics the single-user local flag: signed out until
// SignIn, then authorized for the rest of the process lifetime.
type LocalAuthorizer struct {
	signedIn atomic.Bool
}

// NewLocalAuthorizer returns an authorizer that is already signed in,
// matching the auto sign-in the game performs at startup.
func NewLocalAuthorizer() *LocalAuthorizer {
	a := &LocalAuthorizer{}
	a.signedIn.Store(true)
	return a
}

func (a *LocalAuthorizer) IsAuthorized() bool {
	return a.signedIn.Load()
}

// SignOut revokes the local flag.
func (a *LocalAuthorizer) SignOut() {
	a.signedIn.Store(false)
}

// SignIn restores the local flag.
func (a *LocalAuthorizer) SignIn() {
	a.signedIn.Store(true)
}
