package domain

// Identity is the outcome of resolving a request credential.
// It is a two-case variant: Anonymous or Authenticated{user}.
// Callers must handle both cases explicitly instead of checking a
// nullable "current user" pointer.
type Identity struct {
	user *User
}

// Anonymous returns the identity of an unauthenticated request.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated returns the identity of a request with a verified user.
func Authenticated(u *User) Identity {
	return Identity{user: u}
}

// IsAuthenticated reports whether the identity carries a verified user.
func (i Identity) IsAuthenticated() bool {
	return i.user != nil
}

// User returns the verified user, or false for an anonymous identity.
func (i Identity) User() (*User, bool) {
	if i.user == nil {
		return nil, false
	}
	return i.user, true
}

// Role returns the effective role: the user's store-backed role when
// authenticated, RoleGuest otherwise.
func (i Identity) Role() Role {
	if i.user == nil {
		return RoleGuest
	}
	return i.user.Role
}
