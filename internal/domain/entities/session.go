package entities

// Session is the identity signal supplied by the external auth provider.
// The core only reads it.
type Session struct {
	Authenticated bool   `json:"authenticated" yaml:"-"`
	UserID        string `json:"user_id" yaml:"user_id"`
	Premium       bool   `json:"premium" yaml:"premium"`
	AccessToken   string `json:"-" yaml:"access_token"`
}

// Anonymous is the session used when nobody is signed in.
func Anonymous() Session {
	return Session{}
}

// IsAnonymous treats an authenticated flag without a user id as anonymous.
func (s Session) IsAnonymous() bool {
	return !s.Authenticated || s.UserID == ""
}

// SessionChanged is emitted by the provider on login and logout.
type SessionChanged struct {
	Previous Session
	Current  Session
}

// SignedIn reports an anonymous -> authenticated transition.
func (c SessionChanged) SignedIn() bool {
	return c.Previous.IsAnonymous() && !c.Current.IsAnonymous()
}

// SignedOut reports an authenticated -> anonymous transition.
func (c SessionChanged) SignedOut() bool {
	return !c.Previous.IsAnonymous() && c.Current.IsAnonymous()
}
