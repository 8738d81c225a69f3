package models

// UserSession is the authenticated identity of the current tab
type UserSession struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username"`
}

// NewUserSession creates a logged in session for username
func NewUserSession(username string) *UserSession {
	return &UserSession{
		LoggedIn: true,
		Username: username,
	}
}

// IsActive returns true if the session grants access to protected views
func (s *UserSession) IsActive() bool {
	return s != nil && s.LoggedIn && s.Username != ""
}
