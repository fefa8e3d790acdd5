package domain

import "encoding/json"

// ConfidiosBinding links a local user to their Confidios identity and the
// last-known state of that identity's remote session. There is one row per
// user; the Confidios username is assigned when the identity is provisioned
// and never changes afterwards.
//
// Invariant: SessionActive is true exactly when SessionID is non-nil.
type ConfidiosBinding struct {
	UserID            string  `json:"user_id"`
	ConfidiosUsername string  `json:"confidios_username"`
	SessionID         *string `json:"confidios_session_id,omitempty"`
	Balance           string  `json:"balance"`
	SessionActive     bool    `json:"is_session_active"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedAt         int64   `json:"updated_at"`
}

// SessionView is the process-local projection of a binding's session
// fields. It is never authoritative: the bindings table wins on restart,
// and a cache miss always falls through to the store.
type SessionView struct {
	ConfidiosUsername string `json:"confidios_user"`
	SessionID         string `json:"confidios_session_id"`
	Balance           string `json:"balance"`
}

// View projects the session fields of an active binding. It returns nil
// when the binding holds no live session.
func (b *ConfidiosBinding) View() *SessionView {
	if b == nil || !b.SessionActive || b.SessionID == nil {
		return nil
	}
	return &SessionView{
		ConfidiosUsername: b.ConfidiosUsername,
		SessionID:         *b.SessionID,
		Balance:           b.Balance,
	}
}

// BindingWithUser is a binding joined with the local user's display
// attributes, for administrative listing.
type BindingWithUser struct {
	ConfidiosBinding
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profile_image_url"`
}

// ConfidiosSession is the credential set issued by the Confidios service
// on login. Identity creation responses carry the same u/balance fields
// with no session id.
type ConfidiosSession struct {
	Username  string `json:"u"`
	SessionID string `json:"sid"`
	Balance   string `json:"balance"`
}

// FileContent is the payload of a Confidios file read. Data is passed
// through opaque; Balance is the account balance reported alongside it.
type FileContent struct {
	Balance string          `json:"balance"`
	Data    json.RawMessage `json:"data"`
}
