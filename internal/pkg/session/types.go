// internal/pkg/session/types.go
package session

import "time"

// Session is the server-side state of one authenticated operator. The
// browser only ever holds a signed cookie referencing it by ID.
//
// AccessTokenExpires is always derived by decoding the access token's exp
// claim at issue/refresh time, never supplied independently. The token pair
// is replaced atomically on refresh; the whole record is destroyed on
// refresh failure, explicit logout, or a 401 from any downstream call.
type Session struct {
	ID                 string    `json:"id"`
	AccessToken        string    `json:"access_token"`
	RefreshToken       string    `json:"refresh_token"`
	AccessTokenExpires int64     `json:"access_token_expires"` // epoch ms
	UserID             int64     `json:"user_id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	Role               string    `json:"role"`
	CreatedAt          time.Time `json:"created_at"`
	ExpiresAt          time.Time `json:"expires_at"`
}

// Principal is the slice of session state exposed to the dashboard shell.
type Principal struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Principal returns the operator identity carried by the session.
func (s *Session) Principal() Principal {
	return Principal{
		ID:       s.UserID,
		Email:    s.Email,
		FullName: s.FullName,
		Role:     s.Role,
	}
}
