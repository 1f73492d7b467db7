// internal/backend/types.go
package backend

// TokenPair is what the backend hands out on login and refresh. Both tokens
// must be present for the pair to be usable; a response missing either is
// treated as a failed exchange.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (p *TokenPair) Complete() bool {
	return p.AccessToken != "" && p.RefreshToken != ""
}

// UserInfo is the backend's /users/me payload. full_name may be absent, in
// which case username stands in for it.
type UserInfo struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// DisplayName returns full_name when set, otherwise the username.
func (u *UserInfo) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// errorBody is the backend's error shape. detail is either a plain string
// or a structured validation list; the raw message keeps it undecoded until
// we know which.
type errorBody struct {
	Detail interface{} `json:"detail"`
}
