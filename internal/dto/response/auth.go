package response

// TokenPair is the access/refresh pair returned on login and rotation.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type UserSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type LoginResponse struct {
	User   UserSummary `json:"user"`
	Tokens TokenPair   `json:"tokens"`
}

// RotationResponse is returned when an expired access token is exchanged via
// the refresh flow. The original request is not served; the caller retries
// with the new access token.
type RotationResponse struct {
	User   RotationUser `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

type RotationUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
