package dto

// CredentialsSignInRequest is the body of the password sign-in callback.
// The fields are validated by the credentials strategy, not by binding, so
// a malformed email ends in the same 401 as a wrong password.
type CredentialsSignInRequest struct {
	Name        string `json:"name" example:"Ada Lovelace"`
	Email       string `json:"email" example:"ada@example.com"`
	Password    string `json:"password" example:"password123"`
	CallbackURL string `json:"callbackUrl,omitempty" example:"http://localhost:3000/courses"`
}

// SignInResponse carries the URL the client should navigate to
type SignInResponse struct {
	URL string `json:"url" example:"http://localhost:3000/user/profile"`
}

// ProviderResponse is one entry of the provider map
type ProviderResponse struct {
	ID   string `json:"id" example:"google"`
	Name string `json:"name" example:"Google"`
}

// SessionUserResponse is the user part of a session
type SessionUserResponse struct {
	ID    string `json:"id" example:"42"`
	Email string `json:"email" example:"ada@example.com"`
	Name  string `json:"name" example:"Ada Lovelace"`
}

// SessionResponse is the client-visible session
type SessionResponse struct {
	AccessToken string              `json:"accessToken,omitempty"`
	User        SessionUserResponse `json:"user"`
}
