package model

type User struct {
	Id        int    `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
}

// LoginStart is returned when initiating the OAuth flow.
type LoginStart struct {
	AuthorizationUrl string `json:"authorization_url"`
}

// LoginResult is returned after exchanging the OAuth code.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
