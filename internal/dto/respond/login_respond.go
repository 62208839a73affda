package respond

// LoginRespond is the profile plus token pair returned after login.
// IsAdmin reflects the allow-list, not per-campaign admin status.
type LoginRespond struct {
	Uuid         string `json:"uuid"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	IsAdmin      bool   `json:"is_admin"`
	CreatedAt    string `json:"created_at"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
