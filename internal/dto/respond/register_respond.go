package respond

// RegisterRespond is the profile returned after registration.
type RegisterRespond struct {
	Uuid      string `json:"uuid"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
