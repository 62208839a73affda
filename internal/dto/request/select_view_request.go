package request

// SelectViewRequest switches the caller's screen.
type SelectViewRequest struct {
	View string `json:"view" binding:"required"`
}
