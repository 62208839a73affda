package request

// DeleteForceRequest deletes a force by id.
type DeleteForceRequest struct {
	ForceId string `json:"force_id" binding:"required"`
}
