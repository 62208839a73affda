package request

// ModalRequest opens or closes one modal flag.
type ModalRequest struct {
	Modal string `json:"modal" binding:"required"`
}
