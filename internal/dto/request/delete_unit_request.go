package request

// DeleteUnitRequest deletes a unit by id.
type DeleteUnitRequest struct {
	UnitId string `json:"unit_id" binding:"required"`
}
