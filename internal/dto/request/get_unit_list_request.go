package request

// GetUnitListRequest lists the units of one force.
type GetUnitListRequest struct {
	CrusadeForceId string `form:"crusade_force_id" binding:"required"`
}
