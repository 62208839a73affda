package repository

import (
	"crusade_campaign_server/internal/model"

	"gorm.io/gorm"
)

// crusadeForceRepository implements CrusadeForceRepository.
type crusadeForceRepository struct {
	db *gorm.DB
}

// NewCrusadeForceRepository creates a CrusadeForceRepository over db.
func NewCrusadeForceRepository(db *gorm.DB) CrusadeForceRepository {
	return &crusadeForceRepository{db: db}
}

// FindByUuid looks a force up by public id.
func (r *crusadeForceRepository) FindByUuid(uuid string) (*model.CrusadeForce, error) {
	var force model.CrusadeForce
	if err := r.db.First(&force, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "query force uuid=%s", uuid)
	}
	return &force, nil
}

// FindAll returns every force. The snapshot load reads all rows, the
// same bulk contract the campaign read uses.
func (r *crusadeForceRepository) FindAll() ([]model.CrusadeForce, error) {
	var forces []model.CrusadeForce
	if err := r.db.Find(&forces).Error; err != nil {
		return nil, wrapDBError(err, "query forces")
	}
	return forces, nil
}

// FindByCampaignUuid returns the forces of one campaign.
func (r *crusadeForceRepository) FindByCampaignUuid(campaignUuid string) ([]model.CrusadeForce, error) {
	var forces []model.CrusadeForce
	if err := r.db.Where("campaign_uuid = ?", campaignUuid).Find(&forces).Error; err != nil {
		return nil, wrapDBErrorf(err, "query forces campaign=%s", campaignUuid)
	}
	return forces, nil
}

// Create inserts a new force.
func (r *crusadeForceRepository) Create(force *model.CrusadeForce) error {
	if err := r.db.Create(force).Error; err != nil {
		return wrapDBError(err, "create force")
	}
	return nil
}

// Update saves the complete staged record.
func (r *crusadeForceRepository) Update(force *model.CrusadeForce) error {
	if err := r.db.Save(force).Error; err != nil {
		return wrapDBError(err, "update force")
	}
	return nil
}

// DeleteByUuid hard-deletes the force row. Its units are removed by the
// store's cascade constraint; the application never deletes them itself.
func (r *crusadeForceRepository) DeleteByUuid(uuid string) error {
	if err := r.db.Unscoped().Where("uuid = ?", uuid).Delete(&model.CrusadeForce{}).Error; err != nil {
		return wrapDBErrorf(err, "delete force uuid=%s", uuid)
	}
	return nil
}
