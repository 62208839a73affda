package repository

import (
	"crusade_campaign_server/internal/model"

	"gorm.io/gorm"
)

// campaignRepository implements CampaignRepository.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a CampaignRepository over db.
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

// FindByUuid returns one campaign with its member rows embedded.
func (r *campaignRepository) FindByUuid(uuid string) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := r.db.Preload("Members").First(&campaign, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "query campaign uuid=%s", uuid)
	}
	return &campaign, nil
}

// FindAllWithMembers returns every campaign with members embedded.
// Members keep insertion order; no sort is applied on top.
func (r *campaignRepository) FindAllWithMembers() ([]model.Campaign, error) {
	var campaigns []model.Campaign
	if err := r.db.Preload("Members").Find(&campaigns).Error; err != nil {
		return nil, wrapDBError(err, "query campaigns")
	}
	return campaigns, nil
}

// Create inserts a new campaign.
func (r *campaignRepository) Create(campaign *model.Campaign) error {
	if err := r.db.Create(campaign).Error; err != nil {
		return wrapDBError(err, "create campaign")
	}
	return nil
}

// DeleteByUuid hard-deletes the campaign row. Members and forces (and
// through them units) are removed by the store's cascade constraints,
// which a soft delete would not trigger.
func (r *campaignRepository) DeleteByUuid(uuid string) error {
	if err := r.db.Unscoped().Where("uuid = ?", uuid).Delete(&model.Campaign{}).Error; err != nil {
		return wrapDBErrorf(err, "delete campaign uuid=%s", uuid)
	}
	return nil
}
