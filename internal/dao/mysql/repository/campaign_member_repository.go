package repository

import (
	"crusade_campaign_server/internal/model"

	"gorm.io/gorm"
)

// campaignMemberRepository implements CampaignMemberRepository.
type campaignMemberRepository struct {
	db *gorm.DB
}

// NewCampaignMemberRepository creates a CampaignMemberRepository over db.
func NewCampaignMemberRepository(db *gorm.DB) CampaignMemberRepository {
	return &campaignMemberRepository{db: db}
}

// FindByCampaignAndUser returns the membership row for (campaign, user).
func (r *campaignMemberRepository) FindByCampaignAndUser(campaignUuid, userUuid string) (*model.CampaignMember, error) {
	var member model.CampaignMember
	err := r.db.First(&member, "campaign_uuid = ? AND user_uuid = ?", campaignUuid, userUuid).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "query member campaign=%s user=%s", campaignUuid, userUuid)
	}
	return &member, nil
}

// Create inserts a membership row. The composite unique index rejects a
// second join of the same user.
func (r *campaignMemberRepository) Create(member *model.CampaignMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "create campaign member")
	}
	return nil
}
