package model

import "gorm.io/gorm"

// CampaignMember is the join record associating a user with a campaign
// and a chosen faction. One row per (campaign, user); there is no update
// or removal path.
type CampaignMember struct {
	gorm.Model
	CampaignUuid string `gorm:"column:campaign_uuid;type:char(20);uniqueIndex:idx_campaign_user;not null;comment:campaign uuid"`
	UserUuid     string `gorm:"column:user_uuid;type:char(20);uniqueIndex:idx_campaign_user;index;not null;comment:user uuid"`
	Faction      string `gorm:"column:faction;type:varchar(50);not null;comment:chosen faction"`
	Username     string `gorm:"column:username;type:varchar(30);not null;comment:display name at join time"`
}

func (CampaignMember) TableName() string {
	return "campaign_member"
}
