package model

import (
	"gorm.io/gorm"
)

// Campaign is a shared container grouping members, forces and units
// under one narrative event.
type Campaign struct {
	gorm.Model
	Uuid        string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:campaign unique id"`
	Name        string `gorm:"column:name;type:varchar(100);not null;comment:campaign name"`
	Description string `gorm:"column:description;type:varchar(500);comment:campaign description"`

	// AdminId is the creator's user uuid. Displayed on the dashboard; campaign
	// creation and deletion are gated by the allow-list, not this field.
	AdminId string `gorm:"column:admin_id;type:char(20);index;not null;comment:creator user uuid"`

	// Members are the join rows, eager-loaded on campaign reads. Deleting a
	// campaign cascades to them at the store layer.
	Members []CampaignMember `gorm:"foreignKey:CampaignUuid;references:Uuid;constraint:OnDelete:CASCADE"`

	// Forces exist only to declare the cascade constraint; force reads go
	// through their own repository.
	Forces []CrusadeForce `gorm:"foreignKey:CampaignUuid;references:Uuid;constraint:OnDelete:CASCADE"`
}

func (Campaign) TableName() string {
	return "campaign"
}
