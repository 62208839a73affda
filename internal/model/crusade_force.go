package model

import "gorm.io/gorm"

// CrusadeForce is a user-owned roster within a campaign, tracking supply
// usage and battle history. Supply used is never stored; it is computed
// from the force's units on every read.
type CrusadeForce struct {
	gorm.Model
	Uuid         string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:force unique id"`
	CampaignUuid string `gorm:"column:campaign_uuid;type:char(20);index;not null;comment:owning campaign uuid"`
	UserUuid     string `gorm:"column:user_uuid;type:char(20);index;not null;comment:owning user uuid"`
	Name         string `gorm:"column:name;type:varchar(100);not null;comment:force name"`
	Faction      string `gorm:"column:faction;type:varchar(50);not null;comment:faction"`

	SupplyLimit       int    `gorm:"column:supply_limit;default:1000;comment:points budget"`
	BattleTally       int    `gorm:"column:battle_tally;default:0;comment:battles fought"`
	Victories         int    `gorm:"column:victories;default:0;comment:battles won"`
	RequisitionPoints int    `gorm:"column:requisition_points;default:5;comment:requisition points"`
	Achievements      string `gorm:"column:achievements;type:text;comment:free-text achievement record"`

	// Units declares the cascade constraint: deleting a force removes its
	// units in the store, the application never deletes them one by one.
	Units []Unit `gorm:"foreignKey:CrusadeForceUuid;references:Uuid;constraint:OnDelete:CASCADE"`
}

func (CrusadeForce) TableName() string {
	return "crusade_force"
}
