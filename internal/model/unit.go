package model

import "gorm.io/gorm"

// Unit is a single roster entry within a crusade force. The database
// enforces cascade on force deletion; the application deletes the force
// row only and relies on that constraint.
type Unit struct {
	gorm.Model
	Uuid             string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:unit unique id"`
	CrusadeForceUuid string `gorm:"column:crusade_force_uuid;type:char(20);index;not null;comment:owning force uuid"`
	Name             string `gorm:"column:name;type:varchar(100);not null;comment:unit name"`
	Type             string `gorm:"column:type;type:varchar(50);comment:battlefield role"`
	SubFaction       string `gorm:"column:sub_faction;type:varchar(100);comment:sub-faction keyword text"`

	PointsCost    int `gorm:"column:points_cost;default:0;comment:points cost"`
	CrusadePoints int `gorm:"column:crusade_points;default:0;comment:crusade points"`

	Equipment    string `gorm:"column:equipment;type:text;comment:equipment text"`
	Enhancements string `gorm:"column:enhancements;type:text;comment:enhancements text"`

	BattlesPlayed    int `gorm:"column:battles_played;default:0;comment:battles played"`
	BattlesSurvived  int `gorm:"column:battles_survived;default:0;comment:battles survived"`
	EnemiesDestroyed int `gorm:"column:enemies_destroyed;default:0;comment:enemy units destroyed"`

	BattleHonours string `gorm:"column:battle_honours;type:text;comment:battle honours text"`
	BattleScars   string `gorm:"column:battle_scars;type:text;comment:battle scars text"`
}

func (Unit) TableName() string {
	return "unit"
}
