// Package repository implements the data access layer. Interfaces are
// declared here; each entity's implementation lives in its own file.
package repository

import (
	"crusade_campaign_server/internal/model"

	"gorm.io/gorm"
)

// UserRepository provides user account persistence.
type UserRepository interface {
	// FindByUuid looks a user up by public id.
	FindByUuid(uuid string) (*model.UserInfo, error)
	// FindByEmail looks a user up by login email.
	FindByEmail(email string) (*model.UserInfo, error)
	// Create inserts a new user.
	Create(user *model.UserInfo) error
}

// CampaignRepository provides campaign persistence. Campaign reads embed
// the member rows (one-level eager load, store order preserved).
type CampaignRepository interface {
	// FindByUuid returns one campaign with its members.
	FindByUuid(uuid string) (*model.Campaign, error)
	// FindAllWithMembers returns every campaign with members embedded.
	FindAllWithMembers() ([]model.Campaign, error)
	// Create inserts a new campaign.
	Create(campaign *model.Campaign) error
	// DeleteByUuid issues a single hard delete; member and force rows go
	// with it through the store's cascade constraints.
	DeleteByUuid(uuid string) error
}

// CampaignMemberRepository provides membership persistence. There is no
// update or removal path, mirroring the join contract.
type CampaignMemberRepository interface {
	// FindByCampaignAndUser returns the membership row, if any.
	FindByCampaignAndUser(campaignUuid, userUuid string) (*model.CampaignMember, error)
	// Create inserts a membership row.
	Create(member *model.CampaignMember) error
}

// CrusadeForceRepository provides crusade force persistence.
type CrusadeForceRepository interface {
	// FindByUuid looks a force up by public id.
	FindByUuid(uuid string) (*model.CrusadeForce, error)
	// FindAll returns every force.
	FindAll() ([]model.CrusadeForce, error)
	// FindByCampaignUuid returns the forces of one campaign.
	FindByCampaignUuid(campaignUuid string) ([]model.CrusadeForce, error)
	// Create inserts a new force.
	Create(force *model.CrusadeForce) error
	// Update saves the complete staged record.
	Update(force *model.CrusadeForce) error
	// DeleteByUuid issues a single hard delete; units go with it through
	// the store's cascade constraint.
	DeleteByUuid(uuid string) error
}

// UnitRepository provides unit persistence.
type UnitRepository interface {
	// FindByUuid looks a unit up by public id.
	FindByUuid(uuid string) (*model.Unit, error)
	// FindAll returns every unit.
	FindAll() ([]model.Unit, error)
	// FindByForceUuid returns the units of one force.
	FindByForceUuid(forceUuid string) ([]model.Unit, error)
	// FindByForceUuids returns the units of several forces in one query.
	FindByForceUuids(forceUuids []string) ([]model.Unit, error)
	// Create inserts a new unit.
	Create(unit *model.Unit) error
	// Update saves the complete staged record.
	Update(unit *model.Unit) error
	// DeleteByUuid deletes one unit.
	DeleteByUuid(uuid string) error
}

// Repositories aggregates every repository over one *gorm.DB so the
// service layer receives a single injectable dependency.
type Repositories struct {
	db *gorm.DB

	User     UserRepository
	Campaign CampaignRepository
	Member   CampaignMemberRepository
	Force    CrusadeForceRepository
	Unit     UnitRepository
}

// NewRepositories builds the aggregate over db.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:       db,
		User:     NewUserRepository(db),
		Campaign: NewCampaignRepository(db),
		Member:   NewCampaignMemberRepository(db),
		Force:    NewCrusadeForceRepository(db),
		Unit:     NewUnitRepository(db),
	}
}

// Transaction runs fn inside one database transaction. fn receives a
// Repositories bound to the transaction handle.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
