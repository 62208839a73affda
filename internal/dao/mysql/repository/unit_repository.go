package repository

import (
	"crusade_campaign_server/internal/model"

	"gorm.io/gorm"
)

// unitRepository implements UnitRepository.
type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a UnitRepository over db.
func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

// FindByUuid looks a unit up by public id.
func (r *unitRepository) FindByUuid(uuid string) (*model.Unit, error) {
	var unit model.Unit
	if err := r.db.First(&unit, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "query unit uuid=%s", uuid)
	}
	return &unit, nil
}

// FindAll returns every unit.
func (r *unitRepository) FindAll() ([]model.Unit, error) {
	var units []model.Unit
	if err := r.db.Find(&units).Error; err != nil {
		return nil, wrapDBError(err, "query units")
	}
	return units, nil
}

// FindByForceUuid returns the units of one force.
func (r *unitRepository) FindByForceUuid(forceUuid string) ([]model.Unit, error) {
	var units []model.Unit
	if err := r.db.Where("crusade_force_uuid = ?", forceUuid).Find(&units).Error; err != nil {
		return nil, wrapDBErrorf(err, "query units force=%s", forceUuid)
	}
	return units, nil
}

// FindByForceUuids returns the units of all the given forces at once.
func (r *unitRepository) FindByForceUuids(forceUuids []string) ([]model.Unit, error) {
	var units []model.Unit
	if len(forceUuids) == 0 {
		return units, nil
	}
	if err := r.db.Where("crusade_force_uuid IN ?", forceUuids).Find(&units).Error; err != nil {
		return nil, wrapDBError(err, "query units by force set")
	}
	return units, nil
}

// Create inserts a new unit.
func (r *unitRepository) Create(unit *model.Unit) error {
	if err := r.db.Create(unit).Error; err != nil {
		return wrapDBError(err, "create unit")
	}
	return nil
}

// Update saves the complete staged record.
func (r *unitRepository) Update(unit *model.Unit) error {
	if err := r.db.Save(unit).Error; err != nil {
		return wrapDBError(err, "update unit")
	}
	return nil
}

// DeleteByUuid hard-deletes one unit.
func (r *unitRepository) DeleteByUuid(uuid string) error {
	if err := r.db.Unscoped().Where("uuid = ?", uuid).Delete(&model.Unit{}).Error; err != nil {
		return wrapDBErrorf(err, "delete unit uuid=%s", uuid)
	}
	return nil
}
