// Package unit implements roster unit operations. Ownership is always
// resolved through the unit's force; units carry no owner column of
// their own.
package unit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crusade_campaign_server/internal/dao/mysql/repository"
	myredis "crusade_campaign_server/internal/dao/redis"
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/dto/respond"
	"crusade_campaign_server/internal/model"
	"crusade_campaign_server/internal/policy"
	"crusade_campaign_server/pkg/constants"
	"crusade_campaign_server/pkg/errorx"
	"crusade_campaign_server/pkg/util/random"
)

// Notifier pushes a changed-table event after a successful mutation.
type Notifier interface {
	Broadcast(table string)
}

type unitService struct {
	repos    *repository.Repositories
	cache    myredis.AsyncCacheService
	notifier Notifier
}

// NewService builds the unit service.
func NewService(repos *repository.Repositories, cache myredis.AsyncCacheService, notifier Notifier) *unitService {
	return &unitService{repos: repos, cache: cache, notifier: notifier}
}

// invalidateSnapshots bumps the snapshot cache version before the
// mutation returns, retiring every cached snapshot at once.
func (s *unitService) invalidateSnapshots() {
	if err := s.cache.Set(context.Background(), constants.SNAPSHOT_VERSION_KEY, uuid.NewString(), 0); err != nil {
		zap.L().Error("snapshot invalidation failed", zap.Error(err))
	}
}

// SaveUnit inserts or updates the complete staged record. The owning
// force id is taken from the payload only on insert; an update can
// never move a unit between forces.
func (s *unitService) SaveUnit(userID string, req request.SaveUnitRequest) error {
	if req.Uuid != "" {
		return s.updateUnit(userID, req)
	}
	return s.insertUnit(userID, req)
}

func (s *unitService) insertUnit(userID string, req request.SaveUnitRequest) error {
	if req.CrusadeForceId == "" {
		return errorx.New(errorx.CodeInvalidParam, "crusade force id required")
	}
	if err := s.checkForceOwner(userID, req.CrusadeForceId); err != nil {
		return err
	}

	newUnit := &model.Unit{
		Uuid:             fmt.Sprintf("N%s", random.GetNowAndLenRandomString(11)),
		CrusadeForceUuid: req.CrusadeForceId,
		Name:             req.Name,
		Type:             req.Type,
		SubFaction:       req.SubFaction,
		PointsCost:       req.PointsCost,
		CrusadePoints:    req.CrusadePoints,
		Equipment:        req.Equipment,
		Enhancements:     req.Enhancements,
		BattlesPlayed:    req.BattlesPlayed,
		BattlesSurvived:  req.BattlesSurvived,
		EnemiesDestroyed: req.EnemiesDestroyed,
		BattleHonours:    req.BattleHonours,
		BattleScars:      req.BattleScars,
	}
	if err := s.repos.Unit.Create(newUnit); err != nil {
		zap.L().Error("save unit: create failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("unit created", zap.String("uuid", newUnit.Uuid), zap.String("force", newUnit.CrusadeForceUuid))

	s.invalidateSnapshots()
	s.notifier.Broadcast("unit")
	return nil
}

func (s *unitService) updateUnit(userID string, req request.SaveUnitRequest) error {
	stored, err := s.repos.Unit.FindByUuid(req.Uuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "unit not found")
		}
		zap.L().Error("save unit: lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if err := s.checkForceOwner(userID, stored.CrusadeForceUuid); err != nil {
		return err
	}

	stored.Name = req.Name
	stored.Type = req.Type
	stored.SubFaction = req.SubFaction
	stored.PointsCost = req.PointsCost
	stored.CrusadePoints = req.CrusadePoints
	stored.Equipment = req.Equipment
	stored.Enhancements = req.Enhancements
	stored.BattlesPlayed = req.BattlesPlayed
	stored.BattlesSurvived = req.BattlesSurvived
	stored.EnemiesDestroyed = req.EnemiesDestroyed
	stored.BattleHonours = req.BattleHonours
	stored.BattleScars = req.BattleScars
	if err := s.repos.Unit.Update(stored); err != nil {
		zap.L().Error("save unit: update failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("unit updated", zap.String("uuid", stored.Uuid))

	s.invalidateSnapshots()
	s.notifier.Broadcast("unit")
	return nil
}

// DeleteUnit deletes one unit after resolving ownership through its
// force.
func (s *unitService) DeleteUnit(userID, unitUuid string) error {
	stored, err := s.repos.Unit.FindByUuid(unitUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "unit not found")
		}
		zap.L().Error("delete unit: lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if err := s.checkForceOwner(userID, stored.CrusadeForceUuid); err != nil {
		return err
	}
	if err := s.repos.Unit.DeleteByUuid(stored.Uuid); err != nil {
		zap.L().Error("delete unit failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("unit deleted", zap.String("uuid", stored.Uuid), zap.String("by", userID))

	s.invalidateSnapshots()
	s.notifier.Broadcast("unit")
	return nil
}

// GetUnitList returns one force's units.
func (s *unitService) GetUnitList(forceUuid string) ([]respond.UnitRespond, error) {
	units, err := s.repos.Unit.FindByForceUuid(forceUuid)
	if err != nil {
		zap.L().Error("get unit list failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	list := make([]respond.UnitRespond, 0, len(units))
	for i := range units {
		list = append(list, BuildUnitRespond(&units[i]))
	}
	return list, nil
}

// checkForceOwner verifies the force exists and belongs to the caller.
func (s *unitService) checkForceOwner(userID, forceUuid string) error {
	parent, err := s.repos.Force.FindByUuid(forceUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "force not found")
		}
		zap.L().Error("force lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	caller, err := s.repos.User.FindByUuid(userID)
	if err != nil {
		zap.L().Error("user lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if !policy.OwnsForce(caller, parent) {
		return errorx.New(errorx.CodeForbidden, "this force belongs to another player")
	}
	return nil
}

// BuildUnitRespond converts one unit record. Shared with the snapshot
// service.
func BuildUnitRespond(u *model.Unit) respond.UnitRespond {
	return respond.UnitRespond{
		Uuid:             u.Uuid,
		CrusadeForceId:   u.CrusadeForceUuid,
		Name:             u.Name,
		Type:             u.Type,
		SubFaction:       u.SubFaction,
		PointsCost:       u.PointsCost,
		CrusadePoints:    u.CrusadePoints,
		Equipment:        u.Equipment,
		Enhancements:     u.Enhancements,
		BattlesPlayed:    u.BattlesPlayed,
		BattlesSurvived:  u.BattlesSurvived,
		EnemiesDestroyed: u.EnemiesDestroyed,
		BattleHonours:    u.BattleHonours,
		BattleScars:      u.BattleScars,
	}
}
