// Package force implements crusade force operations.
package force

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

type forceService struct {
	repos    *repository.Repositories
	cache    myredis.AsyncCacheService
	notifier Notifier
}

// NewService builds the force service.
func NewService(repos *repository.Repositories, cache myredis.AsyncCacheService, notifier Notifier) *forceService {
	return &forceService{repos: repos, cache: cache, notifier: notifier}
}

// invalidateSnapshots bumps the snapshot cache version before the
// mutation returns, retiring every cached snapshot at once.
func (s *forceService) invalidateSnapshots() {
	if err := s.cache.Set(context.Background(), constants.SNAPSHOT_VERSION_KEY, uuid.NewString(), 0); err != nil {
		zap.L().Error("snapshot invalidation failed", zap.Error(err))
	}
}

// SaveForce inserts or updates the complete staged record. On insert
// the campaign and owner ids come from the request context, never the
// payload; on update they are carried over from the stored row.
func (s *forceService) SaveForce(userID string, req request.SaveForceRequest) error {
	if req.Uuid != "" {
		return s.updateForce(userID, req)
	}
	return s.insertForce(userID, req)
}

func (s *forceService) insertForce(userID string, req request.SaveForceRequest) error {
	if req.CampaignId == "" {
		return errorx.New(errorx.CodeInvalidParam, "campaign id required")
	}
	parent, err := s.repos.Campaign.FindByUuid(req.CampaignId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "campaign not found")
		}
		zap.L().Error("save force: campaign lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	owner, err := s.repos.User.FindByUuid(userID)
	if err != nil {
		zap.L().Error("save force: user lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if !policy.IsMember(owner, parent) {
		return errorx.New(errorx.CodeForbidden, "join the campaign before creating a force")
	}

	newForce := &model.CrusadeForce{
		Uuid:              fmt.Sprintf("F%s", random.GetNowAndLenRandomString(11)),
		CampaignUuid:      parent.Uuid,
		UserUuid:          owner.Uuid,
		Name:              req.Name,
		Faction:           req.Faction,
		SupplyLimit:       req.SupplyLimit,
		BattleTally:       req.BattleTally,
		Victories:         req.Victories,
		RequisitionPoints: req.RequisitionPoints,
		Achievements:      req.Achievements,
	}
	if err := s.repos.Force.Create(newForce); err != nil {
		zap.L().Error("save force: create failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("force created", zap.String("uuid", newForce.Uuid), zap.String("owner", owner.Uuid))

	s.invalidateSnapshots()
	s.notifier.Broadcast("crusade_force")
	return nil
}

func (s *forceService) updateForce(userID string, req request.SaveForceRequest) error {
	stored, owner, err := s.ownedForce(userID, req.Uuid)
	if err != nil {
		return err
	}

	stored.Name = req.Name
	stored.Faction = req.Faction
	stored.SupplyLimit = req.SupplyLimit
	stored.BattleTally = req.BattleTally
	stored.Victories = req.Victories
	stored.RequisitionPoints = req.RequisitionPoints
	stored.Achievements = req.Achievements
	if err := s.repos.Force.Update(stored); err != nil {
		zap.L().Error("save force: update failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("force updated", zap.String("uuid", stored.Uuid), zap.String("owner", owner.Uuid))

	s.invalidateSnapshots()
	s.notifier.Broadcast("crusade_force")
	return nil
}

// DeleteForce issues one delete for the force row; the units are the
// cascade constraint's job.
func (s *forceService) DeleteForce(userID, forceUuid string) error {
	stored, _, err := s.ownedForce(userID, forceUuid)
	if err != nil {
		return err
	}
	if err := s.repos.Force.DeleteByUuid(stored.Uuid); err != nil {
		zap.L().Error("delete force failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("force deleted", zap.String("uuid", stored.Uuid), zap.String("by", userID))

	s.invalidateSnapshots()
	s.notifier.Broadcast("crusade_force")
	return nil
}

// GetForceList returns one campaign's forces with supply usage summed
// from their current units.
func (s *forceService) GetForceList(campaignUuid string) ([]respond.ForceRespond, error) {
	forces, err := s.repos.Force.FindByCampaignUuid(campaignUuid)
	if err != nil {
		zap.L().Error("get force list failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	uuids := make([]string, 0, len(forces))
	for i := range forces {
		uuids = append(uuids, forces[i].Uuid)
	}
	units, err := s.repos.Unit.FindByForceUuids(uuids)
	if err != nil {
		zap.L().Error("get force list: unit read failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	usedByForce := make(map[string]int, len(forces))
	for i := range units {
		usedByForce[units[i].CrusadeForceUuid] += units[i].PointsCost
	}
	list := make([]respond.ForceRespond, 0, len(forces))
	for i := range forces {
		list = append(list, BuildForceRespond(&forces[i], usedByForce[forces[i].Uuid]))
	}
	return list, nil
}

// ownedForce loads a force and checks the caller owns it.
func (s *forceService) ownedForce(userID, forceUuid string) (*model.CrusadeForce, *model.UserInfo, error) {
	stored, err := s.repos.Force.FindByUuid(forceUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, nil, errorx.New(errorx.CodeNotFound, "force not found")
		}
		zap.L().Error("force lookup failed", zap.Error(err))
		return nil, nil, errorx.ErrServerBusy
	}
	caller, err := s.repos.User.FindByUuid(userID)
	if err != nil {
		zap.L().Error("user lookup failed", zap.Error(err))
		return nil, nil, errorx.ErrServerBusy
	}
	if !policy.OwnsForce(caller, stored) {
		return nil, nil, errorx.New(errorx.CodeForbidden, "this force belongs to another player")
	}
	return stored, caller, nil
}

// SupplyUsed sums points cost over units. Always recomputed from the
// roster, never stored.
func SupplyUsed(units []model.Unit) int {
	total := 0
	for i := range units {
		total += units[i].PointsCost
	}
	return total
}

// BuildForceRespond converts one force record with its computed supply
// usage. Shared with the snapshot service.
func BuildForceRespond(f *model.CrusadeForce, supplyUsed int) respond.ForceRespond {
	return respond.ForceRespond{
		Uuid:              f.Uuid,
		CampaignId:        f.CampaignUuid,
		UserId:            f.UserUuid,
		Name:              f.Name,
		Faction:           f.Faction,
		SupplyLimit:       f.SupplyLimit,
		SupplyUsed:        supplyUsed,
		BattleTally:       f.BattleTally,
		Victories:         f.Victories,
		RequisitionPoints: f.RequisitionPoints,
		Achievements:      f.Achievements,
	}
}
