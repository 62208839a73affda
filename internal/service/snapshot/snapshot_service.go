// Package snapshot produces the bulk load the client replaces its
// collections with: every campaign with members, every force with
// recomputed supply usage, every unit. A snapshot is rendered whole or
// not at all, so a failed read can never leave the caller with a mixed
// roster.
package snapshot

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"crusade_campaign_server/internal/dao/mysql/repository"
	myredis "crusade_campaign_server/internal/dao/redis"
	"crusade_campaign_server/internal/dto/respond"
	"crusade_campaign_server/internal/model"
	"crusade_campaign_server/internal/service/campaign"
	"crusade_campaign_server/internal/service/force"
	"crusade_campaign_server/internal/service/unit"
	"crusade_campaign_server/pkg/constants"
	"crusade_campaign_server/pkg/errorx"
)

type snapshotService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService

	// loads coalesces concurrent snapshot requests per user: a refresh
	// arriving while a load is in flight joins it instead of racing it.
	loads singleflight.Group
}

// NewService builds the snapshot service.
func NewService(repos *repository.Repositories, cache myredis.AsyncCacheService) *snapshotService {
	return &snapshotService{repos: repos, cache: cache}
}

// Load returns the roster snapshot for userID, serving from cache when
// a fresh copy exists and coalescing concurrent loads for the same
// user. The version read comes first and is part of the flight key, so
// a refresh issued after a mutation never joins a load that started
// before it.
func (s *snapshotService) Load(userID string) (*respond.SnapshotRespond, error) {
	version, err := s.cache.Get(context.Background(), constants.SNAPSHOT_VERSION_KEY)
	cacheOK := err == nil
	if !cacheOK {
		zap.L().Warn("snapshot version read failed, bypassing cache", zap.Error(err))
		version = ""
	}
	v, err, _ := s.loads.Do(version+":"+userID, func() (interface{}, error) {
		return s.load(userID, version, cacheOK)
	})
	if err != nil {
		return nil, err
	}
	return v.(*respond.SnapshotRespond), nil
}

// snapshotKey scopes a cached snapshot to the version current when the
// load began. A concurrent mutation bumps the version, so a write-back
// racing it lands under a key no later load reads.
func snapshotKey(version, userID string) string {
	return constants.SNAPSHOT_KEY_PREFIX + version + "_" + userID
}

func (s *snapshotService) load(userID, version string, cacheOK bool) (*respond.SnapshotRespond, error) {
	ctx := context.Background()
	key := snapshotKey(version, userID)

	if cacheOK {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			var snap respond.SnapshotRespond
			if err := json.Unmarshal([]byte(cached), &snap); err == nil {
				return &snap, nil
			}
			zap.L().Warn("snapshot cache entry unreadable, reloading", zap.String("key", key))
		}
	}

	campaigns, err := s.repos.Campaign.FindAllWithMembers()
	if err != nil {
		zap.L().Error("snapshot: campaign read failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	forces, err := s.repos.Force.FindAll()
	if err != nil {
		zap.L().Error("snapshot: force read failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	units, err := s.repos.Unit.FindAll()
	if err != nil {
		zap.L().Error("snapshot: unit read failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	snap := build(campaigns, forces, units)

	if cacheOK {
		if payload, err := json.Marshal(snap); err == nil {
			s.cache.SubmitTask(func() {
				if err := s.cache.Set(context.Background(), key, string(payload), constants.SNAPSHOT_CACHE_TTL); err != nil {
					zap.L().Error("snapshot cache write failed", zap.Error(err))
				}
			})
		}
	}
	return snap, nil
}

// build assembles the response, grouping units by force in one pass so
// supply usage costs no extra queries.
func build(campaigns []model.Campaign, forces []model.CrusadeForce, units []model.Unit) *respond.SnapshotRespond {
	unitsByForce := make(map[string][]int, len(forces))
	for i := range units {
		unitsByForce[units[i].CrusadeForceUuid] = append(unitsByForce[units[i].CrusadeForceUuid], i)
	}

	snap := &respond.SnapshotRespond{
		Campaigns: make([]respond.CampaignRespond, 0, len(campaigns)),
		Forces:    make([]respond.ForceRespond, 0, len(forces)),
		Units:     make([]respond.UnitRespond, 0, len(units)),
	}
	for i := range campaigns {
		snap.Campaigns = append(snap.Campaigns, campaign.BuildCampaignRespond(&campaigns[i]))
	}
	for i := range forces {
		used := 0
		for _, j := range unitsByForce[forces[i].Uuid] {
			used += units[j].PointsCost
		}
		snap.Forces = append(snap.Forces, force.BuildForceRespond(&forces[i], used))
	}
	for i := range units {
		snap.Units = append(snap.Units, unit.BuildUnitRespond(&units[i]))
	}
	return snap
}
