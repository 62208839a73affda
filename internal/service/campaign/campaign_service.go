// Package campaign implements campaign and membership operations.
package campaign

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crusade_campaign_server/internal/dao/mysql/repository"
	myredis "crusade_campaign_server/internal/dao/redis"
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/dto/respond"
	"crusade_campaign_server/internal/factions"
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

type campaignService struct {
	repos    *repository.Repositories
	cache    myredis.AsyncCacheService
	allow    policy.AllowList
	notifier Notifier
}

// NewService builds the campaign service.
func NewService(repos *repository.Repositories, cache myredis.AsyncCacheService, allow policy.AllowList, notifier Notifier) *campaignService {
	return &campaignService{repos: repos, cache: cache, allow: allow, notifier: notifier}
}

// invalidateSnapshots bumps the snapshot cache version before the
// mutation returns, so the caller's next refresh rebuilds from the
// store and the write-back of a load still in flight lands under the
// retired version.
func (s *campaignService) invalidateSnapshots() {
	if err := s.cache.Set(context.Background(), constants.SNAPSHOT_VERSION_KEY, uuid.NewString(), 0); err != nil {
		zap.L().Error("snapshot invalidation failed", zap.Error(err))
	}
}

// CreateCampaign creates a campaign and its creator's member row in one
// transaction; a failure on either leaves nothing behind. Gated on the
// admin allow-list.
func (s *campaignService) CreateCampaign(userID string, req request.CreateCampaignRequest) error {
	creator, err := s.repos.User.FindByUuid(userID)
	if err != nil {
		zap.L().Error("create campaign: user lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if !s.allow.IsGlobalAdmin(creator.Email) {
		return errorx.New(errorx.CodeForbidden, "only administrators may create campaigns")
	}

	newCampaign := &model.Campaign{
		Uuid:        fmt.Sprintf("C%s", random.GetNowAndLenRandomString(11)),
		Name:        req.Name,
		Description: req.Description,
		AdminId:     creator.Uuid,
	}
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Campaign.Create(newCampaign); err != nil {
			return err
		}
		return tx.Member.Create(&model.CampaignMember{
			CampaignUuid: newCampaign.Uuid,
			UserUuid:     creator.Uuid,
			Faction:      factions.DefaultFaction,
			Username:     creator.MemberName(),
		})
	})
	if err != nil {
		zap.L().Error("create campaign failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("campaign created", zap.String("uuid", newCampaign.Uuid), zap.String("admin", creator.Uuid))

	s.invalidateSnapshots()
	s.notifier.Broadcast("campaign")
	return nil
}

// JoinCampaign enrolls the caller with a catalog faction. Joining twice
// is rejected before the store's unique index would.
func (s *campaignService) JoinCampaign(userID string, req request.JoinCampaignRequest) error {
	if !factions.IsValid(req.Faction) {
		return errorx.Newf(errorx.CodeUnknownFaction, "unknown faction %q", req.Faction)
	}

	if _, err := s.repos.Campaign.FindByUuid(req.CampaignId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "campaign not found")
		}
		zap.L().Error("join campaign: campaign lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	_, err := s.repos.Member.FindByCampaignAndUser(req.CampaignId, userID)
	if err == nil {
		return errorx.New(errorx.CodeAlreadyMember, "you are already a member of this campaign")
	}
	if !errorx.IsNotFound(err) {
		zap.L().Error("join campaign: member lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	joiner, err := s.repos.User.FindByUuid(userID)
	if err != nil {
		zap.L().Error("join campaign: user lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	err = s.repos.Member.Create(&model.CampaignMember{
		CampaignUuid: req.CampaignId,
		UserUuid:     userID,
		Faction:      req.Faction,
		Username:     joiner.MemberName(),
	})
	if err != nil {
		zap.L().Error("join campaign: create member failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("campaign joined", zap.String("campaign", req.CampaignId), zap.String("user", userID))

	s.invalidateSnapshots()
	s.notifier.Broadcast("campaign_member")
	return nil
}

// DeleteCampaign issues exactly one delete; member rows, forces and
// their units fall to the store's cascade constraints. Gated on the
// admin allow-list.
func (s *campaignService) DeleteCampaign(userID, campaignUuid string) error {
	caller, err := s.repos.User.FindByUuid(userID)
	if err != nil {
		zap.L().Error("delete campaign: user lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if !s.allow.IsGlobalAdmin(caller.Email) {
		return errorx.New(errorx.CodeForbidden, "only administrators may delete campaigns")
	}

	if _, err := s.repos.Campaign.FindByUuid(campaignUuid); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "campaign not found")
		}
		zap.L().Error("delete campaign: campaign lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if err := s.repos.Campaign.DeleteByUuid(campaignUuid); err != nil {
		zap.L().Error("delete campaign failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("campaign deleted", zap.String("uuid", campaignUuid), zap.String("by", userID))

	s.invalidateSnapshots()
	s.notifier.Broadcast("campaign")
	return nil
}

// GetCampaignList returns every campaign with its members in stored
// order.
func (s *campaignService) GetCampaignList() ([]respond.CampaignRespond, error) {
	campaigns, err := s.repos.Campaign.FindAllWithMembers()
	if err != nil {
		zap.L().Error("get campaign list failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	list := make([]respond.CampaignRespond, 0, len(campaigns))
	for i := range campaigns {
		list = append(list, BuildCampaignRespond(&campaigns[i]))
	}
	return list, nil
}

// GetFactionList returns the shipped catalog, allegiances in display
// order.
func (s *campaignService) GetFactionList() []respond.FactionGroupRespond {
	groups := make([]respond.FactionGroupRespond, 0, len(factions.Allegiances))
	for _, allegiance := range factions.Allegiances {
		groups = append(groups, respond.FactionGroupRespond{
			Allegiance: string(allegiance),
			Factions:   factions.Catalog[allegiance],
		})
	}
	return groups
}

// BuildCampaignRespond converts one campaign record, keeping the member
// order the store returned. Shared with the snapshot service.
func BuildCampaignRespond(c *model.Campaign) respond.CampaignRespond {
	members := make([]respond.CampaignMemberRespond, 0, len(c.Members))
	for _, m := range c.Members {
		members = append(members, respond.CampaignMemberRespond{
			UserId:   m.UserUuid,
			Faction:  m.Faction,
			Username: m.Username,
		})
	}
	return respond.CampaignRespond{
		Uuid:        c.Uuid,
		Name:        c.Name,
		Description: c.Description,
		AdminId:     c.AdminId,
		Members:     members,
	}
}
