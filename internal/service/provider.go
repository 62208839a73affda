package service

import (
	"crusade_campaign_server/internal/dao/mysql/repository"
	myredis "crusade_campaign_server/internal/dao/redis"
	"crusade_campaign_server/internal/policy"
	"crusade_campaign_server/internal/service/auth"
	"crusade_campaign_server/internal/service/campaign"
	"crusade_campaign_server/internal/service/force"
	"crusade_campaign_server/internal/service/snapshot"
	"crusade_campaign_server/internal/service/unit"
	"crusade_campaign_server/internal/service/user"
	"crusade_campaign_server/internal/service/view"
)

// Services aggregates every business service behind one injectable
// value.
type Services struct {
	User     UserService
	Auth     AuthService
	Campaign CampaignService
	Force    ForceService
	Unit     UnitService
	Snapshot SnapshotService
	View     ViewService
}

// NewServices wires the services over the shared repositories, cache,
// admin allow-list and change notifier.
func NewServices(repos *repository.Repositories, cache myredis.AsyncCacheService, allow policy.AllowList, notifier Notifier) *Services {
	return &Services{
		User:     user.NewService(repos, cache, allow),
		Auth:     auth.NewService(cache),
		Campaign: campaign.NewService(repos, cache, allow, notifier),
		Force:    force.NewService(repos, cache, notifier),
		Unit:     unit.NewService(repos, cache, notifier),
		Snapshot: snapshot.NewService(repos, cache),
		View:     view.NewService(repos, cache),
	}
}
