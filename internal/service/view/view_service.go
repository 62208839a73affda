// Package view persists each user's screen and modal flags in Redis
// and applies the transition rules from the viewstate package.
package view

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"crusade_campaign_server/internal/dao/mysql/repository"
	myredis "crusade_campaign_server/internal/dao/redis"
	"crusade_campaign_server/internal/dto/respond"
	"crusade_campaign_server/internal/policy"
	"crusade_campaign_server/internal/viewstate"
	"crusade_campaign_server/pkg/constants"
	"crusade_campaign_server/pkg/errorx"
)

type viewService struct {
	repos *repository.Repositories
	cache myredis.CacheService
}

// NewService builds the view service.
func NewService(repos *repository.Repositories, cache myredis.CacheService) *viewService {
	return &viewService{repos: repos, cache: cache}
}

// GetViewState returns the caller's current state. A user with nothing
// stored starts on the dashboard, since every call here is already
// authenticated.
func (s *viewService) GetViewState(userID string) (*respond.ViewStateRespond, error) {
	state, err := s.loadState(userID)
	if err != nil {
		return nil, err
	}
	return buildRespond(state), nil
}

// SelectView switches screens through the transition table. The
// campaign screen is unreachable here; it needs a selection and goes
// through EnterCampaign.
func (s *viewService) SelectView(userID, target string) (*respond.ViewStateRespond, error) {
	state, err := s.loadState(userID)
	if err != nil {
		return nil, err
	}
	next, err := state.Select(viewstate.View(target))
	if err != nil {
		return nil, err
	}
	if err := s.storeState(userID, next); err != nil {
		return nil, err
	}
	return buildRespond(next), nil
}

// EnterCampaign opens the campaign screen for campaignUuid. Membership
// is evaluated against the store on every call, never from the saved
// state.
func (s *viewService) EnterCampaign(userID, campaignUuid string) (*respond.ViewStateRespond, error) {
	target, err := s.repos.Campaign.FindByUuid(campaignUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "campaign not found")
		}
		zap.L().Error("enter campaign: campaign lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	caller, err := s.repos.User.FindByUuid(userID)
	if err != nil {
		zap.L().Error("enter campaign: user lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !policy.CanEnter(caller, target) {
		return nil, errorx.New(errorx.CodeForbidden, "only members may enter a campaign")
	}

	state, err := s.loadState(userID)
	if err != nil {
		return nil, err
	}
	next, err := state.EnterCampaign(campaignUuid)
	if err != nil {
		return nil, err
	}
	if err := s.storeState(userID, next); err != nil {
		return nil, err
	}
	return buildRespond(next), nil
}

// OpenModal raises one modal flag.
func (s *viewService) OpenModal(userID, modal string) (*respond.ViewStateRespond, error) {
	return s.setModal(userID, modal, true)
}

// CloseModal clears one modal flag.
func (s *viewService) CloseModal(userID, modal string) (*respond.ViewStateRespond, error) {
	return s.setModal(userID, modal, false)
}

func (s *viewService) setModal(userID, modal string, open bool) (*respond.ViewStateRespond, error) {
	state, err := s.loadState(userID)
	if err != nil {
		return nil, err
	}
	next, err := state.SetModal(viewstate.Modal(modal), open)
	if err != nil {
		return nil, err
	}
	if err := s.storeState(userID, next); err != nil {
		return nil, err
	}
	return buildRespond(next), nil
}

// loadState reads the stored state, falling back to the authenticated
// initial state when nothing (or nothing readable) is stored.
func (s *viewService) loadState(userID string) (viewstate.State, error) {
	stored, err := s.cache.Get(context.Background(), constants.VIEW_STATE_KEY_PREFIX+userID)
	if err != nil {
		zap.L().Error("view state read failed", zap.Error(err))
		return viewstate.State{}, errorx.ErrServerBusy
	}
	if stored == "" {
		return viewstate.Initial(true), nil
	}
	var state viewstate.State
	if err := json.Unmarshal([]byte(stored), &state); err != nil {
		zap.L().Warn("view state entry unreadable, resetting", zap.String("user", userID))
		return viewstate.Initial(true), nil
	}
	return state, nil
}

// storeState writes synchronously so the next read sees this write.
func (s *viewService) storeState(userID string, state viewstate.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		zap.L().Error("view state marshal failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if err := s.cache.Set(context.Background(), constants.VIEW_STATE_KEY_PREFIX+userID, string(payload), constants.VIEW_STATE_TTL); err != nil {
		zap.L().Error("view state write failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

func buildRespond(state viewstate.State) *respond.ViewStateRespond {
	var modals map[string]bool
	if len(state.Modals) > 0 {
		modals = make(map[string]bool, len(state.Modals))
		for m, open := range state.Modals {
			modals[string(m)] = open
		}
	}
	return &respond.ViewStateRespond{
		View:             string(state.View),
		SelectedCampaign: state.SelectedCampaign,
		Modals:           modals,
	}
}
