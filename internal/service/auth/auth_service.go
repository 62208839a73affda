// Package auth backs the token refresh endpoint: a refresh token is
// honoured only while its id matches the one stored at login, so the
// newest login wins.
package auth

import (
	"context"

	"go.uber.org/zap"

	myredis "crusade_campaign_server/internal/dao/redis"
	"crusade_campaign_server/pkg/constants"
	"crusade_campaign_server/pkg/errorx"
)

type authService struct {
	cache myredis.CacheService
}

// NewService builds the auth service.
func NewService(cache myredis.CacheService) *authService {
	return &authService{cache: cache}
}

// ValidateTokenID reports whether tokenID is the session token
// currently stored for userID. A missing key means the user logged out
// or the session expired.
func (a *authService) ValidateTokenID(userID, tokenID string) (bool, error) {
	stored, err := a.cache.Get(context.Background(), constants.USER_TOKEN_KEY_PREFIX+userID)
	if err != nil {
		zap.L().Error("validate token id: cache read failed", zap.Error(err))
		return false, errorx.ErrServerBusy
	}
	return stored != "" && stored == tokenID, nil
}
