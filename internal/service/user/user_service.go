// Package user implements account registration, login and logout.
package user

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"crusade_campaign_server/internal/dao/mysql/repository"
	myredis "crusade_campaign_server/internal/dao/redis"
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/dto/respond"
	"crusade_campaign_server/internal/model"
	"crusade_campaign_server/internal/policy"
	"crusade_campaign_server/pkg/constants"
	"crusade_campaign_server/pkg/errorx"
	"crusade_campaign_server/pkg/util/jwt"
	"crusade_campaign_server/pkg/util/random"
)

type userService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
	allow policy.AllowList
}

// NewService builds the user service.
func NewService(repos *repository.Repositories, cache myredis.AsyncCacheService, allow policy.AllowList) *userService {
	return &userService{repos: repos, cache: cache, allow: allow}
}

// Register creates an account. The password/confirmation mismatch is
// rejected before any repository call; a taken email is reported with
// its own code so the client can point at the field.
func (u *userService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if req.Password != req.ConfirmPassword {
		return nil, errorx.New(errorx.CodePasswordMismatch, "passwords do not match")
	}

	_, err := u.repos.User.FindByEmail(req.Email)
	if err == nil {
		return nil, errorx.New(errorx.CodeUserExist, "an account with this email already exists")
	}
	if !errorx.IsNotFound(err) {
		zap.L().Error("register: email lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	newUser := &model.UserInfo{
		Uuid:        fmt.Sprintf("U%s", random.GetNowAndLenRandomString(11)),
		Username:    req.Username,
		Email:       req.Email,
		RawPassword: req.Password,
		Status:      0,
	}
	if err := u.repos.User.Create(newUser); err != nil {
		zap.L().Error("register: create user failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	zap.L().Info("user registered", zap.String("uuid", newUser.Uuid), zap.String("email", newUser.Email))

	return &respond.RegisterRespond{
		Uuid:      newUser.Uuid,
		Username:  newUser.Username,
		Email:     newUser.Email,
		CreatedAt: newUser.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// Login verifies the credentials and issues a fresh token pair. The
// refresh token id replaces whatever was stored before, so any earlier
// session stops refreshing.
func (u *userService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	found, err := u.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "no account for this email, please register first")
		}
		zap.L().Error("login: email lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !found.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "wrong password")
	}

	accessToken, err := jwt.GenerateAccessToken(found.Uuid)
	if err != nil {
		zap.L().Error("login: generate access token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(found.Uuid)
	if err != nil {
		zap.L().Error("login: generate refresh token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	key := constants.USER_TOKEN_KEY_PREFIX + found.Uuid
	ttl := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
	if err := u.cache.Set(context.Background(), key, tokenID, ttl); err != nil {
		zap.L().Error("login: store session token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	zap.L().Info("user logged in", zap.String("uuid", found.Uuid))

	return &respond.LoginRespond{
		Uuid:         found.Uuid,
		Username:     found.Username,
		Email:        found.Email,
		IsAdmin:      u.allow.IsGlobalAdmin(found.Email),
		CreatedAt:    found.CreatedAt.Format("2006-01-02 15:04:05"),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout drops the stored session token and the user's persisted view
// state. Access tokens already issued simply age out.
func (u *userService) Logout(userID string) error {
	ctx := context.Background()
	if err := u.cache.Delete(ctx, constants.USER_TOKEN_KEY_PREFIX+userID); err != nil {
		zap.L().Error("logout: delete session token failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if err := u.cache.Delete(ctx, constants.VIEW_STATE_KEY_PREFIX+userID); err != nil {
		zap.L().Error("logout: delete view state failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("user logged out", zap.String("uuid", userID))
	return nil
}
