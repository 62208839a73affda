package user

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"crusade_campaign_server/internal/dao/mysql/repository"
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/model"
	"crusade_campaign_server/internal/policy"
	"crusade_campaign_server/pkg/constants"
	"crusade_campaign_server/pkg/errorx"
	"crusade_campaign_server/pkg/util/jwt"
)

type fakeCache struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]string)}
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = value
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[key], nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, key)
	return nil
}


func (f *fakeCache) SubmitTask(action func()) { action() }

// recordingUserRepo counts every call, so a test can prove a code path
// never touched the store.
type recordingUserRepo struct {
	calls int
}

func (r *recordingUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	r.calls++
	return nil, errorx.New(errorx.CodeNotFound, "not found")
}

func (r *recordingUserRepo) FindByEmail(email string) (*model.UserInfo, error) {
	r.calls++
	return nil, errorx.New(errorx.CodeNotFound, "not found")
}

func (r *recordingUserRepo) Create(user *model.UserInfo) error {
	r.calls++
	return nil
}

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.UserInfo{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewRepositories(db)
}

func TestRegisterPasswordMismatchMakesNoRepositoryCall(t *testing.T) {
	rec := &recordingUserRepo{}
	repos := &repository.Repositories{User: rec}
	svc := NewService(repos, newFakeCache(), nil)

	_, err := svc.Register(request.RegisterRequest{
		Username:        "grunt",
		Email:           "grunt@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})
	if errorx.GetCode(err) != errorx.CodePasswordMismatch {
		t.Fatalf("err = %v, want password mismatch", err)
	}
	if rec.calls != 0 {
		t.Errorf("repository calls = %d, mismatch must fail before the store", rec.calls)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewService(repos, newFakeCache(), nil)

	req := request.RegisterRequest{
		Username:        "grunt",
		Email:           "grunt@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	req.Username = "other"
	_, err := svc.Register(req)
	if errorx.GetCode(err) != errorx.CodeUserExist {
		t.Fatalf("err = %v, want user-exists", err)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	repos := newTestRepos(t)
	cache := newFakeCache()
	svc := NewService(repos, cache, policy.AllowList{"admin@example.com"})

	created, err := svc.Register(request.RegisterRequest{
		Username:        "grunt",
		Email:           "grunt@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !strings.HasPrefix(created.Uuid, "U") {
		t.Errorf("uuid %q should be U-prefixed", created.Uuid)
	}

	// the stored password is a hash, never the plaintext
	stored, err := repos.User.FindByEmail("grunt@example.com")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if stored.Password == "secret1" || stored.Password == "" {
		t.Error("password should be stored hashed")
	}

	if _, err := svc.Login(request.LoginRequest{Email: "grunt@example.com", Password: "wrong1"}); errorx.GetCode(err) != errorx.CodeInvalidPassword {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, err := svc.Login(request.LoginRequest{Email: "nobody@example.com", Password: "secret1"}); errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Fatalf("unknown email err = %v", err)
	}

	logged, err := svc.Login(request.LoginRequest{Email: "grunt@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.AccessToken == "" || logged.RefreshToken == "" {
		t.Error("login should issue both tokens")
	}
	if logged.IsAdmin {
		t.Error("unlisted email should not be admin")
	}
	if cache.store[constants.USER_TOKEN_KEY_PREFIX+logged.Uuid] == "" {
		t.Error("login should store the session token id")
	}
}

func TestLoginReplacesEarlierSession(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	repos := newTestRepos(t)
	cache := newFakeCache()
	svc := NewService(repos, cache, nil)

	if _, err := svc.Register(request.RegisterRequest{
		Username: "grunt", Email: "grunt@example.com",
		Password: "secret1", ConfirmPassword: "secret1",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	first, err := svc.Login(request.LoginRequest{Email: "grunt@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	firstTokenID := cache.store[constants.USER_TOKEN_KEY_PREFIX+first.Uuid]

	second, err := svc.Login(request.LoginRequest{Email: "grunt@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	secondTokenID := cache.store[constants.USER_TOKEN_KEY_PREFIX+second.Uuid]

	if firstTokenID == secondTokenID {
		t.Error("a new login must replace the stored token id")
	}
}

func TestLogoutClearsSessionAndViewState(t *testing.T) {
	cache := newFakeCache()
	svc := NewService(&repository.Repositories{}, cache, nil)

	cache.store[constants.USER_TOKEN_KEY_PREFIX+"U1"] = "tid"
	cache.store[constants.VIEW_STATE_KEY_PREFIX+"U1"] = "{}"

	if err := svc.Logout("U1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := cache.store[constants.USER_TOKEN_KEY_PREFIX+"U1"]; ok {
		t.Error("session token should be gone")
	}
	if _, ok := cache.store[constants.VIEW_STATE_KEY_PREFIX+"U1"]; ok {
		t.Error("view state should be gone")
	}
}
