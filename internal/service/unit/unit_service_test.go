package unit

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
	"crusade_campaign_server/pkg/errorx"
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

type fakeNotifier struct {
	tables []string
}

func (f *fakeNotifier) Broadcast(table string) { f.tables = append(f.tables, table) }

// newTestEnv seeds two players, a shared campaign and one force each.
func newTestEnv(t *testing.T) (*repository.Repositories, *unitService, *fakeNotifier) {
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

	if err := db.AutoMigrate(
		&model.UserInfo{},
		&model.Campaign{},
		&model.CampaignMember{},
		&model.CrusadeForce{},
		&model.Unit{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repos := repository.NewRepositories(db)

	for _, id := range []string{"U1", "U2"} {
		u := &model.UserInfo{Uuid: id, Username: id, Email: id + "@example.com", Password: "x"}
		if err := repos.User.Create(u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	if err := repos.Campaign.Create(&model.Campaign{Uuid: "C1", Name: "c", AdminId: "U1"}); err != nil {
		t.Fatalf("seed campaign: %v", err)
	}
	for i, owner := range []string{"U1", "U2"} {
		f := &model.CrusadeForce{Uuid: []string{"F1", "F2"}[i], CampaignUuid: "C1", UserUuid: owner, Name: "f", Faction: "Orks"}
		if err := repos.Force.Create(f); err != nil {
			t.Fatalf("seed force: %v", err)
		}
	}

	notifier := &fakeNotifier{}
	return repos, NewService(repos, newFakeCache(), notifier), notifier
}

func TestSaveUnitInsertMergesForce(t *testing.T) {
	repos, svc, notifier := newTestEnv(t)

	err := svc.SaveUnit("U1", request.SaveUnitRequest{
		CrusadeForceId: "F1",
		Name:           "Intercessor Squad",
		Type:           "Battleline",
		PointsCost:     160,
	})
	if err != nil {
		t.Fatalf("save unit: %v", err)
	}

	units, err := repos.Unit.FindByForceUuid("F1")
	if err != nil {
		t.Fatalf("read units: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("unit count = %d", len(units))
	}
	if !strings.HasPrefix(units[0].Uuid, "N") {
		t.Errorf("unit uuid %q should be N-prefixed", units[0].Uuid)
	}
	if units[0].CrusadeForceUuid != "F1" || units[0].PointsCost != 160 {
		t.Errorf("stored unit = %+v", units[0])
	}
	if len(notifier.tables) != 1 || notifier.tables[0] != "unit" {
		t.Errorf("broadcasts = %v", notifier.tables)
	}
}

func TestSaveUnitInsertForeignForceForbidden(t *testing.T) {
	repos, svc, _ := newTestEnv(t)

	err := svc.SaveUnit("U1", request.SaveUnitRequest{CrusadeForceId: "F2", Name: "n"})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("err = %v, want forbidden", err)
	}
	if units, _ := repos.Unit.FindByForceUuid("F2"); len(units) != 0 {
		t.Error("forbidden save must leave no rows")
	}
}

func TestSaveUnitUpdateCannotMoveForces(t *testing.T) {
	repos, svc, _ := newTestEnv(t)

	if err := svc.SaveUnit("U1", request.SaveUnitRequest{CrusadeForceId: "F1", Name: "old", PointsCost: 100}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	units, _ := repos.Unit.FindByForceUuid("F1")
	unitId := units[0].Uuid

	// the payload claims another force; the stored parent wins
	err := svc.SaveUnit("U1", request.SaveUnitRequest{
		Uuid:           unitId,
		CrusadeForceId: "F2",
		Name:           "renamed",
		PointsCost:     120,
		BattlesPlayed:  2,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	updated, err := repos.Unit.FindByUuid(unitId)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if updated.CrusadeForceUuid != "F1" {
		t.Errorf("unit moved to force %q", updated.CrusadeForceUuid)
	}
	if updated.Name != "renamed" || updated.PointsCost != 120 || updated.BattlesPlayed != 2 {
		t.Errorf("fields not staged: %+v", updated)
	}
}

func TestSaveUnitUpdateForeignOwnerForbidden(t *testing.T) {
	repos, svc, _ := newTestEnv(t)

	if err := svc.SaveUnit("U2", request.SaveUnitRequest{CrusadeForceId: "F2", Name: "theirs"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	units, _ := repos.Unit.FindByForceUuid("F2")

	err := svc.SaveUnit("U1", request.SaveUnitRequest{Uuid: units[0].Uuid, Name: "stolen"})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("err = %v, want forbidden", err)
	}
}

func TestDeleteUnit(t *testing.T) {
	repos, svc, _ := newTestEnv(t)

	if err := svc.SaveUnit("U1", request.SaveUnitRequest{CrusadeForceId: "F1", Name: "n"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	units, _ := repos.Unit.FindByForceUuid("F1")

	if err := svc.DeleteUnit("U2", units[0].Uuid); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("foreign delete err = %v, want forbidden", err)
	}
	if err := svc.DeleteUnit("U1", units[0].Uuid); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if left, _ := repos.Unit.FindByForceUuid("F1"); len(left) != 0 {
		t.Errorf("units left = %d", len(left))
	}
	if err := svc.DeleteUnit("U1", "N_missing"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("missing unit err = %v, want not-found", err)
	}
}

func TestGetUnitList(t *testing.T) {
	_, svc, _ := newTestEnv(t)

	for _, name := range []string{"a", "b", "c"} {
		if err := svc.SaveUnit("U1", request.SaveUnitRequest{CrusadeForceId: "F1", Name: name}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}
	if err := svc.SaveUnit("U2", request.SaveUnitRequest{CrusadeForceId: "F2", Name: "other"}); err != nil {
		t.Fatalf("insert other: %v", err)
	}

	list, err := svc.GetUnitList("F1")
	if err != nil {
		t.Fatalf("get list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("unit count = %d, want 3", len(list))
	}
}
