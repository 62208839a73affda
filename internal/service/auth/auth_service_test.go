package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"crusade_campaign_server/pkg/constants"
)

type fakeCache struct {
	store map[string]string
	err   error
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.store[key], nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}


func TestValidateTokenID(t *testing.T) {
	cache := &fakeCache{store: map[string]string{
		constants.USER_TOKEN_KEY_PREFIX + "U1": "tid-current",
	}}
	svc := NewService(cache)

	ok, err := svc.ValidateTokenID("U1", "tid-current")
	if err != nil || !ok {
		t.Errorf("current token id: ok=%v err=%v", ok, err)
	}

	ok, err = svc.ValidateTokenID("U1", "tid-stale")
	if err != nil || ok {
		t.Errorf("stale token id should be rejected: ok=%v err=%v", ok, err)
	}

	// logged out: nothing stored
	ok, err = svc.ValidateTokenID("U2", "tid-any")
	if err != nil || ok {
		t.Errorf("missing key should be rejected: ok=%v err=%v", ok, err)
	}
}

func TestValidateTokenIDCacheError(t *testing.T) {
	svc := NewService(&fakeCache{store: map[string]string{}, err: errors.New("down")})
	if _, err := svc.ValidateTokenID("U1", "tid"); err == nil {
		t.Fatal("cache failure should surface as an error, not a verdict")
	}
}
