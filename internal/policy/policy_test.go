package policy

import (
	"testing"

	"crusade_campaign_server/internal/model"
)

func TestAllowListIsGlobalAdmin(t *testing.T) {
	allow := AllowList{"admin@example.com", "second@example.com"}

	if !allow.IsGlobalAdmin("admin@example.com") {
		t.Error("listed email should be admin")
	}
	if !allow.IsGlobalAdmin("Admin@Example.COM") {
		t.Error("email comparison should ignore case")
	}
	if allow.IsGlobalAdmin("player@example.com") {
		t.Error("unlisted email should not be admin")
	}
	if (AllowList{}).IsGlobalAdmin("admin@example.com") {
		t.Error("empty allow-list should grant nothing")
	}
}

func TestIsCampaignAdmin(t *testing.T) {
	creator := &model.UserInfo{Uuid: "U1"}
	other := &model.UserInfo{Uuid: "U2"}
	camp := &model.Campaign{Uuid: "C1", AdminId: "U1"}

	if !IsCampaignAdmin(creator, camp) {
		t.Error("creator should be campaign admin")
	}
	if IsCampaignAdmin(other, camp) {
		t.Error("non-creator should not be campaign admin")
	}
	if IsCampaignAdmin(nil, camp) || IsCampaignAdmin(creator, nil) {
		t.Error("nil inputs should never be admin")
	}
}

func TestIsMemberAndCanEnter(t *testing.T) {
	member := &model.UserInfo{Uuid: "U1"}
	stranger := &model.UserInfo{Uuid: "U9"}
	camp := &model.Campaign{
		Uuid: "C1",
		Members: []model.CampaignMember{
			{CampaignUuid: "C1", UserUuid: "U1"},
			{CampaignUuid: "C1", UserUuid: "U2"},
		},
	}

	if !IsMember(member, camp) {
		t.Error("listed user should be member")
	}
	if IsMember(stranger, camp) {
		t.Error("unlisted user should not be member")
	}
	if !CanEnter(member, camp) {
		t.Error("member should be able to enter")
	}
	if CanEnter(stranger, camp) {
		t.Error("non-member should not be able to enter")
	}
	if CanEnter(nil, camp) || CanEnter(member, nil) {
		t.Error("nil inputs should never enter")
	}
}

func TestOwnsForce(t *testing.T) {
	owner := &model.UserInfo{Uuid: "U1"}
	other := &model.UserInfo{Uuid: "U2"}
	force := &model.CrusadeForce{Uuid: "F1", UserUuid: "U1"}

	if !OwnsForce(owner, force) {
		t.Error("owner should own the force")
	}
	if OwnsForce(other, force) {
		t.Error("other user should not own the force")
	}
	if OwnsForce(nil, force) || OwnsForce(owner, nil) {
		t.Error("nil inputs should never own")
	}
}
