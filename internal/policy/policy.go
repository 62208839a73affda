// Package policy holds the authorization predicates. They are pure
// functions over the user and campaign records, evaluated per request so
// no cached flag can go stale.
package policy

import (
	"strings"

	"crusade_campaign_server/internal/model"
)

// AllowList is the set of administrator emails, resolved from
// configuration at startup and injected where campaign administration is
// gated.
type AllowList []string

// IsGlobalAdmin reports whether email is on the allow-list. Global
// admins may create and delete campaigns regardless of per-campaign
// admin status.
func (a AllowList) IsGlobalAdmin(email string) bool {
	for _, admin := range a {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}

// IsCampaignAdmin reports whether user created the campaign. The flag
// is informational on the dashboard; it carries no privileged action of
// its own.
func IsCampaignAdmin(user *model.UserInfo, campaign *model.Campaign) bool {
	if user == nil || campaign == nil {
		return false
	}
	return campaign.AdminId == user.Uuid
}

// IsMember reports whether user has a member row in the campaign.
func IsMember(user *model.UserInfo, campaign *model.Campaign) bool {
	if user == nil || campaign == nil {
		return false
	}
	for _, m := range campaign.Members {
		if m.UserUuid == user.Uuid {
			return true
		}
	}
	return false
}

// CanEnter reports whether user may open the campaign screen: members
// only, matching the dashboard's "Enter Campaign" gate.
func CanEnter(user *model.UserInfo, campaign *model.Campaign) bool {
	return IsMember(user, campaign)
}

// OwnsForce reports whether user owns the force. Forces are created,
// edited and deleted only by their owning user.
func OwnsForce(user *model.UserInfo, force *model.CrusadeForce) bool {
	if user == nil || force == nil {
		return false
	}
	return force.UserUuid == user.Uuid
}
