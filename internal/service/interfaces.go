// Package service declares the business layer interfaces. Each
// interface is implemented by its own subpackage; the handler layer
// depends only on what is declared here.
package service

import (
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/dto/respond"
)

// UserService covers account lifecycle: registration, password login
// and logout.
type UserService interface {
	// Register creates an account. The password/confirmation match is
	// checked before any repository call.
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login verifies credentials and issues an access/refresh token
	// pair. Issuing a new pair invalidates any earlier session.
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// Logout discards the stored session token and the user's view
	// state.
	Logout(userID string) error
}

// AuthService backs token refresh: only the refresh token most
// recently issued for a user is accepted.
type AuthService interface {
	// ValidateTokenID reports whether tokenID is the one currently
	// stored for userID.
	ValidateTokenID(userID, tokenID string) (bool, error)
}

// CampaignService covers campaigns and membership.
type CampaignService interface {
	// CreateCampaign creates a campaign and enrolls the creator as its
	// first member in one transaction. Allow-listed admins only.
	CreateCampaign(userID string, req request.CreateCampaignRequest) error
	// JoinCampaign adds the caller as a member with a catalog faction.
	JoinCampaign(userID string, req request.JoinCampaignRequest) error
	// DeleteCampaign hard-deletes a campaign; members, forces and units
	// go with it through cascade constraints. Allow-listed admins only.
	DeleteCampaign(userID, campaignUuid string) error
	// GetCampaignList returns every campaign with members embedded.
	GetCampaignList() ([]respond.CampaignRespond, error)
	// GetFactionList returns the faction catalog in display order.
	GetFactionList() []respond.FactionGroupRespond
}

// ForceService covers crusade forces.
type ForceService interface {
	// SaveForce inserts or updates the complete staged record. The
	// campaign and owner ids are merged in server-side on insert and
	// never taken from the payload on update.
	SaveForce(userID string, req request.SaveForceRequest) error
	// DeleteForce issues a single delete; the force's units fall to the
	// store's cascade constraint.
	DeleteForce(userID, forceUuid string) error
	// GetForceList returns one campaign's forces with supply usage
	// recomputed.
	GetForceList(campaignUuid string) ([]respond.ForceRespond, error)
}

// UnitService covers roster units.
type UnitService interface {
	// SaveUnit inserts or updates the complete staged record. The
	// owning force id is merged in server-side on insert and never
	// taken from the payload on update.
	SaveUnit(userID string, req request.SaveUnitRequest) error
	// DeleteUnit deletes one unit.
	DeleteUnit(userID, unitUuid string) error
	// GetUnitList returns one force's units.
	GetUnitList(forceUuid string) ([]respond.UnitRespond, error)
}

// SnapshotService produces the bulk load the client replaces its
// collections with.
type SnapshotService interface {
	// Load reads campaigns, forces and units as one all-or-nothing
	// snapshot. Concurrent loads for the same user are coalesced.
	Load(userID string) (*respond.SnapshotRespond, error)
}

// ViewService persists each user's screen and modal flags and applies
// the transition rules.
type ViewService interface {
	// GetViewState returns the caller's current state, initialising it
	// on first use.
	GetViewState(userID string) (*respond.ViewStateRespond, error)
	// SelectView switches screens. Moving to the campaign screen must
	// go through EnterCampaign.
	SelectView(userID, view string) (*respond.ViewStateRespond, error)
	// EnterCampaign opens the campaign screen; membership is checked
	// per request.
	EnterCampaign(userID, campaignUuid string) (*respond.ViewStateRespond, error)
	// OpenModal raises one modal flag without touching the others.
	OpenModal(userID, modal string) (*respond.ViewStateRespond, error)
	// CloseModal clears one modal flag without touching the others.
	CloseModal(userID, modal string) (*respond.ViewStateRespond, error)
}

// Notifier pushes a changed-table event to subscribed clients after a
// successful mutation.
type Notifier interface {
	Broadcast(table string)
}
