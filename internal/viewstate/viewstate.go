// Package viewstate models the screens and modal flags of the tracker
// client as a small state machine. The rules are pure; persistence of a
// user's current state lives in the view service.
package viewstate

import (
	"crusade_campaign_server/pkg/errorx"
)

// View is one of the four screens.
type View string

const (
	ViewLogin     View = "login"
	ViewRegister  View = "register"
	ViewDashboard View = "dashboard"
	ViewCampaign  View = "campaign"
)

// Modal names the independently toggled overlays. Opening one does not
// close another; concurrent modals are allowed with no precedence.
type Modal string

const (
	ModalCreatingCampaign Modal = "creating_campaign"
	ModalEditingForce     Modal = "editing_force"
	ModalEditingUnit      Modal = "editing_unit"
	ModalConfirmDelete    Modal = "confirm_delete"
)

// State is a user's complete view state.
type State struct {
	View View `json:"view"`

	// SelectedCampaign is the campaign uuid shown on the campaign screen;
	// empty everywhere else.
	SelectedCampaign string `json:"selected_campaign,omitempty"`

	Modals map[Modal]bool `json:"modals,omitempty"`
}

// Initial returns the state a session starts in: dashboard when an
// identity is already present, login otherwise.
func Initial(authenticated bool) State {
	if authenticated {
		return State{View: ViewDashboard}
	}
	return State{View: ViewLogin}
}

// validViews is the transition table. Logout (any view to login with
// cleared selection) bypasses it via Reset.
var validViews = map[View][]View{
	ViewLogin:     {ViewRegister, ViewDashboard},
	ViewRegister:  {ViewLogin, ViewDashboard},
	ViewDashboard: {ViewCampaign},
	ViewCampaign:  {ViewDashboard},
}

// CanSelect reports whether the machine allows moving from the current
// view to target.
func (s State) CanSelect(target View) bool {
	for _, v := range validViews[s.View] {
		if v == target {
			return true
		}
	}
	return false
}

// Select transitions to target, clearing the campaign selection when
// the campaign screen is left. Entering the campaign screen goes
// through EnterCampaign so a selection is always carried.
func (s State) Select(target View) (State, error) {
	if !s.CanSelect(target) {
		return s, errorx.Newf(errorx.CodeInvalidParam, "cannot switch from %s to %s", s.View, target)
	}
	if target == ViewCampaign {
		return s, errorx.New(errorx.CodeInvalidParam, "selecting the campaign view requires a campaign")
	}
	s.View = target
	s.SelectedCampaign = ""
	return s, nil
}

// EnterCampaign transitions dashboard -> campaign for campaignUuid.
// Membership is the caller's responsibility; it is evaluated per
// request, never cached here.
func (s State) EnterCampaign(campaignUuid string) (State, error) {
	if !s.CanSelect(ViewCampaign) {
		return s, errorx.Newf(errorx.CodeInvalidParam, "cannot enter a campaign from %s", s.View)
	}
	if campaignUuid == "" {
		return s, errorx.New(errorx.CodeInvalidParam, "campaign id required")
	}
	s.View = ViewCampaign
	s.SelectedCampaign = campaignUuid
	return s, nil
}

// Reset is the logout transition: any state back to login with
// selection and modals cleared.
func Reset() State {
	return State{View: ViewLogin}
}

// knownModals guards against arbitrary flag names reaching storage.
var knownModals = map[Modal]bool{
	ModalCreatingCampaign: true,
	ModalEditingForce:     true,
	ModalEditingUnit:      true,
	ModalConfirmDelete:    true,
}

// SetModal opens or closes one modal flag, leaving the others alone.
func (s State) SetModal(m Modal, open bool) (State, error) {
	if !knownModals[m] {
		return s, errorx.Newf(errorx.CodeInvalidParam, "unknown modal %q", m)
	}
	modals := make(map[Modal]bool, len(s.Modals)+1)
	for k, v := range s.Modals {
		modals[k] = v
	}
	if open {
		modals[m] = true
	} else {
		delete(modals, m)
	}
	if len(modals) == 0 {
		modals = nil
	}
	s.Modals = modals
	return s, nil
}

// ModalOpen reports whether modal m is currently open.
func (s State) ModalOpen(m Modal) bool {
	return s.Modals[m]
}
