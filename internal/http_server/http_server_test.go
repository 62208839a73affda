package http_server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/dto/respond"
	"crusade_campaign_server/internal/handler"
	"crusade_campaign_server/internal/http_server"
	"crusade_campaign_server/internal/notify"
	"crusade_campaign_server/internal/service"
	"crusade_campaign_server/pkg/util/jwt"
)

type stubUserService struct{}

func (s stubUserService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	return &respond.RegisterRespond{}, nil
}
func (s stubUserService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{}, nil
}
func (s stubUserService) Logout(userID string) error { return nil }

type stubAuthService struct{}

func (s stubAuthService) ValidateTokenID(userID, tokenID string) (bool, error) { return true, nil }

type stubCampaignService struct{}

func (s stubCampaignService) CreateCampaign(userID string, req request.CreateCampaignRequest) error {
	return nil
}
func (s stubCampaignService) JoinCampaign(userID string, req request.JoinCampaignRequest) error {
	return nil
}
func (s stubCampaignService) DeleteCampaign(userID, campaignUuid string) error { return nil }
func (s stubCampaignService) GetCampaignList() ([]respond.CampaignRespond, error) {
	return []respond.CampaignRespond{}, nil
}
func (s stubCampaignService) GetFactionList() []respond.FactionGroupRespond {
	return []respond.FactionGroupRespond{}
}

type stubForceService struct{}

func (s stubForceService) SaveForce(userID string, req request.SaveForceRequest) error { return nil }
func (s stubForceService) DeleteForce(userID, forceUuid string) error                  { return nil }
func (s stubForceService) GetForceList(campaignUuid string) ([]respond.ForceRespond, error) {
	return []respond.ForceRespond{}, nil
}

type stubUnitService struct{}

func (s stubUnitService) SaveUnit(userID string, req request.SaveUnitRequest) error { return nil }
func (s stubUnitService) DeleteUnit(userID, unitUuid string) error                  { return nil }
func (s stubUnitService) GetUnitList(forceUuid string) ([]respond.UnitRespond, error) {
	return []respond.UnitRespond{}, nil
}

type stubSnapshotService struct{}

func (s stubSnapshotService) Load(userID string) (*respond.SnapshotRespond, error) {
	return &respond.SnapshotRespond{}, nil
}

type stubViewService struct{}

func (s stubViewService) GetViewState(userID string) (*respond.ViewStateRespond, error) {
	return &respond.ViewStateRespond{View: "dashboard"}, nil
}
func (s stubViewService) SelectView(userID, view string) (*respond.ViewStateRespond, error) {
	return &respond.ViewStateRespond{View: view}, nil
}
func (s stubViewService) EnterCampaign(userID, campaignUuid string) (*respond.ViewStateRespond, error) {
	return &respond.ViewStateRespond{View: "campaign", SelectedCampaign: campaignUuid}, nil
}
func (s stubViewService) OpenModal(userID, modal string) (*respond.ViewStateRespond, error) {
	return &respond.ViewStateRespond{View: "dashboard"}, nil
}
func (s stubViewService) CloseModal(userID, modal string) (*respond.ViewStateRespond, error) {
	return &respond.ViewStateRespond{View: "dashboard"}, nil
}

func mustJSON(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, client *http.Client, method, url string, body io.Reader, authHeader string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request %s %s: %v", method, url, err)
	}
	return resp
}

func requireNot5xxOr404(t *testing.T, path string, resp *http.Response) {
	t.Helper()
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode >= 500 {
		t.Fatalf("%s status=%d", path, resp.StatusCode)
	}
	_ = resp.Body.Close()
}

func TestAllHTTPAndWebSocketEndpoints_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret", 15, 168)
	if err := handler.InitTrans("en"); err != nil {
		t.Fatalf("init translator: %v", err)
	}

	hub := notify.NewHub()
	defer hub.Close()
	svcs := &service.Services{
		User:     stubUserService{},
		Auth:     stubAuthService{},
		Campaign: stubCampaignService{},
		Force:    stubForceService{},
		Unit:     stubUnitService{},
		Snapshot: stubSnapshotService{},
		View:     stubViewService{},
	}

	engine := http_server.Init(handler.NewHandlers(svcs, hub))
	server := httptest.NewServer(engine)
	defer server.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	accessToken, err := jwt.GenerateAccessToken("U_TEST")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	authHeader := "Bearer " + accessToken

	refreshToken, _, err := jwt.GenerateRefreshToken("U_TEST")
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}

	// public endpoints
	resp := doReq(t, client, http.MethodPost, server.URL+"/login", mustJSON(t, map[string]any{
		"email":    "grunt@example.com",
		"password": "secret1",
	}), "")
	requireNot5xxOr404(t, "/login", resp)

	resp = doReq(t, client, http.MethodPost, server.URL+"/register", mustJSON(t, map[string]any{
		"username":         "grunt",
		"email":            "grunt@example.com",
		"password":         "secret1",
		"confirm_password": "secret1",
	}), "")
	requireNot5xxOr404(t, "/register", resp)

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/refresh", mustJSON(t, map[string]any{
		"refresh_token": refreshToken,
	}), "")
	requireNot5xxOr404(t, "/auth/refresh", resp)

	// an authenticated route without a token must bounce
	resp = doReq(t, client, http.MethodGet, server.URL+"/snapshot/load", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("/snapshot/load without token status=%d, want 401", resp.StatusCode)
	}
	_ = resp.Body.Close()

	// authenticated endpoints
	authed := []struct {
		method string
		path   string
		body   map[string]any
	}{
		{http.MethodPost, "/user/logout", nil},
		{http.MethodPost, "/campaign/createCampaign", map[string]any{"name": "n", "description": "d"}},
		{http.MethodPost, "/campaign/joinCampaign", map[string]any{"campaign_id": "C1", "faction": "Orks"}},
		{http.MethodPost, "/campaign/deleteCampaign", map[string]any{"campaign_id": "C1"}},
		{http.MethodGet, "/campaign/getCampaignList", nil},
		{http.MethodGet, "/campaign/getFactionList", nil},
		{http.MethodPost, "/force/saveForce", map[string]any{"campaign_id": "C1", "name": "f", "faction": "Orks"}},
		{http.MethodPost, "/force/deleteForce", map[string]any{"force_id": "F1"}},
		{http.MethodGet, "/force/getForceList?campaign_id=C1", nil},
		{http.MethodPost, "/unit/saveUnit", map[string]any{"crusade_force_id": "F1", "name": "u"}},
		{http.MethodPost, "/unit/deleteUnit", map[string]any{"unit_id": "N1"}},
		{http.MethodGet, "/unit/getUnitList?crusade_force_id=F1", nil},
		{http.MethodGet, "/snapshot/load", nil},
		{http.MethodGet, "/view/getViewState", nil},
		{http.MethodPost, "/view/selectView", map[string]any{"view": "dashboard"}},
		{http.MethodPost, "/view/enterCampaign", map[string]any{"campaign_id": "C1"}},
		{http.MethodPost, "/view/openModal", map[string]any{"modal": "confirm_delete"}},
		{http.MethodPost, "/view/closeModal", map[string]any{"modal": "confirm_delete"}},
	}
	for _, ep := range authed {
		var body io.Reader
		if ep.body != nil {
			body = mustJSON(t, ep.body)
		}
		resp := doReq(t, client, ep.method, server.URL+ep.path, body, authHeader)
		requireNot5xxOr404(t, ep.path, resp)
	}

	// malformed numeric input fails binding rather than being coerced
	resp = doReq(t, client, http.MethodPost, server.URL+"/unit/saveUnit", strings.NewReader(
		`{"crusade_force_id":"F1","name":"u","points_cost":"abc"}`,
	), authHeader)
	var envelope struct {
		Code int `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	_ = resp.Body.Close()
	if envelope.Code == 1000 {
		t.Error("non-numeric points_cost should fail binding")
	}

	// websocket change feed
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/subscribe"
	conn, wsResp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	if wsResp != nil {
		_ = wsResp.Body.Close()
	}
	defer func() { _ = conn.Close() }()

	// the server registers the connection just after the handshake
	time.Sleep(50 * time.Millisecond)
	hub.Broadcast("campaign")
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event struct {
		Event string `json:"event"`
		Table string `json:"table"`
	}
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read ws event: %v", err)
	}
	if event.Event != "changed" || event.Table != "campaign" {
		t.Errorf("event = %+v", event)
	}
}
