package web

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/logging"
	"github.com/gyulist/gyulist/internal/web/config"
	"github.com/gyulist/gyulist/internal/web/session"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// tokenFor builds an unsigned session token carrying userId.
func tokenFor(userID int64) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"userId":` + api.ID(userID) + `}`))
	return "eyJhbGciOiJIUzI1NiJ9." + payload + ".sig"
}

type fakeOperator struct {
	tokens      []string
	loginErr    error
	preReg      *api.PreRegisterResponse
	preRegErr   error
	gotPreReg   api.PreRegisterRequest
	cattleQuery api.CattleListQuery
	cattleErr   error
	statusCalls int
	status      string
	reason      string
	statusErr   error
	eventsQuery api.EventListQuery
	kpiFrom     string
	kpiTo       string
	userID      int64
	theme       string
}

func (f *fakeOperator) token(ctx context.Context) {
	t, _ := session.TokenFrom(ctx)
	f.tokens = append(f.tokens, t)
}

func (f *fakeOperator) Login(_ context.Context, email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return tokenFor(7), nil
}

func (f *fakeOperator) PreRegister(_ context.Context, req api.PreRegisterRequest) (*api.PreRegisterResponse, error) {
	f.gotPreReg = req
	return f.preReg, f.preRegErr
}

func (f *fakeOperator) GetUser(ctx context.Context, id int64) (*api.User, error) {
	f.token(ctx)
	f.userID = id
	return &api.User{ID: id, Email: "a@example.com", UserName: "Hanako", Theme: "dark", CreatedAt: "2025-01-02T00:00:00Z"}, nil
}

func (f *fakeOperator) UpdateTheme(ctx context.Context, id int64, theme string) (*api.ThemeData, error) {
	f.token(ctx)
	f.userID = id
	f.theme = theme
	return &api.ThemeData{ID: id, Theme: theme}, nil
}

func (f *fakeOperator) ListCattle(ctx context.Context, q api.CattleListQuery) (*api.Page[api.Cattle], error) {
	f.token(ctx)
	f.cattleQuery = q
	if f.cattleErr != nil {
		return nil, f.cattleErr
	}
	return &api.Page[api.Cattle]{
		Results: []api.Cattle{{CattleID: 1, IdentificationNumber: 1001, Name: strPtr("Hana"), Status: "HEALTHY", Birthday: strPtr("2022-04-01")}},
		Total:   45,
		Limit:   q.Limit,
		Offset:  q.Offset,
	}, nil
}

func (f *fakeOperator) GetCattle(ctx context.Context, id int64) (*api.Cattle, error) {
	f.token(ctx)
	if id != 1 {
		return nil, common.ErrorNotFound
	}
	return &api.Cattle{CattleID: 1, IdentificationNumber: 1001, Name: strPtr("Hana"), Status: "HEALTHY"}, nil
}

func (f *fakeOperator) CattleHistory(ctx context.Context, id int64) ([]api.StatusHistory, error) {
	f.token(ctx)
	return []api.StatusHistory{{CattleID: id, NewStatus: "HEALTHY", ChangedAt: "2025-05-31T16:00:00Z", Reason: strPtr("checked")}}, nil
}

func (f *fakeOperator) UpdateCattleStatus(ctx context.Context, id int64, status, reason string) (*api.Cattle, error) {
	f.token(ctx)
	f.statusCalls++
	f.status, f.reason = status, reason
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &api.Cattle{CattleID: id, Status: status}, nil
}

func (f *fakeOperator) ListEvents(ctx context.Context, q api.EventListQuery) ([]api.Event, error) {
	f.token(ctx)
	f.eventsQuery = q
	return []api.Event{{EventID: 3, CattleID: 1, CattleName: strPtr("Hana"), EventType: "ESTRUS", EventDatetime: "2025-06-02T01:00:00Z"}}, nil
}

func (f *fakeOperator) BreedingKPI(ctx context.Context, from, to string) (*api.BreedingKPIResponse, error) {
	f.token(ctx)
	f.kpiFrom, f.kpiTo = from, to
	rate := 66.7
	return &api.BreedingKPIResponse{From: "2024-06-01", To: "2025-06-01", BreedingKPI: api.BreedingKPI{ConceptionRate: &rate},
		Counts: api.BreedingCounts{Inseminations: 3, Conceptions: 2, Calvings: 1}}, nil
}

func (f *fakeOperator) ListShipments(ctx context.Context, q api.ShipmentListQuery) (*api.Page[api.Shipment], error) {
	f.token(ctx)
	return &api.Page[api.Shipment]{Results: []api.Shipment{{ShipmentID: 9, CattleID: 1, ShipmentDate: "2025-05-20", Price: 850000}}, Total: 1}, nil
}

func (f *fakeOperator) ListPlans(ctx context.Context) ([]api.ShipmentPlan, error) {
	f.token(ctx)
	return []api.ShipmentPlan{{CattleID: 1, CattleName: strPtr("Hana"), PlannedShipmentMonth: "2025-09"}}, nil
}

type fixture struct {
	t   *testing.T
	op  *fakeOperator
	srv *Server
	h   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.TimeZone = "Asia/Tokyo"

	op := &fakeOperator{}
	srv, err := NewServer(cfg, logging.Nop(), op)
	require.NoError(t, err)
	srv.now = func() time.Time { return now }

	return &fixture{t: t, op: op, srv: srv, h: srv.Handler()}
}

func (f *fixture) do(method, target, token string, form url.Values) *httptest.ResponseRecorder {
	f.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: common.SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}
