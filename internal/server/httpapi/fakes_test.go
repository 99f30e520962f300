package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/logging"
	"github.com/gyulist/gyulist/internal/server/config"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/services"
)

const goodToken = "good-token"

var stamp = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

type fakeUsers struct {
	registerErr error
	loginErr    error
	gotCaller   int64
}

func (f *fakeUsers) Register(_ context.Context, email, _, userName string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.User{ID: 5, Email: email, UserName: userName}, nil
}

func (f *fakeUsers) Login(_ context.Context, _, _ string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return "jwt", nil
}

func (f *fakeUsers) Verify(token string) (int64, error) {
	switch token {
	case goodToken:
		return 7, nil
	case "expired":
		return 0, common.ErrTokenExpired
	}
	return 0, common.ErrInvalidToken
}

func (f *fakeUsers) Get(_ context.Context, callerID, id int64) (*models.User, error) {
	f.gotCaller = callerID
	if callerID != id {
		return nil, common.ErrorForbidden
	}
	return &models.User{ID: id, Email: "a@example.com", UserName: "A", PasswordHash: "secret",
		Theme: models.ThemeLight, CreatedAt: stamp, UpdatedAt: stamp}, nil
}

func (f *fakeUsers) UpdateTheme(_ context.Context, callerID, id int64, theme string) (*models.User, error) {
	if !models.Theme(theme).Valid() {
		return nil, &services.ValidationError{Fields: map[string]string{"theme": "bad"}}
	}
	return &models.User{ID: id, Theme: models.Theme(theme), UpdatedAt: stamp}, nil
}

type fakeCattle struct {
	filter       models.CattleFilter
	created      *models.Cattle
	patch        models.CattlePatch
	statusCalls  int
	status       string
	reason       string
	statusErr    error
	deleteErr    error
	historyOwner int64
}

func (f *fakeCattle) List(_ context.Context, flt models.CattleFilter) ([]models.Cattle, int, error) {
	f.filter = flt
	return []models.Cattle{{ID: 1, OwnerUserID: flt.OwnerUserID, Status: models.StatusHealthy}}, 41, nil
}

func (f *fakeCattle) Create(_ context.Context, c *models.Cattle) (*models.Cattle, error) {
	f.created = c
	c.ID = 9
	if c.Status == "" {
		c.Status = models.StatusHealthy
	}
	return c, nil
}

func (f *fakeCattle) Get(_ context.Context, ownerID, id int64) (*models.Cattle, error) {
	if id != 1 {
		return nil, common.ErrorNotFound
	}
	return &models.Cattle{ID: 1, OwnerUserID: ownerID, Status: models.StatusHealthy, CreatedAt: stamp, UpdatedAt: stamp}, nil
}

func (f *fakeCattle) Update(_ context.Context, ownerID, id int64, p models.CattlePatch) (*models.Cattle, error) {
	f.patch = p
	return &models.Cattle{ID: id, OwnerUserID: ownerID, Name: p.Name, Status: models.StatusHealthy}, nil
}

func (f *fakeCattle) Delete(_ context.Context, _, _ int64) error {
	return f.deleteErr
}

func (f *fakeCattle) UpdateStatus(_ context.Context, ownerID, id int64, status, reason string) (*models.Cattle, error) {
	f.statusCalls++
	f.status, f.reason = status, reason
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &models.Cattle{ID: id, OwnerUserID: ownerID, Status: models.CattleStatus(status)}, nil
}

func (f *fakeCattle) History(_ context.Context, ownerID, id int64) ([]models.StatusHistory, error) {
	f.historyOwner = ownerID
	old := "HEALTHY"
	return []models.StatusHistory{{ID: 3, CattleID: id, OldStatus: &old, NewStatus: models.StatusPregnant, ChangedBy: ownerID, ChangedAt: stamp}}, nil
}

type fakeEvents struct {
	filter  models.EventFilter
	created *models.Event
}

func (f *fakeEvents) List(_ context.Context, flt models.EventFilter) ([]models.Event, error) {
	f.filter = flt
	return []models.Event{{ID: 1, CattleID: 1, Type: models.EventCalving, Datetime: stamp}}, nil
}

func (f *fakeEvents) Create(_ context.Context, _ int64, e *models.Event) (*models.Event, error) {
	f.created = e
	e.ID = 4
	return e, nil
}

func (f *fakeEvents) Delete(_ context.Context, _, id int64) error {
	if id != 4 {
		return common.ErrorNotFound
	}
	return nil
}

type fakeKPI struct {
	from, to time.Time
}

func (f *fakeKPI) Breeding(_ context.Context, _ int64, from, to time.Time) (*services.BreedingReport, error) {
	f.from, f.to = from, to
	rate := 50.0
	return &services.BreedingReport{
		From: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		KPI:  services.BreedingKPI{ConceptionRate: &rate, Inseminations: 4, Conceptions: 2},
	}, nil
}

type fakeShipments struct {
	markShipped bool
	plannedFor  int64
	month       string
}

func (f *fakeShipments) List(_ context.Context, flt models.ShipmentFilter) ([]models.Shipment, int, error) {
	return nil, 0, nil
}

func (f *fakeShipments) Create(_ context.Context, _ int64, sh *models.Shipment, markShipped bool) (*models.Shipment, error) {
	f.markShipped = markShipped
	sh.ID = 2
	return sh, nil
}

func (f *fakeShipments) Delete(_ context.Context, _, _ int64) error { return nil }

func (f *fakeShipments) Plans(_ context.Context, _ int64) ([]models.ShipmentPlan, error) {
	return []models.ShipmentPlan{{ID: 1, CattleID: 1, PlannedShipmentMonth: "2025-09"}}, nil
}

func (f *fakeShipments) PutPlan(_ context.Context, _, cattleID int64, month string) (*models.ShipmentPlan, error) {
	f.plannedFor, f.month = cattleID, month
	return &models.ShipmentPlan{ID: 1, CattleID: cattleID, PlannedShipmentMonth: month}, nil
}

func (f *fakeShipments) DeletePlan(_ context.Context, _, _ int64) error { return nil }

type fakeRegistrations struct {
	in        services.PreRegisterInput
	preErr    error
	already   bool
	filter    models.RegistrationFilter
	gotStatus *string
}

func (f *fakeRegistrations) PreRegister(_ context.Context, in services.PreRegisterInput) (*services.PreRegisterResult, error) {
	f.in = in
	if f.preErr != nil {
		return nil, f.preErr
	}
	return &services.PreRegisterResult{AlreadyRegistered: f.already}, nil
}

func (f *fakeRegistrations) List(_ context.Context, flt models.RegistrationFilter) ([]models.Registration, int, error) {
	f.filter = flt
	return []models.Registration{{ID: "r1", Email: "a@example.com", Status: models.RegistrationPending}}, 1, nil
}

func (f *fakeRegistrations) UpdateStatus(_ context.Context, id string, status *string) (*models.Registration, error) {
	f.gotStatus = status
	return &models.Registration{ID: id, Status: models.NormalizeRegistrationStatus(status)}, nil
}

func (f *fakeRegistrations) EmailLogs(_ context.Context, _ string, _, _ int) ([]models.EmailLog, int, error) {
	code := 200
	return []models.EmailLog{{ID: "l1", Email: "a@example.com", HTTPStatus: &code}}, 1, nil
}

type fixture struct {
	users         *fakeUsers
	cattle        *fakeCattle
	events        *fakeEvents
	kpi           *fakeKPI
	shipments     *fakeShipments
	registrations *fakeRegistrations
	handler       http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:         &fakeUsers{},
		cattle:        &fakeCattle{},
		events:        &fakeEvents{},
		kpi:           &fakeKPI{},
		shipments:     &fakeShipments{},
		registrations: &fakeRegistrations{},
	}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	s := NewServer(cfg, logging.Nop(), Services{
		Users:         f.users,
		Cattle:        f.cattle,
		Events:        f.events,
		KPI:           f.kpi,
		Shipments:     f.shipments,
		Registrations: f.registrations,
	})
	f.handler = s.Handler()
	return f
}

// do sends a request; token "" sends no Authorization header.
func (f *fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}
