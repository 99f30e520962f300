package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/client/client"
	"github.com/gyulist/gyulist/internal/client/repositories/metadata"
	"github.com/gyulist/gyulist/internal/client/services"
	"github.com/gyulist/gyulist/internal/web/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func tokenFor(userID int64) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"userId":` + api.ID(userID) + `}`))
	return "eyJhbGciOiJIUzI1NiJ9." + payload + ".sig"
}

type fakeOperator struct {
	loginEmail, loginPassword string
	loginErr                  error
	registered                []string
	cattleQuery               api.CattleListQuery
	cattleErr                 error
	statusCalls               int
	statusID                  int64
	status, reason            string
	eventsQuery               api.EventListQuery
	kpiFrom, kpiTo            string
	userID                    int64
	theme                     string
	revoked                   bool
}

func (f *fakeOperator) Login(_ context.Context, email, password string) (string, error) {
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return tokenFor(7), nil
}

func (f *fakeOperator) Register(_ context.Context, email, password, userName string) (int64, error) {
	f.registered = []string{email, password, userName}
	return 11, nil
}

func (f *fakeOperator) Verify(_ context.Context, token string) (*api.VerifyResponse, error) {
	if f.revoked {
		return &api.VerifyResponse{Success: false, Message: "token expired"}, nil
	}
	return &api.VerifyResponse{Success: true, Message: "token is valid"}, nil
}

func (f *fakeOperator) GetUser(_ context.Context, id int64) (*api.User, error) {
	f.userID = id
	return &api.User{ID: id, Email: "a@example.com", UserName: "Hanako", Theme: "light"}, nil
}

func (f *fakeOperator) UpdateTheme(_ context.Context, id int64, theme string) (*api.ThemeData, error) {
	f.userID, f.theme = id, theme
	return &api.ThemeData{ID: id, Theme: theme}, nil
}

func (f *fakeOperator) ListCattle(_ context.Context, q api.CattleListQuery) (*api.Page[api.Cattle], error) {
	f.cattleQuery = q
	if f.cattleErr != nil {
		return nil, f.cattleErr
	}
	return &api.Page[api.Cattle]{
		Results: []api.Cattle{{CattleID: 1, IdentificationNumber: 1001, Name: strPtr("Hana"), Status: "HEALTHY"}},
		Total:   1,
	}, nil
}

func (f *fakeOperator) GetCattle(_ context.Context, id int64) (*api.Cattle, error) {
	return &api.Cattle{CattleID: id, IdentificationNumber: 1001, Name: strPtr("Hana"), Status: "RESTING"}, nil
}

func (f *fakeOperator) CattleHistory(_ context.Context, id int64) ([]api.StatusHistory, error) {
	return []api.StatusHistory{{CattleID: id, OldStatus: strPtr("HEALTHY"), NewStatus: "RESTING", ChangedAt: "2025-05-31T16:00:00Z"}}, nil
}

func (f *fakeOperator) UpdateCattleStatus(_ context.Context, id int64, status, reason string) (*api.Cattle, error) {
	f.statusCalls++
	f.statusID, f.status, f.reason = id, status, reason
	return &api.Cattle{CattleID: id, Status: status}, nil
}

func (f *fakeOperator) ListEvents(_ context.Context, q api.EventListQuery) ([]api.Event, error) {
	f.eventsQuery = q
	return []api.Event{{EventID: 1, CattleID: 1, CattleName: strPtr("Hana"), EventType: "CALVING", EventDatetime: "2025-06-03T00:00:00Z"}}, nil
}

func (f *fakeOperator) BreedingKPI(_ context.Context, from, to string) (*api.BreedingKPIResponse, error) {
	f.kpiFrom, f.kpiTo = from, to
	rate := 50.0
	return &api.BreedingKPIResponse{From: "2025-01-01", To: "2025-06-30", BreedingKPI: api.BreedingKPI{ConceptionRate: &rate},
		Counts: api.BreedingCounts{Inseminations: 4, Conceptions: 2}}, nil
}

func (f *fakeOperator) ListShipments(context.Context, api.ShipmentListQuery) (*api.Page[api.Shipment], error) {
	return &api.Page[api.Shipment]{Results: []api.Shipment{{CattleID: 2, CattleName: strPtr("Kuro"), ShipmentDate: "2025-05-20", Price: 900000}}}, nil
}

func (f *fakeOperator) ListPlans(context.Context) ([]api.ShipmentPlan, error) {
	return []api.ShipmentPlan{{CattleID: 1, CattleName: strPtr("Hana"), PlannedShipmentMonth: "2025-09"}}, nil
}

func newTestApp(t *testing.T) (*App, *fakeOperator, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	op := &fakeOperator{}
	var out bytes.Buffer
	app := &App{
		db:     db,
		svc:    op,
		tokens: services.NewTokenStore(metadata.NewSQLiteRepository(db)),
		claims: session.NewClaimsReader(),
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &out,
		clock:  func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) },
	}
	return app, op, &out
}

func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(*bufio.Reader, string, io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func loggedIn(t *testing.T, app *App) {
	t.Helper()
	require.NoError(t, app.tokens.Save(context.Background(), tokenFor(7)))
}

func TestLogin_StoresToken(t *testing.T) {
	app, op, out := newTestApp(t)
	stubInputs(t, []string{"a@example.com"}, "pw")
	ctx := context.Background()

	require.False(t, app.isLoggedIn(ctx))
	require.NoError(t, app.Login(ctx))

	assert.Equal(t, "a@example.com", op.loginEmail)
	assert.Equal(t, "pw", op.loginPassword)
	assert.True(t, app.isLoggedIn(ctx))
	assert.Equal(t, "(a@example.com)", app.getStatus(ctx))
	assert.Contains(t, out.String(), "Login successful")

	tok, err := app.tokens.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, tokenFor(7), tok)

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn(ctx))
	assert.Empty(t, app.getStatus(ctx))
}

func TestLogin_BadCredentials(t *testing.T) {
	app, op, _ := newTestApp(t)
	op.loginErr = &services.StatusError{Status: 401}
	stubInputs(t, []string{"a@example.com"}, "bad")

	err := app.Login(context.Background())
	assert.ErrorIs(t, err, errBadCredentials)
	assert.False(t, app.isLoggedIn(context.Background()))
}

func TestRegister(t *testing.T) {
	app, op, out := newTestApp(t)
	stubInputs(t, []string{"a@example.com", "Hanako"}, "pw")

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, []string{"a@example.com", "pw", "Hanako"}, op.registered)
	assert.Contains(t, out.String(), "Registered user #11")
}

func TestCattle(t *testing.T) {
	app, op, out := newTestApp(t)
	loggedIn(t, app)

	require.NoError(t, app.Cattle(context.Background(), []string{"Hana", "ko"}))
	assert.Equal(t, api.CattleListQuery{Search: "Hana ko", Limit: 100}, op.cattleQuery)
	assert.Contains(t, out.String(), "Hana")
	assert.Contains(t, out.String(), "1 of 1 head")
}

func TestCattle_UnauthorizedClearsToken(t *testing.T) {
	app, op, _ := newTestApp(t)
	loggedIn(t, app)
	op.cattleErr = &services.StatusError{Status: 401}

	err := app.Cattle(context.Background(), nil)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, app.isLoggedIn(context.Background()))
}

func TestShow(t *testing.T) {
	app, _, out := newTestApp(t)

	require.NoError(t, app.Show(context.Background(), []string{"3"}))
	assert.Contains(t, out.String(), "HEALTHY -> RESTING")

	var u usageError
	assert.ErrorAs(t, app.Show(context.Background(), nil), &u)
	assert.ErrorAs(t, app.Show(context.Background(), []string{"x"}), &u)
}

func TestStatus(t *testing.T) {
	app, op, out := newTestApp(t)

	require.NoError(t, app.Status(context.Background(), []string{"12", "resting", "dry", "period"}))
	assert.Equal(t, 1, op.statusCalls)
	assert.Equal(t, int64(12), op.statusID)
	assert.Equal(t, "RESTING", op.status)
	assert.Equal(t, "dry period", op.reason)
	assert.Contains(t, out.String(), "Cattle #12 is now RESTING")

	var u usageError
	assert.ErrorAs(t, app.Status(context.Background(), []string{"12"}), &u)
	assert.ErrorAs(t, app.Status(context.Background(), []string{"0", "DEAD"}), &u)
	assert.Equal(t, 1, op.statusCalls)
}

func TestEvents(t *testing.T) {
	app, op, out := newTestApp(t)

	require.NoError(t, app.Events(context.Background(), nil))
	assert.Equal(t, api.EventListQuery{From: "2025-06-01", To: "2025-06-08", Limit: 100}, op.eventsQuery)
	assert.Contains(t, out.String(), "CALVING")

	require.NoError(t, app.Events(context.Background(), []string{"2025-01-01", "2025-01-31"}))
	assert.Equal(t, "2025-01-01", op.eventsQuery.From)
	assert.Equal(t, "2025-01-31", op.eventsQuery.To)

	var u usageError
	assert.ErrorAs(t, app.Events(context.Background(), []string{"tomorrow"}), &u)
}

func TestKPI(t *testing.T) {
	app, op, out := newTestApp(t)

	require.NoError(t, app.KPI(context.Background(), nil))
	assert.Empty(t, op.kpiFrom)
	assert.Empty(t, op.kpiTo)
	assert.Contains(t, out.String(), "Breeding KPI 2025-01-01 to 2025-06-30")
	assert.Contains(t, out.String(), "50")

	var u usageError
	assert.ErrorAs(t, app.KPI(context.Background(), []string{"2025-01-01", "2025-02-01", "x"}), &u)
}

func TestShipments(t *testing.T) {
	app, _, out := newTestApp(t)

	require.NoError(t, app.Shipments(context.Background()))
	assert.Contains(t, out.String(), "2025-09")
	assert.Contains(t, out.String(), "Kuro (#2)")
	assert.Contains(t, out.String(), "900000")
}

func TestWhoamiAndTheme(t *testing.T) {
	app, op, out := newTestApp(t)
	ctx := context.Background()

	assert.ErrorIs(t, app.Whoami(ctx), client.ErrNoToken)

	loggedIn(t, app)
	require.NoError(t, app.Whoami(ctx))
	assert.Equal(t, int64(7), op.userID)
	assert.Contains(t, out.String(), "#7 Hanako <a@example.com>, theme light")
	assert.Equal(t, "(Hanako)", app.getStatus(ctx))

	require.NoError(t, app.Theme(ctx, []string{"dark"}))
	assert.Equal(t, "dark", op.theme)

	var u usageError
	assert.ErrorAs(t, app.Theme(ctx, []string{"neon"}), &u)
}

func TestWhoami_BadTokenLogsOut(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.tokens.Save(ctx, "garbage"))

	assert.ErrorIs(t, app.Whoami(ctx), session.ErrMalformedToken)
	assert.False(t, app.isLoggedIn(ctx))
}

func TestWhoami_RevokedTokenLogsOut(t *testing.T) {
	app, op, _ := newTestApp(t)
	ctx := context.Background()
	loggedIn(t, app)
	op.revoked = true

	err := app.Whoami(ctx)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "Session expired. Type 'login' to sign in again.", describe(err))
	assert.False(t, app.isLoggedIn(ctx))
	assert.Zero(t, op.userID)
}
