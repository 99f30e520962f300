package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/dbx"
	"github.com/gyulist/gyulist/internal/server/mailer"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/repositories/cattle"
	"github.com/gyulist/gyulist/internal/server/repositories/emaillogs"
	"github.com/gyulist/gyulist/internal/server/repositories/events"
	"github.com/gyulist/gyulist/internal/server/repositories/registrations"
	"github.com/gyulist/gyulist/internal/server/repositories/shipments"
	"github.com/gyulist/gyulist/internal/server/repositories/users"
)

var fixedNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// --- users ---

type fakeUsersRepo struct {
	byID      map[int64]*models.User
	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[int64]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, x := range f.byID {
		if x.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = int64(len(f.byID) + 1)
	cp := *u
	f.byID[u.ID] = &cp
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) UpdateTheme(_ context.Context, id int64, theme models.Theme, at time.Time) error {
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Theme = theme
	u.UpdatedAt = at
	return nil
}

// --- cattle ---

type fakeCattleRepo struct {
	items      map[int64]*models.Cattle
	history    []models.StatusHistory
	historyErr error
	listFilter models.CattleFilter
}

func newFakeCattleRepo(cs ...models.Cattle) *fakeCattleRepo {
	f := &fakeCattleRepo{items: map[int64]*models.Cattle{}}
	for i := range cs {
		c := cs[i]
		f.items[c.ID] = &c
	}
	return f
}

func (f *fakeCattleRepo) Create(_ context.Context, c *models.Cattle) (*models.Cattle, error) {
	c.ID = int64(len(f.items) + 1)
	cp := *c
	f.items[c.ID] = &cp
	return c, nil
}

func (f *fakeCattleRepo) Get(_ context.Context, ownerID, id int64) (*models.Cattle, error) {
	c, ok := f.items[id]
	if !ok || c.OwnerUserID != ownerID {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCattleRepo) List(_ context.Context, flt models.CattleFilter) ([]models.Cattle, int, error) {
	f.listFilter = flt
	var out []models.Cattle
	for _, c := range f.items {
		if c.OwnerUserID == flt.OwnerUserID {
			out = append(out, *c)
		}
	}
	return out, len(out), nil
}

func (f *fakeCattleRepo) Update(_ context.Context, ownerID, id int64, p models.CattlePatch, at time.Time) error {
	c, ok := f.items[id]
	if !ok || c.OwnerUserID != ownerID {
		return common.ErrorNotFound
	}
	if p.Name != nil {
		c.Name = p.Name
	}
	if p.Weight != nil {
		c.Weight = p.Weight
	}
	c.UpdatedAt = at
	return nil
}

func (f *fakeCattleRepo) UpdateStatus(_ context.Context, ownerID, id int64, status models.CattleStatus, at time.Time) error {
	c, ok := f.items[id]
	if !ok || c.OwnerUserID != ownerID {
		return common.ErrorNotFound
	}
	c.Status = status
	c.UpdatedAt = at
	return nil
}

func (f *fakeCattleRepo) Delete(_ context.Context, ownerID, id int64) error {
	c, ok := f.items[id]
	if !ok || c.OwnerUserID != ownerID {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeCattleRepo) AddHistory(_ context.Context, h *models.StatusHistory) error {
	if f.historyErr != nil {
		return f.historyErr
	}
	h.ID = int64(len(f.history) + 1)
	f.history = append(f.history, *h)
	return nil
}

func (f *fakeCattleRepo) History(_ context.Context, cattleID int64) ([]models.StatusHistory, error) {
	var out []models.StatusHistory
	for _, h := range f.history {
		if h.CattleID == cattleID {
			out = append(out, h)
		}
	}
	return out, nil
}

// --- events ---

type fakeEventsRepo struct {
	items      []models.Event
	listFilter models.EventFilter
}

func (f *fakeEventsRepo) Create(_ context.Context, e *models.Event) (*models.Event, error) {
	e.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *e)
	return e, nil
}

func (f *fakeEventsRepo) List(_ context.Context, flt models.EventFilter) ([]models.Event, error) {
	f.listFilter = flt
	return f.items, nil
}

func (f *fakeEventsRepo) Delete(_ context.Context, _, id int64) error {
	for i, e := range f.items {
		if e.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

// --- shipments ---

type fakeShipmentsRepo struct {
	items        []models.Shipment
	plans        map[int64]*models.ShipmentPlan
	deletedPlans []int64
}

func newFakeShipmentsRepo() *fakeShipmentsRepo {
	return &fakeShipmentsRepo{plans: map[int64]*models.ShipmentPlan{}}
}

func (f *fakeShipmentsRepo) Create(_ context.Context, s *models.Shipment) (*models.Shipment, error) {
	s.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *s)
	return s, nil
}

func (f *fakeShipmentsRepo) List(_ context.Context, _ models.ShipmentFilter) ([]models.Shipment, int, error) {
	return f.items, len(f.items), nil
}

func (f *fakeShipmentsRepo) Delete(_ context.Context, _, id int64) error {
	for i, s := range f.items {
		if s.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeShipmentsRepo) ListPlans(_ context.Context, _ int64) ([]models.ShipmentPlan, error) {
	var out []models.ShipmentPlan
	for _, p := range f.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeShipmentsRepo) UpsertPlan(_ context.Context, p *models.ShipmentPlan) (*models.ShipmentPlan, error) {
	if old, ok := f.plans[p.CattleID]; ok {
		p.ID = old.ID
		p.CreatedAt = old.CreatedAt
	} else {
		p.ID = int64(len(f.plans) + 1)
	}
	cp := *p
	f.plans[p.CattleID] = &cp
	return p, nil
}

func (f *fakeShipmentsRepo) DeletePlan(_ context.Context, _, cattleID int64) error {
	if _, ok := f.plans[cattleID]; !ok {
		return common.ErrorNotFound
	}
	delete(f.plans, cattleID)
	f.deletedPlans = append(f.deletedPlans, cattleID)
	return nil
}

// --- registrations and email logs ---

type fakeRegistrationsRepo struct {
	byID      map[string]*models.Registration
	createErr error
	lastList  models.RegistrationFilter
}

func newFakeRegistrationsRepo() *fakeRegistrationsRepo {
	return &fakeRegistrationsRepo{byID: map[string]*models.Registration{}}
}

func (f *fakeRegistrationsRepo) Create(_ context.Context, r *models.Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeRegistrationsRepo) GetByEmail(_ context.Context, email string) (*models.Registration, error) {
	for _, r := range f.byID {
		if r.Email == email {
			cp := *r
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRegistrationsRepo) GetByID(_ context.Context, id string) (*models.Registration, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRegistrationsRepo) List(_ context.Context, flt models.RegistrationFilter) ([]models.Registration, int, error) {
	f.lastList = flt
	var out []models.Registration
	for _, r := range f.byID {
		out = append(out, *r)
	}
	return out, len(out), nil
}

func (f *fakeRegistrationsRepo) UpdateStatus(_ context.Context, id string, status models.RegistrationStatus, at time.Time) error {
	r, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	r.Status = status
	r.UpdatedAt = at
	return nil
}

type fakeEmailLogsRepo struct {
	items []models.EmailLog
	email string
}

func (f *fakeEmailLogsRepo) Create(_ context.Context, l *models.EmailLog) error {
	f.items = append(f.items, *l)
	return nil
}

func (f *fakeEmailLogsRepo) List(_ context.Context, email string, _, _ int) ([]models.EmailLog, int, error) {
	f.email = email
	return f.items, len(f.items), nil
}

type fakeSender struct {
	sent   []mailer.Message
	result mailer.Result
	err    error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) (mailer.Result, error) {
	f.sent = append(f.sent, msg)
	return f.result, f.err
}

// --- manager ---

type fakeRepoManager struct {
	users         *fakeUsersRepo
	cattle        *fakeCattleRepo
	events        *fakeEventsRepo
	shipments     *fakeShipmentsRepo
	registrations *fakeRegistrationsRepo
	emailLogs     *fakeEmailLogsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:         newFakeUsersRepo(),
		cattle:        newFakeCattleRepo(),
		events:        &fakeEventsRepo{},
		shipments:     newFakeShipmentsRepo(),
		registrations: newFakeRegistrationsRepo(),
		emailLogs:     &fakeEmailLogsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) Cattle(dbx.DBTX) cattle.Repository               { return m.cattle }
func (m *fakeRepoManager) Events(dbx.DBTX) events.Repository               { return m.events }
func (m *fakeRepoManager) Shipments(dbx.DBTX) shipments.Repository         { return m.shipments }
func (m *fakeRepoManager) Registrations(dbx.DBTX) registrations.Repository { return m.registrations }
func (m *fakeRepoManager) EmailLogs(dbx.DBTX) emaillogs.Repository         { return m.emailLogs }

func ptr[T any](v T) *T { return &v }
