package cattle

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now     = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	nowText = "2025-04-01T08:00:00Z"
	cols    = []string{"cattle_id", "owner_user_id", "identification_number", "ear_tag_number", "name", "gender",
		"growth_stage", "birthday", "breed", "weight", "status", "notes", "created_at", "updated_at"}
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLRepository(db), mock
}

func str(s string) *string { return &s }

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+cattle\s*\(owner_user_id,.*RETURNING\s+cattle_id$`).
		WithArgs(int64(1), int64(1234567890), nil, "Hanako", "FEMALE", nil, "2022-05-01", nil, nil, "HEALTHY", nil, nowText, nowText).
		WillReturnRows(sqlmock.NewRows([]string{"cattle_id"}).AddRow(int64(10)))

	c := &models.Cattle{OwnerUserID: 1, IdentificationNumber: 1234567890, Name: str("Hanako"), Gender: str("FEMALE"),
		Birthday: str("2022-05-01"), Status: models.StatusHealthy, CreatedAt: now, UpdatedAt: now}

	got, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+cattle_id,.*FROM\s+cattle\s+WHERE\s+cattle_id\s*=\s*\?\s+AND\s+owner_user_id\s*=\s*\?$`
	mock.ExpectQuery(q).
		WithArgs(int64(10), int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			int64(10), int64(1), int64(1234567890), int64(55), "Hanako", "FEMALE",
			"FIRST_CALVED", "2022-05-01", "Japanese Black", 410.5, "PREGNANT", nil, nowText, nowText))
	mock.ExpectQuery(q).
		WithArgs(int64(11), int64(1)).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPregnant, got.Status)
	require.NotNil(t, got.EarTagNumber)
	assert.Equal(t, int64(55), *got.EarTagNumber)
	require.NotNil(t, got.Weight)
	assert.InDelta(t, 410.5, *got.Weight, 0.001)
	assert.Nil(t, got.Notes)
	assert.True(t, got.CreatedAt.Equal(now))

	_, err = repo.Get(context.Background(), 1, 11)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList_FiltersAndPaging(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	where := `WHERE\s+owner_user_id\s*=\s*\?\s+AND\s+\(LOWER.*\)\s+AND\s+status\s*=\s*\?\s+AND\s+gender\s*=\s*\?`

	mock.ExpectQuery(`(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+cattle\s+` + where + `$`).
		WithArgs(int64(1), "%hana%", "%hana%", "%hana%", "PREGNANT", "FEMALE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`(?s)^SELECT\s+cattle_id,.*FROM\s+cattle\s+` + where + `\s+ORDER\s+BY\s+cattle_id\s+DESC\s+LIMIT\s+\?\s+OFFSET\s+\?$`).
		WithArgs(int64(1), "%hana%", "%hana%", "%hana%", "PREGNANT", "FEMALE", 2, 0).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(3), int64(1), int64(3), nil, "Hanako", "FEMALE", nil, nil, nil, nil, "PREGNANT", nil, nowText, nowText).
			AddRow(int64(2), int64(1), int64(2), nil, "Hanaka", "FEMALE", nil, nil, nil, nil, "PREGNANT", nil, nowText, nowText))

	got, total, err := repo.List(context.Background(), models.CattleFilter{
		OwnerUserID: 1, Search: " Hana ", Status: "PREGNANT", Gender: "FEMALE", Limit: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT\s+COUNT`).WillReturnError(errors.New("db down"))

	_, _, err := repo.List(context.Background(), models.CattleFilter{OwnerUserID: 1})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestUpdate_OnlyProvidedColumns(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	weight := 420.0
	mock.ExpectExec(`^UPDATE\s+cattle\s+SET\s+name\s*=\s*\?,\s*weight\s*=\s*\?,\s*updated_at\s*=\s*\?\s+WHERE\s+cattle_id\s*=\s*\?\s+AND\s+owner_user_id\s*=\s*\?$`).
		WithArgs("Momo", 420.0, nowText, int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 1, 10, models.CattlePatch{Name: str("Momo"), Weight: &weight}, now)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotOwned(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^UPDATE\s+cattle\s+SET\s+status\s*=\s*\?,\s*updated_at\s*=\s*\?\s+WHERE`).
		WithArgs("SHIPPED", nowText, int64(10), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 2, 10, models.StatusShipped, now)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE\s+FROM\s+cattle\s+WHERE\s+cattle_id\s*=\s*\?\s+AND\s+owner_user_id\s*=\s*\?$`).
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1, 10))
}

func TestHistory(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+cattle_status_history.*RETURNING\s+history_id$`).
		WithArgs(int64(10), "HEALTHY", "PREGNANT", "confirmed by vet", int64(1), nowText).
		WillReturnRows(sqlmock.NewRows([]string{"history_id"}).AddRow(int64(5)))

	h := &models.StatusHistory{CattleID: 10, OldStatus: str("HEALTHY"), NewStatus: models.StatusPregnant,
		Reason: str("confirmed by vet"), ChangedBy: 1, ChangedAt: now}
	require.NoError(t, repo.AddHistory(context.Background(), h))
	assert.Equal(t, int64(5), h.ID)

	mock.ExpectQuery(`(?s)^SELECT\s+history_id,.*FROM\s+cattle_status_history\s+WHERE\s+cattle_id\s*=\s*\?\s+ORDER\s+BY`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"history_id", "cattle_id", "old_status", "new_status", "reason", "changed_by", "changed_at"}).
			AddRow(int64(5), int64(10), "HEALTHY", "PREGNANT", "confirmed by vet", int64(1), nowText).
			AddRow(int64(4), int64(10), nil, "HEALTHY", nil, int64(1), "2025-03-01T00:00:00Z"))

	got, err := repo.History(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.StatusPregnant, got[0].NewStatus)
	assert.Nil(t, got[1].OldStatus)
}
