package contact_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-manager/model"
	contactrepo "github.com/muhammadheryan/contact-manager/repository/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (contactrepo.ContactRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return contactrepo.NewContactRepository(sqlx.NewDb(db, "mysql")), mock
}

func contactColumns() []string {
	return []string{"id", "name", "email", "phone", "message", "created_at", "updated_at"}
}

func TestList_OrdersNewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, name, email, phone, message, created_at, updated_at FROM contacts ORDER BY created_at DESC, id DESC").
		WillReturnRows(sqlmock.NewRows(contactColumns()).
			AddRow(2, "Newer", "b@x.com", "0987654321", "", newer, newer).
			AddRow(1, "Older", "a@x.com", "1234567890", "", older, older))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, uint64(1), got[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_PairLookupExcludesID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, name, email, phone, message, created_at, updated_at FROM contacts WHERE true AND email = \? AND phone = \? AND id != \?`).
		WithArgs("a@x.com", "1234567890", uint64(5)).
		WillReturnRows(sqlmock.NewRows(contactColumns()))

	got, err := repo.Get(context.Background(), &model.ContactFilter{
		Email:     "a@x.com",
		Phone:     "1234567890",
		ExcludeID: 5,
	})
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_MapsDuplicateKeyError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO contacts").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	now := time.Now().UTC()
	_, err := repo.Create(context.Background(), &model.ContactEntity{
		Name:      "Jo",
		Email:     "a@x.com",
		Phone:     "1234567890",
		CreatedAt: now,
		UpdatedAt: now,
	})
	assert.ErrorIs(t, err, contactrepo.ErrDuplicateEntry)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_AssignsInsertID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO contacts").
		WithArgs("Jo", "a@x.com", "1234567890", "hi", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	now := time.Now().UTC()
	got, err := repo.Create(context.Background(), &model.ContactEntity{
		Name:      "Jo",
		Email:     "a@x.com",
		Phone:     "1234567890",
		Message:   "hi",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ReportsMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM contacts WHERE id = \?`).
		WithArgs(uint64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
