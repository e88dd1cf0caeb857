package service

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/repository"
)

func newVisibilityService(db *sql.DB) *VisibilityService {
	return NewVisibilityService(
		repository.NewUserRepo(db),
		repository.NewOrderRepo(db),
		repository.NewTrackingRepo(db))
}

func expectOwnerOrderMiss(mock sqlmock.Sqlmock, orderID uint64, login string) {
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.rental_order_id = ? AND r.login = ?")).
		WithArgs(orderID, login).
		WillReturnError(sql.ErrNoRows)
}

func orderDetailRows(orderID uint64, owner string) *sqlmock.Rows {
	now := time.Now().UTC().Truncate(time.Second)
	return sqlmock.NewRows([]string{"rental_order_id", "login", "total_price", "order_timestamp", "due_date", "tracking_id"}).
		AddRow(orderID, owner, "25.50", now, now.AddDate(0, 0, 30), 5)
}

func emptyLineRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"game_id", "game_name", "units_ordered"})
}

func TestOwnerSeesOwnOrder(t *testing.T) {
	db, mock := newMock(t)
	svc := newVisibilityService(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.rental_order_id = ? AND r.login = ?")).
		WithArgs(uint64(17), "alice").
		WillReturnRows(orderDetailRows(17, "alice"))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE g.rental_order_id = ?")).
		WithArgs(uint64(17)).
		WillReturnRows(emptyLineRows())

	det, err := svc.VisibleOrder(context.Background(), "alice", 17)
	require.NoError(t, err)
	assert.Equal(t, "alice", det.Login)
	// owner hit resolves without ever consulting the role
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForeignCustomerGetsNotFoundNotForbidden(t *testing.T) {
	db, mock := newMock(t)
	svc := newVisibilityService(db)

	expectOwnerOrderMiss(mock, 17, "mallory")
	expectRole(mock, "mallory", model.RoleCustomer)

	_, err := svc.VisibleOrder(context.Background(), "mallory", 17)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeSeesForeignOrder(t *testing.T) {
	db, mock := newMock(t)
	svc := newVisibilityService(db)

	expectOwnerOrderMiss(mock, 17, "bob")
	expectRole(mock, "bob", model.RoleEmployee)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.rental_order_id = ?")).
		WithArgs(uint64(17)).
		WillReturnRows(orderDetailRows(17, "alice"))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE g.rental_order_id = ?")).
		WithArgs(uint64(17)).
		WillReturnRows(emptyLineRows())

	det, err := svc.VisibleOrder(context.Background(), "bob", 17)
	require.NoError(t, err)
	assert.Equal(t, "alice", det.Login)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffLookupOfTrulyMissingOrder(t *testing.T) {
	db, mock := newMock(t)
	svc := newVisibilityService(db)

	expectOwnerOrderMiss(mock, 404, "mia")
	expectRole(mock, "mia", model.RoleManager)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.rental_order_id = ?")).
		WithArgs(uint64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.VisibleOrder(context.Background(), "mia", 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnknownCallerGetsNotFound(t *testing.T) {
	db, mock := newMock(t)
	svc := newVisibilityService(db)

	expectOwnerOrderMiss(mock, 17, "ghost")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT role FROM users WHERE login=?")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.VisibleOrder(context.Background(), "ghost", 17)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForeignCustomerCannotReadTracking(t *testing.T) {
	db, mock := newMock(t)
	svc := newVisibilityService(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.tracking_id = ? AND r.login = ?")).
		WithArgs(uint64(5), "mallory").
		WillReturnError(sql.ErrNoRows)
	expectRole(mock, "mallory", model.RoleCustomer)

	_, err := svc.VisibleTracking(context.Background(), "mallory", 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerSeesForeignTracking(t *testing.T) {
	db, mock := newMock(t)
	svc := newVisibilityService(db)

	now := time.Now().UTC().Truncate(time.Second)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.tracking_id = ? AND r.login = ?")).
		WithArgs(uint64(5), "mia").
		WillReturnError(sql.ErrNoRows)
	expectRole(mock, "mia", model.RoleManager)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.tracking_id = ?")).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"tracking_id", "rental_order_id", "status", "current_location", "courier_name", "last_update_date", "additional_comments",
		}).AddRow(5, 17, "Order Placed", "N/A", "N/A", now, ""))

	rec, err := svc.VisibleTracking(context.Background(), "mia", 5)
	require.NoError(t, err)
	assert.Equal(t, "Order Placed", rec.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryListingsStayOwnerScoped(t *testing.T) {
	db, mock := newMock(t)
	svc := newVisibilityService(db)

	now := time.Now().UTC().Truncate(time.Second)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE login = ?")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"rental_order_id", "total_price", "order_timestamp", "due_date"}).
			AddRow(17, "25.50", now, now.AddDate(0, 0, 30)))
	mock.ExpectQuery("LIMIT \\?").
		WithArgs("alice", 5).
		WillReturnRows(sqlmock.NewRows([]string{"rental_order_id", "total_price", "order_timestamp", "due_date"}))

	all, err := svc.AllOrders(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	recent, err := svc.RecentOrders(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, recent)
	assert.NoError(t, mock.ExpectationsWereMet())
}
