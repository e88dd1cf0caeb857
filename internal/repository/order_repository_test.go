package repository

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
)

func TestCreateTxClaimsGeneratedID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepo(db)

	now := time.Now().UTC().Truncate(time.Second)
	order := &model.RentalOrder{
		Login:           "alice",
		NoOfGames:       2,
		TotalPriceCents: 4449,
		OrderTimestamp:  now,
		DueDate:         now.AddDate(0, 0, 30),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO rental_orders (login, no_of_games, total_price, order_timestamp, due_date) VALUES (?, ?, ?, ?, ?)")).
		WithArgs("alice", uint32(2), "44.49", now, now.AddDate(0, 0, 30)).
		WillReturnResult(sqlmock.NewResult(17, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.CreateTx(context.Background(), tx, order))
	assert.Equal(t, uint64(17), order.RentalOrderID)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateItemsBulkTxMultiValues(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepo(db)

	items := []model.OrderItem{
		{GameID: "g1", RentalOrderID: 17, UnitsOrdered: 2},
		{GameID: "g2", RentalOrderID: 17, UnitsOrdered: 1},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO games_in_order (game_id, rental_order_id, units_ordered) VALUES (?, ?, ?),(?, ?, ?)")).
		WithArgs("g1", uint64(17), uint32(2), "g2", uint64(17), uint32(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.CreateItemsBulkTx(context.Background(), tx, items))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateItemsBulkTxEmptySliceWritesNothing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.CreateItemsBulkTx(context.Background(), tx, nil))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDetailForUserScopesByOwner(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepo(db)

	now := time.Now().UTC().Truncate(time.Second)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.rental_order_id = ? AND r.login = ?")).
		WithArgs(uint64(17), "alice").
		WillReturnRows(sqlmock.NewRows([]string{"rental_order_id", "login", "total_price", "order_timestamp", "due_date", "tracking_id"}).
			AddRow(17, "alice", "44.49", now, now.AddDate(0, 0, 30), 5))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE g.rental_order_id = ?")).
		WithArgs(uint64(17)).
		WillReturnRows(sqlmock.NewRows([]string{"game_id", "game_name", "units_ordered"}).
			AddRow("g2", "Hades", 1).
			AddRow("g1", "Outer Wilds", 2))

	det, err := repo.GetDetailForUser(context.Background(), 17, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(17), det.RentalOrderID)
	assert.Equal(t, "alice", det.Login)
	assert.Equal(t, int64(4449), det.TotalPriceCents)
	assert.Equal(t, uint64(5), det.TrackingID)
	require.Len(t, det.Lines, 2)
	assert.Equal(t, "Hades", det.Lines[0].GameName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDetailForUserForeignOrder(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.rental_order_id = ? AND r.login = ?")).
		WithArgs(uint64(17), "mallory").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDetailForUser(context.Background(), 17, "mallory")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecentByLoginAppliesLimit(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepo(db)

	now := time.Now().UTC().Truncate(time.Second)
	mock.ExpectQuery("ORDER BY order_timestamp DESC\\s+LIMIT \\?").
		WithArgs("alice", 5).
		WillReturnRows(sqlmock.NewRows([]string{"rental_order_id", "total_price", "order_timestamp", "due_date"}).
			AddRow(18, "9.99", now, now.AddDate(0, 0, 30)).
			AddRow(17, "44.49", now.Add(-time.Hour), now.AddDate(0, 0, 30)))

	summaries, err := repo.ListRecentByLogin(context.Background(), "alice", 5)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, uint64(18), summaries[0].RentalOrderID)
	assert.Equal(t, int64(999), summaries[0].TotalPriceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}
