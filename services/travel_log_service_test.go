package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/eoinharts/travel-client-app/dto"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTravelLogReturnsTags(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewTravelLogService(db)

	postDate := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "travel_logs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "travel_log_tags"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "travel_log_tags"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "travel_logs" WHERE`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "description", "start_date", "end_date", "post_date"}).
			AddRow(1, 7, "Kyoto", "", "", "", postDate))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "tag" FROM "travel_log_tags"`)).
		WillReturnRows(sqlmock.NewRows([]string{"tag"}).AddRow("food").AddRow("temples"))
	mock.ExpectCommit()

	travelLog, err := service.CreateTravelLog(7, dto.TravelLogDTO{
		Title: "Kyoto",
		Tags:  []string{"food", "temples"},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), travelLog.ID)
	assert.Equal(t, "Kyoto", travelLog.Title)
	assert.False(t, travelLog.PostDate.IsZero())
	// Набор тегов совпадает с запросом, порядок не важен
	assert.ElementsMatch(t, []string{"food", "temples"}, travelLog.Tags)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTravelLogRollsBackOnTagFailure(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewTravelLogService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "travel_logs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "travel_log_tags"`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	travelLog, err := service.CreateTravelLog(7, dto.TravelLogDTO{
		Title: "Kyoto",
		Tags:  []string{"food", "temples"},
	})
	assert.Error(t, err)
	assert.Nil(t, travelLog)

	// Откатывается вся транзакция: ни записи, ни тегов
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTravelLogReplacesTags(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewTravelLogService(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "travel_logs" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Старые теги удаляются целиком перед вставкой новых
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "travel_log_tags" WHERE`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "travel_log_tags"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	err := service.UpdateTravelLog(7, 1, dto.TravelLogDTO{
		Title: "Kyoto",
		Tags:  []string{"food"},
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTravelLogNotFoundOrNotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewTravelLogService(db)

	// Чужая и несуществующая записи неотличимы: ноль затронутых строк
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "travel_logs" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := service.UpdateTravelLog(7, 99, dto.TravelLogDTO{Title: "Kyoto"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTravelLog(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewTravelLogService(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "travel_logs" WHERE`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, service.DeleteTravelLog(7, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTravelLogNotFoundOrNotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewTravelLogService(db)

	// Запрос проходит без ошибки, поэтому транзакция коммитится,
	// а ноль строк сервис превращает в ErrNotFound уже после
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "travel_logs" WHERE`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := service.DeleteTravelLog(7, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTravelLogsByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewTravelLogService(db)

	postDate := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "travel_logs" WHERE user_id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "description", "start_date", "end_date", "post_date"}).
			AddRow(1, 7, "Kyoto", "", "2024-04-01", "2024-04-07", postDate).
			AddRow(2, 7, "Oslo", "fjords", "", "", postDate))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "tag" FROM "travel_log_tags"`)).
		WillReturnRows(sqlmock.NewRows([]string{"tag"}).AddRow("food"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "tag" FROM "travel_log_tags"`)).
		WillReturnRows(sqlmock.NewRows([]string{"tag"}))

	travelLogs, err := service.GetTravelLogsByUserID(7)
	require.NoError(t, err)
	require.Len(t, travelLogs, 2)
	assert.Equal(t, []string{"food"}, travelLogs[0].Tags)
	assert.Empty(t, travelLogs[1].Tags)

	assert.NoError(t, mock.ExpectationsWereMet())
}
