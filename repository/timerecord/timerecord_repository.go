package timerecord

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/timetrkkr/timetrkkr/constant"
	"github.com/timetrkkr/timetrkkr/model"
)

type SQL struct {
	conn *sqlx.DB
}

// TimeRecordRepository is the durable record store keyed by user and date.
// The Tx variants take row locks so the engine can run its read-check-write
// sequences inside one transaction.
type TimeRecordRepository interface {
	GetByUserAndDate(ctx context.Context, userID uint64, date time.Time) (*model.TimeRecordEntity, error)
	GetByUserAndDateTx(ctx context.Context, tx *sqlx.Tx, userID uint64, date time.Time) (*model.TimeRecordEntity, error)
	HasLoginOnDateTx(ctx context.Context, tx *sqlx.Tx, userID uint64, date time.Time) (bool, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, record *model.TimeRecordEntity) (uint64, error)
	UpdateTimeOutTx(ctx context.Context, tx *sqlx.Tx, id uint64, timeOut time.Time) error
	GetByID(ctx context.Context, id uint64) (*model.TimeRecordEntity, error)
	GetByIDs(ctx context.Context, userID uint64, ids []uint64) ([]model.TimeRecordEntity, error)
	GetByIDsTx(ctx context.Context, tx *sqlx.Tx, userID uint64, ids []uint64) ([]model.TimeRecordEntity, error)
	DeleteByIDsTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) error
	GetByUserMonth(ctx context.Context, userID uint64, month, year int) ([]model.TimeRecordEntity, error)
	GetByUserDateRange(ctx context.Context, userID uint64, from, until time.Time) ([]model.TimeRecordEntity, error)
	GetByUserDateRangePaginated(ctx context.Context, userID uint64, from, until time.Time, size, page int) ([]model.TimeRecordEntity, error)
	GetAllByDatePaginated(ctx context.Context, date time.Time, size, page int) ([]model.TimeRecordEntity, error)
}

func NewTimeRecordRepository(conn *sqlx.DB) TimeRecordRepository {
	return &SQL{conn: conn}
}

const (
	timeRecordColumns = `id, user_id, date_login, time_in, time_out`

	getByUserAndDateQuery = `SELECT ` + timeRecordColumns + ` FROM time_records WHERE user_id = ? AND date_login = ?`
	hasLoginOnDateQuery   = `SELECT id FROM time_records WHERE user_id = ? AND date_login = ? FOR UPDATE`
	insertRecordQuery     = `INSERT INTO time_records (user_id, date_login, time_in, time_out) VALUES (?, ?, ?, NULL)`
	updateTimeOutQuery    = `UPDATE time_records SET time_out = ? WHERE id = ?`
	getByIDQuery          = `SELECT ` + timeRecordColumns + ` FROM time_records WHERE id = ?`
	getByIDsQuery         = `SELECT ` + timeRecordColumns + ` FROM time_records WHERE user_id = ? AND id IN (?) ORDER BY date_login, id`
	deleteByIDsQuery      = `DELETE FROM time_records WHERE id IN (?)`
	getByUserMonthQuery   = `SELECT ` + timeRecordColumns + ` FROM time_records WHERE user_id = ? AND MONTH(date_login) = ? AND YEAR(date_login) = ? ORDER BY date_login, id`
	getByUserRangeQuery   = `SELECT ` + timeRecordColumns + ` FROM time_records WHERE user_id = ? AND date_login >= ? AND date_login <= ? ORDER BY date_login, id`
	getByUserRangePaginatedQuery = getByUserRangeQuery + ` LIMIT ? OFFSET ?`
	getAllByDatePaginatedQuery   = `SELECT ` + timeRecordColumns + ` FROM time_records WHERE date_login = ? ORDER BY date_login, id LIMIT ? OFFSET ?`
)

func day(date time.Time) string {
	return date.Format(constant.DateLayout)
}

func (s *SQL) GetByUserAndDate(ctx context.Context, userID uint64, date time.Time) (*model.TimeRecordEntity, error) {
	return scanOne(s.conn.QueryRowxContext(ctx, getByUserAndDateQuery, userID, day(date)))
}

func (s *SQL) GetByUserAndDateTx(ctx context.Context, tx *sqlx.Tx, userID uint64, date time.Time) (*model.TimeRecordEntity, error) {
	return scanOne(tx.QueryRowxContext(ctx, getByUserAndDateQuery+" FOR UPDATE", userID, day(date)))
}

func (s *SQL) HasLoginOnDateTx(ctx context.Context, tx *sqlx.Tx, userID uint64, date time.Time) (bool, error) {
	var id uint64
	err := tx.GetContext(ctx, &id, hasLoginOnDateQuery, userID, day(date))
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, record *model.TimeRecordEntity) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertRecordQuery, record.UserID, day(record.DateLogin), record.TimeIn)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) UpdateTimeOutTx(ctx context.Context, tx *sqlx.Tx, id uint64, timeOut time.Time) error {
	_, err := tx.ExecContext(ctx, updateTimeOutQuery, timeOut, id)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.TimeRecordEntity, error) {
	return scanOne(s.conn.QueryRowxContext(ctx, getByIDQuery, id))
}

func (s *SQL) GetByIDs(ctx context.Context, userID uint64, ids []uint64) ([]model.TimeRecordEntity, error) {
	query, args, err := sqlx.In(getByIDsQuery, userID, ids)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, s.conn.QueryxContext, query, args...)
}

func (s *SQL) GetByIDsTx(ctx context.Context, tx *sqlx.Tx, userID uint64, ids []uint64) ([]model.TimeRecordEntity, error) {
	query, args, err := sqlx.In(getByIDsQuery+" FOR UPDATE", userID, ids)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, tx.QueryxContext, query, args...)
}

func (s *SQL) DeleteByIDsTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) error {
	query, args, err := sqlx.In(deleteByIDsQuery, ids)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) GetByUserMonth(ctx context.Context, userID uint64, month, year int) ([]model.TimeRecordEntity, error) {
	return s.list(ctx, s.conn.QueryxContext, getByUserMonthQuery, userID, month, year)
}

func (s *SQL) GetByUserDateRange(ctx context.Context, userID uint64, from, until time.Time) ([]model.TimeRecordEntity, error) {
	return s.list(ctx, s.conn.QueryxContext, getByUserRangeQuery, userID, day(from), day(until))
}

func (s *SQL) GetByUserDateRangePaginated(ctx context.Context, userID uint64, from, until time.Time, size, page int) ([]model.TimeRecordEntity, error) {
	return s.list(ctx, s.conn.QueryxContext, getByUserRangePaginatedQuery, userID, day(from), day(until), size, page*size)
}

func (s *SQL) GetAllByDatePaginated(ctx context.Context, date time.Time, size, page int) ([]model.TimeRecordEntity, error) {
	return s.list(ctx, s.conn.QueryxContext, getAllByDatePaginatedQuery, day(date), size, page*size)
}

type queryxFunc func(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)

func (s *SQL) list(ctx context.Context, queryx queryxFunc, query string, args ...interface{}) ([]model.TimeRecordEntity, error) {
	rows, err := queryx(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.TimeRecordEntity, 0)
	for rows.Next() {
		var rec model.TimeRecordEntity
		if err := rows.StructScan(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanOne(row *sqlx.Row) (*model.TimeRecordEntity, error) {
	var entity model.TimeRecordEntity
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
