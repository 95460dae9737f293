package timerecord

import (
	"context"
	"fmt"
	"time"

	"github.com/timetrkkr/timetrkkr/constant"
	"github.com/timetrkkr/timetrkkr/model"
	timerecordrepo "github.com/timetrkkr/timetrkkr/repository/timerecord"
	txrepo "github.com/timetrkkr/timetrkkr/repository/tx"
	userrepo "github.com/timetrkkr/timetrkkr/repository/user"
	"github.com/timetrkkr/timetrkkr/thirdparty/rabbitmq"
	"github.com/timetrkkr/timetrkkr/utils/errors"
	"github.com/timetrkkr/timetrkkr/utils/logger"
	validatorx "github.com/timetrkkr/timetrkkr/utils/validator"
	"go.uber.org/zap"
)

type TimeRecordApp interface {
	CreateLogin(ctx context.Context, userID uint64, req *model.CreateLoginRequest) (*model.TimeRecordEntity, error)
	FetchByIDs(ctx context.Context, userID uint64, ids []uint64) ([]model.TimeRecordEntity, error)
	LogOut(ctx context.Context, userID uint64, req *model.LogOutRequest) (*model.TimeRecordEntity, error)
	DeleteByIDs(ctx context.Context, userID uint64, ids []uint64) error
	MonthlyUnderTime(ctx context.Context, userID uint64, criteria *model.SearchCriteria) ([]model.TimeRecordEntity, error)
	ComputeRenderedTime(ctx context.Context, userID uint64, dateFrom, dateUntil time.Time) (*model.ComputedTimeRecords, error)
	PaginatedDailyRecords(ctx context.Context, filter *model.TimeRecordFilter) ([]model.TimeRecordEntity, error)
}

type timeRecordAppImpl struct {
	txRepo         txrepo.TxRepository
	timeRecordRepo timerecordrepo.TimeRecordRepository
	userRepo       userrepo.UserRepository
	publisher      *rabbitmq.Publisher
}

func NewTimeRecordApp(txRepo txrepo.TxRepository, timeRecordRepo timerecordrepo.TimeRecordRepository, userRepo userrepo.UserRepository, publisher *rabbitmq.Publisher) TimeRecordApp {
	return &timeRecordAppImpl{
		txRepo:         txRepo,
		timeRecordRepo: timeRecordRepo,
		userRepo:       userRepo,
		publisher:      publisher,
	}
}

func (s *timeRecordAppImpl) CreateLogin(ctx context.Context, userID uint64, req *model.CreateLoginRequest) (*model.TimeRecordEntity, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dateLogin, err := validatorx.ValidateDateString(req.DateLogin)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if dateLogin.Before(today) {
		return nil, errors.SetCustomErrorMessage(constant.ErrValidation, "Login date should be current date")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateLogin] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	alreadyLoggedIn, err := s.timeRecordRepo.HasLoginOnDateTx(ctx, tx, user.ID, dateLogin)
	if err != nil {
		logger.Error("[CreateLogin] check existing login", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if alreadyLoggedIn {
		return nil, errors.SetCustomErrorMessage(constant.ErrConflict, "User have already login!")
	}

	// TimeIn sits on the record's calendar date at minute precision, the
	// same composition LogOut uses, so the two stay comparable even when
	// the login is dated ahead of today.
	record := &model.TimeRecordEntity{
		UserID:    user.ID,
		DateLogin: dateLogin,
		TimeIn: time.Date(dateLogin.Year(), dateLogin.Month(), dateLogin.Day(),
			now.Hour(), now.Minute(), 0, 0, time.Local),
	}

	recordID, err := s.timeRecordRepo.InsertTx(ctx, tx, record)
	if err != nil {
		logger.Error("[CreateLogin] insert record", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	record.ID = recordID

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateLogin] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return record, nil
}

func (s *timeRecordAppImpl) FetchByIDs(ctx context.Context, userID uint64, ids []uint64) ([]model.TimeRecordEntity, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.timeRecordRepo.GetByIDs(ctx, user.ID, ids)
	if err != nil {
		logger.Error("[FetchByIDs] get records", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if missing := missingIDs(ids, records); len(missing) > 0 {
		return nil, errors.SetCustomErrorMessage(constant.ErrValidation,
			fmt.Sprintf("The user does not have particular time record Ids: %v", missing))
	}

	return records, nil
}

func (s *timeRecordAppImpl) LogOut(ctx context.Context, userID uint64, req *model.LogOutRequest) (*model.TimeRecordEntity, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dateLogin, err := validatorx.ValidateDateString(req.DateLogin)
	if err != nil {
		return nil, err
	}

	clock, err := parseClock(req.TimeOut)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[LogOut] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	record, err := s.timeRecordRepo.GetByUserAndDateTx(ctx, tx, user.ID, dateLogin)
	if err != nil {
		logger.Error("[LogOut] get record", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if record == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound,
			fmt.Sprintf("TimeLog not found given %s", req.DateLogin))
	}

	// Seconds are dropped: logout is stored at minute precision.
	timeOut := time.Date(dateLogin.Year(), dateLogin.Month(), dateLogin.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local)

	if timeOut.Before(record.TimeIn) {
		return nil, errors.SetCustomErrorMessage(constant.ErrConflict, "Invalid logout time")
	}

	if err := s.timeRecordRepo.UpdateTimeOutTx(ctx, tx, record.ID, timeOut); err != nil {
		logger.Error("[LogOut] update record", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[LogOut] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	record.TimeOut = &timeOut

	if s.publisher != nil {
		msg := rabbitmq.TimeRecordClosedMessage{
			RecordID:      record.ID,
			UserID:        user.ID,
			DateLogin:     record.DateLogin,
			MinutesWorked: elapsedMinutes(record),
		}
		if err := s.publisher.PublishTimeRecordClosed(msg); err != nil {
			logger.Error("[LogOut] publish record closed", zap.String("error", err.Error()))
		}
	}

	return record, nil
}

func (s *timeRecordAppImpl) DeleteByIDs(ctx context.Context, userID uint64, ids []uint64) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteByIDs] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	records, err := s.timeRecordRepo.GetByIDsTx(ctx, tx, user.ID, ids)
	if err != nil {
		logger.Error("[DeleteByIDs] get records", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// All-or-nothing: nothing is deleted when any id is not owned.
	if missing := missingIDs(ids, records); len(missing) > 0 {
		return errors.SetCustomErrorMessage(constant.ErrValidation,
			fmt.Sprintf("The user does not have particular time record Ids: %v", missing))
	}

	if err := s.timeRecordRepo.DeleteByIDsTx(ctx, tx, ids); err != nil {
		logger.Error("[DeleteByIDs] delete records", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteByIDs] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *timeRecordAppImpl) MonthlyUnderTime(ctx context.Context, userID uint64, criteria *model.SearchCriteria) ([]model.TimeRecordEntity, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := validatorx.ValidateMonth(criteria.MonthNumber); err != nil {
		return nil, err
	}
	if err := validatorx.ValidateYear(criteria.Year); err != nil {
		return nil, err
	}

	records, err := s.timeRecordRepo.GetByUserMonth(ctx, user.ID, criteria.MonthNumber, criteria.Year)
	if err != nil {
		logger.Error("[MonthlyUnderTime] get records", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	underTime := make([]model.TimeRecordEntity, 0, len(records))
	for _, rec := range records {
		if elapsedMinutes(&rec) < constant.FullDayMinutes {
			underTime = append(underTime, rec)
		}
	}
	return underTime, nil
}

func (s *timeRecordAppImpl) ComputeRenderedTime(ctx context.Context, userID uint64, dateFrom, dateUntil time.Time) (*model.ComputedTimeRecords, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := validatorx.ValidateDateRange(dateFrom, dateUntil); err != nil {
		return nil, err
	}

	records, err := s.timeRecordRepo.GetByUserDateRange(ctx, user.ID, dateFrom, dateUntil)
	if err != nil {
		logger.Error("[ComputeRenderedTime] get records", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var totalMinutes, excessMinutes int64
	for _, rec := range records {
		span := elapsedMinutes(&rec)
		totalMinutes += span
		if span > constant.FullDayMinutes {
			excessMinutes += span - constant.FullDayMinutes
		}
	}
	if totalMinutes < 0 {
		totalMinutes = 0
	}

	return &model.ComputedTimeRecords{
		TotalTime:       ceilHours(float64(totalMinutes) / 60.0),
		TotalExcessTime: ceilHours(float64(excessMinutes) / 60.0),
		User:            user,
	}, nil
}

func (s *timeRecordAppImpl) PaginatedDailyRecords(ctx context.Context, filter *model.TimeRecordFilter) ([]model.TimeRecordEntity, error) {
	if err := validatorx.ValidatePagination(filter.Size, filter.Page); err != nil {
		return nil, err
	}

	records, err := s.timeRecordRepo.GetAllByDatePaginated(ctx, filter.DateFrom, filter.Size, filter.Page)
	if err != nil {
		logger.Error("[PaginatedDailyRecords] get records", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}

func (s *timeRecordAppImpl) getUser(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("[TimeRecord] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound,
			fmt.Sprintf("User with id: %d does not exist", userID))
	}
	return user, nil
}

// missingIDs returns the requested ids absent from records, in request order.
func missingIDs(ids []uint64, records []model.TimeRecordEntity) []uint64 {
	if len(records) == len(ids) {
		return nil
	}
	owned := make(map[uint64]struct{}, len(records))
	for _, rec := range records {
		owned[rec.ID] = struct{}{}
	}
	missing := make([]uint64, 0, len(ids)-len(records))
	for _, id := range ids {
		if _, ok := owned[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
