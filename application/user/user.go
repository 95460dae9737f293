package user

import (
	"context"
	"fmt"
	"time"

	"github.com/timetrkkr/timetrkkr/constant"
	"github.com/timetrkkr/timetrkkr/model"
	timerecordrepo "github.com/timetrkkr/timetrkkr/repository/timerecord"
	userrepo "github.com/timetrkkr/timetrkkr/repository/user"
	"github.com/timetrkkr/timetrkkr/utils/errors"
	"github.com/timetrkkr/timetrkkr/utils/logger"
	validatorx "github.com/timetrkkr/timetrkkr/utils/validator"
	"go.uber.org/zap"
)

type UserApp interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.UserEntity, error)
	GetUserByID(ctx context.Context, userID uint64) (*model.UserEntity, error)
	UpdateUser(ctx context.Context, userID uint64, req *model.UpdateUserRequest) (*model.UserEntity, error)
	DeleteUser(ctx context.Context, userID uint64) error
	RecordByExactDay(ctx context.Context, userID uint64, dateInput string) (*model.TimeRecordEntity, error)
	RecordsByMonth(ctx context.Context, userID uint64, criteria *model.SearchCriteria) ([]model.TimeRecordEntity, error)
	RecordsByDateRangePaginated(ctx context.Context, userID uint64, filter *model.TimeRecordFilter) ([]model.TimeRecordEntity, error)
}

type userAppImpl struct {
	userRepo       userrepo.UserRepository
	timeRecordRepo timerecordrepo.TimeRecordRepository
}

func NewUserApp(userRepo userrepo.UserRepository, timeRecordRepo timerecordrepo.TimeRecordRepository) UserApp {
	return &userAppImpl{
		userRepo:       userRepo,
		timeRecordRepo: timeRecordRepo,
	}
}

func (s *userAppImpl) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.UserEntity, error) {
	if err := validatorx.ValidateUserFields(req.FirstName, req.LastName, req.Email); err != nil {
		return nil, err
	}

	nameTaken, err := s.userRepo.ExistsByName(ctx, req.FirstName, req.LastName)
	if err != nil {
		logger.Error("[CreateUser] err userRepo.ExistsByName", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if nameTaken {
		return nil, errors.SetCustomErrorMessage(constant.ErrConflict,
			fmt.Sprintf("User with first name: %s and lastname: %s already exist", req.FirstName, req.LastName))
	}

	emailTaken, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("[CreateUser] err userRepo.ExistsByEmail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if emailTaken {
		return nil, errors.SetCustomErrorMessage(constant.ErrConflict,
			fmt.Sprintf("Email %s already exist", req.Email))
	}

	user, err := s.userRepo.Create(ctx, &model.UserEntity{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsActive:  true,
		DateAdded: time.Now(),
	})
	if err != nil {
		logger.Error("[CreateUser] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return user, nil
}

func (s *userAppImpl) GetUserByID(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("[GetUserByID] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound,
			fmt.Sprintf("User with id: %d does not exist", userID))
	}
	return user, nil
}

func (s *userAppImpl) UpdateUser(ctx context.Context, userID uint64, req *model.UpdateUserRequest) (*model.UserEntity, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	nameTaken, err := s.userRepo.ExistsByName(ctx, req.FirstName, req.LastName)
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.ExistsByName", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if nameTaken {
		return nil, errors.SetCustomErrorMessage(constant.ErrConflict,
			fmt.Sprintf("User with first name: %s and lastname: %s already exist", req.FirstName, req.LastName))
	}

	if err := s.userRepo.UpdateName(ctx, user.ID, req.FirstName, req.LastName); err != nil {
		logger.Error("[UpdateUser] err userRepo.UpdateName", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	return user, nil
}

func (s *userAppImpl) DeleteUser(ctx context.Context, userID uint64) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// RecordByExactDay returns the single record logged on the given date, or
// nil when the user did not log in that day.
func (s *userAppImpl) RecordByExactDay(ctx context.Context, userID uint64, dateInput string) (*model.TimeRecordEntity, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	date, err := validatorx.ValidateDateString(dateInput)
	if err != nil {
		return nil, err
	}

	record, err := s.timeRecordRepo.GetByUserAndDate(ctx, user.ID, date)
	if err != nil {
		logger.Error("[RecordByExactDay] get record", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return record, nil
}

func (s *userAppImpl) RecordsByMonth(ctx context.Context, userID uint64, criteria *model.SearchCriteria) ([]model.TimeRecordEntity, error) {
	user, err := s.GetUserByID(ctx, userID)
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
		logger.Error("[RecordsByMonth] get records", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}

// RecordsByDateRangePaginated validates the range before the pagination
// bounds, then skips page*size rows.
func (s *userAppImpl) RecordsByDateRangePaginated(ctx context.Context, userID uint64, filter *model.TimeRecordFilter) ([]model.TimeRecordEntity, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := validatorx.ValidateDateRange(filter.DateFrom, filter.DateUntil); err != nil {
		return nil, err
	}
	if err := validatorx.ValidatePagination(filter.Size, filter.Page); err != nil {
		return nil, err
	}

	records, err := s.timeRecordRepo.GetByUserDateRangePaginated(ctx, user.ID, filter.DateFrom, filter.DateUntil, filter.Size, filter.Page)
	if err != nil {
		logger.Error("[RecordsByDateRangePaginated] get records", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}
