package timerecord_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	apptimerecord "github.com/timetrkkr/timetrkkr/application/timerecord"
	"github.com/timetrkkr/timetrkkr/constant"
	timerecordmocks "github.com/timetrkkr/timetrkkr/mocks/repository/timerecord"
	txmocks "github.com/timetrkkr/timetrkkr/mocks/repository/tx"
	usermocks "github.com/timetrkkr/timetrkkr/mocks/repository/user"
	"github.com/timetrkkr/timetrkkr/model"
	cerr "github.com/timetrkkr/timetrkkr/utils/errors"
)

// Note: the engine skips event publishing when the publisher is nil, so
// tests run with a nil publisher.

func testUser() *model.UserEntity {
	return &model.UserEntity{
		ID:        1,
		FirstName: "Jose",
		LastName:  "Rizal",
		Email:     "jose.rizal@example.com",
		IsActive:  true,
	}
}

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestTimeRecordApp_CreateLogin(t *testing.T) {
	today := time.Now()
	todayStr := today.Format(constant.DateLayout)
	todayDate := localDate(today.Year(), today.Month(), today.Day())
	yesterdayStr := today.AddDate(0, 0, -1).Format(constant.DateLayout)
	tomorrowDate := todayDate.AddDate(0, 0, 1)
	tomorrowStr := tomorrowDate.Format(constant.DateLayout)

	// insertedOn matches a record whose TimeIn carries the given calendar
	// date with the current wall clock at minute precision.
	insertedOn := func(date time.Time) func(rec *model.TimeRecordEntity) bool {
		return func(rec *model.TimeRecordEntity) bool {
			now := time.Now()
			want := time.Date(date.Year(), date.Month(), date.Day(),
				now.Hour(), now.Minute(), 0, 0, time.Local)
			drift := want.Sub(rec.TimeIn)
			return rec.UserID == 1 &&
				rec.DateLogin.Equal(date) &&
				rec.TimeOut == nil &&
				drift >= 0 && drift <= time.Minute
		}
	}

	type fields struct {
		txRepo         *txmocks.TxRepository
		timeRecordRepo *timerecordmocks.TimeRecordRepository
		userRepo       *usermocks.UserRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.CreateLoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: first login of the day",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.CreateLoginRequest{DateLogin: todayStr},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.timeRecordRepo.On("HasLoginOnDateTx", mock.Anything, tx, uint64(1), todayDate).Return(false, nil).Once()
				f.timeRecordRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(insertedOn(todayDate))).Return(uint64(10), nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: future-dated login keeps its time in on that date",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.CreateLoginRequest{DateLogin: tomorrowStr},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.timeRecordRepo.On("HasLoginOnDateTx", mock.Anything, tx, uint64(1), tomorrowDate).Return(false, nil).Once()
				f.timeRecordRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(insertedOn(tomorrowDate))).Return(uint64(10), nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: already logged in for that day",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.CreateLoginRequest{DateLogin: todayStr},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.timeRecordRepo.On("HasLoginOnDateTx", mock.Anything, tx, uint64(1), todayDate).Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: login date in the past",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.CreateLoginRequest{DateLogin: yesterdayStr},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: malformed login date",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.CreateLoginRequest{DateLogin: "2022-13-40"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: user not found",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 99,
				req:    &model.CreateLoginRequest{DateLogin: todayStr},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}

			app := apptimerecord.NewTimeRecordApp(tt.fields.txRepo, tt.fields.timeRecordRepo, tt.fields.userRepo, nil)

			got, err := app.CreateLogin(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateLogin() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID != 10 {
				t.Fatalf("CreateLogin() ID = %d, want 10", got.ID)
			}
			if got.TimeOut != nil {
				t.Fatal("CreateLogin() TimeOut should be nil until logout")
			}
		})
	}
}

func TestTimeRecordApp_LogOut(t *testing.T) {
	dateLogin := localDate(2024, time.May, 10)
	timeIn := time.Date(2024, time.May, 10, 8, 0, 0, 0, time.Local)

	type fields struct {
		txRepo         *txmocks.TxRepository
		timeRecordRepo *timerecordmocks.TimeRecordRepository
		userRepo       *usermocks.UserRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.LogOutRequest
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		wantErr     bool
		errCode     constant.ErrorType
		wantTimeOut time.Time
	}{
		{
			name: "success: seconds dropped from logout time",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.LogOutRequest{DateLogin: "2024-05-10", TimeOut: "17:30:45"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.timeRecordRepo.On("GetByUserAndDateTx", mock.Anything, tx, uint64(1), dateLogin).Return(&model.TimeRecordEntity{
					ID:        10,
					UserID:    1,
					DateLogin: dateLogin,
					TimeIn:    timeIn,
				}, nil).Once()

				wantOut := time.Date(2024, time.May, 10, 17, 30, 0, 0, time.Local)
				f.timeRecordRepo.On("UpdateTimeOutTx", mock.Anything, tx, uint64(10), wantOut).Return(nil).Once()
			},
			wantErr:     false,
			wantTimeOut: time.Date(2024, time.May, 10, 17, 30, 0, 0, time.Local),
		},
		{
			name: "error: logout before login time",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.LogOutRequest{DateLogin: "2024-05-10", TimeOut: "07:59"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.timeRecordRepo.On("GetByUserAndDateTx", mock.Anything, tx, uint64(1), dateLogin).Return(&model.TimeRecordEntity{
					ID:        10,
					UserID:    1,
					DateLogin: dateLogin,
					TimeIn:    timeIn,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: earlier clock rejected on a future-dated record",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.LogOutRequest{DateLogin: "2030-01-05", TimeOut: "10:22"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				futureDate := localDate(2030, time.January, 5)
				f.timeRecordRepo.On("GetByUserAndDateTx", mock.Anything, tx, uint64(1), futureDate).Return(&model.TimeRecordEntity{
					ID:        10,
					UserID:    1,
					DateLogin: futureDate,
					TimeIn:    time.Date(2030, time.January, 5, 11, 22, 0, 0, time.Local),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: no record for that day",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.LogOutRequest{DateLogin: "2024-05-10", TimeOut: "17:30"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.timeRecordRepo.On("GetByUserAndDateTx", mock.Anything, tx, uint64(1), dateLogin).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}

			app := apptimerecord.NewTimeRecordApp(tt.fields.txRepo, tt.fields.timeRecordRepo, tt.fields.userRepo, nil)

			got, err := app.LogOut(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LogOut() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.TimeOut == nil || !got.TimeOut.Equal(tt.wantTimeOut) {
				t.Fatalf("LogOut() TimeOut = %v, want %v", got.TimeOut, tt.wantTimeOut)
			}
		})
	}
}

func TestTimeRecordApp_FetchByIDs(t *testing.T) {
	dateLogin := localDate(2024, time.May, 10)

	type fields struct {
		txRepo         *txmocks.TxRepository
		timeRecordRepo *timerecordmocks.TimeRecordRepository
		userRepo       *usermocks.UserRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		ids    []uint64
	}
	tests := []struct {
		name       string
		fields     fields
		args       args
		mockCall   func(f fields)
		wantLen    int
		wantErr    bool
		errCode    constant.ErrorType
		errMessage string
	}{
		{
			name: "success: every id owned by the user",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				ids:    []uint64{10, 11},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()
				f.timeRecordRepo.On("GetByIDs", mock.Anything, uint64(1), []uint64{10, 11}).Return([]model.TimeRecordEntity{
					{ID: 10, UserID: 1, DateLogin: dateLogin},
					{ID: 11, UserID: 1, DateLogin: dateLogin.AddDate(0, 0, 1)},
				}, nil).Once()
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name: "error: missing ids enumerated in request order",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				ids:    []uint64{4, 10, 9},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()
				f.timeRecordRepo.On("GetByIDs", mock.Anything, uint64(1), []uint64{4, 10, 9}).Return([]model.TimeRecordEntity{
					{ID: 10, UserID: 1, DateLogin: dateLogin},
				}, nil).Once()
			},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			errMessage: "The user does not have particular time record Ids: [4 9]",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}

			app := apptimerecord.NewTimeRecordApp(tt.fields.txRepo, tt.fields.timeRecordRepo, tt.fields.userRepo, nil)

			got, err := app.FetchByIDs(tt.args.ctx, tt.args.userID, tt.args.ids)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FetchByIDs() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.errMessage != "" && ce.Error() != tt.errMessage {
					t.Fatalf("error message = %q, want %q", ce.Error(), tt.errMessage)
				}
				return
			}

			if len(got) != tt.wantLen {
				t.Fatalf("FetchByIDs() returned %d records, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestTimeRecordApp_DeleteByIDs(t *testing.T) {
	dateLogin := localDate(2024, time.May, 10)

	type fields struct {
		txRepo         *txmocks.TxRepository
		timeRecordRepo *timerecordmocks.TimeRecordRepository
		userRepo       *usermocks.UserRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		ids    []uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: all ids owned, bulk delete",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				ids:    []uint64{10, 11},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.timeRecordRepo.On("GetByIDsTx", mock.Anything, tx, uint64(1), []uint64{10, 11}).Return([]model.TimeRecordEntity{
					{ID: 10, UserID: 1, DateLogin: dateLogin},
					{ID: 11, UserID: 1, DateLogin: dateLogin.AddDate(0, 0, 1)},
				}, nil).Once()
				f.timeRecordRepo.On("DeleteByIDsTx", mock.Anything, tx, []uint64{10, 11}).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: missing id deletes nothing",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				ids:    []uint64{10, 99},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				// DeleteByIDsTx must not be called
				f.timeRecordRepo.On("GetByIDsTx", mock.Anything, tx, uint64(1), []uint64{10, 99}).Return([]model.TimeRecordEntity{
					{ID: 10, UserID: 1, DateLogin: dateLogin},
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}

			app := apptimerecord.NewTimeRecordApp(tt.fields.txRepo, tt.fields.timeRecordRepo, tt.fields.userRepo, nil)

			err := app.DeleteByIDs(tt.args.ctx, tt.args.userID, tt.args.ids)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteByIDs() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestTimeRecordApp_MonthlyUnderTime(t *testing.T) {
	makeRecord := func(id uint64, day, minutes int) model.TimeRecordEntity {
		timeIn := time.Date(2024, time.May, day, 8, 0, 0, 0, time.Local)
		timeOut := timeIn.Add(time.Duration(minutes) * time.Minute)
		return model.TimeRecordEntity{
			ID:        id,
			UserID:    1,
			DateLogin: localDate(2024, time.May, day),
			TimeIn:    timeIn,
			TimeOut:   &timeOut,
		}
	}

	type fields struct {
		txRepo         *txmocks.TxRepository
		timeRecordRepo *timerecordmocks.TimeRecordRepository
		userRepo       *usermocks.UserRepository
	}
	type args struct {
		ctx      context.Context
		userID   uint64
		criteria *model.SearchCriteria
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantIDs  []uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: only spans under 480 minutes survive",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				userID:   1,
				criteria: &model.SearchCriteria{MonthNumber: 5, Year: 2024},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()
				f.timeRecordRepo.On("GetByUserMonth", mock.Anything, uint64(1), 5, 2024).Return([]model.TimeRecordEntity{
					makeRecord(1, 2, 420),  // 7h, under
					makeRecord(2, 3, 480),  // exactly 8h, not under
					makeRecord(3, 6, 540),  // 9h, not under
					makeRecord(4, 7, 479),  // one minute short, under
					{ID: 5, UserID: 1, DateLogin: localDate(2024, time.May, 8), TimeIn: time.Date(2024, time.May, 8, 8, 0, 0, 0, time.Local)}, // still open, under
				}, nil).Once()
			},
			wantIDs: []uint64{1, 4, 5},
			wantErr: false,
		},
		{
			name: "error: month out of range",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				userID:   1,
				criteria: &model.SearchCriteria{MonthNumber: 13, Year: 2024},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: year out of range",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				userID:   1,
				criteria: &model.SearchCriteria{MonthNumber: 5, Year: 1989},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}

			app := apptimerecord.NewTimeRecordApp(tt.fields.txRepo, tt.fields.timeRecordRepo, tt.fields.userRepo, nil)

			got, err := app.MonthlyUnderTime(tt.args.ctx, tt.args.userID, tt.args.criteria)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MonthlyUnderTime() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("MonthlyUnderTime() returned %d records, want %d", len(got), len(tt.wantIDs))
			}
			for i, rec := range got {
				if rec.ID != tt.wantIDs[i] {
					t.Fatalf("MonthlyUnderTime() record[%d].ID = %d, want %d", i, rec.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestTimeRecordApp_ComputeRenderedTime(t *testing.T) {
	dateFrom := localDate(2024, time.May, 1)
	dateUntil := localDate(2024, time.May, 31)

	makeRecord := func(id uint64, day, minutes int) model.TimeRecordEntity {
		timeIn := time.Date(2024, time.May, day, 8, 0, 0, 0, time.Local)
		timeOut := timeIn.Add(time.Duration(minutes) * time.Minute)
		return model.TimeRecordEntity{
			ID:        id,
			UserID:    1,
			DateLogin: localDate(2024, time.May, day),
			TimeIn:    timeIn,
			TimeOut:   &timeOut,
		}
	}

	type fields struct {
		txRepo         *txmocks.TxRepository
		timeRecordRepo *timerecordmocks.TimeRecordRepository
		userRepo       *usermocks.UserRepository
	}
	type args struct {
		ctx       context.Context
		userID    uint64
		dateFrom  time.Time
		dateUntil time.Time
	}
	tests := []struct {
		name       string
		fields     fields
		args       args
		mockCall   func(f fields)
		wantTotal  float64
		wantExcess float64
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: 7h and 9h days give 16.00 total, 1.00 excess",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				userID:    1,
				dateFrom:  dateFrom,
				dateUntil: dateUntil,
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()
				f.timeRecordRepo.On("GetByUserDateRange", mock.Anything, uint64(1), dateFrom, dateUntil).Return([]model.TimeRecordEntity{
					makeRecord(1, 2, 420),
					makeRecord(2, 3, 540),
				}, nil).Once()
			},
			wantTotal:  16.00,
			wantExcess: 1.00,
			wantErr:    false,
		},
		{
			name: "success: open record adds nothing until closed",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				userID:    1,
				dateFrom:  dateFrom,
				dateUntil: dateUntil,
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()
				f.timeRecordRepo.On("GetByUserDateRange", mock.Anything, uint64(1), dateFrom, dateUntil).Return([]model.TimeRecordEntity{
					makeRecord(1, 2, 480),
					{ID: 2, UserID: 1, DateLogin: localDate(2024, time.May, 3), TimeIn: time.Date(2024, time.May, 3, 8, 0, 0, 0, time.Local)},
				}, nil).Once()
			},
			wantTotal:  8.00,
			wantExcess: 0.00,
			wantErr:    false,
		},
		{
			name: "error: until before from",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				userID:    1,
				dateFrom:  dateUntil,
				dateUntil: dateFrom,
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(testUser(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}

			app := apptimerecord.NewTimeRecordApp(tt.fields.txRepo, tt.fields.timeRecordRepo, tt.fields.userRepo, nil)

			got, err := app.ComputeRenderedTime(tt.args.ctx, tt.args.userID, tt.args.dateFrom, tt.args.dateUntil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ComputeRenderedTime() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.TotalTime != tt.wantTotal {
				t.Fatalf("ComputeRenderedTime() TotalTime = %v, want %v", got.TotalTime, tt.wantTotal)
			}
			if got.TotalExcessTime != tt.wantExcess {
				t.Fatalf("ComputeRenderedTime() TotalExcessTime = %v, want %v", got.TotalExcessTime, tt.wantExcess)
			}
			if got.User == nil || got.User.ID != 1 {
				t.Fatal("ComputeRenderedTime() should carry the resolved user")
			}
		})
	}
}

func TestTimeRecordApp_PaginatedDailyRecords(t *testing.T) {
	date := localDate(2024, time.May, 10)

	type fields struct {
		txRepo         *txmocks.TxRepository
		timeRecordRepo *timerecordmocks.TimeRecordRepository
		userRepo       *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		filter   *model.TimeRecordFilter
		mockCall func(f fields)
		wantLen  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: second page",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			filter: &model.TimeRecordFilter{DateFrom: date, Size: 2, Page: 1},
			mockCall: func(f fields) {
				f.timeRecordRepo.On("GetAllByDatePaginated", mock.Anything, date, 2, 1).Return([]model.TimeRecordEntity{
					{ID: 3, UserID: 7, DateLogin: date},
					{ID: 4, UserID: 8, DateLogin: date},
				}, nil).Once()
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name: "success: zero size yields an empty page",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			filter: &model.TimeRecordFilter{DateFrom: date, Size: 0, Page: 0},
			mockCall: func(f fields) {
				f.timeRecordRepo.On("GetAllByDatePaginated", mock.Anything, date, 0, 0).Return([]model.TimeRecordEntity{}, nil).Once()
			},
			wantLen: 0,
			wantErr: false,
		},
		{
			name: "error: negative size",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			filter:  &model.TimeRecordFilter{DateFrom: date, Size: -1, Page: 0},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: negative page",
			fields: fields{
				txRepo:         txmocks.NewTxRepository(t),
				timeRecordRepo: timerecordmocks.NewTimeRecordRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
			},
			filter:  &model.TimeRecordFilter{DateFrom: date, Size: 10, Page: -1},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}

			app := apptimerecord.NewTimeRecordApp(tt.fields.txRepo, tt.fields.timeRecordRepo, tt.fields.userRepo, nil)

			got, err := app.PaginatedDailyRecords(context.Background(), tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PaginatedDailyRecords() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if len(got) != tt.wantLen {
				t.Fatalf("PaginatedDailyRecords() returned %d records, want %d", len(got), tt.wantLen)
			}
		})
	}
}
