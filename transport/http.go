package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	timerecordapp "github.com/timetrkkr/timetrkkr/application/timerecord"
	userapp "github.com/timetrkkr/timetrkkr/application/user"
	"github.com/timetrkkr/timetrkkr/constant"
	"github.com/timetrkkr/timetrkkr/model"
	redisrepo "github.com/timetrkkr/timetrkkr/repository/redis"
	"github.com/timetrkkr/timetrkkr/utils/errors"
	validatorx "github.com/timetrkkr/timetrkkr/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp       userapp.UserApp
	TimeRecordApp timerecordapp.TimeRecordApp
}

// Options carries the transport-level knobs from config
type Options struct {
	InternalAPIKey string
	RateLimit      int64
	RateWindow     time.Duration
}

func NewTransport(UserApp userapp.UserApp, TimeRecordApp timerecordapp.TimeRecordApp, redisRepo redisrepo.Repository, opts Options) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		UserApp:       UserApp,
		TimeRecordApp: TimeRecordApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()

	// users
	api.HandleFunc("/users", rh.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}", rh.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", rh.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{userId}", rh.DeleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/users/{userId}/daily-time-record", rh.GetUserRecordByDay).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/monthly-time-records", rh.GetUserRecordsByMonth).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/time-records/date-range", rh.GetUserRecordsByDateRange).Methods(http.MethodGet)

	// time records
	api.HandleFunc("/time-records/{userId}", rh.CreateLogin).Methods(http.MethodPost)
	api.HandleFunc("/time-records/{userId}", rh.FetchRecordsByIDs).Methods(http.MethodGet)
	api.HandleFunc("/time-records/{userId}", rh.LogOut).Methods(http.MethodPut)
	api.HandleFunc("/time-records/{userId}", rh.DeleteRecordsByIDs).Methods(http.MethodDelete)
	api.HandleFunc("/time-records/{userId}/monthly-under-time", rh.GetMonthlyUnderTime).Methods(http.MethodGet)
	api.HandleFunc("/time-records/{userId}/rendered-time", rh.GetRenderedTime).Methods(http.MethodGet)

	// payroll surface, API-key guarded
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(mux.MiddlewareFunc(InternalMiddleware(opts.InternalAPIKey)))
	internal.HandleFunc("/time-records", rh.ListDailyRecords).Methods(http.MethodGet)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(RateLimitMiddleware(redisRepo, opts.RateLimit, opts.RateWindow))

	return router
}

// CreateUser handler
// @Summary Register employee
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "Create User Request"
// @Success 200 {object} model.UserEntity
// @Failure 409 {object} errorBody
// @Failure 422 {object} errorBody
// @Router /api/users [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.CreateUser(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetUser handler
// @Summary Get employee by id
// @Tags Users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} errorBody
// @Router /api/users/{userId} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.GetUserByID(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateUser handler
// @Summary Rename employee
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body model.UpdateUserRequest true "Update User Request"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} errorBody
// @Failure 409 {object} errorBody
// @Router /api/users/{userId} [put]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.UpdateUser(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteUser handler
// @Summary Delete employee
// @Tags Users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} interface{}
// @Failure 404 {object} errorBody
// @Router /api/users/{userId} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.DeleteUser(ctx, userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// GetUserRecordByDay handler
// @Summary Time record of one calendar date
// @Tags Users
// @Produce json
// @Param userId path int true "User ID"
// @Param date query string true "Date yyyy-MM-dd"
// @Success 200 {object} model.TimeRecordEntity
// @Failure 422 {object} errorBody
// @Router /api/users/{userId}/daily-time-record [get]
func (s *RestHandler) GetUserRecordByDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.RecordByExactDay(ctx, userID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetUserRecordsByMonth handler
// @Summary Time records of one month
// @Tags Users
// @Produce json
// @Param userId path int true "User ID"
// @Param month query int true "Month 1-12"
// @Param year query int true "Year 1990-2030"
// @Success 200 {array} model.TimeRecordEntity
// @Failure 422 {object} errorBody
// @Router /api/users/{userId}/monthly-time-records [get]
func (s *RestHandler) GetUserRecordsByMonth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	criteria, err := monthCriteria(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.RecordsByMonth(ctx, userID, criteria)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetUserRecordsByDateRange handler
// @Summary Paginated records within an inclusive date range
// @Tags Users
// @Produce json
// @Param userId path int true "User ID"
// @Param date_from query string true "Range start yyyy-MM-dd"
// @Param date_until query string true "Range end yyyy-MM-dd"
// @Param size query int false "Page size"
// @Param page query int false "Page number (offset multiplier)"
// @Success 200 {array} model.TimeRecordEntity
// @Failure 422 {object} errorBody
// @Router /api/users/{userId}/time-records/date-range [get]
func (s *RestHandler) GetUserRecordsByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	filter, err := rangeFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.RecordsByDateRangePaginated(ctx, userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateLogin handler
// @Summary Log a daily time-in
// @Tags TimeRecords
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body model.CreateLoginRequest true "Create Login Request"
// @Success 200 {object} model.TimeRecordEntity
// @Failure 409 {object} errorBody
// @Failure 422 {object} errorBody
// @Router /api/time-records/{userId} [post]
func (s *RestHandler) CreateLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TimeRecordApp.CreateLogin(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FetchRecordsByIDs handler
// @Summary Fetch the user's records by id list
// @Tags TimeRecords
// @Produce json
// @Param userId path int true "User ID"
// @Param ids query string true "Comma-separated record ids"
// @Success 200 {array} model.TimeRecordEntity
// @Failure 422 {object} errorBody
// @Router /api/time-records/{userId} [get]
func (s *RestHandler) FetchRecordsByIDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ids, err := queryIDs(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TimeRecordApp.FetchByIDs(ctx, userID, ids)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// LogOut handler
// @Summary Log a time-out for one date
// @Tags TimeRecords
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body model.LogOutRequest true "LogOut Request"
// @Success 200 {object} model.TimeRecordEntity
// @Failure 404 {object} errorBody
// @Failure 409 {object} errorBody
// @Router /api/time-records/{userId} [put]
func (s *RestHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.LogOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TimeRecordApp.LogOut(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteRecordsByIDs handler
// @Summary Bulk-delete the user's records by id list
// @Tags TimeRecords
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body model.RecordIDsRequest true "Record IDs Request"
// @Success 200 {object} interface{}
// @Failure 422 {object} errorBody
// @Router /api/time-records/{userId} [delete]
func (s *RestHandler) DeleteRecordsByIDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.RecordIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.TimeRecordApp.DeleteByIDs(ctx, userID, req.TimeRecordIDs); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// GetMonthlyUnderTime handler
// @Summary Under-time records of one month
// @Tags TimeRecords
// @Produce json
// @Param userId path int true "User ID"
// @Param month query int true "Month 1-12"
// @Param year query int true "Year 1990-2030"
// @Success 200 {array} model.TimeRecordEntity
// @Failure 422 {object} errorBody
// @Router /api/time-records/{userId}/monthly-under-time [get]
func (s *RestHandler) GetMonthlyUnderTime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	criteria, err := monthCriteria(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TimeRecordApp.MonthlyUnderTime(ctx, userID, criteria)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetRenderedTime handler
// @Summary Total and excess hours over a date range
// @Tags TimeRecords
// @Produce json
// @Param userId path int true "User ID"
// @Param date_from query string true "Range start yyyy-MM-dd"
// @Param date_until query string true "Range end yyyy-MM-dd"
// @Success 200 {object} model.ComputedTimeRecords
// @Failure 422 {object} errorBody
// @Router /api/time-records/{userId}/rendered-time [get]
func (s *RestHandler) GetRenderedTime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	dateFrom, err := validatorx.ValidateDateString(r.URL.Query().Get("date_from"))
	if err != nil {
		writeError(w, err)
		return
	}
	dateUntil, err := validatorx.ValidateDateString(r.URL.Query().Get("date_until"))
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TimeRecordApp.ComputeRenderedTime(ctx, userID, dateFrom, dateUntil)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListDailyRecords handler
// @Summary All records of one date, paginated
// @Tags Internal
// @Produce json
// @Param date query string true "Date yyyy-MM-dd"
// @Param size query int false "Page size"
// @Param page query int false "Page number (offset multiplier)"
// @Success 200 {array} model.TimeRecordEntity
// @Failure 422 {object} errorBody
// @Router /internal/time-records [get]
func (s *RestHandler) ListDailyRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date, err := validatorx.ValidateDateString(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}

	size, page, err := pagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TimeRecordApp.PaginatedDailyRecords(ctx, &model.TimeRecordFilter{
		DateFrom: date,
		Size:     size,
		Page:     page,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func pathUserID(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["userId"]
	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return userID, nil
}

func queryIDs(r *http.Request) ([]uint64, error) {
	raw := r.URL.Query().Get("ids")
	if raw == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func monthCriteria(r *http.Request) (*model.SearchCriteria, error) {
	month, err := queryInt(r, "month", 0)
	if err != nil {
		return nil, err
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		return nil, err
	}
	return &model.SearchCriteria{MonthNumber: month, Year: year}, nil
}

func rangeFilter(r *http.Request) (*model.TimeRecordFilter, error) {
	dateFrom, err := validatorx.ValidateDateString(r.URL.Query().Get("date_from"))
	if err != nil {
		return nil, err
	}
	dateUntil, err := validatorx.ValidateDateString(r.URL.Query().Get("date_until"))
	if err != nil {
		return nil, err
	}
	size, page, err := pagination(r)
	if err != nil {
		return nil, err
	}
	return &model.TimeRecordFilter{
		DateFrom:  dateFrom,
		DateUntil: dateUntil,
		Size:      size,
		Page:      page,
	}, nil
}

func pagination(r *http.Request) (size, page int, err error) {
	size, err = queryInt(r, "size", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	page, err = queryInt(r, "page", 0)
	if err != nil {
		return 0, 0, err
	}
	return size, page, nil
}

const defaultPageSize = 100

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return value, nil
}
