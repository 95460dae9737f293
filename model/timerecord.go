package model

import "time"

// TimeRecordEntity represents the time_records table entity.
// TimeOut stays nil until the user logs out for the day.
type TimeRecordEntity struct {
	ID        uint64     `db:"id" json:"id"`
	UserID    uint64     `db:"user_id" json:"user_id"`
	DateLogin time.Time  `db:"date_login" json:"date_login"`
	TimeIn    time.Time  `db:"time_in" json:"time_in"`
	TimeOut   *time.Time `db:"time_out" json:"time_out"`
}

// CreateLoginRequest opens a time record for one calendar date
type CreateLoginRequest struct {
	DateLogin string `json:"date_login" validate:"required"`
}

// LogOutRequest closes the record of the given date
type LogOutRequest struct {
	DateLogin string `json:"date_login" validate:"required"`
	TimeOut   string `json:"time_out" validate:"required"`
}

// RecordIDsRequest carries the id set for fetch/delete by ids
type RecordIDsRequest struct {
	TimeRecordIDs []uint64 `json:"time_record_ids" validate:"required,min=1"`
}

// SearchCriteria bundles the month/year query parameters
type SearchCriteria struct {
	MonthNumber int
	Year        int
}

// TimeRecordFilter bundles date and pagination query parameters.
// Page is an offset multiplier: the query skips page*size rows.
type TimeRecordFilter struct {
	DateInput string
	DateFrom  time.Time
	DateUntil time.Time
	Size      int
	Page      int
}

// ComputedTimeRecords is the derived rendered/excess hour summary
type ComputedTimeRecords struct {
	TotalTime       float64     `json:"total_time"`
	TotalExcessTime float64     `json:"total_excess_time"`
	User            *UserEntity `json:"user"`
}
