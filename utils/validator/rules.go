package validatorx

import (
	"fmt"
	"strings"
	"time"

	"github.com/timetrkkr/timetrkkr/constant"
	"github.com/timetrkkr/timetrkkr/utils/errors"
)

// Pure attendance validation rules. Every rule returns a CustomError of the
// validation kind so the transport layer maps them uniformly.

// ValidateUserFields aggregates every violated rule into one error, in the
// fixed order first name, last name, email.
func ValidateUserFields(firstName, lastName, email string) error {
	messages := make([]string, 0, 3)

	if firstName == "" {
		messages = append(messages, "Firstname should not be empty")
	}
	if lastName == "" {
		messages = append(messages, "Lastname should not be empty")
	}
	if email == "" {
		messages = append(messages, "Email should not be empty")
	}

	if len(messages) > 0 {
		return errors.SetCustomErrorMessage(constant.ErrValidation, strings.Join(messages, ", "))
	}
	return nil
}

func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return errors.SetCustomErrorMessage(constant.ErrValidation,
			fmt.Sprintf("Invalid Month number %d", month))
	}
	return nil
}

func ValidateYear(year int) error {
	if year < constant.MinReportYear || year > constant.MaxReportYear {
		return errors.SetCustomErrorMessage(constant.ErrValidation,
			fmt.Sprintf("Enter year from %d to present: Invalid: %d", constant.MinReportYear, year))
	}
	return nil
}

// ValidateDateString parses s strictly as yyyy-MM-dd. Lenient rollover such
// as "2022-13-40" and trailing garbage are both rejected.
func ValidateDateString(s string) (time.Time, error) {
	date, err := time.ParseInLocation(constant.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errors.SetCustomErrorMessage(constant.ErrValidation,
			fmt.Sprintf("Login date %s is invalid!", s))
	}
	return date, nil
}

func ValidatePagination(size, page int) error {
	if size < 0 || page < 0 {
		return errors.SetCustomErrorMessage(constant.ErrValidation,
			fmt.Sprintf("page: %d should not be negative and size: %d is greater than zero", page, size))
	}
	return nil
}

// ValidateDateRange accepts equal bounds as a single-day range.
func ValidateDateRange(from, until time.Time) error {
	if until.Before(from) {
		return errors.SetCustomErrorMessage(constant.ErrValidation, "Unreachable given date range")
	}
	return nil
}
