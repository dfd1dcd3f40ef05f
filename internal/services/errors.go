// Package services – sentinel errors
//
// Centralized service-level errors. Handlers compare against these with
// errors.Is to map predictable business failures to stable HTTP results.
package services

import "errors"

var (
	// ErrInvalidStatus indicates an attendance status outside the allowed set.
	ErrInvalidStatus = errors.New("invalid attendance status")

	// ErrInvalidDate indicates a date string that is not a real calendar day
	// in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")

	// ErrEmptyEmployeeID indicates a blank employee business key.
	ErrEmptyEmployeeID = errors.New("employee id must not be empty")

	// ErrEmployeeNotFound indicates the referenced employee does not exist in
	// the directory.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateAttendance indicates a second marker for the same employee
	// and day.
	ErrDuplicateAttendance = errors.New("attendance already recorded for this date")

	// ErrDuplicateEmployeeID indicates an employee business key already in use.
	ErrDuplicateEmployeeID = errors.New("employee id already exists")

	// ErrDuplicateEmail indicates an employee email already in use.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidEmployee indicates a directory record missing required fields.
	ErrInvalidEmployee = errors.New("invalid employee")
)
