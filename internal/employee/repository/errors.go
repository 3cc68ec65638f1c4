package repository

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrInvalidDays         = errors.New("leave days must be positive")
)
