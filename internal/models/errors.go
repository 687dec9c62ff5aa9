package models

import "errors"

var (
	// ErrWrongStatus is returned by every transition attempted from a
	// status its guard does not allow.
	ErrWrongStatus = errors.New("application is in the wrong status")

	// ErrIncomplete is returned by Complete when not all questions are answered.
	ErrIncomplete = errors.New("application is not complete")

	ErrAnswerExists    = errors.New("answer already exists")
	ErrAnswerNotFound  = errors.New("answer does not exist")
	ErrInvalidQuestion = errors.New("question number out of range")
	ErrInvalidAnswer   = errors.New("answer does not match the question format")

	ErrAlreadyBanned = errors.New("user is already banned")
	ErrNotBanned     = errors.New("user is not banned")
)
