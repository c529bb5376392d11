package service

import (
	"errors"
	"strings"

	"github.com/rgdevment/opinion-brief/internal/domain"
)

var (
	ErrMissingRequired   = errors.New("author and content are required")
	ErrInvalidEventTime  = errors.New("event time must be HH:MM:SS")
	ErrInvalidDeleteTime = errors.New("delete time must be HH:MM")
)

// ValidationError pairs one of the sentinel errors with the message shown
// to the operator.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate gates report generation. Checks run in a fixed order and the
// first failure is returned.
func Validate(in domain.ReportInput) error {
	if strings.TrimSpace(in.Author) == "" || strings.TrimSpace(in.Content) == "" {
		return &ValidationError{Err: ErrMissingRequired, Message: "请填写【发布者昵称】和【主要内容】。"}
	}
	if !domain.ValidateFullClock(in.Time) {
		return &ValidationError{Err: ErrInvalidEventTime, Message: "时间格式错误，请按 00:00:00（如 09:08:22）格式填写。"}
	}
	if in.Deleted && in.DeleteTime != "" && !domain.ValidateShortClock(in.DeleteTime) {
		return &ValidationError{Err: ErrInvalidDeleteTime, Message: "删除时间格式错误，请按 00:00（如 09:22）格式填写。"}
	}
	return nil
}
