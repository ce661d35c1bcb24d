package booking

import (
	"errors"
	"strings"
)

const MaxCourseNameLength = 120

var (
	ErrEmptyCourseName   = errors.New("course name cannot be empty")
	ErrCourseNameTooLong = errors.New("course name exceeds maximum length")
)

type CourseName struct {
	value string
}

func NewCourseName(value string) (CourseName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return CourseName{}, ErrEmptyCourseName
	}
	if len(trimmed) > MaxCourseNameLength {
		return CourseName{}, ErrCourseNameTooLong
	}
	return CourseName{value: trimmed}, nil
}

func (c CourseName) String() string {
	return c.value
}
