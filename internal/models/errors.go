package models

import "errors"

var (
	// ErrCourseNotFound is returned when a course id does not resolve to a stored record.
	ErrCourseNotFound = errors.New("course not found")
	// ErrEnrollmentNotFound is returned when an enrollment id does not resolve to a stored record.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	// ErrSectionNotFound is returned when a section id is absent from a course draft.
	ErrSectionNotFound = errors.New("section not found")
	// ErrSectionIndexOutOfRange is returned when a reorder index falls outside the section sequence.
	ErrSectionIndexOutOfRange = errors.New("section index out of range")
)
