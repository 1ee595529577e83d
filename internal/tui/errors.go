package tui

import (
	"errors"
	"fmt"
)

var ErrEmptyReportPath = errors.New("report path is empty")

// OpError records which dashboard operation failed and on what.
type OpError struct {
	Op       string
	Resource string
	Path     string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapReportErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "report", Path: path, Err: err}
}

func wrapValveErr(op string, id int, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: fmt.Sprintf("valve %d", id), Err: err}
}
