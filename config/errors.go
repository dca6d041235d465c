package config

import "errors"

var (
	ErrDuplicateLabel    = errors.New("duplicate rule label")
	ErrCaptureGroups     = errors.New("pattern must have exactly one capture group")
	ErrVersionTooOld     = errors.New("rule file requires a newer uamatch")
	ErrUnsupportedFormat = errors.New("unsupported rule file format")
)
