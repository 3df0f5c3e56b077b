package models

import "errors"

var (
	ErrDuplicateID = errors.New("duplicate node id")
	ErrUnknownEdge = errors.New("edge references unknown node kind")
)
