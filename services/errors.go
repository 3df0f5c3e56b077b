package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки, специфичные для узлов графа
	ErrFieldNotFound   = errors.New("field not found")
	ErrStageNotFound   = errors.New("stage not found")
	ErrGameNotFound    = errors.New("game not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrGroupNotFound   = errors.New("team group not found")
	ErrEdgeNotFound    = errors.New("edge not found")
	ErrSessionNotFound = errors.New("editing session not found")

	// Ошибки валидации операций
	ErrInvalidSlot      = errors.New("slot must be home or away")
	ErrInvalidOutput    = errors.New("output type must be winner or loser")
	ErrInvalidTime      = errors.New("time must use the HH:MM format")
	ErrInvalidOperation = errors.New("unknown operation type")
	ErrSelfReference    = errors.New("a game cannot feed itself")
	ErrNotMovable       = errors.New("only games and teams can be moved between stages")
	ErrScheduleInvalid  = errors.New("schedule has validation errors")
)
