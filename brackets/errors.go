package brackets

import "errors"

var (
	ErrTeamCountMismatch = errors.New("team count does not fit the template")
	ErrTemplateNotFound  = errors.New("tournament template not found")
	ErrInvalidConfig     = errors.New("invalid generator configuration")
)
