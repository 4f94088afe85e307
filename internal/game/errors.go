package game

import "errors"

var (
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrGameEnded          = errors.New("game has already ended")
	ErrGameNotActive      = errors.New("game is not active")
	ErrDuplicateName      = errors.New("a player with that name already exists in the game")
	ErrDuplicateNumber    = errors.New("a player with that seat number already exists in the game")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrNoRegulation       = errors.New("no regulation set")
	ErrInvalidRegulation  = errors.New("regulation does not match the player roster")
	ErrInvalidTransition  = errors.New("illegal phase transition")
	ErrInvalidRole        = errors.New("unknown role")
	ErrRoleLocked         = errors.New("roles can no longer be changed")
)
