package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownPlayer = errors.New("unknown player")

type Player string

const (
	PlayerFirst  Player = "first"
	PlayerSecond Player = "second"
)

func (that Player) Other() Player {
	if that == PlayerFirst {
		return PlayerSecond
	}
	return PlayerFirst
}

func (that Player) Valid() bool {
	return that == PlayerFirst || that == PlayerSecond
}

func ParsePlayer(value string) (Player, error) {
	player := Player(value)
	if !player.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlayer, value)
	}
	return player, nil
}
