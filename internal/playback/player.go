package playback

import (
	"errors"
	"fmt"
	"io"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Announcement is a routed selection together with the request that produced it.
type Announcement struct {
	Food      string
	Mood      string
	MoodLabel string
	Decision  Decision
}

type Player interface {
	Play(w io.Writer, a Announcement) error
}

type Factory func() Player

var registry = make(map[string]Factory)

func Register(name string, factory Factory) {
	registry[name] = factory
}

func Get(name string) (Player, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownPlayer, name)
	}
	return factory(), nil
}
