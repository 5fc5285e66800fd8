// Package playback decides where a selected track should play and announces
// the decision through a named player.
package playback

import (
	"strings"

	"moodtune/internal/model"
)

type Mode int

const (
	// ModeLocal tracks play in the embedded audio element.
	ModeLocal Mode = iota
	// ModeExternal tracks (streaming links, video pages) open in another surface.
	ModeExternal
)

func (m Mode) String() string {
	if m == ModeLocal {
		return "local"
	}
	return "external"
}

type Decision struct {
	Track model.Track
	Mode  Mode
}

// Router classifies URIs. Matching is case-sensitive.
type Router struct {
	prefixes   []string
	extensions []string
}

func NewRouter(prefixes, extensions []string) *Router {
	return &Router{prefixes: prefixes, extensions: extensions}
}

func (r *Router) Route(t model.Track) Decision {
	return Decision{Track: t, Mode: r.mode(t.URI)}
}

func (r *Router) mode(uri string) Mode {
	for _, p := range r.prefixes {
		if strings.HasPrefix(uri, p) {
			return ModeLocal
		}
	}
	for _, ext := range r.extensions {
		if strings.HasSuffix(uri, ext) {
			return ModeLocal
		}
	}
	return ModeExternal
}
