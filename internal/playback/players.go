package playback

import (
	"fmt"
	"io"

	"moodtune/internal/logger"
	"moodtune/internal/model"

	"github.com/goccy/go-json"
)

// TextPlayer prints a human readable notice of what would play and where.
type TextPlayer struct{}

func (p *TextPlayer) Play(w io.Writer, a Announcement) error {
	d := a.Decision
	verb := "Playing locally"
	if d.Mode == ModeExternal {
		verb = "Opening externally"
	}
	logger.Log.Debugf("Routing %s as %s", d.Track.URI, d.Mode)

	_, err := fmt.Fprintf(w, "♪ %s\n  Food:   %s\n  Mood:   %s\n  Title:  %s\n  URI:    %s\n",
		verb, a.Food, a.MoodLabel, d.Track.DisplayTitle(), d.Track.URI)
	if err != nil {
		return err
	}
	if d.Track.Artist != "" {
		_, err = fmt.Fprintf(w, "  Artist: %s\n", d.Track.Artist)
	}
	return err
}

type jsonAnnouncement struct {
	Food  string      `json:"food"`
	Mood  string      `json:"mood"`
	Mode  string      `json:"mode"`
	Track model.Track `json:"track"`
}

// JSONPlayer writes one JSON object per announcement for other programs to route.
type JSONPlayer struct{}

func (p *JSONPlayer) Play(w io.Writer, a Announcement) error {
	out, err := json.Marshal(jsonAnnouncement{
		Food:  a.Food,
		Mood:  a.Mood,
		Mode:  a.Decision.Mode.String(),
		Track: a.Decision.Track,
	})
	if err != nil {
		return fmt.Errorf("failed to encode announcement: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func init() {
	Register("stdout", func() Player { return &TextPlayer{} })
	Register("json", func() Player { return &JSONPlayer{} })
}
