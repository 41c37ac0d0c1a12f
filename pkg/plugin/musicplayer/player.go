// Package musicplayer is the built-in audio widget plugin. It reads its
// playlist and playback options from the plugin settings store and renders
// into the footer slot.
package musicplayer

import (
	"fmt"
	"log"
	"math"

	"noteva/pkg/plugin"
)

// Track is one playable entry. URL is required; the rest is display data.
type Track struct {
	URL    string `json:"url"`
	Name   string `json:"name,omitempty"`
	Artist string `json:"artist,omitempty"`
	Cover  string `json:"cover,omitempty"`
}

// Playback states.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// PlayFunc attempts to start playback of a track. Platform autoplay
// restrictions surface here as an error.
type PlayFunc func(t Track) error

// Player is the per-instance playback state machine. Not safe for
// concurrent use; each widget instance owns one.
type Player struct {
	tracks []Track
	index  int
	state  State
	loop   bool
	volume float64
	play   PlayFunc
}

// NewPlayer builds a player from raw playlist entries. Entries without a
// URL are dropped; the order of the rest is preserved. With an empty
// resulting playlist the player stays Idle and every control is a no-op.
func NewPlayer(entries []Track, loop bool) *Player {
	p := &Player{loop: loop, volume: 0.7, play: func(Track) error { return nil }}
	for _, t := range entries {
		if t.URL == "" {
			continue
		}
		p.tracks = append(p.tracks, t)
	}
	if len(p.tracks) > 0 {
		p.state = Ready
	}
	return p
}

// SetPlayFunc overrides how playback attempts are made.
func (p *Player) SetPlayFunc(fn PlayFunc) {
	if fn != nil {
		p.play = fn
	}
}

func (p *Player) Tracks() []Track { return p.tracks }
func (p *Player) Index() int      { return p.index }
func (p *Player) State() State    { return p.state }
func (p *Player) Volume() float64 { return p.volume }

// Current returns the track at the current index.
func (p *Player) Current() (Track, bool) {
	if len(p.tracks) == 0 {
		return Track{}, false
	}
	return p.tracks[p.index], true
}

// TogglePlay switches Playing and Paused. From Ready it starts playback.
// A failed play attempt (autoplay policy) is logged and leaves the player
// stopped; the user sees no error.
func (p *Player) TogglePlay() {
	switch p.state {
	case Playing:
		p.state = Paused
	case Paused, Ready:
		p.startPlayback()
	}
}

// Next advances to the following track. At the end of the playlist it
// wraps to the start when loop is on, otherwise the index stays put and
// playback stops.
func (p *Player) Next() {
	p.step(1)
}

// Prev moves to the previous track, wrapping to the end when loop is on
// and clamping at the first track otherwise.
func (p *Player) Prev() {
	p.step(-1)
}

// Ended handles track completion; it behaves as an implicit Next.
func (p *Player) Ended() {
	p.Next()
}

func (p *Player) step(dir int) {
	if len(p.tracks) == 0 {
		return
	}
	next := p.index + dir
	if next >= len(p.tracks) || next < 0 {
		if !p.loop {
			// Boundary with loop off: index unchanged, playback stops.
			p.state = Ready
			return
		}
		if next < 0 {
			next = len(p.tracks) - 1
		} else {
			next = 0
		}
	}
	p.index = next
	if p.state == Playing {
		p.startPlayback()
	}
}

func (p *Player) startPlayback() {
	t, ok := p.Current()
	if !ok {
		return
	}
	p.state = Loading
	if err := p.play(t); err != nil {
		log.Printf("musicplayer: play %s blocked: %v", t.URL, err)
		p.state = Ready
		return
	}
	p.state = Playing
}

// SetVolume maps a slider value in [0,100] linearly onto [0,1], clamping
// out-of-range input.
func (p *Player) SetVolume(slider float64) {
	if slider < 0 {
		slider = 0
	}
	if slider > 100 {
		slider = 100
	}
	p.volume = slider / 100
}

// FormatTime renders seconds as m:ss. Unknown, negative or non-finite
// values render the zero placeholder instead of failing.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return "0:00"
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Progress renders "current / duration" for the time display. A duration
// that is not yet available yields the placeholder on both sides.
func Progress(currentTime, duration float64) string {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return "0:00 / 0:00"
	}
	if currentTime > duration {
		currentTime = duration
	}
	return FormatTime(currentTime) + " / " + FormatTime(duration)
}

// tracksFromSettings decodes the songs list from a settings snapshot,
// accepting both the native array and the legacy JSON string encoding.
func tracksFromSettings(s plugin.Settings) []Track {
	var out []Track
	for _, m := range s.List("songs") {
		t := Track{}
		if v, ok := m["url"].(string); ok {
			t.URL = v
		}
		if v, ok := m["name"].(string); ok {
			t.Name = v
		}
		if v, ok := m["artist"].(string); ok {
			t.Artist = v
		}
		if v, ok := m["cover"].(string); ok {
			t.Cover = v
		}
		out = append(out, t)
	}
	return out
}
