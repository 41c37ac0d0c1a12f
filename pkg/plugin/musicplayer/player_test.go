package musicplayer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistFiltersMissingURLs(t *testing.T) {
	p := NewPlayer([]Track{
		{URL: "a.mp3"},
		{URL: ""},
		{URL: "b.mp3"},
	}, false)

	require.Len(t, p.Tracks(), 2)
	assert.Equal(t, "a.mp3", p.Tracks()[0].URL)
	assert.Equal(t, "b.mp3", p.Tracks()[1].URL, "relative order is preserved")
}

func TestNextClampsAndStopsWithoutLoop(t *testing.T) {
	// From index 0, next then next leaves playback stopped at
	// index 1 rather than wrapping.
	p := NewPlayer([]Track{{URL: "a.mp3"}, {URL: ""}, {URL: "b.mp3"}}, false)
	p.TogglePlay()
	require.Equal(t, Playing, p.State())

	p.Next()
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, Playing, p.State())

	p.Next()
	assert.Equal(t, 1, p.Index(), "index unchanged at the boundary")
	assert.Equal(t, Ready, p.State(), "playback stopped")
}

func TestNextWrapsWithLoop(t *testing.T) {
	p := NewPlayer([]Track{{URL: "a.mp3"}, {URL: "b.mp3"}}, true)
	p.Next()
	require.Equal(t, 1, p.Index())
	p.Next()
	assert.Equal(t, 0, p.Index(), "loop=true wraps to the first track")
}

func TestPrevWrapsAndClamps(t *testing.T) {
	looped := NewPlayer([]Track{{URL: "a.mp3"}, {URL: "b.mp3"}}, true)
	looped.Prev()
	assert.Equal(t, 1, looped.Index(), "loop=true wraps to the last track")

	clamped := NewPlayer([]Track{{URL: "a.mp3"}, {URL: "b.mp3"}}, false)
	clamped.Prev()
	assert.Equal(t, 0, clamped.Index())
	assert.Equal(t, Ready, clamped.State())
}

func TestEndedBehavesAsNext(t *testing.T) {
	p := NewPlayer([]Track{{URL: "a.mp3"}, {URL: "b.mp3"}}, false)
	p.TogglePlay()
	p.Ended()
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, Playing, p.State())
}

func TestTogglePlay(t *testing.T) {
	p := NewPlayer([]Track{{URL: "a.mp3"}}, false)
	require.Equal(t, Ready, p.State())

	p.TogglePlay()
	assert.Equal(t, Playing, p.State())
	p.TogglePlay()
	assert.Equal(t, Paused, p.State())
	p.TogglePlay()
	assert.Equal(t, Playing, p.State())
}

func TestBlockedPlaybackFailsSilently(t *testing.T) {
	p := NewPlayer([]Track{{URL: "a.mp3"}}, false)
	p.SetPlayFunc(func(Track) error { return errors.New("autoplay blocked") })

	assert.NotPanics(t, func() { p.TogglePlay() })
	assert.Equal(t, Ready, p.State(), "a blocked play attempt leaves the player stopped")
}

func TestEmptyPlaylistIsInert(t *testing.T) {
	p := NewPlayer([]Track{{URL: ""}}, true)
	assert.Equal(t, Idle, p.State())

	p.TogglePlay()
	p.Next()
	p.Prev()
	assert.Equal(t, Idle, p.State())

	_, ok := p.Current()
	assert.False(t, ok)
}

func TestVolumeMapping(t *testing.T) {
	tests := []struct {
		slider float64
		want   float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{-10, 0},
		{140, 1},
	}
	p := NewPlayer([]Track{{URL: "a.mp3"}}, false)
	for _, tt := range tests {
		p.SetVolume(tt.slider)
		assert.Equal(t, tt.want, p.Volume(), "slider %v", tt.slider)
	}
}

func TestFormatTimePlaceholders(t *testing.T) {
	assert.Equal(t, "0:00", FormatTime(math.NaN()))
	assert.Equal(t, "0:00", FormatTime(math.Inf(1)))
	assert.Equal(t, "0:00", FormatTime(-3))
	assert.Equal(t, "0:00", FormatTime(0))
	assert.Equal(t, "1:05", FormatTime(65))
	assert.Equal(t, "10:00", FormatTime(600))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, "0:00 / 0:00", Progress(10, math.NaN()), "unknown duration renders placeholders")
	assert.Equal(t, "0:30 / 2:00", Progress(30, 120))
	assert.Equal(t, "2:00 / 2:00", Progress(500, 120), "current time clamps to duration")
}

func TestTracksFromSettingsLegacyString(t *testing.T) {
	s := map[string]any{"songs": `[{"url":"a.mp3","name":"A","artist":"X","cover":"c.png"},{"url":""}]`}
	tracks := tracksFromSettings(s)
	require.Len(t, tracks, 2, "filtering happens in NewPlayer, not at decode")
	assert.Equal(t, Track{URL: "a.mp3", Name: "A", Artist: "X", Cover: "c.png"}, tracks[0])
}
