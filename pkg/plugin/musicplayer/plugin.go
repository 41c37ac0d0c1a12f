package musicplayer

import (
	"html/template"
	"io"

	"noteva/pkg/models"
	"noteva/pkg/plugin"
)

// PluginID identifies this plugin in the settings store and admin UI.
const PluginID = "music-player"

// Slot claimed by the widget.
const Slot = "footer"

var widgetTmpl = template.Must(template.New("widget").Parse(`<div class="noteva-player" data-position="{{.Position}}" data-loop="{{.Loop}}" data-autoplay="{{.Autoplay}}" data-volume="{{printf "%.2f" .Volume}}">
{{- range .Tracks}}
  <div class="noteva-player-track" data-url="{{.URL}}" data-cover="{{.Cover}}">
    <span class="track-name">{{.Name}}</span>
    <span class="track-artist">{{.Artist}}</span>
  </div>
{{- end}}
</div>
`))

type widgetData struct {
	Position string
	Loop     bool
	Autoplay bool
	Volume   float64
	Tracks   []Track
}

var _ plugin.Plugin = (*MusicPlayer)(nil)

// MusicPlayer wires the playback widget into the plugin host.
type MusicPlayer struct{}

func New() *MusicPlayer { return &MusicPlayer{} }

func (mp *MusicPlayer) Manifest() models.PluginManifest {
	minVol, maxVol := 0.0, 100.0
	return models.PluginManifest{
		ID:          PluginID,
		Name:        "Music Player",
		Version:     "1.2.0",
		Description: "Floating audio player with a configurable playlist.",
		Sections: []models.SchemaSection{
			{
				Title: "Playlist",
				Fields: []models.SchemaField{
					{ID: "songs", Label: "Songs", Type: models.FieldTextarea},
				},
			},
			{
				Title: "Playback",
				Fields: []models.SchemaField{
					{ID: "position", Label: "Position", Type: models.FieldSelect,
						Default: "left", Options: []string{"left", "right"}},
					{ID: "loop", Label: "Loop playlist", Type: models.FieldSwitch, Default: true},
					{ID: "autoplay", Label: "Autoplay", Type: models.FieldSwitch, Default: false},
					{ID: "volume", Label: "Volume", Type: models.FieldNumber,
						Default: 70.0, Min: &minVol, Max: &maxVol},
				},
			},
		},
	}
}

// Init subscribes to theme:ready and claims the footer slot once the
// theme is up. The renderer reads the settings snapshot on every render,
// so settings saved from the admin UI show up on the next page view.
// With no playable tracks it renders an empty fragment.
func (mp *MusicPlayer) Init(h *plugin.Host) error {
	h.Events().On(plugin.EventThemeReady, func(...any) {
		h.Slots().Register(Slot, func(w io.Writer) error {
			settings := h.GetSettings(PluginID)
			player := NewPlayer(tracksFromSettings(settings), settings.Bool("loop", true))
			if len(player.Tracks()) == 0 {
				return nil
			}
			player.SetVolume(settings.Float("volume", 70))
			return widgetTmpl.Execute(w, widgetData{
				Position: settings.String("position", "left"),
				Loop:     settings.Bool("loop", true),
				Autoplay: settings.Bool("autoplay", false),
				Volume:   player.Volume(),
				Tracks:   player.Tracks(),
			})
		})
	})
	return nil
}
