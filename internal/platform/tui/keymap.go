package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
)

var padNames = [core.PadCount]string{"green", "red", "yellow", "blue"}

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings come from the user config so they are testable and remappable.
type KeyMap struct {
	Pads  [core.PadCount]key.Binding
	Start key.Binding
	Pause key.Binding
	Back  key.Binding
	Quit  key.Binding
	Help  key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	km := KeyMap{
		Start: binding(kb.Start, "start"),
		Pause: binding(kb.Pause, "pause"),
		Back:  binding(kb.Back, "back"),
		Quit:  binding(kb.Quit, "quit"),
		Help: key.NewBinding(
			key.WithKeys(config.HelpKey),
			key.WithHelp(config.HelpKey, "more keys"),
		),
	}
	for i, keys := range kb.Pads() {
		km.Pads[i] = binding(keys, padNames[i])
	}
	return km
}

// DefaultKeyMap returns the bindings of the embedded default config.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultSimonConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

func helpLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pads[0], k.Pads[1], k.Pads[2], k.Pads[3], k.Start, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pads[0], k.Pads[1], k.Pads[2], k.Pads[3]},
		{k.Start, k.Pause, k.Back, k.Quit},
		{k.Help},
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	for i, b := range k.Pads {
		if key.Matches(msg, b) {
			return core.PadAction(i)
		}
	}
	return core.ActionNone
}

// MapKeyToFrame appends the mapped action to frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	frame.Set(action)
	return false
}
