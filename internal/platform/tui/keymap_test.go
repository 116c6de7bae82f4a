package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"digit 1", runeKey('1'), core.ActionPad1},
		{"letter g", runeKey('g'), core.ActionPad1},
		{"digit 2", runeKey('2'), core.ActionPad2},
		{"letter r", runeKey('r'), core.ActionPad2},
		{"digit 3", runeKey('3'), core.ActionPad3},
		{"letter y", runeKey('y'), core.ActionPad3},
		{"digit 4", runeKey('4'), core.ActionPad4},
		{"letter b", runeKey('b'), core.ActionPad4},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"s", runeKey('s'), core.ActionStart},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestCustomKeyMap(t *testing.T) {
	kb := config.DefaultSimonConfig().Keys
	kb.Green = []string{"a"}
	kb.Red = []string{"z"}
	km := NewKeyMap(kb)

	if got := km.MapKey(runeKey('a')); got != core.ActionPad1 {
		t.Errorf("a = %v, want Pad1", got)
	}
	if got := km.MapKey(runeKey('z')); got != core.ActionPad2 {
		t.Errorf("z = %v, want Pad2", got)
	}
	if got := km.MapKey(runeKey('1')); got != core.ActionNone {
		t.Errorf("1 should be unbound after remap, got %v", got)
	}
	if got := km.Pads[0].Help().Key; got != "a" {
		t.Errorf("help key = %q, want a", got)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('2'), &frame) {
		t.Error("pad key reported as quit")
	}
	if km.MapKeyToFrame(runeKey('1'), &frame) {
		t.Error("pad key reported as quit")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}

	got := frame.Actions()
	if len(got) != 2 || got[0] != core.ActionPad2 || got[1] != core.ActionPad1 {
		t.Errorf("frame = %v, want [Pad2 Pad1]", got)
	}
}

func TestMenuKeyMap(t *testing.T) {
	km := DefaultMenuKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
