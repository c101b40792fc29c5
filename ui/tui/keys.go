package tui

import (
	"prodtable/internal/config"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	PrevColumn   key.Binding
	NextColumn   key.Binding
	PrevRow      key.Binding
	NextRow      key.Binding
	PickUp       key.Binding
	Drop         key.Binding
	Cancel       key.Binding
	Widen        key.Binding
	Narrow       key.Binding
	QualityUp    key.Binding
	QualityDown  key.Binding
	ToggleFooter key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap(k config.KeyMappings) keyMap {
	bind := func(keys []string, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keyLabel(keys[0]), desc))
	}
	return keyMap{
		PrevColumn:   bind([]string{k.PrevColumn, "left"}, "prev column"),
		NextColumn:   bind([]string{k.NextColumn, "right"}, "next column"),
		PrevRow:      bind([]string{k.PrevRow, "up"}, "prev row"),
		NextRow:      bind([]string{k.NextRow, "down"}, "next row"),
		PickUp:       bind([]string{k.PickUp}, "drag column"),
		Drop:         bind([]string{k.Drop}, "drop"),
		Cancel:       bind([]string{k.Cancel}, "cancel drag"),
		Widen:        bind([]string{k.Widen}, "widen"),
		Narrow:       bind([]string{k.Narrow}, "narrow"),
		QualityUp:    bind([]string{k.QualityUp, "="}, "quality +1"),
		QualityDown:  bind([]string{k.QualityDown}, "quality -1"),
		ToggleFooter: bind([]string{k.ToggleFooter}, "footer"),
		Help:         bind([]string{k.ShowHelp}, "help"),
		Quit:         bind([]string{k.Quit, "ctrl+c"}, "quit"),
	}
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PickUp, k.QualityUp, k.QualityDown, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevRow, k.NextRow},
		{k.PickUp, k.Drop, k.Cancel},
		{k.Widen, k.Narrow, k.QualityUp, k.QualityDown},
		{k.ToggleFooter, k.Help, k.Quit},
	}
}
