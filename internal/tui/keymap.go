package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/liarsbid/internal/bid"
	"github.com/thenoetrevino/liarsbid/internal/config"
)

// KeyMap holds the key bindings of the picker, built from the configured
// key mappings. It implements help.KeyMap for the status bar and overlay.
type KeyMap struct {
	Pips map[bid.Pip]key.Binding

	PrevQuantity key.Binding
	NextQuantity key.Binding
	ScrollLeft   key.Binding
	ScrollRight  key.Binding
	Reset        key.Binding
	Help         key.Binding
	Close        key.Binding
	Quit         key.Binding

	// display-only bindings summarising a group in the short help
	quantity key.Binding
	pip      key.Binding
}

// NewKeyMap builds the bindings for km.
func NewKeyMap(km config.KeyMappings) KeyMap {
	pipKeys := km.PipKeys()
	pips := make(map[bid.Pip]key.Binding, len(pipKeys))
	all := make([]string, 0, len(pipKeys))
	for _, p := range bid.Pips() {
		k := pipKeys[int(p)]
		pips[p] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, "pip "+p.String()))
		all = append(all, k)
	}

	return KeyMap{
		Pips: pips,

		PrevQuantity: key.NewBinding(key.WithKeys(km.PrevQuantity, "left"), key.WithHelp(km.PrevQuantity+"/←", "previous quantity")),
		NextQuantity: key.NewBinding(key.WithKeys(km.NextQuantity, "right"), key.WithHelp(km.NextQuantity+"/→", "next quantity")),
		ScrollLeft:   key.NewBinding(key.WithKeys(km.ScrollLeft), key.WithHelp(km.ScrollLeft, "scroll back")),
		ScrollRight:  key.NewBinding(key.WithKeys(km.ScrollRight), key.WithHelp(km.ScrollRight, "scroll forward")),
		Reset:        key.NewBinding(key.WithKeys(km.Reset), key.WithHelp(km.Reset, "reset")),
		Help:         key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Close:        key.NewBinding(key.WithKeys("esc", "enter", " "), key.WithHelp("esc", "close")),
		Quit:         key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),

		quantity: key.NewBinding(
			key.WithKeys(km.PrevQuantity, km.NextQuantity),
			key.WithHelp(km.PrevQuantity+"/"+km.NextQuantity, "quantity"),
		),
		pip: key.NewBinding(
			key.WithKeys(all...),
			key.WithHelp(km.Pip2+"-"+km.Pip6, "pip"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quantity, k.pip, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	pips := make([]key.Binding, 0, len(k.Pips))
	for _, p := range bid.Pips() {
		pips = append(pips, k.Pips[p])
	}
	return [][]key.Binding{
		{k.PrevQuantity, k.NextQuantity, k.ScrollLeft, k.ScrollRight},
		pips,
		{k.Reset, k.Help, k.Quit},
	}
}

// pipFor returns the face bound to the pressed key.
func (k KeyMap) pipFor(msg tea.KeyPressMsg) (bid.Pip, bool) {
	for _, p := range bid.Pips() {
		if key.Matches(msg, k.Pips[p]) {
			return p, true
		}
	}
	return 0, false
}
