// Package feedback plays fire-and-forget impact cues for taps and resets.
package feedback

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
)

// Style is the strength of an impact.
type Style int

const (
	Light  Style = iota // numeral and pip taps
	Medium              // reset
)

func (s Style) String() string {
	if s == Medium {
		return "medium"
	}
	return "light"
}

// Service plays an impact. The returned command may be nil; nothing is
// ever reported back to the caller.
type Service interface {
	Impact(style Style) tea.Cmd
}

// Kind names a Service implementation in config.
type Kind string

const (
	KindLog  Kind = "log"
	KindBell Kind = "bell"
	KindOff  Kind = "off"
)

// New returns the Service for kind.
func New(kind Kind, logger *slog.Logger) (Service, error) {
	switch kind {
	case KindLog, "":
		return Logger{Log: logger}, nil
	case KindBell:
		return Bell{Log: logger}, nil
	case KindOff:
		return Off{}, nil
	default:
		return nil, fmt.Errorf("unknown haptics kind %q (want log, bell or off)", kind)
	}
}

// Logger records impacts in the debug log only.
type Logger struct {
	Log *slog.Logger
}

func (l Logger) Impact(style Style) tea.Cmd {
	logger := l.Log
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("impact", "style", style.String())
	return nil
}

// Bell rings the terminal bell. Medium impacts ring twice.
type Bell struct {
	Log *slog.Logger
}

const bel = "\a"

func (b Bell) Impact(style Style) tea.Cmd {
	if b.Log != nil {
		b.Log.Debug("impact", "style", style.String(), "via", "bell")
	}
	if style == Medium {
		return tea.Raw(bel + bel)
	}
	return tea.Raw(bel)
}

// Off discards every impact.
type Off struct{}

func (Off) Impact(Style) tea.Cmd { return nil }
