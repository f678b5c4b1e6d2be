package layout

import "fmt"

// Orientation selects between the stacked and the single-row arrangement.
type Orientation int

const (
	Portrait  Orientation = iota // strip plus three rows of two
	Landscape                    // strip plus one row of six
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	default:
		return "portrait"
	}
}

// Classify picks the orientation for a container. A container whose
// vertical extent is the short side is landscape.
func Classify(size Size) Orientation {
	if size.Height < size.Width {
		return Landscape
	}
	return Portrait
}

// Mode is the configured orientation preference.
type Mode string

const (
	ModeAuto      Mode = "auto"
	ModePortrait  Mode = "portrait"
	ModeLandscape Mode = "landscape"
)

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModePortrait, ModeLandscape:
		return Mode(s), nil
	case "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("unknown orientation %q (want auto, portrait or landscape)", s)
	}
}

// Resolve returns the orientation to lay size out in under mode m.
func (m Mode) Resolve(size Size) Orientation {
	switch m {
	case ModePortrait:
		return Portrait
	case ModeLandscape:
		return Landscape
	default:
		return Classify(size)
	}
}
