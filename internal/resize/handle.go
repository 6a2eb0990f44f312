package resize

import "fmt"

// Handle identifies one of the eight resize markers on the rectangle border.
type Handle int

const (
	NoHandle Handle = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	TopCenter
	BottomCenter
	LeftCenter
	RightCenter
)

var handleNames = map[Handle]string{
	TopLeft:      "top-left",
	TopRight:     "top-right",
	BottomLeft:   "bottom-left",
	BottomRight:  "bottom-right",
	TopCenter:    "top-center",
	BottomCenter: "bottom-center",
	LeftCenter:   "left-center",
	RightCenter:  "right-center",
}

// Handles lists every handle, corners first.
func Handles() []Handle {
	return []Handle{TopLeft, TopRight, BottomLeft, BottomRight, TopCenter, BottomCenter, LeftCenter, RightCenter}
}

func (h Handle) String() string {
	if s, ok := handleNames[h]; ok {
		return s
	}
	return "none"
}

// ParseHandle maps a handle name such as "top-left" back to its Handle.
func ParseHandle(s string) (Handle, error) {
	for h, name := range handleNames {
		if name == s {
			return h, nil
		}
	}
	return NoHandle, fmt.Errorf("unknown handle %q", s)
}

// Cursor hints for the pointer. Terminals cannot change the mouse cursor so
// the UI prints them in the status line.
const (
	CursorMove = "move"
	CursorNWSE = "nwse-resize"
	CursorNESW = "nesw-resize"
	CursorNS   = "ns-resize"
	CursorEW   = "ew-resize"
)

// Cursor returns the resize cursor shown while hovering h.
func (h Handle) Cursor() string {
	switch h {
	case TopLeft, BottomRight:
		return CursorNWSE
	case TopRight, BottomLeft:
		return CursorNESW
	case TopCenter, BottomCenter:
		return CursorNS
	case LeftCenter, RightCenter:
		return CursorEW
	}
	return CursorMove
}
