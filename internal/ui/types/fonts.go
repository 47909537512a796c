package types

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// StatusFace is the bitmap face used for on-field text.
var StatusFace font.Face = basicfont.Face7x13

// StatusLineHeight is the pixel height of one line of StatusFace.
func StatusLineHeight() int {
	return StatusFace.Metrics().Height.Ceil()
}
