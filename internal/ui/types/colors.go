package types

import "image/color"

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorGrid       = color.RGBA{0x1f, 0x1f, 0x1f, 255}
	ColorStatusBg   = color.RGBA{0, 0, 0, 192}
	ColorText       = color.RGBA{220, 220, 220, 255}
)
