package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
)

const iconSize = 32

var (
	activeColor   = color.NRGBA{R: 0x43, G: 0xBF, B: 0x6D, A: 0xFF}
	inactiveColor = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF}
	outlineColor  = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
)

var (
	iconOnce     sync.Once
	activeIcon   []byte
	inactiveIcon []byte
)

// Icon returns the PNG tray icon for the given jiggling state.
func Icon(active bool) []byte {
	iconOnce.Do(func() {
		activeIcon = renderIcon(activeColor)
		inactiveIcon = renderIcon(inactiveColor)
	})
	if active {
		return activeIcon
	}
	return inactiveIcon
}

// renderIcon draws a mouse body: a rounded capsule with a button split line.
func renderIcon(fill color.NRGBA) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))

	const (
		cx     = iconSize / 2
		halfW  = 9
		top    = 3
		bottom = iconSize - 3
	)

	for y := top; y < bottom; y++ {
		for x := cx - halfW; x < cx+halfW; x++ {
			if !insideCapsule(x, y, cx, halfW, top, bottom) {
				continue
			}
			c := fill
			edge := !insideCapsule(x-1, y, cx, halfW, top, bottom) ||
				!insideCapsule(x+1, y, cx, halfW, top, bottom) ||
				!insideCapsule(x, y-1, cx, halfW, top, bottom) ||
				!insideCapsule(x, y+1, cx, halfW, top, bottom)
			buttons := y < top+11 && (x == cx || y == top+10)
			if edge || buttons {
				c = outlineColor
			}
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

func insideCapsule(x, y, cx, halfW, top, bottom int) bool {
	if x < cx-halfW || x >= cx+halfW || y < top || y >= bottom {
		return false
	}
	// Round the top and bottom ends with a radius of halfW.
	dx := float64(x) + 0.5 - float64(cx)
	var dy float64
	switch {
	case y < top+halfW:
		dy = float64(top+halfW) - (float64(y) + 0.5)
	case y >= bottom-halfW:
		dy = float64(y) + 0.5 - float64(bottom-halfW)
	default:
		return true
	}
	return dx*dx+dy*dy <= float64(halfW*halfW)
}
