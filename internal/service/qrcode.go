package service

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const qrMinSize = 200

// GenerateQR renders text as a QR code in SVG. Text that cannot be encoded
// is replaced with "error".
func GenerateQR(text string) string {
	if text == "" {
		text = "error"
	}
	code, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		code, err = qrcode.New("error", qrcode.Medium)
		if err != nil {
			return ""
		}
	}
	return renderSVG(code.Bitmap())
}

func renderSVG(bitmap [][]bool) string {
	modules := len(bitmap)
	if modules == 0 {
		return ""
	}
	scale := (qrMinSize + modules - 1) / modules
	size := modules * scale

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		size, size, modules, modules)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="#ffffff"/>`, modules, modules)
	b.WriteString(`<path fill="#000000" d="`)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, "M%d %dh1v1h-1z", x, y)
			}
		}
	}
	b.WriteString(`"/></svg>`)
	return b.String()
}
