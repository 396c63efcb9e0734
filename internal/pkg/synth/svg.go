package synth

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// Fixed canvas, matches the frontend card aspect ratio
	svgWidth  = 1200
	svgHeight = 675

	subtitleLimit = 90

	// SVGFormat is the MIME type reported alongside the data URL.
	SVGFormat = "image/svg+xml"

	dataURLPrefix = "data:image/svg+xml;base64,"
)

var palette = [...][2]string{
	{"#60a5fa", "#a78bfa"},
	{"#22d3ee", "#818cf8"},
	{"#34d399", "#06b6d4"},
	{"#f472b6", "#60a5fa"},
}

// paletteFor picks a gradient pair for the prompt. xxhash is seedless, so
// the same prompt selects the same pair across restarts.
func paletteFor(prompt string) [2]string {
	return palette[xxhash.Sum64String(prompt)%uint64(len(palette))]
}

// SVG renders the fixed 1200x675 visual with the gradient and subtitle
// varying by prompt.
func SVG(prompt string) string {
	w := float64(svgWidth)
	h := float64(svgHeight)
	colors := paletteFor(prompt)

	r := strings.NewReplacer(
		"{w}", num(w),
		"{h}", num(h),
		"{c1}", colors[0],
		"{c2}", colors[1],
		"{cx}", num(w*0.7),
		"{cy}", num(h*0.4),
		"{r}", num(min(w, h)*0.25),
		"{w2}", num(w/2),
		"{w3}", num(w*0.75),
		"{w4}", num(w*0.25),
		"{cy2}", num(h*0.2),
		"{cy3}", num(h*0.8),
		"{h3}", num(h*0.75),
		"{h4}", num(h*0.25),
		"{pad}", "32",
		"{pad2}", "48",
		"{pad3}", "72",
		"{title}", "Futuristic Visual",
		"{subtitle}", subtitle(prompt),
	)
	return r.Replace(svgTemplate)
}

// DataURL renders the SVG and embeds it as a base64 data URI.
func DataURL(prompt string) string {
	return dataURLPrefix + base64.StdEncoding.EncodeToString([]byte(SVG(prompt)))
}

// subtitle truncates the prompt to 90 characters, counting runes so that
// multibyte prompts are not cut mid-character.
func subtitle(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= subtitleLimit {
		return prompt
	}
	return string(runes[:subtitleLimit]) + "…"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
