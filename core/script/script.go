// Package script parses the lossy plain-text projection of an SFF
// document back into a model document.
//
// The script format is what translators hand off when no SFF-aware tool
// is on the other end: one line per balloon line, prefixed with a type
// header ("(): " dialogue, "OT: " over-text, "[]: " square, "ST: "
// sub-text, "{}: " thinking), with a lone "//" line joining consecutive
// lines into one balloon. Rendering is Document.Text; metadata, comments,
// images, and the TL/PR distinction do not survive the projection, so
// parsed content always lands in the translation lines.
package script

import (
	"strings"

	"github.com/FocuswithJustin/sff/core/sff"
)

// Parse reads script text into a new document. All recovered lines become
// translation lines; the balloon type is taken from the line header.
func Parse(text string) *sff.Document {
	doc := sff.NewDocument()
	continued := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.Contains(line, "//") {
			continued = true
			continue
		}
		if continued && len(doc.Balloons) > 0 {
			last := &doc.Balloons[len(doc.Balloons)-1]
			last.TL = append(last.TL, stripHeader(line))
			continued = false
			continue
		}
		doc.Balloons = append(doc.Balloons, sff.Balloon{
			Type: sff.TypeForHeader(line),
			TL:   []string{stripHeader(line)},
		})
		continued = false
	}
	doc.RecomputeMetadata()
	return doc
}

// stripHeader removes the 4-character type header ("XX: ") when present.
func stripHeader(line string) string {
	if len(line) >= 4 && line[2] == ':' && line[3] == ' ' {
		return strings.TrimSpace(line[4:])
	}
	return line
}
