package sff

import "strings"

// FormatVersion identifies the SFF format version this library produces.
// It is written to the Script metadata field of new documents.
const FormatVersion = "Scanlation Script File v0.2.0"

// Metadata holds the document header fields. ScriptVersion, App, and Info
// are opaque passthrough strings. The counter fields are derived from the
// balloon content: they are a convenience echo for consumers that do not
// want to traverse the whole tree, never a source of truth. They are only
// guaranteed to match the content right after RecomputeMetadata.
type Metadata struct {
	ScriptVersion string
	App           string
	Info          string
	TLLength      int
	PRLength      int
	CMLength      int
	BalloonCount  int
	LineCount     int
}

// Document is a complete SFF document: metadata plus balloons in reading
// order.
type Document struct {
	Meta     Metadata
	Balloons []Balloon
}

// NewDocument returns an empty document: no balloons, all counters zero,
// ScriptVersion set to FormatVersion.
func NewDocument() *Document {
	return &Document{Meta: Metadata{ScriptVersion: FormatVersion}}
}

// Len returns the number of balloons.
func (d *Document) Len() int {
	return len(d.Balloons)
}

// TLChars returns the total character count of all translation lines,
// spaces included.
func (d *Document) TLChars() int {
	total := 0
	for i := range d.Balloons {
		total += d.Balloons[i].TLChars()
	}
	return total
}

// PRChars returns the total character count of all proofread lines,
// spaces included.
func (d *Document) PRChars() int {
	total := 0
	for i := range d.Balloons {
		total += d.Balloons[i].PRChars()
	}
	return total
}

// CommentChars returns the total character count of all comment lines,
// spaces included.
func (d *Document) CommentChars() int {
	total := 0
	for i := range d.Balloons {
		total += d.Balloons[i].CommentChars()
	}
	return total
}

// LineCount returns the total line count of the document: the sum of
// Balloon.LineCount over all balloons (proofread lines when a balloon has
// any, otherwise its translation lines).
func (d *Document) LineCount() int {
	total := 0
	for i := range d.Balloons {
		total += d.Balloons[i].LineCount()
	}
	return total
}

// RecomputeMetadata rewrites the derived counter fields from the balloon
// content: TLLength, PRLength, and CMLength are the total translation,
// proofread, and comment line counts; BalloonCount is the number of
// balloons; LineCount is Document.LineCount. ScriptVersion, App, and Info
// are left untouched. Idempotent.
func (d *Document) RecomputeMetadata() {
	tl, pr, cm := 0, 0, 0
	for i := range d.Balloons {
		b := &d.Balloons[i]
		tl += len(b.TL)
		pr += len(b.PR)
		cm += len(b.Comments)
	}
	d.Meta.TLLength = tl
	d.Meta.PRLength = pr
	d.Meta.CMLength = cm
	d.Meta.BalloonCount = len(d.Balloons)
	d.Meta.LineCount = d.LineCount()
}

// Text renders the whole document as lossy script text: each balloon's
// Text, separated by blank lines. Metadata, comments, and images are
// dropped.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.Balloons))
	for i := range d.Balloons {
		parts = append(parts, d.Balloons[i].Text())
	}
	return strings.Join(parts, "\n\n")
}

// Equal reports structural equality: identical metadata and the same
// balloons in the same order.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.Meta != o.Meta {
		return false
	}
	if len(d.Balloons) != len(o.Balloons) {
		return false
	}
	for i := range d.Balloons {
		if !d.Balloons[i].Equal(&o.Balloons[i]) {
			return false
		}
	}
	return true
}
