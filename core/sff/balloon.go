// Package sff defines the in-memory model for SFF (Scanlation File Format)
// documents: redundant metadata counters plus an ordered sequence of
// balloons, each holding ordered translation, proofread, and comment lines.
//
// The model is a pure tree. A Document exclusively owns its Metadata and
// balloons; each Balloon exclusively owns its line slices. Mutation is
// plain slice manipulation and never updates the metadata counters; call
// Document.RecomputeMetadata (or serialize with recompute, the default)
// to bring them back in sync.
package sff

import (
	"bytes"
	"slices"
	"strings"
	"unicode/utf8"
)

// Well-known balloon type tags emitted by the original tooling. The type
// tag is an open set, not an enumeration: producers may write any value
// and the codec preserves unknown tags verbatim.
const (
	TypeDialogue = "Dialogue"
	TypeSquare   = "Square"
	TypeThinking = "Thinking"
	TypeST       = "ST" // sub-text
	TypeOT       = "OT" // over-text
)

// TypeHeader returns the script-text line header for a balloon type tag.
// Unknown and empty tags render with the dialogue header.
func TypeHeader(tag string) string {
	switch tag {
	case TypeOT:
		return "OT: "
	case TypeSquare:
		return "[]: "
	case TypeST:
		return "ST: "
	case TypeThinking:
		return "{}: "
	default:
		return "(): "
	}
}

// TypeForHeader returns the balloon type tag a script-text line header
// denotes. Unrecognized headers map to TypeDialogue.
func TypeForHeader(line string) string {
	if len(line) < 2 {
		return TypeDialogue
	}
	switch line[:2] {
	case "OT":
		return TypeOT
	case "[]":
		return TypeSquare
	case "ST":
		return TypeST
	case "{}":
		return TypeThinking
	default:
		return TypeDialogue
	}
}

// Image is a raw image attached to a balloon, typically a crop of the
// source panel. Kind is the file extension without the dot ("jpg", "png").
type Image struct {
	Kind string
	Data []byte
}

// Balloon is one speech/text unit within a panel. It carries ordered
// translation, proofread, and comment lines plus an open type tag. Any or
// all of the three line sequences may be empty.
type Balloon struct {
	Type     string
	TL       []string
	PR       []string
	Comments []string
	Image    *Image
}

// AttachImage attaches a raw image to the balloon, replacing any existing
// one. kind is the image's file extension without the dot.
func (b *Balloon) AttachImage(kind string, data []byte) {
	b.Image = &Image{Kind: kind, Data: data}
}

// RemoveImage detaches the balloon's image, if any.
func (b *Balloon) RemoveImage() {
	b.Image = nil
}

// TLChars returns the total character count of the translation lines,
// spaces included. Characters are counted as runes.
func (b *Balloon) TLChars() int {
	return charCount(b.TL)
}

// PRChars returns the total character count of the proofread lines,
// spaces included.
func (b *Balloon) PRChars() int {
	return charCount(b.PR)
}

// CommentChars returns the total character count of the comment lines,
// spaces included.
func (b *Balloon) CommentChars() int {
	return charCount(b.Comments)
}

// LineCount returns the proofread line count when the balloon has any
// proofread lines, otherwise the translation line count. Comments never
// count as lines.
func (b *Balloon) LineCount() int {
	if len(b.PR) > 0 {
		return len(b.PR)
	}
	return len(b.TL)
}

// Text renders the balloon as lossy script text: the proofread lines when
// any exist, otherwise the translation lines, each prefixed with the type
// header and joined with a // separator line. Comments and the image are
// dropped.
func (b *Balloon) Text() string {
	lines := b.TL
	if len(b.PR) > 0 {
		lines = b.PR
	}
	header := TypeHeader(b.Type)
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, header+line)
	}
	return strings.Join(parts, "\n//\n")
}

// Equal reports structural equality: same type tag, same lines in the
// same order in every category, and the same image.
func (b *Balloon) Equal(o *Balloon) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.Type != o.Type {
		return false
	}
	if !slices.Equal(b.TL, o.TL) || !slices.Equal(b.PR, o.PR) || !slices.Equal(b.Comments, o.Comments) {
		return false
	}
	if (b.Image == nil) != (o.Image == nil) {
		return false
	}
	if b.Image != nil {
		if b.Image.Kind != o.Image.Kind || !bytes.Equal(b.Image.Data, o.Image.Data) {
			return false
		}
	}
	return true
}

func charCount(lines []string) int {
	total := 0
	for _, line := range lines {
		total += utf8.RuneCountInString(line)
	}
	return total
}
