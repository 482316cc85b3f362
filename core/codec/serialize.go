package codec

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/sff/core/encoding"
	"github.com/FocuswithJustin/sff/core/sff"
)

// CounterMode selects how Serialize treats the stored metadata counters.
type CounterMode int

const (
	// Recompute overwrites the counters from the balloon content before
	// writing. The default: stale counters in a written file are a defect.
	Recompute CounterMode = iota
	// AsStored writes the counters exactly as held on the document, even
	// if they no longer match the content.
	AsStored
)

// Serialize writes a document as SFF XML text.
//
// Elements are emitted in a fixed order, and each balloon's lines are
// grouped by category (all TL, then PR, then Comment, then the image)
// regardless of how a parsed source interleaved them. Line text and
// attribute values are escaped exactly inverse to the unescaping done at
// parse time. A balloon with an empty type tag is written without a type
// attribute.
//
// Serialization of a structurally valid document cannot fail.
func Serialize(doc *sff.Document, mode CounterMode) string {
	meta := doc.Meta
	if mode == Recompute {
		derived := sff.Document{Meta: doc.Meta, Balloons: doc.Balloons}
		derived.RecomputeMetadata()
		meta = derived.Meta
	}

	var sb strings.Builder
	sb.WriteString("<" + elemDocument + ">")
	writeMetadata(&sb, meta)
	sb.WriteString("<" + elemBalloons + ">")
	for i := range doc.Balloons {
		writeBalloon(&sb, &doc.Balloons[i])
	}
	sb.WriteString("</" + elemBalloons + ">")
	sb.WriteString("</" + elemDocument + ">")
	return sb.String()
}

func writeMetadata(sb *strings.Builder, m sff.Metadata) {
	sb.WriteString("<" + elemMetadata + ">")
	writeTextElement(sb, elemScript, m.ScriptVersion)
	writeTextElement(sb, elemApp, m.App)
	writeTextElement(sb, elemInfo, m.Info)
	writeCounterElement(sb, elemTLLength, m.TLLength)
	writeCounterElement(sb, elemPRLength, m.PRLength)
	writeCounterElement(sb, elemCMLength, m.CMLength)
	writeCounterElement(sb, elemBalloonCount, m.BalloonCount)
	writeCounterElement(sb, elemLineCount, m.LineCount)
	sb.WriteString("</" + elemMetadata + ">")
}

func writeBalloon(sb *strings.Builder, b *sff.Balloon) {
	sb.WriteString("<" + elemBalloon)
	if b.Type != "" {
		sb.WriteString(" " + attrType + "=\"" + encoding.EscapeXMLAttr(b.Type) + "\"")
	}
	sb.WriteString(">")
	for _, line := range b.TL {
		writeTextElement(sb, elemTL, line)
	}
	for _, line := range b.PR {
		writeTextElement(sb, elemPR, line)
	}
	for _, line := range b.Comments {
		writeTextElement(sb, elemComment, line)
	}
	if b.Image != nil {
		sb.WriteString("<" + elemImg)
		if b.Image.Kind != "" {
			sb.WriteString(" " + attrType + "=\"" + encoding.EscapeXMLAttr(b.Image.Kind) + "\"")
		}
		sb.WriteString(">")
		sb.WriteString(encoding.EncodeBase64(b.Image.Data))
		sb.WriteString("</" + elemImg + ">")
	}
	sb.WriteString("</" + elemBalloon + ">")
}

func writeTextElement(sb *strings.Builder, name, text string) {
	sb.WriteString("<" + name + ">")
	sb.WriteString(encoding.EscapeXMLText(text))
	sb.WriteString("</" + name + ">")
}

func writeCounterElement(sb *strings.Builder, name string, v int) {
	sb.WriteString("<" + name + ">")
	sb.WriteString(strconv.Itoa(v))
	sb.WriteString("</" + name + ">")
}
