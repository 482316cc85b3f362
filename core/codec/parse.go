package codec

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/FocuswithJustin/sff/core/encoding"
	"github.com/FocuswithJustin/sff/core/errors"
	"github.com/FocuswithJustin/sff/core/sff"
)

// ParseOptions controls optional parse-time validation.
type ParseOptions struct {
	// ValidateCounters checks the stored metadata counters against counts
	// recomputed from the parsed content. On mismatch, parsing returns
	// the document together with an error wrapping ErrCounterMismatch;
	// the document is complete and usable either way. Off by default:
	// stored counters are a convenience echo, not a source of truth, and
	// producers are allowed to write stale ones.
	ValidateCounters bool
}

// Parse reads SFF XML text into a document.
//
// Balloon order and within-category line order follow document order.
// TL/PR/Comment elements interleaved inside one balloon are demultiplexed
// into the three category sequences. Unknown metadata elements and
// unknown balloon children are ignored; missing optional fields default
// to their zero value; a missing balloon type attribute parses as the
// empty tag.
//
// Malformed markup or wrong element nesting returns an error wrapping
// errors.ErrMalformed; a non-numeric counter field returns one wrapping
// errors.ErrInvalidMetadata. In both cases no document is returned.
func Parse(input string) (*sff.Document, error) {
	return ParseWithOptions(input, ParseOptions{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(input string, opts ParseOptions) (*sff.Document, error) {
	root, err := xmlquery.Parse(strings.NewReader(input))
	if err != nil {
		return nil, errors.NewSyntax("invalid XML", err)
	}

	docElem, err := documentElement(root)
	if err != nil {
		return nil, err
	}

	var metaElem, balloonsElem *xmlquery.Node
	for c := docElem.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		switch c.Data {
		case elemMetadata:
			if metaElem != nil {
				return nil, errors.NewSyntax("duplicate Metadata element", nil)
			}
			metaElem = c
		case elemBalloons:
			if balloonsElem != nil {
				return nil, errors.NewSyntax("duplicate Balloons element", nil)
			}
			balloonsElem = c
		default:
			return nil, errors.NewSyntax("unexpected element "+c.Data+" under Document", nil)
		}
	}
	if metaElem == nil {
		return nil, errors.NewSyntax("missing Metadata element", nil)
	}
	if balloonsElem == nil {
		return nil, errors.NewSyntax("missing Balloons element", nil)
	}

	doc := &sff.Document{}
	if err := parseMetadata(metaElem, &doc.Meta); err != nil {
		return nil, err
	}

	for c := balloonsElem.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if c.Data != elemBalloon {
			return nil, errors.NewSyntax("unexpected element "+c.Data+" under Balloons", nil)
		}
		b, err := parseBalloon(c)
		if err != nil {
			return nil, err
		}
		doc.Balloons = append(doc.Balloons, b)
	}

	if opts.ValidateCounters {
		if err := checkCounters(doc); err != nil {
			return doc, err
		}
	}
	return doc, nil
}

// documentElement returns the single root element, which must be named
// Document. Declarations, comments, and whitespace around it are fine.
func documentElement(root *xmlquery.Node) (*xmlquery.Node, error) {
	var elem *xmlquery.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if elem != nil {
			return nil, errors.NewSyntax("multiple root elements", nil)
		}
		elem = c
	}
	if elem == nil {
		return nil, errors.NewSyntax("no root element", nil)
	}
	if elem.Data != elemDocument {
		return nil, errors.NewSyntax("root element is "+elem.Data+", expected "+elemDocument, nil)
	}
	return elem, nil
}

func parseMetadata(n *xmlquery.Node, m *sff.Metadata) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		var err error
		switch c.Data {
		case elemScript:
			m.ScriptVersion = c.InnerText()
		case elemApp:
			m.App = c.InnerText()
		case elemInfo:
			m.Info = c.InnerText()
		case elemTLLength:
			err = parseCounter(c, &m.TLLength)
		case elemPRLength:
			err = parseCounter(c, &m.PRLength)
		case elemCMLength:
			err = parseCounter(c, &m.CMLength)
		case elemBalloonCount:
			err = parseCounter(c, &m.BalloonCount)
		case elemLineCount:
			err = parseCounter(c, &m.LineCount)
		default:
			// Unknown metadata fields are ignored for forward compatibility.
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// parseCounter parses a non-negative integer counter element. Empty text
// is treated like a missing field and leaves the counter at zero.
func parseCounter(n *xmlquery.Node, dst *int) error {
	text := strings.TrimSpace(n.InnerText())
	if text == "" {
		*dst = 0
		return nil
	}
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 {
		return errors.NewMetadata(n.Data, text)
	}
	*dst = v
	return nil
}

func parseBalloon(n *xmlquery.Node) (sff.Balloon, error) {
	b := sff.Balloon{Type: n.SelectAttr(attrType)}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		switch c.Data {
		case elemTL:
			text, err := lineText(c)
			if err != nil {
				return b, err
			}
			b.TL = append(b.TL, text)
		case elemPR:
			text, err := lineText(c)
			if err != nil {
				return b, err
			}
			b.PR = append(b.PR, text)
		case elemComment:
			text, err := lineText(c)
			if err != nil {
				return b, err
			}
			b.Comments = append(b.Comments, text)
		case elemImg:
			data, err := encoding.DecodeBase64(strings.TrimSpace(c.InnerText()))
			if err != nil {
				return b, errors.NewSyntax("invalid base64 in img element", err)
			}
			b.Image = &sff.Image{Kind: c.SelectAttr(attrType), Data: data}
		default:
			// Unknown balloon children are ignored for forward compatibility.
		}
	}
	return b, nil
}

// lineText returns the text content of a TL/PR/Comment element. Line
// elements hold text only; nested markup is wrong nesting.
func lineText(n *xmlquery.Node) (string, error) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return "", errors.NewSyntax("unexpected element "+c.Data+" inside "+n.Data, nil)
		}
	}
	return n.InnerText(), nil
}

// checkCounters compares the stored counters against counts derived from
// the parsed balloons and reports the first field that disagrees.
func checkCounters(doc *sff.Document) error {
	derived := sff.Document{Meta: doc.Meta, Balloons: doc.Balloons}
	derived.RecomputeMetadata()

	stored, actual := doc.Meta, derived.Meta
	checks := []struct {
		field          string
		stored, actual int
	}{
		{elemTLLength, stored.TLLength, actual.TLLength},
		{elemPRLength, stored.PRLength, actual.PRLength},
		{elemCMLength, stored.CMLength, actual.CMLength},
		{elemBalloonCount, stored.BalloonCount, actual.BalloonCount},
		{elemLineCount, stored.LineCount, actual.LineCount},
	}
	for _, c := range checks {
		if c.stored != c.actual {
			return errors.NewCounter(c.field, c.stored, c.actual)
		}
	}
	return nil
}
