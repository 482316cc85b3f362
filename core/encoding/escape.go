// Package encoding provides the text escaping and binary-to-text codecs
// shared by the SFF writers and readers.
package encoding

import (
	"encoding/base64"
	"strings"
)

// EscapeXMLText escapes the basic XML entities for element text content.
// Exactly inverse to the unescaping the XML decoder performs on parse.
func EscapeXMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// EscapeXMLAttr escapes text for use in XML attribute values.
// Includes quote escaping in addition to basic XML entities.
func EscapeXMLAttr(s string) string {
	s = EscapeXMLText(s)
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// imageEncoding is the URL-safe unpadded base64 alphabet the original
// tooling writes into balloon img elements.
var imageEncoding = base64.URLEncoding.WithPadding(base64.NoPadding)

// EncodeBase64 encodes raw bytes with the URL-safe unpadded base64
// alphabet used for embedded balloon images.
func EncodeBase64(data []byte) string {
	return imageEncoding.EncodeToString(data)
}

// DecodeBase64 decodes text produced by EncodeBase64.
func DecodeBase64(s string) ([]byte, error) {
	return imageEncoding.DecodeString(s)
}
