// Package container frames SFF documents for storage: raw XML, zlib or
// xz compressed XML, and the lossy script text. It works over io.Reader
// and io.Writer; opening files is the caller's concern.
package container

import (
	"bytes"
	"compress/zlib"
	"io"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/sff/core/codec"
	"github.com/FocuswithJustin/sff/core/errors"
	"github.com/FocuswithJustin/sff/core/script"
	"github.com/FocuswithJustin/sff/core/sff"
)

// Format identifies a container encoding.
type Format int

const (
	// Raw is uncompressed SFF XML (.sffx).
	Raw Format = iota
	// Zlib is zlib-compressed SFF XML (.sffz), the original tool's
	// compressed output.
	Zlib
	// XZ is xz-compressed SFF XML (.sffxz).
	XZ
	// Script is the lossy plain-text projection (.txt).
	Script
)

// xzMagic is the 6-byte header every xz stream starts with.
var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case Zlib:
		return "zlib"
	case XZ:
		return "xz"
	case Script:
		return "script"
	default:
		return "unknown"
	}
}

// Extension returns the conventional file extension for the format,
// including the dot.
func (f Format) Extension() string {
	switch f {
	case Raw:
		return ".sffx"
	case Zlib:
		return ".sffz"
	case XZ:
		return ".sffxz"
	case Script:
		return ".txt"
	default:
		return ""
	}
}

// FormatForPath maps a file path's extension to its container format.
// Unknown extensions return an error wrapping errors.ErrUnsupported.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sffx":
		return Raw, nil
	case ".sffz":
		return Zlib, nil
	case ".sffxz":
		return XZ, nil
	case ".txt":
		return Script, nil
	default:
		return Raw, errors.NewUnsupported("file extension " + filepath.Ext(path))
	}
}

// Detect sniffs the container format from the leading bytes of data:
// zlib and xz streams by their magic bytes, a leading '<' (after
// whitespace) for raw XML, anything else script text.
func Detect(data []byte) Format {
	if len(data) > 0 && data[0] == 0x78 {
		return Zlib
	}
	if bytes.HasPrefix(data, xzMagic) {
		return XZ
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return Raw
	}
	return Script
}

// Pack writes doc to w in the given format. The XML formats serialize
// with recomputed counters; Script writes the lossy text projection.
func Pack(w io.Writer, doc *sff.Document, f Format) error {
	switch f {
	case Raw:
		_, err := io.WriteString(w, codec.Serialize(doc, codec.Recompute))
		return errors.Wrap(err, "write document")
	case Zlib:
		zw, err := zlib.NewWriterLevel(w, zlib.BestCompression)
		if err != nil {
			return errors.Wrap(err, "zlib writer")
		}
		if _, err := io.WriteString(zw, codec.Serialize(doc, codec.Recompute)); err != nil {
			zw.Close()
			return errors.Wrap(err, "write zlib stream")
		}
		return errors.Wrap(zw.Close(), "close zlib stream")
	case XZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return errors.Wrap(err, "xz writer")
		}
		if _, err := io.WriteString(xw, codec.Serialize(doc, codec.Recompute)); err != nil {
			xw.Close()
			return errors.Wrap(err, "write xz stream")
		}
		return errors.Wrap(xw.Close(), "close xz stream")
	case Script:
		_, err := io.WriteString(w, doc.Text())
		return errors.Wrap(err, "write script text")
	default:
		return errors.NewUnsupported("container format")
	}
}

// Unpack reads a document from r in the given format.
func Unpack(r io.Reader, f Format) (*sff.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read container")
	}
	return unpack(data, f)
}

// UnpackDetect reads a document from r, detecting the container format
// from the stream's leading bytes.
func UnpackDetect(r io.Reader) (*sff.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read container")
	}
	return unpack(data, Detect(data))
}

func unpack(data []byte, f Format) (*sff.Document, error) {
	switch f {
	case Raw:
		return codec.Parse(string(data))
	case Zlib:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "zlib reader")
		}
		defer zr.Close()
		xmlData, err := io.ReadAll(zr)
		if err != nil {
			return nil, errors.Wrap(err, "read zlib stream")
		}
		return codec.Parse(string(xmlData))
	case XZ:
		xr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "xz reader")
		}
		xmlData, err := io.ReadAll(xr)
		if err != nil {
			return nil, errors.Wrap(err, "read xz stream")
		}
		return codec.Parse(string(xmlData))
	case Script:
		return script.Parse(string(data)), nil
	default:
		return nil, errors.NewUnsupported("container format")
	}
}
