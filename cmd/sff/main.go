// Command sff is the CLI for SFF scanlation script files. It converts
// between the container formats, inspects document statistics, validates
// stored counters, and rewrites files in canonical form.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/sff/core/codec"
	"github.com/FocuswithJustin/sff/core/container"
	"github.com/FocuswithJustin/sff/core/errors"
	"github.com/FocuswithJustin/sff/core/sff"
	"github.com/FocuswithJustin/sff/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for sff.
var CLI struct {
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogJSON  bool   `name:"log-json" help:"Emit logs as JSON"`

	Convert  ConvertCmd  `cmd:"" help:"Convert a file between SFF container formats"`
	Info     InfoCmd     `cmd:"" help:"Show document counters and statistics"`
	Validate ValidateCmd `cmd:"" help:"Check stored metadata counters against content"`
	Fmt      FmtCmd      `cmd:"" help:"Rewrite a file in canonical form with recomputed counters"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// ConvertCmd converts between container formats, inferring each side's
// format from its file extension.
type ConvertCmd struct {
	In  string `arg:"" help:"Input file (.sffx, .sffz, .sffxz, or .txt)" type:"existingfile"`
	Out string `arg:"" help:"Output file; format chosen by extension" type:"path"`
}

func (c *ConvertCmd) Run() error {
	doc, err := readDocument(c.In)
	if err != nil {
		return err
	}
	outFormat, err := container.FormatForPath(c.Out)
	if err != nil {
		return err
	}
	slog.Debug("converting document", "in", c.In, "out", c.Out, "format", outFormat.String(), "balloons", doc.Len())
	return writeDocument(c.Out, doc, outFormat)
}

// InfoCmd prints document statistics.
type InfoCmd struct {
	Path string `arg:"" help:"Input file" type:"existingfile"`
	JSON bool   `name:"json" help:"Output as JSON"`
}

// documentInfo is the JSON shape of the info command's output.
type documentInfo struct {
	ScriptVersion string `json:"script_version"`
	App           string `json:"app,omitempty"`
	Info          string `json:"info,omitempty"`
	Balloons      int    `json:"balloons"`
	TLLines       int    `json:"tl_lines"`
	PRLines       int    `json:"pr_lines"`
	CommentLines  int    `json:"comment_lines"`
	Lines         int    `json:"lines"`
	TLChars       int    `json:"tl_chars"`
	PRChars       int    `json:"pr_chars"`
	CommentChars  int    `json:"comment_chars"`
	Fingerprint   string `json:"fingerprint"`
}

func (c *InfoCmd) Run() error {
	doc, err := readDocument(c.Path)
	if err != nil {
		return err
	}
	doc.RecomputeMetadata()

	info := documentInfo{
		ScriptVersion: doc.Meta.ScriptVersion,
		App:           doc.Meta.App,
		Info:          doc.Meta.Info,
		Balloons:      doc.Meta.BalloonCount,
		TLLines:       doc.Meta.TLLength,
		PRLines:       doc.Meta.PRLength,
		CommentLines:  doc.Meta.CMLength,
		Lines:         doc.Meta.LineCount,
		TLChars:       doc.TLChars(),
		PRChars:       doc.PRChars(),
		CommentChars:  doc.CommentChars(),
		Fingerprint:   codec.Fingerprint(doc),
	}

	if c.JSON {
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Script version: %s\n", info.ScriptVersion)
	if info.App != "" {
		fmt.Printf("App:            %s\n", info.App)
	}
	if info.Info != "" {
		fmt.Printf("Info:           %s\n", info.Info)
	}
	fmt.Printf("Balloons:       %d\n", info.Balloons)
	fmt.Printf("TL lines:       %d (%d chars)\n", info.TLLines, info.TLChars)
	fmt.Printf("PR lines:       %d (%d chars)\n", info.PRLines, info.PRChars)
	fmt.Printf("Comment lines:  %d (%d chars)\n", info.CommentLines, info.CommentChars)
	fmt.Printf("Lines:          %d\n", info.Lines)
	fmt.Printf("Fingerprint:    %s\n", info.Fingerprint)
	return nil
}

// ValidateCmd reports every stored counter that disagrees with the
// document content. Exits non-zero on any mismatch.
type ValidateCmd struct {
	Path string `arg:"" help:"Input file" type:"existingfile"`
}

func (c *ValidateCmd) Run() error {
	doc, err := readDocument(c.Path)
	if err != nil {
		return err
	}

	derived := sff.Document{Meta: doc.Meta, Balloons: doc.Balloons}
	derived.RecomputeMetadata()

	checks := []struct {
		name           string
		stored, actual int
	}{
		{"TLLength", doc.Meta.TLLength, derived.Meta.TLLength},
		{"PRLength", doc.Meta.PRLength, derived.Meta.PRLength},
		{"CMLength", doc.Meta.CMLength, derived.Meta.CMLength},
		{"BalloonCount", doc.Meta.BalloonCount, derived.Meta.BalloonCount},
		{"LineCount", doc.Meta.LineCount, derived.Meta.LineCount},
	}
	mismatches := 0
	for _, chk := range checks {
		if chk.stored != chk.actual {
			fmt.Printf("MISMATCH %s: stored %d, actual %d\n", chk.name, chk.stored, chk.actual)
			mismatches++
		}
	}
	if mismatches > 0 {
		return errors.Wrapf(errors.ErrCounterMismatch, "%d counter(s) out of sync", mismatches)
	}
	fmt.Println("OK: all counters match content")
	return nil
}

// FmtCmd rewrites a file in canonical form: recomputed counters,
// category-grouped lines, canonical escaping. The output keeps the input
// path's container format unless --out changes it.
type FmtCmd struct {
	Path string `arg:"" help:"Input file" type:"existingfile"`
	Out  string `name:"out" help:"Output file (default: rewrite in place)" type:"path"`
}

func (c *FmtCmd) Run() error {
	doc, err := readDocument(c.Path)
	if err != nil {
		return err
	}
	out := c.Out
	if out == "" {
		out = c.Path
	}
	format, err := container.FormatForPath(out)
	if err != nil {
		return err
	}
	return writeDocument(out, doc, format)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("sff version %s (%s)\n", version, sff.FormatVersion)
	return nil
}

// readDocument loads a document from a file, using the extension to pick
// the container format and falling back to content sniffing.
func readDocument(path string) (*sff.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read "+path)
	}
	if format, err := container.FormatForPath(path); err == nil {
		return container.Unpack(bytes.NewReader(data), format)
	}
	slog.Debug("unknown extension, detecting container format", "path", path)
	return container.UnpackDetect(bytes.NewReader(data))
}

func writeDocument(path string, doc *sff.Document, format container.Format) error {
	var buf bytes.Buffer
	if err := container.Pack(&buf, doc, format); err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, buf.Bytes(), 0644), "write "+path)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sff"),
		kong.Description("Work with SFF scanlation script files."),
		kong.UsageOnError(),
	)

	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.InitLogger(logging.LevelFromString(CLI.LogLevel), format)

	ctx.FatalIfErrorf(ctx.Run())
}
