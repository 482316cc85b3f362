package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/sff/core/codec"
	"github.com/FocuswithJustin/sff/core/container"
	"github.com/FocuswithJustin/sff/core/sff"
)

func writeSample(t *testing.T, path string, format container.Format) *sff.Document {
	t.Helper()
	d := sff.NewDocument()
	d.Balloons = append(d.Balloons,
		sff.Balloon{Type: sff.TypeOT, TL: []string{"num", "nam"}},
		sff.Balloon{Type: sff.TypeDialogue, TL: []string{"num"}},
	)
	if err := writeDocument(path, d, format); err != nil {
		t.Fatalf("writeDocument: %v", err)
	}
	d.RecomputeMetadata()
	return d
}

func TestReadDocumentByExtension(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []container.Format{container.Raw, container.Zlib, container.XZ} {
		t.Run(format.String(), func(t *testing.T) {
			path := filepath.Join(dir, "chapter"+format.Extension())
			want := writeSample(t, path, format)

			got, err := readDocument(path)
			if err != nil {
				t.Fatalf("readDocument: %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("document changed across write/read:\nin:  %+v\nout: %+v", want, got)
			}
		})
	}
}

func TestReadDocumentUnknownExtensionDetects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapter.bak")
	want := writeSample(t, path, container.Zlib)

	got, err := readDocument(path)
	if err != nil {
		t.Fatalf("readDocument: %v", err)
	}
	if !got.Equal(want) {
		t.Error("detected read does not match written document")
	}
}

func TestConvertCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.sffx")
	out := filepath.Join(dir, "out.sffz")
	want := writeSample(t, in, container.Raw)

	cmd := ConvertCmd{In: in, Out: out}
	if err := cmd.Run(); err != nil {
		t.Fatalf("ConvertCmd.Run: %v", err)
	}

	got, err := readDocument(out)
	if err != nil {
		t.Fatalf("readDocument: %v", err)
	}
	if !got.Equal(want) {
		t.Error("converted document does not match the input")
	}
	if codec.Fingerprint(got) != codec.Fingerprint(want) {
		t.Error("fingerprint changed across conversion")
	}
}

func TestConvertCmdRejectsUnknownOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.sffx")
	writeSample(t, in, container.Raw)

	cmd := ConvertCmd{In: in, Out: filepath.Join(dir, "out.docx")}
	if err := cmd.Run(); err == nil {
		t.Error("unknown output extension accepted")
	}
}

func TestFmtCmdCanonicalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.sffx")

	// Stale counters and interleaved lines, as a sloppy producer writes.
	raw := `<Document><Metadata><Script>v1</Script><TLLength>999</TLLength></Metadata><Balloons><Balloon><PR>p1</PR><TL>t1</TL></Balloon></Balloons></Document>`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := FmtCmd{Path: path}
	if err := cmd.Run(); err != nil {
		t.Fatalf("FmtCmd.Run: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	want := `<Document><Metadata><Script>v1</Script><App></App><Info></Info><TLLength>1</TLLength><PRLength>1</PRLength><CMLength>0</CMLength><BalloonCount>1</BalloonCount><LineCount>1</LineCount></Metadata><Balloons><Balloon><TL>t1</TL><PR>p1</PR></Balloon></Balloons></Document>`
	if got != want {
		t.Errorf("canonical form =\n%s\nwant\n%s", got, want)
	}
}
