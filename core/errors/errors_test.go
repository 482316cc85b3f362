package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestSyntaxError(t *testing.T) {
	underlying := stderrors.New("XML syntax error on line 1")
	err := NewSyntax("invalid XML", underlying)

	if !Is(err, ErrMalformed) {
		t.Error("SyntaxError does not match ErrMalformed")
	}
	if !Is(err, underlying) {
		t.Error("SyntaxError does not match its underlying error")
	}
	if !strings.Contains(err.Error(), "invalid XML") || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("unexpected message: %s", err.Error())
	}

	bare := NewSyntax("missing Metadata element", nil)
	if !Is(bare, ErrMalformed) {
		t.Error("bare SyntaxError does not match ErrMalformed")
	}
}

func TestMetadataError(t *testing.T) {
	err := NewMetadata("TLLength", "abc")

	if !Is(err, ErrInvalidMetadata) {
		t.Error("MetadataError does not match ErrInvalidMetadata")
	}
	if Is(err, ErrMalformed) {
		t.Error("MetadataError matches ErrMalformed")
	}
	want := `invalid metadata: TLLength: not a non-negative integer: "abc"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var me *MetadataError
	if !As(err, &me) || me.Field != "TLLength" {
		t.Error("As did not recover the MetadataError")
	}
}

func TestCounterError(t *testing.T) {
	err := NewCounter("BalloonCount", 5, 2)

	if !Is(err, ErrCounterMismatch) {
		t.Error("CounterError does not match ErrCounterMismatch")
	}
	want := "counter mismatch: BalloonCount: stored 5, actual 2"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUnsupportedError(t *testing.T) {
	err := NewUnsupported("file extension .docx")

	if !Is(err, ErrUnsupported) {
		t.Error("UnsupportedError does not match ErrUnsupported")
	}
	if err.Error() != "unsupported: file extension .docx" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}

	base := stderrors.New("boom")
	wrapped := Wrap(base, "reading container")
	if !Is(wrapped, base) {
		t.Error("Wrap lost the underlying error")
	}
	if wrapped.Error() != "reading container: boom" {
		t.Errorf("unexpected message: %s", wrapped.Error())
	}

	wrapped = Wrapf(ErrCounterMismatch, "%d counter(s) out of sync", 3)
	if !Is(wrapped, ErrCounterMismatch) {
		t.Error("Wrapf lost the sentinel")
	}
}
