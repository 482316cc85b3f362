package encoding

import (
	"bytes"
	"testing"
)

func TestEscapeXMLText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Hello World", "Hello World"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"less than", "a < b", "a &lt; b"},
		{"greater than", "a > b", "a &gt; b"},
		{"quotes preserved", `He said "hello"`, `He said "hello"`},
		{"all three", "<script>&</script>", "&lt;script&gt;&amp;&lt;/script&gt;"},
		{"unicode", "日本語 & émoji", "日本語 &amp; émoji"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeXMLText(tt.input)
			if got != tt.want {
				t.Errorf("EscapeXMLText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeXMLAttr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Dialogue", "Dialogue"},
		{"quote", `say "hi"`, "say &quot;hi&quot;"},
		{"entities and quote", `<a href="x">&`, "&lt;a href=&quot;x&quot;&gt;&amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeXMLAttr(tt.input)
			if got != tt.want {
				t.Errorf("EscapeXMLAttr(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBase64RoundTrip(t *testing.T) {
	if got := EncodeBase64([]byte("hi")); got != "aGk" {
		t.Errorf("EncodeBase64(hi) = %q, want unpadded %q", got, "aGk")
	}

	data := []byte{0x00, 0xff, 0xfe, 0x3f, 0x7e, 0x01}
	encoded := EncodeBase64(data)
	decoded, err := DecodeBase64(encoded)
	if err != nil {
		t.Fatalf("DecodeBase64(%q): %v", encoded, err)
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("round trip = %v, want %v", decoded, data)
	}

	if _, err := DecodeBase64("not base64!!"); err == nil {
		t.Error("DecodeBase64 accepted invalid input")
	}
}
