package filing

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeBodyPlainText(t *testing.T) {
	body, err := DecodeBody("This is the filing text.\nSecond line.\n")
	if err != nil {
		t.Fatalf("DecodeBody: %v", err)
	}
	if body.Type != DataTypeText {
		t.Errorf("type = %s, want text", body.Type)
	}
	if body.Binary != nil {
		t.Error("plain text decoded as binary")
	}
	if !strings.Contains(body.Text, "Second line.") {
		t.Errorf("text = %q", body.Text)
	}
}

func TestDecodeBodyWrappers(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    DataType
		payload string
	}{
		{"xml", "<XML>\n<ownershipDocument/>\n</XML>", DataTypeXML, "<ownershipDocument/>"},
		{"xbrl", "<XBRL>\n<xbrl/>\n</XBRL>", DataTypeXBRL, "<xbrl/>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := DecodeBody(tt.raw)
			if err != nil {
				t.Fatalf("DecodeBody: %v", err)
			}
			if body.Type != tt.want {
				t.Errorf("type = %s, want %s", body.Type, tt.want)
			}
			if body.Text != tt.payload {
				t.Errorf("payload = %q, want %q", body.Text, tt.payload)
			}
		})
	}
}

func TestDecodeBodyUnclosedWrapper(t *testing.T) {
	if _, err := DecodeBody("<XML>\n<doc/>\n"); err == nil {
		t.Fatal("unclosed wrapper succeeded, want error")
	}
}

func TestDecodeBodyUuencoded(t *testing.T) {
	raw := strings.Join([]string{
		"<PDF>",
		"begin 644 report.pdf",
		"#0V%T",
		"`",
		"end",
		"</PDF>",
	}, "\n")

	body, err := DecodeBody(raw)
	if err != nil {
		t.Fatalf("DecodeBody: %v", err)
	}
	if body.Type != DataTypePDF {
		t.Errorf("type = %s, want pdf", body.Type)
	}
	if body.Binary == nil {
		t.Fatal("uuencoded payload decoded as text")
	}
	if body.Binary.Filename != "report.pdf" {
		t.Errorf("filename = %q, want report.pdf", body.Binary.Filename)
	}
	if !bytes.Equal(body.Binary.Data, []byte("Cat")) {
		t.Errorf("data = %q", body.Binary.Data)
	}
	if !bytes.Equal(body.Bytes(), []byte("Cat")) {
		t.Errorf("Bytes() = %q", body.Bytes())
	}
}

func TestDecodeBodyCorruptUuencode(t *testing.T) {
	// A begin header commits the payload to uudecoding; corruption is a hard
	// error rather than a text fallback.
	raw := "begin 644 report.pdf\n#0V%T\n"
	if _, err := DecodeBody(raw); err == nil {
		t.Fatal("corrupt uuencode succeeded, want error")
	}
}
