package filing

import (
	"fmt"
	"strings"

	"github.com/paulgb/sec-data-parser/uuencode"
)

// DataType classifies the outer wrapper of a document's TEXT payload.
type DataType string

const (
	DataTypeText DataType = "text"
	DataTypeXML  DataType = "xml"
	DataTypePDF  DataType = "pdf"
	DataTypeXBRL DataType = "xbrl"
)

func (d DataType) String() string {
	switch d {
	case DataTypeText:
		return "Plain Text"
	case DataTypeXML:
		return "XML"
	case DataTypePDF:
		return "PDF"
	case DataTypeXBRL:
		return "XBRL"
	}
	return string(d)
}

// wrappers maps a literal opening marker to its classification. The closing
// marker must match or the payload is rejected.
var wrappers = []struct {
	open, close string
	dataType    DataType
}{
	{"<XML>", "</XML>", DataTypeXML},
	{"<PDF>", "</PDF>", DataTypePDF},
	{"<XBRL>", "</XBRL>", DataTypeXBRL},
}

// Attachment is a uudecoded binary payload with its recovered filename.
type Attachment struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}

// Body is the decoded, classified payload of one document. Exactly one of
// Text and Binary is set.
type Body struct {
	Type   DataType    `json:"type"`
	Text   string      `json:"text,omitempty"`
	Binary *Attachment `json:"binary,omitempty"`
}

// DecodeBody classifies and decodes the raw content of a document's TEXT
// block. An invalid uuencoded payload is a hard error, not a text fallback.
func DecodeBody(raw string) (*Body, error) {
	content := strings.TrimSpace(raw)
	dataType := DataTypeText

	for _, w := range wrappers {
		if !strings.HasPrefix(content, w.open) {
			continue
		}
		inner, ok := strings.CutSuffix(strings.TrimPrefix(content, w.open), w.close)
		if !ok {
			return nil, fmt.Errorf("document body: %s wrapper is not closed by %s", w.open, w.close)
		}
		content = strings.TrimSpace(inner)
		dataType = w.dataType
		break
	}

	if uuencode.IsEncoded(content) {
		filename, data, err := uuencode.Decode(content)
		if err != nil {
			return nil, fmt.Errorf("document body: %w", err)
		}
		return &Body{Type: dataType, Binary: &Attachment{Filename: filename, Data: data}}, nil
	}
	return &Body{Type: dataType, Text: content}, nil
}

// Bytes returns the payload regardless of variant.
func (b *Body) Bytes() []byte {
	if b.Binary != nil {
		return b.Binary.Data
	}
	return []byte(b.Text)
}

func (b *Body) String() string {
	if b.Binary != nil {
		return fmt.Sprintf("binary file %s (%d bytes)", b.Binary.Filename, len(b.Binary.Data))
	}
	return fmt.Sprintf("text (%d bytes)", len(b.Text))
}
