package filing

import (
	"strconv"

	"github.com/paulgb/sec-data-parser/sgml"
)

// Document is one attached file within a submission.
type Document struct {
	Type        string  `json:"type"`
	Sequence    int     `json:"sequence"`
	Filename    *string `json:"filename,omitempty"`
	Description *string `json:"description,omitempty"`
	Flawed      bool    `json:"flawed,omitempty"`
	Body        *Body   `json:"body,omitempty"`
}

func decodeDocument(entity string, children []*sgml.Node) (*Document, error) {
	docType := newOne[string](entity, string(sgml.ValType))
	sequence := newOne[int](entity, string(sgml.ValSequence))
	filename := newOne[string](entity, string(sgml.ValFilename))
	description := newOne[string](entity, string(sgml.ValDescription))
	body := newOne[*Body](entity, "TEXT")
	flawed := false

	for _, child := range children {
		var err error
		switch child.Kind {
		case sgml.NodeValue:
			switch child.Value {
			case sgml.ValType:
				err = docType.set(child.Text)
			case sgml.ValSequence:
				err = setParsed(&sequence, child.Text, strconv.Atoi)
			case sgml.ValFilename:
				err = filename.set(child.Text)
			case sgml.ValDescription:
				err = description.set(child.Text)
			case sgml.ValFlawed:
				flawed = true
			default:
				err = unrecognized(entity, child)
			}
		case sgml.NodeText:
			var b *Body
			if b, err = DecodeBody(child.Text); err == nil {
				err = body.set(b)
			}
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	dt, err := docType.required()
	if err != nil {
		return nil, err
	}
	seq, err := sequence.required()
	if err != nil {
		return nil, err
	}
	return &Document{
		Type:        dt,
		Sequence:    seq,
		Filename:    filename.optional(),
		Description: description.optional(),
		Flawed:      flawed,
		Body:        deref(body.optional()),
	}, nil
}
