package encode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/remodel/dom"
	"github.com/signadot/remodel/format"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

func Encode(s *dom.Snapshot, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.YAMLFormat:
		d, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		d, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.TreeFormat:
		buf := bytes.NewBuffer(nil)
		es.outline(buf, s, "", "", 0)
		_, err := w.Write(buf.Bytes())
		return err
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

// MustString encodes s, panicking on error.
func MustString(s *dom.Snapshot, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(s, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func (es *EncState) outline(w *bytes.Buffer, s *dom.Snapshot, lead, childLead string, depth int) {
	w.WriteString(es.Color.Color(BranchColor, lead))
	w.WriteString(es.Color.Color(NameColor, s.Name))
	w.WriteString(" (")
	w.WriteString(es.Color.Color(ClassColor, s.ClassName))
	w.WriteString(")\n")
	if es.depth > 0 && depth >= es.depth {
		if len(s.Children) > 0 {
			w.WriteString(es.Color.Color(BranchColor, childLead+"└── "))
			fmt.Fprintf(w, "... %d more\n", len(s.Children))
		}
		return
	}
	for i, c := range s.Children {
		if i == len(s.Children)-1 {
			es.outline(w, c, childLead+"└── ", childLead+"    ", depth+1)
			continue
		}
		es.outline(w, c, childLead+"├── ", childLead+"│   ", depth+1)
	}
}
