package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/remodel/dom"
	"github.com/signadot/remodel/format"
	"github.com/signadot/remodel/parse"
)

var widgets = &dom.Snapshot{
	Name:      "game",
	ClassName: "DataModel",
	Children: []*dom.Snapshot{
		{Name: "Widgets", ClassName: "Folder", Children: []*dom.Snapshot{
			{Name: "Button1", ClassName: "Button"},
			{Name: "Button2", ClassName: "Button"},
		}},
		{Name: "Lighting", ClassName: "Lighting"},
	},
}

func TestEncodeTree(t *testing.T) {
	tests := []struct {
		name string
		opts []EncodeOption
		want string
	}{
		{
			name: "full",
			want: `game (DataModel)
├── Widgets (Folder)
│   ├── Button1 (Button)
│   └── Button2 (Button)
└── Lighting (Lighting)
`,
		},
		{
			name: "depth",
			opts: []EncodeOption{Depth(1)},
			want: `game (DataModel)
├── Widgets (Folder)
│   └── ... 2 more
└── Lighting (Lighting)
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]EncodeOption{EncodeFormat(format.TreeFormat)}, tt.opts...)
			got := MustString(widgets, opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tree (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeParse(t *testing.T) {
	for _, f := range []format.Format{format.YAMLFormat, format.JSONFormat} {
		t.Run(f.String(), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(widgets, buf, EncodeFormat(f)); err != nil {
				t.Fatal(err)
			}
			got, err := parse.Parse(buf.Bytes(), parse.ParseFormat(f), parse.ParseStrict(true))
			if err != nil {
				t.Fatalf("parse %s: %v\n%s", f, err, buf)
			}
			if diff := cmp.Diff(widgets, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeBadFormat(t *testing.T) {
	err := Encode(widgets, bytes.NewBuffer(nil), EncodeFormat(format.Format(99)))
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("Encode() = %v, want %v", err, format.ErrBadFormat)
	}
}

func TestColorsNil(t *testing.T) {
	var c *Colors
	if got := c.Color(NameColor, "x"); got != "x" {
		t.Errorf("nil Colors = %q", got)
	}
}
