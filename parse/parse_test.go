package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/remodel/dom"
	"github.com/signadot/remodel/format"
)

var widgets = &dom.Snapshot{
	Name:      "game",
	ClassName: "DataModel",
	Children: []*dom.Snapshot{
		{Name: "Widgets", ClassName: "Folder", Children: []*dom.Snapshot{
			{Name: "Button1", ClassName: "Button"},
		}},
	},
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []ParseOption
	}{
		{
			name: "yaml",
			in: `
name: game
class: DataModel
children:
  - name: Widgets
    class: Folder
    children:
      - name: Button1
        class: Button
`,
		},
		{
			name: "json",
			in: `{"name": "game", "class": "DataModel", "children": [
  {"name": "Widgets", "class": "Folder", "children": [
    {"name": "Button1", "class": "Button"}]}]}`,
			opts: []ParseOption{ParseJSON()},
		},
		{
			name: "json read as yaml",
			in:   `{"name": "game", "class": "DataModel", "children": [{"name": "Widgets", "class": "Folder", "children": [{"name": "Button1", "class": "Button"}]}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in), tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(widgets, got); diff != "" {
				t.Errorf("Parse() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []ParseOption
		want error
	}{
		{"empty", "  \n", nil, ErrEmpty},
		{"no class", "name: game\n", nil, ErrParse},
		{"child without class", "name: game\nclass: DataModel\nchildren:\n  - name: x\n", nil, ErrParse},
		{"bad yaml", "name: [", nil, ErrParse},
		{"bad json", `{"name": `, []ParseOption{ParseJSON()}, ErrParse},
		{"strict yaml", "name: game\nclass: DataModel\nsize: 3\n", []ParseOption{ParseStrict(true)}, ErrParse},
		{"strict json", `{"name": "game", "class": "DataModel", "size": 3}`, []ParseOption{ParseJSON(), ParseStrict(true)}, ErrParse},
		{"tree format", "game (DataModel)\n", []ParseOption{ParseFormat(format.TreeFormat)}, format.ErrBadFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.in), tt.opts...); !errors.Is(err, tt.want) {
				t.Errorf("Parse() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseTree(t *testing.T) {
	tree, err := ParseTree([]byte("name: game\nclass: DataModel\nchildren:\n  - {name: A, class: Folder}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tree.Len())
	}
}
