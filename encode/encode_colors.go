package encode

import "github.com/fatih/color"

type ColorAttr int

const (
	NameColor ColorAttr = iota
	ClassColor
	BranchColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			NameColor:   color.RGB(8, 196, 16).SprintfFunc(),
			ClassColor:  color.RGB(128, 168, 196).SprintfFunc(),
			BranchColor: color.RGB(96, 96, 96).SprintfFunc(),
		},
	}
}

func colorDefault(f string, args ...any) string {
	return color.New(color.Reset).Sprintf(f, args...)
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	if c == nil {
		return s
	}
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
