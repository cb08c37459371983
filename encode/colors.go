package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/cs-format/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: TagColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		if t.IsAttr() {
			colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		} else {
			colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		}
	}
	able := Colorable{Attr: ValueColor}
	for _, t := range []ir.Type{ir.IntType, ir.Int64Type, ir.FloatType, ir.AttrIntType, ir.AttrInt64Type, ir.AttrFloatType} {
		able.Type = t
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able.Type = ir.TimestampType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.TextType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Type = ir.AttrTextType
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()

	able.Type = ir.RawType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able = Colorable{Type: ir.BranchType, Attr: FieldColor}
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Type = ir.RootType
	colors.Map[able] = color.New(color.Bold).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
