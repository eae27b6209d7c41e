package scad

import (
	"strconv"
	"strings"
	"text/template"
)

// Scene holds everything the OpenSCAD program embeds: the sanitized label,
// the resolved font filename and the geometry parameters.
type Scene struct {
	Name            string
	Font            string
	TextHeight      float64
	BorderThickness float64
	WidthOption     float64
	Offset          float64
}

// HoleCutHeight extends the through-hole cylinder 0.1 beyond the tab on both
// ends so the boolean subtraction leaves no coplanar faces.
func (s Scene) HoleCutHeight() float64 {
	return s.BorderThickness + 0.2
}

// NegOffset is the hole tab's X translation, to the left of the text.
func (s Scene) NegOffset() float64 {
	return -s.Offset
}

// The model is two solids unioned: the text (a border shell extruded to the
// border thickness, under a full extrusion of the same text to the text
// height, both center-anchored) and the hole tab (cylinder d=8 minus a
// concentric through-hole d=4).
const sceneSrc = `$fn=12;

module text_part() {
    linear_extrude(height={{num .BorderThickness}})
        offset(delta={{num .BorderThickness}})
        text("{{.Name}}", size={{num .WidthOption}}, font="{{.Font}}", halign="center", valign="center");
    translate([0,0,{{num .BorderThickness}}])
        linear_extrude(height={{num .TextHeight}})
            text("{{.Name}}", size={{num .WidthOption}}, font="{{.Font}}", halign="center", valign="center");
}

module hole_tab() {
    difference() {
        cylinder(h={{num .BorderThickness}}, d=8);
        translate([0,0,-0.1])
            cylinder(h={{num .HoleCutHeight}}, d=4);
    }
}

union() {
    text_part();
    translate([{{num .NegOffset}}, 0, 0])
        hole_tab();
}
`

var sceneTmpl = template.Must(template.New("scene").
	Funcs(template.FuncMap{"num": formatNum}).
	Parse(sceneSrc))

// formatNum renders floats in plain decimal notation; OpenSCAD does not
// accept Go's default exponent forms for large values.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var literalGuard = strings.NewReplacer(`"`, "", `\`, "")

// Program renders the OpenSCAD source for the scene. The label is embedded
// as a string literal; quote and backslash characters are stripped here
// again so the literal cannot be broken even if upstream sanitization
// changes.
func (s Scene) Program() (string, error) {
	s.Name = literalGuard.Replace(s.Name)
	s.Font = literalGuard.Replace(s.Font)
	var b strings.Builder
	if err := sceneTmpl.Execute(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}
