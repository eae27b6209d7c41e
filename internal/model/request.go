package model

import "fmt"

const (
	DefaultName            = "Keychain"
	DefaultFont            = "Pacifico:style=Regular"
	DefaultTextHeight      = 3.0
	DefaultBorderThickness = 2.0
	DefaultWidthOption     = 15.0
)

// GenerateRequest is the JSON body of POST /generate-stl. All fields are
// optional; pointers distinguish an absent field from an explicit zero value.
type GenerateRequest struct {
	Name            *string  `json:"name"`
	Font            *string  `json:"font"`
	TextHeight      *float64 `json:"textHeight"`
	BorderThickness *float64 `json:"borderThickness"`
	WidthOption     *float64 `json:"widthOption"`
}

// GenerationParams is a fully defaulted request, owned by one pipeline run.
type GenerationParams struct {
	Name            string
	Font            string
	TextHeight      float64
	BorderThickness float64
	WidthOption     float64
}

// WithDefaults fills absent fields. An empty name present in the payload is
// kept as-is; only a missing field falls back to the default label.
func (r GenerateRequest) WithDefaults() GenerationParams {
	p := GenerationParams{
		Name:            DefaultName,
		Font:            DefaultFont,
		TextHeight:      DefaultTextHeight,
		BorderThickness: DefaultBorderThickness,
		WidthOption:     DefaultWidthOption,
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Font != nil {
		p.Font = *r.Font
	}
	if r.TextHeight != nil {
		p.TextHeight = *r.TextHeight
	}
	if r.BorderThickness != nil {
		p.BorderThickness = *r.BorderThickness
	}
	if r.WidthOption != nil {
		p.WidthOption = *r.WidthOption
	}
	return p
}

// Validate rejects non-positive geometry parameters. No upper bounds are
// enforced.
func (p GenerationParams) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"textHeight", p.TextHeight},
		{"borderThickness", p.BorderThickness},
		{"widthOption", p.WidthOption},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return NewPipelineError(KindInvalidInput,
				fmt.Sprintf("%s must be a positive number", c.field), "")
		}
	}
	return nil
}
