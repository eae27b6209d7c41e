package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestWithDefaults(t *testing.T) {
	t.Run("all absent", func(t *testing.T) {
		p := GenerateRequest{}.WithDefaults()
		assert.Equal(t, "Keychain", p.Name)
		assert.Equal(t, "Pacifico:style=Regular", p.Font)
		assert.Equal(t, 3.0, p.TextHeight)
		assert.Equal(t, 2.0, p.BorderThickness)
		assert.Equal(t, 15.0, p.WidthOption)
	})

	t.Run("explicit values win", func(t *testing.T) {
		p := GenerateRequest{
			Name:        ptr("Alice"),
			Font:        ptr("Lobster:style=Regular"),
			TextHeight:  ptr(5.0),
			WidthOption: ptr(20.0),
		}.WithDefaults()
		assert.Equal(t, "Alice", p.Name)
		assert.Equal(t, "Lobster:style=Regular", p.Font)
		assert.Equal(t, 5.0, p.TextHeight)
		assert.Equal(t, 2.0, p.BorderThickness)
		assert.Equal(t, 20.0, p.WidthOption)
	})

	t.Run("explicit empty name is kept", func(t *testing.T) {
		p := GenerateRequest{Name: ptr("")}.WithDefaults()
		assert.Equal(t, "", p.Name)
	})
}

func TestValidate(t *testing.T) {
	valid := GenerateRequest{}.WithDefaults()
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*GenerationParams)
	}{
		{"zero textHeight", func(p *GenerationParams) { p.TextHeight = 0 }},
		{"negative textHeight", func(p *GenerationParams) { p.TextHeight = -3 }},
		{"zero borderThickness", func(p *GenerationParams) { p.BorderThickness = 0 }},
		{"negative widthOption", func(p *GenerationParams) { p.WidthOption = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GenerateRequest{}.WithDefaults()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.Equal(t, KindInvalidInput, KindOf(err))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknownFont, KindOf(NewPipelineError(KindUnknownFont, "nope", "")))
	assert.Equal(t, KindUnhandledFault, KindOf(assert.AnError))
}

func TestClientFault(t *testing.T) {
	assert.True(t, KindInvalidInput.ClientFault())
	assert.True(t, KindUnknownFont.ClientFault())
	assert.False(t, KindMissingFontAsset.ClientFault())
	assert.False(t, KindEngineExecutionFailed.ClientFault())
	assert.False(t, KindArtifactNotProduced.ClientFault())
	assert.False(t, KindUnhandledFault.ClientFault())
}
