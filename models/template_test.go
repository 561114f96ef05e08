package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTemplateConfigEmpty(t *testing.T) {
	got := ResolveTemplateConfig(TemplateConfig{})
	want := DefaultTemplateConfig()

	assert.Equal(t, want.PrimaryColor, got.PrimaryColor)
	assert.Equal(t, "#FFFFFF", got.BackgroundColor)
	assert.Equal(t, "8px", got.BorderRadius)
	assert.Equal(t, "Inter", got.FontFamilyPrimary)
	assert.Equal(t, "Lora", got.FontFamilySecondary)
	assert.Equal(t, "list", got.LayoutStyle)
	assert.Equal(t, "elevated", got.CardStyle)
	assert.Equal(t, "comfortable", got.Spacing)
	assert.Equal(t, "centered", got.HeaderStyle)
	assert.Equal(t, "simple", got.FooterStyle)
	require.NotNil(t, got.ShowImages)
	require.NotNil(t, got.ShowDescriptions)
	require.NotNil(t, got.ShowPrices)
	assert.True(t, *got.ShowImages)
	assert.True(t, *got.ShowDescriptions)
	assert.True(t, *got.ShowPrices)
}

func TestResolveTemplateConfigIdempotent(t *testing.T) {
	full := DefaultTemplateConfig()
	full.PrimaryColor = "#123456"
	full.LayoutStyle = "grid"

	got := ResolveTemplateConfig(full)
	assert.Equal(t, full, got)
	assert.Equal(t, got, ResolveTemplateConfig(got))
}

func TestResolveTemplateConfigFalseVisibilitySurvives(t *testing.T) {
	f := false
	got := ResolveTemplateConfig(TemplateConfig{ShowPrices: &f})

	require.NotNil(t, got.ShowPrices)
	assert.False(t, *got.ShowPrices, "an explicit false must not be treated as unset")
	// every other field still defaults
	assert.Equal(t, "#1F2937", got.PrimaryColor)
	require.NotNil(t, got.ShowImages)
	assert.True(t, *got.ShowImages)
}

func TestResolveTemplateConfigPartialMerge(t *testing.T) {
	got := ResolveTemplateConfig(TemplateConfig{
		PrimaryColor: "#000000",
		LayoutStyle:  "cards",
	})
	assert.Equal(t, "#000000", got.PrimaryColor)
	assert.Equal(t, "cards", got.LayoutStyle)
	assert.Equal(t, "#F9FAFB", got.SecondaryColor)
	assert.Equal(t, "elevated", got.CardStyle)
}

func TestResolveTemplateConfigPassesInvalidThrough(t *testing.T) {
	// no validation: an unknown layout value reaches the renderer untouched
	got := ResolveTemplateConfig(TemplateConfig{LayoutStyle: "mosaic", PrimaryColor: "purple"})
	assert.Equal(t, "mosaic", got.LayoutStyle)
	assert.Equal(t, "purple", got.PrimaryColor)
}
