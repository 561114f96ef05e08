package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDetector struct {
	lines []string
	err   error
}

func (f *fakeDetector) DetectLines(string) ([]string, error) { return f.lines, f.err }

func TestParseMenuLines(t *testing.T) {
	lines := []string{
		"MAINS",
		"Tacos al Pastor 12.50",
		"Three corn tortillas with marinated pork",
		"Enchiladas Verdes $10",
		"DRINKS",
		"Horchata 3,50",
	}
	got := ParseMenuLines(lines)

	require.Len(t, got, 3)

	assert.Equal(t, "Tacos al Pastor", got[0].Name)
	assert.Equal(t, 12.50, got[0].Price)
	assert.Equal(t, "Mains", got[0].CategoryName)
	assert.Equal(t, "Three corn tortillas with marinated pork", got[0].Description)

	assert.Equal(t, "Enchiladas Verdes", got[1].Name)
	assert.Equal(t, 10.0, got[1].Price)
	assert.Equal(t, "Mains", got[1].CategoryName)

	assert.Equal(t, "Horchata", got[2].Name)
	assert.Equal(t, 3.50, got[2].Price)
	assert.Equal(t, "Drinks", got[2].CategoryName)
}

func TestParseMenuLinesEmptyAndNoise(t *testing.T) {
	assert.Empty(t, ParseMenuLines(nil))

	got := ParseMenuLines([]string{"", "   ", "just some prose with no price"})
	assert.Empty(t, got)
}

func TestParseMenuLinesNoCategory(t *testing.T) {
	got := ParseMenuLines([]string{"Espresso 2.00"})
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].CategoryName)
}

func TestExtractMenuItemsUsesDetector(t *testing.T) {
	svc := NewExtractionService(&fakeDetector{lines: []string{"Soup 4.00"}})
	got, err := svc.ExtractMenuItems("data:image/jpeg;base64,xxx")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Soup", got[0].Name)
}

func TestExtractMenuItemsDetectorError(t *testing.T) {
	svc := NewExtractionService(&fakeDetector{err: assert.AnError})
	_, err := svc.ExtractMenuItems("data:image/jpeg;base64,xxx")
	assert.Error(t, err)
}
