package textfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00012", "12"},
		{"000", "0"},
		{"", "0"},
		{"  0042  ", "42"},
		{"1234567890", "1234567890"},
		{"0", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCode(tt.in), "NormalizeCode(%q)", tt.in)
	}
}

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"000000", ""},
		{"0007A", "7A"},
		{"  000123  ", "123"},
		{"ABC123", "ABC123"},
		{"0", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePlate(tt.in), "NormalizePlate(%q)", tt.in)
	}
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func assetLine(code, plate, description, locationName, conditionName, statusName, origin, condition, status string) string {
	return pad(code, 10) + pad(plate, 12) + pad(description, 50) +
		pad(locationName, 30) + pad(conditionName, 15) + pad(statusName, 30) +
		pad(origin, 3) + pad(condition, 2) + pad(status, 2)
}

func TestExtractLocation(t *testing.T) {
	rec, err := ExtractLocation("001" + pad("Sala de Reuniões", 30))
	require.NoError(t, err)
	assert.Equal(t, "001", rec.Code)
	assert.Equal(t, "Sala de Reuniões", rec.Name)
}

func TestExtractLocationTooShort(t *testing.T) {
	_, err := ExtractLocation("X")
	assert.Error(t, err)
}

func TestExtractStatus(t *testing.T) {
	rec, err := ExtractStatus("01" + pad("Em uso", 30))
	require.NoError(t, err)
	assert.Equal(t, "01", rec.Code)
	assert.Equal(t, "Em uso", rec.Name)
}

func TestExtractStatusTooShort(t *testing.T) {
	_, err := ExtractStatus("1")
	assert.Error(t, err)
}

func TestExtractAsset(t *testing.T) {
	line := assetLine("0000001234", "000000000042", "Mesa de escritório", "Almoxarifado",
		"Bom", "Em uso", "003", "02", "01")
	require.Len(t, []rune(line), 154)

	rec, err := ExtractAsset(line)
	require.NoError(t, err)

	assert.Equal(t, "1234", rec.Code)
	assert.Equal(t, "42", rec.Plate)
	assert.Equal(t, "Mesa de escritório", rec.Description)
	assert.Equal(t, "Almoxarifado", rec.LocationName)
	assert.Equal(t, "Bom", rec.ConditionName)
	assert.Equal(t, "Em uso", rec.StatusName)
	assert.Equal(t, "003", rec.OriginLocationCode)
	assert.Equal(t, "02", rec.ConditionCode)
	assert.Equal(t, "01", rec.StatusCode)
}

func TestExtractAssetAllZeroPlate(t *testing.T) {
	line := assetLine("0000000000", "000000000000", "Cadeira", "", "", "", "001", "", "")

	rec, err := ExtractAsset(line)
	require.NoError(t, err)

	assert.Equal(t, "0", rec.Code, "all-zero code collapses to the unassigned sentinel")
	assert.Equal(t, "", rec.Plate, "all-zero plate means no plate")
}

func TestExtractAssetShortLineClamps(t *testing.T) {
	// Lines carrying at least the code field extract; missing tail columns
	// come back empty.
	line := pad("0000000077", 10) + pad("PLACA1", 12)

	rec, err := ExtractAsset(line)
	require.NoError(t, err)
	assert.Equal(t, "77", rec.Code)
	assert.Equal(t, "PLACA1", rec.Plate)
	assert.Equal(t, "", rec.Description)
	assert.Equal(t, "", rec.OriginLocationCode)
}

func TestExtractAssetTooShort(t *testing.T) {
	_, err := ExtractAsset("123")
	assert.Error(t, err)
}
