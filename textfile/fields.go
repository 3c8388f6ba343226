package textfile

import (
	"fmt"
	"strings"
)

// Column is a fixed character range inside a feed line, 0-indexed,
// end-exclusive. Offsets count characters, not bytes: the decoder may have
// produced multi-byte runes for accented text.
type Column struct {
	Start int
	End   int
}

// Column maps for the three feed layouts.
var (
	LocationColumns = struct{ Code, Name Column }{
		Code: Column{0, 3},
		Name: Column{3, 33},
	}

	StatusColumns = struct{ Code, Name Column }{
		Code: Column{0, 2},
		Name: Column{2, 32},
	}

	AssetColumns = struct {
		Code, Plate, Description, LocationName, ConditionName,
		StatusName, OriginLocationCode, ConditionCode, StatusCode Column
	}{
		Code:               Column{0, 10},
		Plate:              Column{10, 22},
		Description:        Column{22, 72},
		LocationName:       Column{72, 102},
		ConditionName:      Column{102, 117},
		StatusName:         Column{117, 147},
		OriginLocationCode: Column{147, 150},
		ConditionCode:      Column{150, 152},
		StatusCode:         Column{152, 154},
	}
)

type LocationRecord struct {
	Code string
	Name string
}

type StatusRecord struct {
	Code string
	Name string
}

type AssetRecord struct {
	Code               string
	Plate              string
	Description        string
	LocationName       string
	ConditionName      string
	StatusName         string
	OriginLocationCode string
	ConditionCode      string
	StatusCode         string
}

// NormalizeCode strips leading zeros from an asset code. All zeros or blank
// means the canonical "unassigned" code "0", never the empty string: equality
// joins elsewhere rely on "0".
func NormalizeCode(s string) string {
	s = strings.TrimLeft(strings.TrimSpace(s), "0")
	if s == "" {
		return "0"
	}
	return s
}

// NormalizePlate strips leading zeros from a plate. Empty or all zeros means
// "no plate", which stays the empty string: a plate has no "0" sentinel.
func NormalizePlate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.TrimLeft(s, "0")
}

// field slices a column out of the line and trims surrounding whitespace.
// Short lines clamp instead of failing, matching substring semantics of the
// legacy consumer.
func field(line string, c Column) string {
	runes := []rune(line)
	if c.Start >= len(runes) {
		return ""
	}
	end := c.End
	if end > len(runes) {
		end = len(runes)
	}
	return strings.TrimSpace(string(runes[c.Start:end]))
}

// requireWidth rejects lines too short to carry the mandatory code field.
func requireWidth(line string, min int) error {
	if len([]rune(line)) < min {
		return fmt.Errorf("line has %d characters, need at least %d", len([]rune(line)), min)
	}
	return nil
}

func ExtractLocation(line string) (LocationRecord, error) {
	if err := requireWidth(line, LocationColumns.Code.End); err != nil {
		return LocationRecord{}, err
	}
	return LocationRecord{
		Code: field(line, LocationColumns.Code),
		Name: field(line, LocationColumns.Name),
	}, nil
}

func ExtractStatus(line string) (StatusRecord, error) {
	if err := requireWidth(line, StatusColumns.Code.End); err != nil {
		return StatusRecord{}, err
	}
	return StatusRecord{
		Code: field(line, StatusColumns.Code),
		Name: field(line, StatusColumns.Name),
	}, nil
}

func ExtractAsset(line string) (AssetRecord, error) {
	if err := requireWidth(line, AssetColumns.Code.End); err != nil {
		return AssetRecord{}, err
	}
	return AssetRecord{
		Code:               NormalizeCode(field(line, AssetColumns.Code)),
		Plate:              NormalizePlate(field(line, AssetColumns.Plate)),
		Description:        field(line, AssetColumns.Description),
		LocationName:       field(line, AssetColumns.LocationName),
		ConditionName:      field(line, AssetColumns.ConditionName),
		StatusName:         field(line, AssetColumns.StatusName),
		OriginLocationCode: field(line, AssetColumns.OriginLocationCode),
		ConditionCode:      field(line, AssetColumns.ConditionCode),
		StatusCode:         field(line, AssetColumns.StatusCode),
	}, nil
}
