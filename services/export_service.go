package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"inventory-app/apperrors"
	"inventory-app/models"
	"inventory-app/repositories"
)

type ExportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db}
}

// ExportInventory re-encodes every asset of the inventory into the legacy
// consumer's fixed-width line contract. Output is UTF-8, one line per asset,
// trailing terminator included.
func (s *ExportService) ExportInventory(inventoryID string) ([]byte, error) {
	inventoryID = strings.TrimSpace(inventoryID)
	if inventoryID == "" {
		return nil, fmt.Errorf("%w: inventory id is required", apperrors.ErrValidation)
	}

	assetRepo := repositories.NewAssetRepository(s.db)
	assets, err := assetRepo.GetAssetsByInventory(inventoryID)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, fmt.Errorf("%w: no assets for inventory %q", apperrors.ErrNotFound, inventoryID)
	}

	var b strings.Builder
	for _, asset := range assets {
		b.WriteString(formatExportLine(asset))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// formatExportLine lays one asset out on the legacy column contract: plate
// (12), origin location code (3), condition code (2), status code (2),
// assigned location code (3). The consumer expects both location codes, the
// original and the assigned one.
func formatExportLine(a models.Asset) string {
	return padLeftZeros(a.Plate, 12) +
		padLeftZeros(digitsOnly(a.OriginLocationCode), 3) +
		padLeftZeros(deref(a.ConditionCode), 2) +
		padLeftZeros(deref(a.StatusCode), 2) +
		padLeftZeros(deref(a.AssignedLocationCode), 3)
}

// padLeftZeros zero-pads to width. Overlong values keep the rightmost runes,
// preserving the least-significant digits.
func padLeftZeros(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[len(runes)-width:]
	}
	return strings.Repeat("0", width-len(runes)) + string(runes)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
