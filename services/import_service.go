package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"inventory-app/apperrors"
	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/textfile"
	"inventory-app/types"
)

// SourceFile is one already-picked feed file: the raw bytes plus the name the
// role heuristic runs against.
type SourceFile struct {
	Name string
	Data []byte
}

// Events is the per-call subscription for import progress. Both callbacks are
// optional. Scoping the subscription to the call keeps concurrent imports
// from cross-talking.
type Events struct {
	Progress func(total, current int)
	Log      func(message string)
}

func (e Events) progress(total, current int) {
	if e.Progress != nil {
		e.Progress(total, current)
	}
}

func (e Events) log(message string) {
	if e.Log != nil {
		e.Log(message)
	}
}

type ImportResult struct {
	Inserted int `json:"inserted"`
	Read     int `json:"read"`
}

type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db}
}

// ImportInventory runs the whole pipeline: reset reference tables, load
// locations, load statuses, load assets tagged with the inventory id. Each
// stage commits its own transaction; a failure in the asset stage fails the
// import but earlier reference commits stand (callers retry the whole import,
// which is idempotent because the reset runs first).
func (s *ImportService) ImportInventory(files []SourceFile, inventoryID string, ev Events) (*ImportResult, error) {
	var fileAssets, fileLocations, fileStatuses *SourceFile
	for i := range files {
		name := strings.ToUpper(files[i].Name)
		switch {
		case strings.Contains(name, "BENS"):
			fileAssets = &files[i]
		case strings.Contains(name, "LOCAIS"):
			fileLocations = &files[i]
		case strings.Contains(name, "SITUACAO"):
			fileStatuses = &files[i]
		}
	}
	if fileAssets == nil || fileLocations == nil || fileStatuses == nil {
		return nil, fmt.Errorf("%w: all three source files (BENS, LOCAIS, SITUACAO) are required", apperrors.ErrValidation)
	}

	invRepo := repositories.NewInventoryRepository(s.db)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return invRepo.ResetReferenceTables(tx)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransaction, err)
	}

	if err := s.importLocations(fileLocations.Data, ev); err != nil {
		return nil, err
	}
	if err := s.importStatuses(fileStatuses.Data, ev); err != nil {
		return nil, err
	}

	result, err := s.importAssets(fileAssets.Data, inventoryID, ev)
	if err != nil {
		return nil, err
	}

	trimmedID := strings.TrimSpace(inventoryID)

	settings := repositories.NewSettingRepository(s.db)
	payload, _ := json.Marshal(map[string]string{"codigoInventario": trimmedID})
	if err := settings.Set(models.SettingActiveInventory, string(payload)); err != nil {
		return nil, err
	}
	if err := settings.Set(models.SettingImportEnabled, "true"); err != nil {
		return nil, err
	}

	importLog := models.ImportLog{
		ID:            types.SnowflakeID(idgen.GenerateID()),
		InventoryID:   trimmedID,
		ReadCount:     result.Read,
		InsertedCount: result.Inserted,
	}
	if err := s.db.Create(&importLog).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (s *ImportService) importLocations(raw []byte, ev Events) error {
	content, err := textfile.DecodeLegacyText(raw)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i, line := range textfile.SplitLines(content) {
			if strings.TrimSpace(line) == "" {
				continue
			}
			rec, extractErr := textfile.ExtractLocation(line)
			if extractErr != nil {
				lineErr := &apperrors.LineError{Line: i + 1, Err: extractErr}
				ev.log(fmt.Sprintf("Erro LOCAIS linha %d: %v", lineErr.Line, lineErr.Err))
				continue
			}
			if err := tx.Create(&models.Location{Code: rec.Code, Name: rec.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransaction, err)
	}
	return nil
}

func (s *ImportService) importStatuses(raw []byte, ev Events) error {
	content, err := textfile.DecodeLegacyText(raw)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i, line := range textfile.SplitLines(content) {
			if strings.TrimSpace(line) == "" {
				continue
			}
			rec, extractErr := textfile.ExtractStatus(line)
			if extractErr != nil {
				lineErr := &apperrors.LineError{Line: i + 1, Err: extractErr}
				ev.log(fmt.Sprintf("Erro SITUACAO linha %d: %v", lineErr.Line, lineErr.Err))
				continue
			}
			if err := tx.Create(&models.Status{Code: rec.Code, Name: rec.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransaction, err)
	}
	return nil
}

func (s *ImportService) importAssets(raw []byte, inventoryID string, ev Events) (*ImportResult, error) {
	content, err := textfile.DecodeLegacyText(raw)
	if err != nil {
		return nil, err
	}

	// Blank lines are filtered up front so progress totals reflect only real
	// rows.
	var lines []string
	for _, line := range textfile.SplitLines(content) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	total := len(lines)
	trimmedID := strings.TrimSpace(inventoryID)
	ev.progress(total, 0)

	inserted := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i, line := range lines {
			rec, extractErr := textfile.ExtractAsset(line)
			if extractErr != nil {
				lineErr := &apperrors.LineError{Line: i + 1, Err: extractErr}
				ev.log(fmt.Sprintf("Erro BENS linha %d: %v", lineErr.Line, lineErr.Err))
				continue
			}

			// The origin code records what the feed said; the assigned code
			// stays NULL until the counting workflow sets it.
			asset := models.Asset{
				Code:               rec.Code,
				Plate:              rec.Plate,
				Description:        rec.Description,
				LocationName:       rec.LocationName,
				ConditionName:      rec.ConditionName,
				StatusName:         rec.StatusName,
				OriginLocationCode: rec.OriginLocationCode,
				ConditionCode:      optional(rec.ConditionCode),
				StatusCode:         optional(rec.StatusCode),
				InventoryID:        trimmedID,
			}
			if err := tx.Create(&asset).Error; err != nil {
				return err
			}

			inserted++
			if inserted%100 == 0 {
				ev.progress(total, inserted)
			}
		}
		return nil
	})
	if err != nil {
		ev.log(fmt.Sprintf("Erro ao importar BENS: %v", err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransaction, err)
	}

	ev.progress(total, total)
	ev.log(fmt.Sprintf("Bens Importados: %d", inserted))

	return &ImportResult{Inserted: inserted, Read: total}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
