package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"inventory-app/apperrors"
	"inventory-app/repositories"
)

type AssetController struct {
	DB *gorm.DB
}

func NewAssetController(DB *gorm.DB) *AssetController {
	return &AssetController{DB: DB}
}

// GetAssets returns every asset row plus the tallies the listing screen
// shows: total rows and how many have been counted.
func (c *AssetController) GetAssets(ctx *fiber.Ctx) error {
	assetRepo := repositories.NewAssetRepository(c.DB)

	assets, err := assetRepo.GetAssets()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get assets",
			"error":   err.Error(),
		})
	}

	counted, err := assetRepo.CountCounted()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to count assets",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"assets":  assets,
			"total":   len(assets),
			"counted": counted,
		},
	})
}

// SearchAsset looks one asset up by scanned plate or code.
func (c *AssetController) SearchAsset(ctx *fiber.Ctx) error {
	key := ctx.Query("key")
	if key == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Query parameter key is required",
		})
	}

	assetRepo := repositories.NewAssetRepository(c.DB)
	asset, err := assetRepo.FindByPlateOrCode(key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Asset not found in this inventory",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to search asset",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    asset,
	})
}

// Annotate applies the counting workflow's annotation to the asset matching
// the given plate or code.
func (c *AssetController) Annotate(ctx *fiber.Ctx) error {
	var input struct {
		PlateOrCode   string `json:"plate_or_code" validate:"required"`
		LocationCode  string `json:"location_code"`
		ConditionCode string `json:"condition_code"`
		StatusCode    string `json:"status_code"`
		Observation   string `json:"observation"`
		Status        string `json:"status"`
		LocationName  string `json:"location_name"`
		ConditionName string `json:"condition_name"`
		StatusName    string `json:"status_name"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	assetRepo := repositories.NewAssetRepository(c.DB)
	updated, err := assetRepo.Annotate(repositories.AnnotateInput{
		PlateOrCode:   input.PlateOrCode,
		LocationCode:  input.LocationCode,
		ConditionCode: input.ConditionCode,
		StatusCode:    input.StatusCode,
		Observation:   input.Observation,
		Status:        input.Status,
		LocationName:  input.LocationName,
		ConditionName: input.ConditionName,
		StatusName:    input.StatusName,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update asset",
			"error":   err.Error(),
		})
	}

	message := "Asset updated successfully"
	if updated == 0 {
		message = "No asset matched the given plate or code"
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data": fiber.Map{
			"updated": updated,
		},
	})
}

// ExportExcel generates an xlsx listing of all assets.
func (c *AssetController) ExportExcel(ctx *fiber.Ctx) error {
	assetRepo := repositories.NewAssetRepository(c.DB)
	assets, err := assetRepo.GetAssets()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get assets",
			"error":   err.Error(),
		})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Plate")
	f.SetCellValue(sheet, "B1", "Code")
	f.SetCellValue(sheet, "C1", "Description")
	f.SetCellValue(sheet, "D1", "Location")
	f.SetCellValue(sheet, "E1", "Condition")
	f.SetCellValue(sheet, "F1", "Status")
	f.SetCellValue(sheet, "G1", "Inventory Status")
	f.SetCellValue(sheet, "H1", "Inventory")

	for i, asset := range assets {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), asset.Plate)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), asset.Code)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), asset.Description)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), asset.LocationName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), asset.ConditionName)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), asset.StatusName)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), asset.InventoryStatus)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", i+2), asset.InventoryID)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="assets.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel file")
	}

	return nil
}
