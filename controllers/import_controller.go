package controllers

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/apperrors"
	"inventory-app/models"
	"inventory-app/services"
)

type ImportController struct {
	DB *gorm.DB
}

func NewImportController(DB *gorm.DB) *ImportController {
	return &ImportController{DB: DB}
}

// ImportFiles receives the three fixed-width feeds as a multipart upload plus
// the inventory id, runs the import pipeline, and returns the result together
// with the log lines emitted along the way.
func (c *ImportController) ImportFiles(ctx *fiber.Ctx) error {
	inventoryID := ctx.FormValue("inventory_id")
	if inventoryID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "inventory_id is required",
		})
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid multipart form",
			"error":   err.Error(),
		})
	}

	var files []services.SourceFile
	for _, header := range form.File["files"] {
		f, err := header.Open()
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Failed to open uploaded file " + header.Filename,
				"error":   err.Error(),
			})
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Failed to read uploaded file " + header.Filename,
				"error":   err.Error(),
			})
		}
		files = append(files, services.SourceFile{Name: header.Filename, Data: data})
	}

	var logs []string
	events := services.Events{
		Progress: func(total, current int) {
			log.Printf("Importando... %d / %d registros", current, total)
		},
		Log: func(message string) {
			logs = append(logs, message)
		},
	}

	importService := services.NewImportService(c.DB)
	result, err := importService.ImportInventory(files, inventoryID, events)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, apperrors.ErrValidation) {
			status = fiber.StatusBadRequest
		}
		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Import failed",
			"error":   err.Error(),
			"logs":    logs,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Import completed",
		"data": fiber.Map{
			"inserted": result.Inserted,
			"read":     result.Read,
			"logs":     logs,
		},
	})
}

// GetImportLogs lists past import runs, newest first.
func (c *ImportController) GetImportLogs(ctx *fiber.Ctx) error {
	var importLogs []models.ImportLog
	if err := c.DB.Order("created_at DESC").Find(&importLogs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get import logs",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    importLogs,
	})
}
