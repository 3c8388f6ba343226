package controllers

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"inventory-app/apperrors"
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/services"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(DB *gorm.DB) *InventoryController {
	return &InventoryController{DB: DB}
}

func (c *InventoryController) GetInventories(ctx *fiber.Ctx) error {
	invRepo := repositories.NewInventoryRepository(c.DB)
	ids, err := invRepo.ListInventories()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to list inventories",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"inventories": ids,
		},
	})
}

func (c *InventoryController) DeleteInventory(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	invRepo := repositories.NewInventoryRepository(c.DB)
	removed, err := invRepo.DeleteInventory(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid inventory id",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete inventory",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inventory deleted",
		"data": fiber.Map{
			"removed_count": removed,
		},
	})
}

// ExportInventory streams the fixed-width feed for the legacy consumer.
func (c *InventoryController) ExportInventory(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	exportService := services.NewExportService(c.DB)
	data, err := exportService.ExportInventory(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Nothing to export for this inventory",
			})
		}
		if errors.Is(err, apperrors.ErrValidation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid inventory id",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to export inventory",
			"error":   err.Error(),
		})
	}

	ctx.Set("Content-Type", "text/plain; charset=utf-8")
	ctx.Set("Content-Disposition", `attachment; filename="INVENTARIO_`+id+`.TXT"`)
	return ctx.Send(data)
}

// SetActiveInventory records which inventory the UI screens should work
// against, the same setting the import pipeline writes on success.
func (c *InventoryController) SetActiveInventory(ctx *fiber.Ctx) error {
	var input struct {
		InventoryID string `json:"inventory_id" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payload, _ := json.Marshal(map[string]string{"codigoInventario": input.InventoryID})

	settings := repositories.NewSettingRepository(c.DB)
	if err := settings.Set(models.SettingActiveInventory, string(payload)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save active inventory",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Active inventory saved",
	})
}

func (c *InventoryController) GetActiveInventory(ctx *fiber.Ctx) error {
	settings := repositories.NewSettingRepository(c.DB)
	value, err := settings.Get(models.SettingActiveInventory)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "No active inventory",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read active inventory",
			"error":   err.Error(),
		})
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(value), &payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Corrupt active inventory setting",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    payload,
	})
}

// ResetAll wipes assets and reference tables after re-validating the user's
// credentials. Conditions survive, matching the factory-reset contract.
func (c *InventoryController) ResetAll(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := c.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	invRepo := repositories.NewInventoryRepository(c.DB)
	if err := invRepo.ResetAll(); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to reset database",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "All inventory data cleared",
	})
}
