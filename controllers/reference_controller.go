package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/models"
)

// ReferenceController serves the picker data for the counting screen:
// locations, statuses and conditions.
type ReferenceController struct {
	DB *gorm.DB
}

func NewReferenceController(DB *gorm.DB) *ReferenceController {
	return &ReferenceController{DB: DB}
}

func (c *ReferenceController) GetLocations(ctx *fiber.Ctx) error {
	var locations []models.Location
	if err := c.DB.Find(&locations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get locations",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    locations,
	})
}

func (c *ReferenceController) GetStatuses(ctx *fiber.Ctx) error {
	var statuses []models.Status
	if err := c.DB.Find(&statuses).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get statuses",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    statuses,
	})
}

func (c *ReferenceController) GetConditions(ctx *fiber.Ctx) error {
	var conditions []models.Condition
	if err := c.DB.Find(&conditions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get conditions",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    conditions,
	})
}
