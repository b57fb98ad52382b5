package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hackmate/hackmate_backend/database"
	"github.com/hackmate/hackmate_backend/models"
)

type CreateFavoriteInput struct {
	HackathonID uint `json:"hackathon_id" binding:"required" example:"1"`
}

// GetFavorites godoc
// @Summary Get the authenticated user's favorite hackathons
// @Description Returns all hackathons the authenticated user has favorited
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of favorites"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/hackathons/favorites [get]
func GetFavorites(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var favorites []models.FavoriteHackathon
	if err := database.DB.Where("user_id = ?", userID).
		Preload("Hackathon").
		Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// CreateFavorite godoc
// @Summary Favorite a hackathon
// @Description Adds a hackathon to the authenticated user's favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param favorite body CreateFavoriteInput true "Favorite Creation"
// @Success 201 {object} map[string]interface{} "Favorite created successfully"
// @Failure 400 {object} map[string]string "Invalid input or already favorited"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hackathon not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/hackathons/favorites [post]
func CreateFavorite(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CreateFavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check the hackathon exists
	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, input.HackathonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
		return
	}

	// The (user, hackathon) pair is unique at the storage layer
	favorite := models.FavoriteHackathon{
		UserID:      userID,
		HackathonID: input.HackathonID,
	}

	if err := database.DB.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hackathon is already in your favorites"})
		return
	}

	favorite.Hackathon = hackathon

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Hackathon added to favorites",
		"favorite": favorite,
	})
}

// DeleteFavorite godoc
// @Summary Remove a favorite
// @Description Deletes one of the authenticated user's favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Favorite ID"
// @Success 204 "Favorite deleted"
// @Failure 400 {object} map[string]string "Invalid favorite ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Favorite not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/hackathons/favorites/{id} [delete]
func DeleteFavorite(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	favoriteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid favorite ID"})
		return
	}

	// Scoping the lookup to the caller makes someone else's favorite
	// indistinguishable from a missing one.
	var favorite models.FavoriteHackathon
	if err := database.DB.Where("id = ? AND user_id = ?", favoriteID, userID).
		First(&favorite).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	if err := database.DB.Delete(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorite"})
		return
	}

	c.Status(http.StatusNoContent)
}
