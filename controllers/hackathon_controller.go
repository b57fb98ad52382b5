package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackmate/hackmate_backend/database"
	"github.com/hackmate/hackmate_backend/models"
)

type CreateHackathonInput struct {
	Title                string    `json:"title" binding:"required" example:"Global AI Hack"`
	Description          string    `json:"description"`
	Platform             string    `json:"platform" example:"Devpost"`
	Themes               string    `json:"themes" example:"AI,Healthcare"`
	Tags                 string    `json:"tags" example:"machine-learning,python"`
	Sponsors             string    `json:"sponsors"`
	Location             string    `json:"location" example:"Berlin"`
	IsVirtual            bool      `json:"is_virtual"`
	PrizePool            float64   `json:"prize_pool" example:"10000"`
	Participants         uint      `json:"participants"`
	StartDate            time.Time `json:"start_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
}

// likeEscaper neutralizes LIKE wildcards so user input always matches
// as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// Columns the list endpoint may be ordered by.
var hackathonOrderings = map[string]string{
	"start_date":            "start_date",
	"prize_pool":            "prize_pool",
	"participants":          "participants",
	"registration_deadline": "registration_deadline",
}

// GetHackathons godoc
// @Summary List hackathons
// @Description Returns hackathons, optionally filtered and ordered
// @Tags hackathons
// @Accept json
// @Produce json
// @Param platform query string false "Filter by platform"
// @Param is_virtual query bool false "Filter by virtual events"
// @Param themes query string false "Filter by theme"
// @Param location query string false "Filter by location"
// @Param prize_pool query number false "Filter by prize pool"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Success 200 {object} map[string]interface{} "List of hackathons"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/hackathons [get]
func GetHackathons(c *gin.Context) {
	query := database.DB.Model(&models.Hackathon{})

	if platform := c.Query("platform"); platform != "" {
		query = query.Where("platform = ?", platform)
	}
	if isVirtual := c.Query("is_virtual"); isVirtual != "" {
		virtual, err := strconv.ParseBool(isVirtual)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_virtual value"})
			return
		}
		query = query.Where("is_virtual = ?", virtual)
	}
	if themes := c.Query("themes"); themes != "" {
		query = query.Where(`LOWER(themes) LIKE ? ESCAPE '\'`, likePattern(themes))
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location = ?", location)
	}
	if prizePool := c.Query("prize_pool"); prizePool != "" {
		pool, err := strconv.ParseFloat(prizePool, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prize_pool value"})
			return
		}
		query = query.Where("prize_pool = ?", pool)
	}

	// Default ordering is newest start date first
	ordering := c.DefaultQuery("ordering", "-start_date")
	desc := strings.HasPrefix(ordering, "-")
	column, ok := hackathonOrderings[strings.TrimPrefix(ordering, "-")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ordering field"})
		return
	}
	if desc {
		query = query.Order(column + " DESC")
	} else {
		query = query.Order(column + " ASC")
	}

	var hackathons []models.Hackathon
	if err := query.Find(&hackathons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hackathons"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hackathons": hackathons})
}

// CreateHackathon godoc
// @Summary Create a hackathon
// @Description Creates a new hackathon listing
// @Tags hackathons
// @Accept json
// @Produce json
// @Param hackathon body CreateHackathonInput true "Hackathon Creation"
// @Success 201 {object} map[string]interface{} "Hackathon created successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/hackathons [post]
func CreateHackathon(c *gin.Context) {
	var input CreateHackathonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hackathon := models.Hackathon{
		Title:                input.Title,
		Description:          input.Description,
		Platform:             input.Platform,
		Themes:               input.Themes,
		Tags:                 input.Tags,
		Sponsors:             input.Sponsors,
		Location:             input.Location,
		IsVirtual:            input.IsVirtual,
		PrizePool:            input.PrizePool,
		Participants:         input.Participants,
		StartDate:            input.StartDate,
		RegistrationDeadline: input.RegistrationDeadline,
	}

	if err := database.DB.Create(&hackathon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hackathon"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Hackathon created successfully",
		"hackathon": hackathon,
	})
}

// GetHackathon godoc
// @Summary Get a hackathon by ID
// @Description Returns details of a single hackathon
// @Tags hackathons
// @Accept json
// @Produce json
// @Param id path int true "Hackathon ID"
// @Success 200 {object} map[string]interface{} "Hackathon details"
// @Failure 400 {object} map[string]string "Invalid hackathon ID"
// @Failure 404 {object} map[string]string "Hackathon not found"
// @Router /api/hackathons/{id} [get]
func GetHackathon(c *gin.Context) {
	hackathonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID"})
		return
	}

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, hackathonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hackathon": hackathon})
}

// SearchHackathons godoc
// @Summary Search hackathons
// @Description Case-insensitive substring search over title, description, themes and tags
// @Tags hackathons
// @Accept json
// @Produce json
// @Param q query string false "Search query, empty matches everything"
// @Success 200 {object} map[string]interface{} "Matching hackathons"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/hackathons/search [get]
func SearchHackathons(c *gin.Context) {
	pattern := likePattern(c.Query("q"))

	var hackathons []models.Hackathon
	if err := database.DB.
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(themes) LIKE ? ESCAPE '\' OR LOWER(tags) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern).
		Order("start_date DESC").
		Find(&hackathons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search hackathons"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hackathons": hackathons})
}
