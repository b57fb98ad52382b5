package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hackmate/hackmate_backend/database"
	"github.com/hackmate/hackmate_backend/models"
	"gorm.io/gorm"
)

type CreateTeamInput struct {
	Name               string `json:"name" binding:"required" example:"Team Alpha"`
	Description        string `json:"description"`
	HackathonID        uint   `json:"hackathon" binding:"required" example:"1"`
	MaxMembers         uint   `json:"max_members" example:"4"`
	IsRecruiting       *bool  `json:"is_recruiting"`
	IsPrivate          bool   `json:"is_private"`
	ProjectName        string `json:"project_name"`
	ProjectDescription string `json:"project_description"`
	GithubRepo         string `json:"github_repo" binding:"omitempty,url"`
	DemoURL            string `json:"demo_url" binding:"omitempty,url"`
}

type UpdateTeamInput struct {
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	MaxMembers         uint    `json:"max_members"`
	IsRecruiting       *bool   `json:"is_recruiting"`
	IsPrivate          *bool   `json:"is_private"`
	ProjectName        *string `json:"project_name"`
	ProjectDescription *string `json:"project_description"`
	GithubRepo         *string `json:"github_repo" binding:"omitempty,url"`
	DemoURL            *string `json:"demo_url" binding:"omitempty,url"`
}

// CreateTeam godoc
// @Summary Create a new team
// @Description Creates a team for a hackathon with the authenticated user as leader
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team body CreateTeamInput true "Team Creation"
// @Success 201 {object} map[string]interface{} "Team created successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hackathon not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/teams [post]
func CreateTeam(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CreateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate hackathon exists
	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, input.HackathonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
		return
	}

	maxMembers := input.MaxMembers
	if maxMembers == 0 {
		maxMembers = 4
	}
	isRecruiting := true
	if input.IsRecruiting != nil {
		isRecruiting = *input.IsRecruiting
	}

	team := models.Team{
		Name:               input.Name,
		Description:        input.Description,
		HackathonID:        input.HackathonID,
		LeaderID:           userID,
		MaxMembers:         maxMembers,
		IsRecruiting:       isRecruiting,
		IsPrivate:          input.IsPrivate,
		ProjectName:        input.ProjectName,
		ProjectDescription: input.ProjectDescription,
		GithubRepo:         input.GithubRepo,
		DemoURL:            input.DemoURL,
	}

	// The team and its leader membership are created together so a team
	// never exists without an accepted leader row.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}

		membership := models.TeamMembership{
			TeamID: team.ID,
			UserID: userID,
			Role:   models.RoleLeader,
			Status: models.MembershipAccepted,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Team created successfully",
		"team":    team,
	})
}

// GetTeams godoc
// @Summary List teams
// @Description Returns all teams, optionally filtered by hackathon
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hackathon_id query int false "Filter by hackathon"
// @Success 200 {object} map[string]interface{} "List of teams"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/teams [get]
func GetTeams(c *gin.Context) {
	query := database.DB.Model(&models.Team{})

	if hackathonID := c.Query("hackathon_id"); hackathonID != "" {
		id, err := strconv.ParseUint(hackathonID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID"})
			return
		}
		query = query.Where("hackathon_id = ?", id)
	}

	var teams []models.Team
	if err := query.Preload("Members").Preload("Members.User").
		Order("created_at DESC").
		Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetTeam godoc
// @Summary Get a team by ID
// @Description Returns details of a single team including its members
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]interface{} "Team details"
// @Failure 400 {object} map[string]string "Invalid team ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Team not found"
// @Router /api/teams/{id} [get]
func GetTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	var team models.Team
	if err := database.DB.Preload("Members").Preload("Members.User").
		Preload("Hackathon").
		First(&team, teamID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Updates team settings and project details. Leader only; members are managed through invitations.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param team body UpdateTeamInput true "Team Update"
// @Success 200 {object} map[string]interface{} "Team updated successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Team not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/teams/{id} [put]
func UpdateTeam(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	if team.LeaderID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the team leader can update the team"})
		return
	}

	var input UpdateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Leader and members are never updatable through this endpoint
	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.MaxMembers != 0 {
		updates["max_members"] = input.MaxMembers
	}
	if input.IsRecruiting != nil {
		updates["is_recruiting"] = *input.IsRecruiting
	}
	if input.IsPrivate != nil {
		updates["is_private"] = *input.IsPrivate
	}
	if input.ProjectName != nil {
		updates["project_name"] = *input.ProjectName
	}
	if input.ProjectDescription != nil {
		updates["project_description"] = *input.ProjectDescription
	}
	if input.GithubRepo != nil {
		updates["github_repo"] = *input.GithubRepo
	}
	if input.DemoURL != nil {
		updates["demo_url"] = *input.DemoURL
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&team).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Team updated successfully",
		"team":    team,
	})
}

// GetTeamMembers godoc
// @Summary Get team members
// @Description Returns the pending and accepted memberships of a team
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]interface{} "List of memberships"
// @Failure 400 {object} map[string]string "Invalid team ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Team not found"
// @Router /api/teams/{id}/members [get]
func GetTeamMembers(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	var memberships []models.TeamMembership
	if err := database.DB.Where("team_id = ? AND status IN ?", teamID,
		[]models.MembershipStatus{models.MembershipPending, models.MembershipAccepted}).
		Preload("User").
		Find(&memberships).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": memberships})
}

// RemoveTeamMember godoc
// @Summary Remove a team member
// @Description Marks a membership as removed. Allowed for the team leader or the member themselves; the leader cannot be removed.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param userID path int true "User ID"
// @Success 200 {object} map[string]string "Member removed"
// @Failure 400 {object} map[string]string "Invalid ID or leader removal attempt"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Team or member not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/teams/{id}/members/{userID} [delete]
func RemoveTeamMember(c *gin.Context) {
	callerID := c.MustGet("userID").(uint)
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}
	memberID, err := strconv.ParseUint(c.Param("userID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	if callerID != team.LeaderID && callerID != uint(memberID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the team leader can remove other members"})
		return
	}

	if uint(memberID) == team.LeaderID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The team leader cannot be removed"})
		return
	}

	var membership models.TeamMembership
	if err := database.DB.Where("team_id = ? AND user_id = ? AND status IN ?", teamID, memberID,
		[]models.MembershipStatus{models.MembershipPending, models.MembershipAccepted}).
		First(&membership).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	membership.Status = models.MembershipRemoved
	if err := database.DB.Save(&membership).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed from team"})
}
