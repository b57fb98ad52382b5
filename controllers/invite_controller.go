package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackmate/hackmate_backend/database"
	"github.com/hackmate/hackmate_backend/models"
	"github.com/hackmate/hackmate_backend/websocket"
	"gorm.io/gorm"
)

// How long an invitation stays open before it expires.
const invitationTTL = 7 * 24 * time.Hour

var errTeamFull = errors.New("team is full")

type SendInviteInput struct {
	TeamID       uint   `json:"team_id" binding:"required" example:"1"`
	Username     string `json:"username" binding:"required" example:"johndoe"`
	ProposedRole string `json:"proposed_role" binding:"required" example:"developer"`
	Message      string `json:"message" example:"We need a frontend dev!"`
}

type RespondInviteInput struct {
	InviteID uint   `json:"invite_id" binding:"required" example:"1"`
	Action   string `json:"action" binding:"required,oneof=accept decline" example:"accept"`
}

// GetPendingInvites godoc
// @Summary Get pending invitations for the authenticated user
// @Description Returns all invitations addressed to the authenticated user that are still open
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of pending invitations"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/invites/pending [get]
func GetPendingInvites(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var invites []models.TeamInvitation
	if err := database.DB.Where("recipient_id = ? AND status = ?", userID, models.InvitationPending).
		Preload("Team").Preload("Sender").
		Find(&invites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitations"})
		return
	}

	// Expiry is evaluated lazily: stale rows are settled here and dropped
	// from the pending list.
	now := time.Now()
	pending := make([]models.TeamInvitation, 0, len(invites))
	for _, invite := range invites {
		if invite.EffectiveStatus(now) == models.InvitationExpired {
			database.DB.Model(&invite).Update("status", models.InvitationExpired)
			continue
		}
		pending = append(pending, invite)
	}

	c.JSON(http.StatusOK, gin.H{"invites": pending})
}

// GetSentInvites godoc
// @Summary Get invitations sent by the authenticated user
// @Description Returns all invitations the authenticated user has sent, with expiry applied
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of sent invitations"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/invites/sent [get]
func GetSentInvites(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var invites []models.TeamInvitation
	if err := database.DB.Where("sender_id = ?", userID).
		Preload("Team").Preload("Recipient").
		Find(&invites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitations"})
		return
	}

	now := time.Now()
	for i := range invites {
		invites[i].Status = invites[i].EffectiveStatus(now)
	}

	c.JSON(http.StatusOK, gin.H{"invites": invites})
}

// SendInvite godoc
// @Summary Invite a user to a team
// @Description Sends a team invitation with a proposed role. Only team members can invite.
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invite body SendInviteInput true "Invite Creation"
// @Success 201 {object} map[string]interface{} "Invitation sent successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Team or user not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/invites [post]
func SendInvite(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input SendInviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.TeamRole(input.ProposedRole)
	if !role.Valid() || role == models.RoleLeader {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposed role"})
		return
	}

	var team models.Team
	if err := database.DB.First(&team, input.TeamID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	// Only active members can invite
	var senderMembership models.TeamMembership
	if err := database.DB.Where("team_id = ? AND user_id = ? AND status = ?",
		input.TeamID, userID, models.MembershipAccepted).
		First(&senderMembership).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You must be a member of the team to invite others"})
		return
	}

	// Find the user to invite
	var recipient models.User
	if err := database.DB.Where("username = ?", input.Username).First(&recipient).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Check if the user is already an active member
	var existingMembership models.TeamMembership
	if err := database.DB.Where("team_id = ? AND user_id = ? AND status IN ?",
		input.TeamID, recipient.ID,
		[]models.MembershipStatus{models.MembershipPending, models.MembershipAccepted}).
		First(&existingMembership).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is already a member of this team"})
		return
	}

	now := time.Now()
	invite := models.TeamInvitation{
		TeamID:       input.TeamID,
		SenderID:     userID,
		RecipientID:  recipient.ID,
		ProposedRole: role,
		Message:      input.Message,
		Status:       models.InvitationPending,
		ExpiresAt:    now.Add(invitationTTL),
	}

	// One invitation row per (team, recipient). A settled declined or
	// expired invitation is reused; an open or accepted one blocks.
	var existingInvite models.TeamInvitation
	err := database.DB.Where("team_id = ? AND recipient_id = ?", input.TeamID, recipient.ID).
		First(&existingInvite).Error
	if err == nil {
		switch existingInvite.EffectiveStatus(now) {
		case models.InvitationPending:
			c.JSON(http.StatusBadRequest, gin.H{"error": "An invitation has already been sent to this user"})
			return
		case models.InvitationAccepted:
			c.JSON(http.StatusBadRequest, gin.H{"error": "User has already accepted an invitation to this team"})
			return
		}

		invite.ID = existingInvite.ID
		invite.CreatedAt = now
		if err := database.DB.Save(&invite).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
			return
		}
	} else {
		if err := database.DB.Create(&invite).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An invitation has already been sent to this user"})
			return
		}
	}

	// Load relationships for the response
	database.DB.Preload("Team").Preload("Recipient").First(&invite, invite.ID)

	// Notify the recipient if they are connected
	websocket.NotifyUser(recipient.ID, "invite", gin.H{
		"invite_id": invite.ID,
		"team_id":   invite.TeamID,
		"team_name": invite.Team.Name,
		"role":      invite.ProposedRole,
		"message":   invite.Message,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Invitation sent successfully",
		"invite":  invite,
	})
}

// RespondToInvite godoc
// @Summary Respond to an invitation
// @Description Accept or decline a team invitation. Accepting joins the team unless it is already full.
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param response body RespondInviteInput true "Invitation Response"
// @Success 200 {object} map[string]interface{} "Response processed successfully"
// @Failure 400 {object} map[string]string "Invalid input or expired invitation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Failure 409 {object} map[string]string "Team is already full"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/invites/respond [post]
func RespondToInvite(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input RespondInviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find the invitation
	var invite models.TeamInvitation
	if err := database.DB.Where("id = ? AND recipient_id = ? AND status = ?",
		input.InviteID, userID, models.InvitationPending).First(&invite).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found or already processed"})
		return
	}

	if invite.IsExpired(time.Now()) {
		database.DB.Model(&invite).Update("status", models.InvitationExpired)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invitation has expired"})
		return
	}

	if input.Action == "decline" {
		invite.Status = models.InvitationDeclined
		if err := database.DB.Save(&invite).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invitation"})
			return
		}

		websocket.NotifyUser(invite.SenderID, "invite_declined", gin.H{
			"invite_id": invite.ID,
			"team_id":   invite.TeamID,
		})

		c.JSON(http.StatusOK, gin.H{"message": "Invitation declined"})
		return
	}

	// The capacity check and the membership write happen in one
	// transaction so concurrent accepts cannot overfill the team.
	var membership models.TeamMembership
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, invite.TeamID).Error; err != nil {
			return err
		}

		var accepted int64
		if err := tx.Model(&models.TeamMembership{}).
			Where("team_id = ? AND status = ?", team.ID, models.MembershipAccepted).
			Count(&accepted).Error; err != nil {
			return err
		}
		if accepted >= int64(team.MaxMembers) {
			return errTeamFull
		}

		// A settled membership row for this pair may exist from an
		// earlier decline or removal; the unique index allows only one.
		result := tx.Where("team_id = ? AND user_id = ?", team.ID, userID).First(&membership)
		if result.Error == nil {
			membership.Role = invite.ProposedRole
			membership.Status = models.MembershipAccepted
			membership.JoinedAt = time.Now()
			if err := tx.Save(&membership).Error; err != nil {
				return err
			}
		} else {
			membership = models.TeamMembership{
				TeamID: team.ID,
				UserID: userID,
				Role:   invite.ProposedRole,
				Status: models.MembershipAccepted,
			}
			if err := tx.Create(&membership).Error; err != nil {
				return err
			}
		}

		invite.Status = models.InvitationAccepted
		return tx.Save(&invite).Error
	})
	if err != nil {
		if errors.Is(err, errTeamFull) {
			c.JSON(http.StatusConflict, gin.H{"error": "Team is already full"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept invitation"})
		return
	}

	websocket.NotifyUser(invite.SenderID, "invite_accepted", gin.H{
		"invite_id": invite.ID,
		"team_id":   invite.TeamID,
		"user_id":   userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":    "Invitation accepted successfully",
		"membership": membership,
	})
}
