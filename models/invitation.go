package models

import (
	"time"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
	InvitationExpired  InvitationStatus = "expired"
)

type TeamInvitation struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	TeamID       uint             `gorm:"not null;index:idx_team_recipient,unique" json:"team_id"`
	Team         Team             `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	SenderID     uint             `gorm:"not null" json:"sender_id"`
	Sender       User             `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	RecipientID  uint             `gorm:"not null;index:idx_team_recipient,unique" json:"recipient_id"`
	Recipient    User             `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	ProposedRole TeamRole         `gorm:"size:20;not null" json:"proposed_role"`
	Message      string           `gorm:"type:text" json:"message"`
	Status       InvitationStatus `gorm:"size:10;default:'pending'" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	ExpiresAt    time.Time        `gorm:"not null" json:"expires_at"`
}

// IsExpired reports whether the invitation deadline has passed.
// Expiry is derived from expires_at, never from the stored status.
func (i *TeamInvitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// EffectiveStatus returns the invitation status as of now. A pending
// invitation whose deadline has passed reads as expired even if the
// stored status field has not been touched yet.
func (i *TeamInvitation) EffectiveStatus(now time.Time) InvitationStatus {
	if i.Status == InvitationPending && i.IsExpired(now) {
		return InvitationExpired
	}
	return i.Status
}
