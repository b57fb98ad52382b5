package models

import (
	"time"
)

type TeamRole string

const (
	RoleLeader         TeamRole = "leader"
	RoleDeveloper      TeamRole = "developer"
	RoleDesigner       TeamRole = "designer"
	RoleProjectManager TeamRole = "project_manager"
	RoleDataScientist  TeamRole = "data_scientist"
	RoleMarketing      TeamRole = "marketing"
	RoleBusiness       TeamRole = "business"
)

// Valid reports whether r is one of the defined team roles.
func (r TeamRole) Valid() bool {
	switch r {
	case RoleLeader, RoleDeveloper, RoleDesigner, RoleProjectManager,
		RoleDataScientist, RoleMarketing, RoleBusiness:
		return true
	}
	return false
}

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipAccepted MembershipStatus = "accepted"
	MembershipDeclined MembershipStatus = "declined"
	MembershipRemoved  MembershipStatus = "removed"
)

type Team struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	HackathonID uint      `gorm:"not null;index" json:"hackathon_id"`
	Hackathon   Hackathon `gorm:"foreignKey:HackathonID" json:"hackathon,omitempty"`
	LeaderID    uint      `gorm:"not null" json:"leader_id"`
	Leader      User      `gorm:"foreignKey:LeaderID" json:"leader,omitempty"`

	// Team settings
	MaxMembers   uint `gorm:"default:4" json:"max_members"`
	IsRecruiting bool `gorm:"default:true" json:"is_recruiting"`
	IsPrivate    bool `gorm:"default:false" json:"is_private"`

	// Project details
	ProjectName        string `gorm:"size:200" json:"project_name"`
	ProjectDescription string `gorm:"type:text" json:"project_description"`
	GithubRepo         string `gorm:"size:255" json:"github_repo"`
	DemoURL            string `gorm:"size:255" json:"demo_url"`

	Members   []TeamMembership `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type TeamMembership struct {
	ID       uint             `gorm:"primaryKey" json:"id"`
	TeamID   uint             `gorm:"not null;index:idx_team_user,unique" json:"team_id"`
	UserID   uint             `gorm:"not null;index:idx_team_user,unique" json:"user_id"`
	User     User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role     TeamRole         `gorm:"size:20;not null" json:"role"`
	Status   MembershipStatus `gorm:"size:10;default:'pending'" json:"status"`
	JoinedAt time.Time        `gorm:"autoCreateTime" json:"joined_at"`
}
