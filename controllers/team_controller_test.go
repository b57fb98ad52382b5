package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/hackmate/hackmate_backend/database"
	"github.com/hackmate/hackmate_backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam(t *testing.T) {
	router := setupTest(t)
	alice, token := createTestUser(t, "alice")
	hackathon := createTestHackathon(t, "AI Hack")

	w := performRequest(router, http.MethodPost, "/api/teams", token, map[string]interface{}{
		"name":      "Team Alpha",
		"hackathon": hackathon.ID,
	})
	requireStatus(t, w, http.StatusCreated)

	var team models.Team
	require.NoError(t, database.DB.First(&team).Error)

	// The authenticated caller becomes the leader
	assert.Equal(t, alice.ID, team.LeaderID)
	assert.Equal(t, uint(4), team.MaxMembers)
	assert.True(t, team.IsRecruiting)

	// Exactly one accepted leader membership exists after creation
	var memberships []models.TeamMembership
	require.NoError(t, database.DB.Where("team_id = ?", team.ID).Find(&memberships).Error)
	require.Len(t, memberships, 1)
	assert.Equal(t, alice.ID, memberships[0].UserID)
	assert.Equal(t, models.RoleLeader, memberships[0].Role)
	assert.Equal(t, models.MembershipAccepted, memberships[0].Status)
}

func TestCreateTeamUnknownHackathon(t *testing.T) {
	router := setupTest(t)
	_, token := createTestUser(t, "alice")

	w := performRequest(router, http.MethodPost, "/api/teams", token, map[string]interface{}{
		"name":      "Team Alpha",
		"hackathon": 999,
	})
	requireStatus(t, w, http.StatusNotFound)

	var count int64
	database.DB.Model(&models.Team{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateTeamMissingName(t *testing.T) {
	router := setupTest(t)
	_, token := createTestUser(t, "alice")
	hackathon := createTestHackathon(t, "AI Hack")

	w := performRequest(router, http.MethodPost, "/api/teams", token, map[string]interface{}{
		"hackathon": hackathon.ID,
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestGetTeamsFilteredByHackathon(t *testing.T) {
	router := setupTest(t)
	_, token := createTestUser(t, "alice")
	first := createTestHackathon(t, "First")
	second := createTestHackathon(t, "Second")

	for _, h := range []models.Hackathon{first, second} {
		w := performRequest(router, http.MethodPost, "/api/teams", token, map[string]interface{}{
			"name":      "Team for " + h.Title,
			"hackathon": h.ID,
		})
		requireStatus(t, w, http.StatusCreated)
	}

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/api/teams?hackathon_id=%d", first.ID), token, nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeBody(t, w)["teams"].([]interface{}), 1)

	w = performRequest(router, http.MethodGet, "/api/teams", token, nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeBody(t, w)["teams"].([]interface{}), 2)
}

func TestUpdateTeamLeaderOnly(t *testing.T) {
	router := setupTest(t)
	_, aliceToken := createTestUser(t, "alice")
	_, bobToken := createTestUser(t, "bob")
	hackathon := createTestHackathon(t, "AI Hack")

	w := performRequest(router, http.MethodPost, "/api/teams", aliceToken, map[string]interface{}{
		"name":      "Team Alpha",
		"hackathon": hackathon.ID,
	})
	requireStatus(t, w, http.StatusCreated)

	var team models.Team
	require.NoError(t, database.DB.First(&team).Error)
	path := fmt.Sprintf("/api/teams/%d", team.ID)

	w = performRequest(router, http.MethodPut, path, bobToken, map[string]interface{}{
		"project_name": "Hijacked",
	})
	requireStatus(t, w, http.StatusForbidden)

	w = performRequest(router, http.MethodPut, path, aliceToken, map[string]interface{}{
		"project_name": "Matcher",
		"github_repo":  "https://github.com/team/matcher",
	})
	requireStatus(t, w, http.StatusOK)

	require.NoError(t, database.DB.First(&team, team.ID).Error)
	assert.Equal(t, "Matcher", team.ProjectName)
	assert.Equal(t, "https://github.com/team/matcher", team.GithubRepo)
}

func TestRemoveTeamMember(t *testing.T) {
	router := setupTest(t)
	alice, aliceToken := createTestUser(t, "alice")
	bob, bobToken := createTestUser(t, "bob")
	hackathon := createTestHackathon(t, "AI Hack")

	team := models.Team{Name: "Team Alpha", HackathonID: hackathon.ID, LeaderID: alice.ID, MaxMembers: 4}
	require.NoError(t, database.DB.Create(&team).Error)
	require.NoError(t, database.DB.Create(&models.TeamMembership{
		TeamID: team.ID, UserID: alice.ID, Role: models.RoleLeader, Status: models.MembershipAccepted,
	}).Error)
	require.NoError(t, database.DB.Create(&models.TeamMembership{
		TeamID: team.ID, UserID: bob.ID, Role: models.RoleDeveloper, Status: models.MembershipAccepted,
	}).Error)

	// A non-leader cannot remove someone else
	w := performRequest(router, http.MethodDelete,
		fmt.Sprintf("/api/teams/%d/members/%d", team.ID, alice.ID), bobToken, nil)
	requireStatus(t, w, http.StatusForbidden)

	// The leader cannot be removed
	w = performRequest(router, http.MethodDelete,
		fmt.Sprintf("/api/teams/%d/members/%d", team.ID, alice.ID), aliceToken, nil)
	requireStatus(t, w, http.StatusBadRequest)

	// The leader removes a member
	w = performRequest(router, http.MethodDelete,
		fmt.Sprintf("/api/teams/%d/members/%d", team.ID, bob.ID), aliceToken, nil)
	requireStatus(t, w, http.StatusOK)

	var membership models.TeamMembership
	require.NoError(t, database.DB.Where("team_id = ? AND user_id = ?", team.ID, bob.ID).First(&membership).Error)
	assert.Equal(t, models.MembershipRemoved, membership.Status)

	// Removal is terminal, a second attempt finds nothing
	w = performRequest(router, http.MethodDelete,
		fmt.Sprintf("/api/teams/%d/members/%d", team.ID, bob.ID), aliceToken, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestRemoveTeamMemberSelf(t *testing.T) {
	router := setupTest(t)
	alice, _ := createTestUser(t, "alice")
	bob, bobToken := createTestUser(t, "bob")
	hackathon := createTestHackathon(t, "AI Hack")

	team := models.Team{Name: "Team Alpha", HackathonID: hackathon.ID, LeaderID: alice.ID, MaxMembers: 4}
	require.NoError(t, database.DB.Create(&team).Error)
	require.NoError(t, database.DB.Create(&models.TeamMembership{
		TeamID: team.ID, UserID: bob.ID, Role: models.RoleDesigner, Status: models.MembershipAccepted,
	}).Error)

	w := performRequest(router, http.MethodDelete,
		fmt.Sprintf("/api/teams/%d/members/%d", team.ID, bob.ID), bobToken, nil)
	requireStatus(t, w, http.StatusOK)

	var membership models.TeamMembership
	require.NoError(t, database.DB.Where("team_id = ? AND user_id = ?", team.ID, bob.ID).First(&membership).Error)
	assert.Equal(t, models.MembershipRemoved, membership.Status)
}
