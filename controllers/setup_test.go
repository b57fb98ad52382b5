package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/hackmate/hackmate_backend/database"
	"github.com/hackmate/hackmate_backend/middleware"
	"github.com/hackmate/hackmate_backend/models"
	"github.com/hackmate/hackmate_backend/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTest gives every test a fresh in-memory database and a router
// with the same routes as main.go.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hackathon{},
		&models.FavoriteHackathon{},
		&models.Team{},
		&models.TeamMembership{},
		&models.TeamInvitation{},
	))
	database.DB = db

	router := gin.New()

	auth := router.Group("/api")
	{
		auth.POST("/register", Register)
		auth.POST("/login", Login)
	}

	public := router.Group("/api")
	{
		public.GET("/hackathons", GetHackathons)
		public.POST("/hackathons", CreateHackathon)
		public.GET("/hackathons/search", SearchHackathons)
		public.GET("/hackathons/:id", GetHackathon)
	}

	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		api.GET("/hackathons/favorites", GetFavorites)
		api.POST("/hackathons/favorites", CreateFavorite)
		api.DELETE("/hackathons/favorites/:id", DeleteFavorite)

		api.GET("/teams", GetTeams)
		api.POST("/teams", CreateTeam)
		api.GET("/teams/:id", GetTeam)
		api.PUT("/teams/:id", UpdateTeam)
		api.GET("/teams/:id/members", GetTeamMembers)
		api.DELETE("/teams/:id/members/:userID", RemoveTeamMember)

		api.GET("/invites/pending", GetPendingInvites)
		api.GET("/invites/sent", GetSentInvites)
		api.POST("/invites", SendInvite)
		api.POST("/invites/respond", RespondToInvite)
	}

	return router
}

// createTestUser inserts a user and returns it with a valid token.
func createTestUser(t *testing.T, username string) (models.User, string) {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID)
	require.NoError(t, err)

	return user, token
}

func createTestHackathon(t *testing.T, title string) models.Hackathon {
	t.Helper()

	hackathon := models.Hackathon{
		Title:                title,
		Description:          "A test hackathon",
		Platform:             "Devpost",
		Themes:               "AI,Web",
		Tags:                 "golang,backend",
		Location:             "Berlin",
		PrizePool:            5000,
		StartDate:            time.Now().Add(30 * 24 * time.Hour),
		RegistrationDeadline: time.Now().Add(14 * 24 * time.Hour),
	}
	require.NoError(t, database.DB.Create(&hackathon).Error)

	return hackathon
}

// performRequest runs one request through the router and returns the
// recorded response.
func performRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
