package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/hackmate/hackmate_backend/database"
	"github.com/hackmate/hackmate_backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHackathon(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, http.MethodPost, "/api/hackathons", "", map[string]interface{}{
		"title":       "Global AI Hack",
		"description": "Build something with AI",
		"platform":    "Devpost",
		"prize_pool":  10000,
	})
	requireStatus(t, w, http.StatusCreated)

	var count int64
	database.DB.Model(&models.Hackathon{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateHackathonMissingTitle(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, http.MethodPost, "/api/hackathons", "", map[string]interface{}{
		"description": "No title given",
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestGetHackathonsDefaultOrdering(t *testing.T) {
	router := setupTest(t)

	older := models.Hackathon{Title: "Older", StartDate: time.Now().Add(24 * time.Hour)}
	newer := models.Hackathon{Title: "Newer", StartDate: time.Now().Add(48 * time.Hour)}
	require.NoError(t, database.DB.Create(&older).Error)
	require.NoError(t, database.DB.Create(&newer).Error)

	w := performRequest(router, http.MethodGet, "/api/hackathons", "", nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	hackathons := body["hackathons"].([]interface{})
	require.Len(t, hackathons, 2)

	// Default ordering is start_date descending
	first := hackathons[0].(map[string]interface{})
	assert.Equal(t, "Newer", first["title"])
}

func TestGetHackathonsFilters(t *testing.T) {
	router := setupTest(t)

	require.NoError(t, database.DB.Create(&models.Hackathon{Title: "A", Platform: "Devpost", IsVirtual: true}).Error)
	require.NoError(t, database.DB.Create(&models.Hackathon{Title: "B", Platform: "MLH", IsVirtual: false}).Error)

	w := performRequest(router, http.MethodGet, "/api/hackathons?platform=Devpost", "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeBody(t, w)["hackathons"].([]interface{}), 1)

	w = performRequest(router, http.MethodGet, "/api/hackathons?is_virtual=false", "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeBody(t, w)["hackathons"].([]interface{}), 1)

	w = performRequest(router, http.MethodGet, "/api/hackathons?ordering=bogus", "", nil)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestGetHackathonNotFound(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, http.MethodGet, "/api/hackathons/999", "", nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestSearchHackathonsEmptyQueryReturnsAll(t *testing.T) {
	router := setupTest(t)

	createTestHackathon(t, "First Hack")
	createTestHackathon(t, "Second Hack")

	w := performRequest(router, http.MethodGet, "/api/hackathons/search", "", nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Len(t, body["hackathons"].([]interface{}), 2)
}

func TestSearchHackathonsCaseInsensitive(t *testing.T) {
	router := setupTest(t)

	require.NoError(t, database.DB.Create(&models.Hackathon{
		Title: "Climate Challenge",
		Tags:  "sustainability",
	}).Error)
	require.NoError(t, database.DB.Create(&models.Hackathon{
		Title:  "Fintech Sprint",
		Themes: "Banking,Payments",
	}).Error)

	// Substring of the title, different case
	w := performRequest(router, http.MethodGet, "/api/hackathons/search?q=CLIMATE", "", nil)
	requireStatus(t, w, http.StatusOK)
	hackathons := decodeBody(t, w)["hackathons"].([]interface{})
	require.Len(t, hackathons, 1)
	assert.Equal(t, "Climate Challenge", hackathons[0].(map[string]interface{})["title"])

	// Matches on themes too
	w = performRequest(router, http.MethodGet, "/api/hackathons/search?q=payments", "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeBody(t, w)["hackathons"].([]interface{}), 1)

	// No match
	w = performRequest(router, http.MethodGet, "/api/hackathons/search?q=blockchain", "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeBody(t, w)["hackathons"].([]interface{}), 0)
}

func TestSearchHackathonsMatchesWildcardsLiterally(t *testing.T) {
	router := setupTest(t)

	require.NoError(t, database.DB.Create(&models.Hackathon{Title: "Plain Hack"}).Error)
	require.NoError(t, database.DB.Create(&models.Hackathon{Title: "100% Remote Hack"}).Error)
	require.NoError(t, database.DB.Create(&models.Hackathon{Title: "snake_case Jam"}).Error)

	// A literal percent sign only matches titles that contain one
	w := performRequest(router, http.MethodGet, "/api/hackathons/search?q=%25", "", nil)
	requireStatus(t, w, http.StatusOK)
	hackathons := decodeBody(t, w)["hackathons"].([]interface{})
	require.Len(t, hackathons, 1)
	assert.Equal(t, "100% Remote Hack", hackathons[0].(map[string]interface{})["title"])

	// Underscore is not a single-character wildcard
	w = performRequest(router, http.MethodGet, "/api/hackathons/search?q=p_ain", "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeBody(t, w)["hackathons"].([]interface{}), 0)

	w = performRequest(router, http.MethodGet, "/api/hackathons/search?q=snake_case", "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeBody(t, w)["hackathons"].([]interface{}), 1)
}

func TestGetHackathonsThemesFilterMatchesWildcardsLiterally(t *testing.T) {
	router := setupTest(t)

	require.NoError(t, database.DB.Create(&models.Hackathon{Title: "A", Themes: "AI,Web"}).Error)
	require.NoError(t, database.DB.Create(&models.Hackathon{Title: "B", Themes: "100% Open Source"}).Error)

	w := performRequest(router, http.MethodGet, "/api/hackathons?themes=%25", "", nil)
	requireStatus(t, w, http.StatusOK)
	hackathons := decodeBody(t, w)["hackathons"].([]interface{})
	require.Len(t, hackathons, 1)
	assert.Equal(t, "B", hackathons[0].(map[string]interface{})["title"])
}
