package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedhameedmohamed/simple-job-tracker/internal/model"
	"github.com/syedhameedmohamed/simple-job-tracker/internal/testutil"
	"github.com/syedhameedmohamed/simple-job-tracker/internal/trophy"
)

func clearTrophies(t *testing.T) {
	t.Helper()
	require.NoError(t, testDB.Where("1 = 1").Delete(&model.UnlockedTrophy{}).Error)
}

func TestUnlockTrophy(t *testing.T) {
	clearTrophies(t)
	r, _ := newTestRouter()

	payload := gin.H{
		"trophy_id":   "first_steps",
		"trophy_name": "First Steps",
		"trophy_type": "bronze",
	}

	rec, resp := testutil.MakeJSONRequest(payload, r, "/trophies", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "first_steps", resp["trophy_id"])

	// Unlocking again is a no-op, not an error
	rec, resp = testutil.MakeJSONRequest(payload, r, "/trophies", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Trophy already unlocked", resp["message"])

	var count int64
	require.NoError(t, testDB.Model(&model.UnlockedTrophy{}).Where("trophy_id = ?", "first_steps").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnlockTrophy_MissingFields(t *testing.T) {
	r, _ := newTestRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"trophy_id": "first_steps",
	}, r, "/trophies", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Trophy ID, name, and type are required", resp["error"])
}

func TestGetUnlockedTrophies(t *testing.T) {
	clearTrophies(t)
	r, _ := newTestRouter()

	for _, id := range []string{"first_steps", "getting_started"} {
		rec, _ := testutil.MakeJSONRequest(gin.H{
			"trophy_id":   id,
			"trophy_name": id,
			"trophy_type": "bronze",
		}, r, "/trophies", http.MethodPost)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, trophies := getJSONArray(r, "/trophies")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, trophies, 2)
}

func TestRevokeTrophy(t *testing.T) {
	clearTrophies(t)
	r, _ := newTestRouter()

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"trophy_id":   "half_century",
		"trophy_name": "Half Century",
		"trophy_type": "silver",
	}, r, "/trophies", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	req, _ := http.NewRequest(http.MethodDelete, "/trophies/half_century", nil)
	del := httptest.NewRecorder()
	r.ServeHTTP(del, req)

	assert.Equal(t, http.StatusOK, del.Code)
	assert.Contains(t, del.Body.String(), "Trophy revoked successfully")

	var count int64
	require.NoError(t, testDB.Model(&model.UnlockedTrophy{}).Where("trophy_id = ?", "half_century").Count(&count).Error)
	assert.Zero(t, count)
}

func TestRevokeTrophy_NotFound(t *testing.T) {
	clearTrophies(t)
	r, _ := newTestRouter()

	req, _ := http.NewRequest(http.MethodDelete, "/trophies/never_unlocked", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Trophy not found or not unlocked")
}

func TestResetTrophies(t *testing.T) {
	clearTrophies(t)
	r, _ := newTestRouter()

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"trophy_id":   "century_club",
		"trophy_name": "Century Club",
		"trophy_type": "gold",
	}, r, "/trophies", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	req, _ := http.NewRequest(http.MethodDelete, "/trophies", nil)
	del := httptest.NewRecorder()
	r.ServeHTTP(del, req)

	assert.Equal(t, http.StatusOK, del.Code)
	assert.Contains(t, del.Body.String(), "All trophies reset successfully")

	listRec, trophies := getJSONArray(r, "/trophies")
	assert.Equal(t, http.StatusOK, listRec.Code)
	assert.Empty(t, trophies)
}

func TestTrophyStatus(t *testing.T) {
	clearTrophies(t)
	r, _ := newTestRouter()

	rec, statuses := getJSONArray(r, "/trophies/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, statuses, len(trophy.Catalog))

	byID := map[string]map[string]interface{}{}
	for _, s := range statuses {
		byID[s["id"].(string)] = s
		assert.NotEmpty(t, s["name"])
		assert.NotEmpty(t, s["type"])
		assert.NotEmpty(t, s["category"])
	}

	// The database is seeded with jobs, so the first application trophy is
	// unlocked with full progress
	first := byID["first_steps"]
	assert.Equal(t, true, first["unlocked"])
	assert.Equal(t, float64(1), first["progress"])
	assert.NotEmpty(t, first["unlockedDate"])
}

func TestNotifications(t *testing.T) {
	r, _ := newTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/trophies/notifications", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// Dismissing an unknown notification is a no-op
	del, _ := http.NewRequest(http.MethodDelete, "/trophies/notifications/unknown-id", nil)
	delRec := httptest.NewRecorder()
	r.ServeHTTP(delRec, del)

	assert.Equal(t, http.StatusOK, delRec.Code)
	assert.Contains(t, delRec.Body.String(), "Notification dismissed")
}
