package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louvor-app/worship-planner/internal/api/testutils"
	"github.com/louvor-app/worship-planner/internal/models"
)

func TestListSongs(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	w := testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/songs", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var songs []models.Song
	testutils.Decode(t, w, &songs)
	assert.Len(t, songs, 3)

	// search filters on title or artist, case-insensitive
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/songs?search=sinach", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	testutils.Decode(t, w, &songs)
	require.Len(t, songs, 1)
	assert.Equal(t, "Way Maker", songs[0].Title)
}

func TestCreateSong(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	// Test case 1: successful creation
	req := models.CreateSongRequest{
		Title:    "Oceans",
		Artist:   "Hillsong United",
		Key:      "D",
		Tempo:    64,
		Duration: "8:56",
		Category: []string{"Adoração"},
	}

	w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/songs", req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Song
	testutils.Decode(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Oceans", created.Title)
	assert.NotEmpty(t, created.AddedDate)

	// the new song is appended at the end of the collection
	songs := testCtx.Store.Snapshot().Songs
	require.Len(t, songs, 4)
	assert.Equal(t, created.ID, songs[3].ID)

	// Test case 2: invalid request (missing required fields)
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/songs", models.CreateSongRequest{Title: "No Artist"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp models.ErrorResponse
	testutils.Decode(t, w, &errResp)
	assert.Equal(t, "error", errResp.Status)
	assert.Equal(t, "INVALID_REQUEST", errResp.Code)
}

func TestUpdateSong(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	w := testutils.PerformRequest(testCtx.Router, http.MethodPatch, "/api/songs/1", map[string]interface{}{
		"key":   "B",
		"tempo": 70,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	song := testCtx.Store.Snapshot().Songs[0]
	assert.Equal(t, "B", song.Key)
	assert.Equal(t, 70, song.Tempo)
	// fields not named in the patch are preserved
	assert.Equal(t, "Reckless Love", song.Title)
	assert.Equal(t, "Cory Asbury", song.Artist)

	// updating an absent id is a silent no-op
	before := testCtx.Store.Snapshot().Songs
	w = testutils.PerformRequest(testCtx.Router, http.MethodPatch, "/api/songs/missing", map[string]interface{}{"key": "A"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, testCtx.Store.Snapshot().Songs)
}

func TestUpdateSongEmptyBodyIsEmptyPatch(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	before := testCtx.Store.Snapshot().Songs

	// no body at all means no fields to merge, which is a valid no-op
	w := testutils.PerformRequest(testCtx.Router, http.MethodPatch, "/api/songs/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, testCtx.Store.Snapshot().Songs)

	// a malformed body is still rejected
	w = testutils.PerformRequest(testCtx.Router, http.MethodPatch, "/api/songs/1", "not a patch")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSong(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	w := testutils.PerformRequest(testCtx.Router, http.MethodDelete, "/api/songs/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	songs := testCtx.Store.Snapshot().Songs
	require.Len(t, songs, 2)
	assert.Equal(t, "1", songs[0].ID)
	assert.Equal(t, "3", songs[1].ID)

	// deleting an absent id is a silent no-op
	w = testutils.PerformRequest(testCtx.Router, http.MethodDelete, "/api/songs/missing", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testCtx.Store.Snapshot().Songs, 2)
}
