package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louvor-app/worship-planner/internal/models"
	"github.com/louvor-app/worship-planner/internal/repository"
	"github.com/louvor-app/worship-planner/internal/service"
	"github.com/louvor-app/worship-planner/internal/store"
)

func newTestService(t *testing.T) (service.Service, *store.Store) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	st, err := store.New(context.Background(), repository.NewMemorySlot(), log)
	require.NoError(t, err)
	return service.NewDefaultService(st), st
}

func mustParse(t *testing.T, date string) time.Time {
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return parsed
}

func TestDashboardUpcomingWindow(t *testing.T) {
	svc, _ := newTestService(t)

	// Seed services are dated 2025-01-19 and 2025-01-26; only the second
	// falls after the 20th.
	resp := svc.Dashboard(mustParse(t, "2025-01-20"))

	require.Len(t, resp.UpcomingServices, 1)
	assert.Equal(t, "2", resp.UpcomingServices[0].ID)

	assert.Equal(t, 2, resp.TotalServices)
	assert.Equal(t, 3, resp.TotalSongs)
	assert.Equal(t, 5, resp.TotalMembers)
	assert.Equal(t, 1, resp.TotalRehearsals)
}

func TestDashboardSortsAndLimitsUpcoming(t *testing.T) {
	svc, st := newTestService(t)
	for _, date := range []string{"2025-03-10", "2025-02-02", "2025-02-20", "2025-04-01"} {
		st.AddService(models.ServiceEvent{ID: "svc-" + date, Date: date, Time: "19:00", Type: "Culto de Oração", Status: "draft"})
	}

	resp := svc.Dashboard(mustParse(t, "2025-01-30"))

	require.Len(t, resp.UpcomingServices, 3)
	assert.Equal(t, "2025-02-02", resp.UpcomingServices[0].Date)
	assert.Equal(t, "2025-02-20", resp.UpcomingServices[1].Date)
	assert.Equal(t, "2025-03-10", resp.UpcomingServices[2].Date)
}

func TestListSongsSearchIsCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)

	byTitle := svc.ListSongs("reckless", "")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Reckless Love", byTitle[0].Title)

	byArtist := svc.ListSongs("BETHEL", "")
	require.Len(t, byArtist, 1)
	assert.Equal(t, "Goodness of God", byArtist[0].Title)

	assert.Len(t, svc.ListSongs("", ""), 3)
	assert.Empty(t, svc.ListSongs("no such song", ""))
}

func TestListSongsCategoryFilter(t *testing.T) {
	svc, _ := newTestService(t)

	louvor := svc.ListSongs("", "Louvor")
	require.Len(t, louvor, 2)
	assert.Equal(t, "Goodness of God", louvor[0].Title)
	assert.Equal(t, "Way Maker", louvor[1].Title)
}

func TestListServicesResolvesSetlistAndTeam(t *testing.T) {
	svc, _ := newTestService(t)

	views := svc.ListServices()
	require.Len(t, views, 2)

	first := views[0]
	assert.Equal(t, "1", first.ID)
	require.Len(t, first.Setlist, 3)
	assert.Equal(t, "Reckless Love", first.Setlist[0].Title)
	assert.Equal(t, 3, first.ConfirmedCount)
	require.Len(t, first.TeamDetail, 4)
	assert.Equal(t, "João Silva", first.TeamDetail[0].Name)
}

func TestListServicesToleratesDanglingReferences(t *testing.T) {
	svc, st := newTestService(t)
	st.AddService(models.ServiceEvent{
		ID:     "99",
		Date:   "2025-05-01",
		Time:   "19:00",
		Type:   "Culto de Oração",
		Songs:  []string{"1", "deleted-song"},
		Team:   []models.TeamAssignment{{UserID: "ghost", Role: "Vocal", Confirmed: true}},
		Status: "draft",
	})

	var view models.ServiceView
	for _, v := range svc.ListServices() {
		if v.ID == "99" {
			view = v
		}
	}

	// dangling song ids are filtered out of the setlist
	require.Len(t, view.Setlist, 1)
	assert.Equal(t, "1", view.Setlist[0].ID)

	// dangling user ids keep the assignment but get a placeholder name
	require.Len(t, view.TeamDetail, 1)
	assert.Equal(t, "Membro desconhecido", view.TeamDetail[0].Name)
}

func TestListTeamRoleLabels(t *testing.T) {
	svc, _ := newTestService(t)

	team := svc.ListTeam()
	require.Len(t, team, 5)
	assert.Equal(t, "Administrador", team[0].RoleLabel)
	assert.Equal(t, "Líder", team[1].RoleLabel)
	assert.Equal(t, "Membro", team[2].RoleLabel)
}

func TestListRehearsalsJoinsServiceAndAttendees(t *testing.T) {
	svc, st := newTestService(t)

	views := svc.ListRehearsals()
	require.Len(t, views, 1)
	assert.Equal(t, "Culto Dominical - 19/01/2025", views[0].ServiceLabel)
	require.Len(t, views[0].Attendees, 3)
	assert.Equal(t, "João Silva", views[0].Attendees[0].Name)

	// a rehearsal without a service is a general rehearsal
	st.AddRehearsal(models.Rehearsal{ID: "2", Date: "2025-02-01", Time: "19:00", Location: "Templo", Attendees: []string{"ghost"}})
	views = svc.ListRehearsals()
	require.Len(t, views, 2)
	assert.Equal(t, "Ensaio Geral", views[1].ServiceLabel)
	assert.Empty(t, views[1].Attendees)
}

func TestNotificationsForUser(t *testing.T) {
	svc, st := newTestService(t)

	resp := svc.NotificationsFor("1")
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, 1, resp.UnreadCount)

	st.MarkNotificationRead("1")
	resp = svc.NotificationsFor("1")
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, 0, resp.UnreadCount)

	assert.Empty(t, svc.NotificationsFor("2").Notifications)
}

func TestReports(t *testing.T) {
	svc, st := newTestService(t)
	st.UpdateService("1", models.ServicePatch{Status: strptr("completed")})

	resp := svc.Reports()

	assert.Equal(t, 1, resp.CompletedServices)
	assert.Equal(t, 4, resp.TotalMembers) // admin excluded

	// songs "2" and "3" appear in both seed services, song "1" in one
	require.Len(t, resp.TopSongs, 3)
	assert.Equal(t, 2, resp.TopSongs[0].Count)
	assert.Equal(t, 2, resp.TopSongs[1].Count)
	assert.Equal(t, models.SongUsage{Title: "Reckless Love", Count: 1}, resp.TopSongs[2])

	// João and Maria are on both teams, Pedro and Ana on one
	require.Len(t, resp.MemberParticipation, 4)
	assert.Equal(t, models.MemberParticipation{Name: "João Silva", Count: 2}, resp.MemberParticipation[0])
	assert.Equal(t, models.MemberParticipation{Name: "Maria Santos", Count: 2}, resp.MemberParticipation[1])

	assert.Equal(t, []models.StatusCount{
		{Status: "draft", Count: 1},
		{Status: "planned", Count: 0},
		{Status: "confirmed", Count: 0},
		{Status: "completed", Count: 1},
	}, resp.StatusBreakdown)
}

func TestListMedia(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Len(t, svc.ListMedia(""), 3)
	assert.Len(t, svc.ListMedia("all"), 3)

	videos := svc.ListMedia("Vídeos")
	require.Len(t, videos, 1)
	assert.Equal(t, "Video Testemunho.mp4", videos[0].Name)
}

func TestHeaderSummary(t *testing.T) {
	svc, st := newTestService(t)

	resp := svc.Header()
	require.NotNil(t, resp.CurrentUser)
	assert.Equal(t, "Admin", resp.CurrentUser.Name)
	assert.Equal(t, 1, resp.UnreadCount)

	st.SetCurrentUser(nil)
	resp = svc.Header()
	assert.Nil(t, resp.CurrentUser)
	assert.Equal(t, 0, resp.UnreadCount)
}

func TestCreateSongAssignsIDAndDate(t *testing.T) {
	svc, st := newTestService(t)

	created := svc.CreateSong(models.CreateSongRequest{Title: "New Song", Artist: "X", Category: []string{"Louvor"}})

	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.AddedDate)

	songs := st.Snapshot().Songs
	assert.Equal(t, created, songs[len(songs)-1])
}

func TestUpdateCurrentUserRefreshesActiveUser(t *testing.T) {
	svc, st := newTestService(t)

	updated := svc.UpdateCurrentUser(models.UserPatch{Name: strptr("Administrador Geral")})

	require.NotNil(t, updated)
	assert.Equal(t, "Administrador Geral", updated.Name)
	assert.Equal(t, "1", updated.ID)

	state := st.Snapshot()
	assert.Equal(t, "Administrador Geral", state.CurrentUser.Name)
	assert.Equal(t, "Administrador Geral", state.Users[0].Name)

	st.SetCurrentUser(nil)
	assert.Nil(t, svc.UpdateCurrentUser(models.UserPatch{Name: strptr("x")}))
}

func strptr(s string) *string { return &s }
