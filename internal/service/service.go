package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/louvor-app/worship-planner/internal/models"
	"github.com/louvor-app/worship-planner/internal/store"
)

const dateLayout = "2006-01-02"

// Labels shown where a cross-collection reference dangles or a role code
// needs a display name.
const (
	unknownMemberLabel    = "Membro desconhecido"
	generalRehearsalLabel = "Ensaio Geral"
)

var roleLabels = map[string]string{
	"admin":  "Administrador",
	"leader": "Líder",
	"member": "Membro",
}

var serviceStatuses = []string{"draft", "planned", "confirmed", "completed"}

// Service defines the planner's business operations: one read projection per
// page area plus the mutations the page forms invoke.
type Service interface {
	// Page projections
	Dashboard(now time.Time) models.DashboardResponse
	ListSongs(search, category string) []models.Song
	ListServices() []models.ServiceView
	ListTeam() []models.TeamMemberResponse
	ListRehearsals() []models.RehearsalView
	NotificationsFor(userID string) models.NotificationsResponse
	Reports() models.ReportsResponse
	ListMedia(category string) []models.MediaItem
	Header() models.HeaderResponse
	CurrentUser() *models.User

	// Mutations
	CreateUser(req models.CreateUserRequest) models.User
	UpdateUser(id string, patch models.UserPatch)
	UpdateCurrentUser(patch models.UserPatch) *models.User
	CreateSong(req models.CreateSongRequest) models.Song
	UpdateSong(id string, patch models.SongPatch)
	DeleteSong(id string)
	CreateService(req models.CreateServiceRequest) models.ServiceEvent
	UpdateService(id string, patch models.ServicePatch)
	DeleteService(id string)
	CreateRehearsal(req models.CreateRehearsalRequest) models.Rehearsal
	UpdateRehearsal(id string, patch models.RehearsalPatch)
	DeleteRehearsal(id string)
	CreateNotification(req models.CreateNotificationRequest) models.Notification
	MarkNotificationRead(id string)
}

// DefaultService implements Service over the persisted store.
type DefaultService struct {
	store *store.Store
	media []models.MediaItem
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(st *store.Store) Service {
	return &DefaultService{
		store: st,
		media: mediaCatalog(),
	}
}

// Dashboard aggregates the landing-page numbers: collection totals, the next
// three services and rehearsals after now, and the first five songs.
func (s *DefaultService) Dashboard(now time.Time) models.DashboardResponse {
	state := s.store.Snapshot()

	upcomingServices := make([]models.ServiceEvent, 0, len(state.Services))
	for _, svc := range state.Services {
		if dateAfter(svc.Date, now) {
			upcomingServices = append(upcomingServices, svc)
		}
	}
	sortByDate(upcomingServices, func(e models.ServiceEvent) string { return e.Date })
	if len(upcomingServices) > 3 {
		upcomingServices = upcomingServices[:3]
	}

	upcomingRehearsals := make([]models.Rehearsal, 0, len(state.Rehearsals))
	for _, r := range state.Rehearsals {
		if dateAfter(r.Date, now) {
			upcomingRehearsals = append(upcomingRehearsals, r)
		}
	}
	sortByDate(upcomingRehearsals, func(r models.Rehearsal) string { return r.Date })
	if len(upcomingRehearsals) > 3 {
		upcomingRehearsals = upcomingRehearsals[:3]
	}

	recentSongs := state.Songs
	if len(recentSongs) > 5 {
		recentSongs = recentSongs[:5]
	}

	return models.DashboardResponse{
		TotalServices:      len(state.Services),
		TotalSongs:         len(state.Songs),
		TotalMembers:       len(state.Users),
		TotalRehearsals:    len(state.Rehearsals),
		UpcomingServices:   upcomingServices,
		UpcomingRehearsals: upcomingRehearsals,
		RecentSongs:        recentSongs,
	}
}

// ListSongs filters the repertoire by a case-insensitive substring on title
// or artist, and optionally by category membership.
func (s *DefaultService) ListSongs(search, category string) []models.Song {
	state := s.store.Snapshot()
	needle := strings.ToLower(search)

	out := make([]models.Song, 0, len(state.Songs))
	for _, song := range state.Songs {
		if needle != "" &&
			!strings.Contains(strings.ToLower(song.Title), needle) &&
			!strings.Contains(strings.ToLower(song.Artist), needle) {
			continue
		}
		if category != "" && !containsString(song.Category, category) {
			continue
		}
		out = append(out, song)
	}
	return out
}

// ListServices returns every service ordered by date with its setlist and
// team resolved. Dangling song ids are dropped from the setlist; a dangling
// team user id keeps the assignment but with a placeholder name.
func (s *DefaultService) ListServices() []models.ServiceView {
	state := s.store.Snapshot()

	songsByID := make(map[string]models.Song, len(state.Songs))
	for _, song := range state.Songs {
		songsByID[song.ID] = song
	}
	usersByID := make(map[string]models.User, len(state.Users))
	for _, u := range state.Users {
		usersByID[u.ID] = u
	}

	services := append([]models.ServiceEvent(nil), state.Services...)
	sortByDate(services, func(e models.ServiceEvent) string { return e.Date })

	out := make([]models.ServiceView, 0, len(services))
	for _, svc := range services {
		view := models.ServiceView{
			ServiceEvent: svc,
			Setlist:      make([]models.Song, 0, len(svc.Songs)),
			TeamDetail:   make([]models.TeamMemberView, 0, len(svc.Team)),
		}
		for _, songID := range svc.Songs {
			if song, ok := songsByID[songID]; ok {
				view.Setlist = append(view.Setlist, song)
			}
		}
		for _, member := range svc.Team {
			name := unknownMemberLabel
			if u, ok := usersByID[member.UserID]; ok {
				name = u.Name
			}
			view.TeamDetail = append(view.TeamDetail, models.TeamMemberView{
				UserID:    member.UserID,
				Name:      name,
				Role:      member.Role,
				Confirmed: member.Confirmed,
			})
			if member.Confirmed {
				view.ConfirmedCount++
			}
		}
		out = append(out, view)
	}
	return out
}

func (s *DefaultService) ListTeam() []models.TeamMemberResponse {
	state := s.store.Snapshot()
	out := make([]models.TeamMemberResponse, 0, len(state.Users))
	for _, u := range state.Users {
		out = append(out, models.TeamMemberResponse{
			User:      u,
			RoleLabel: roleLabels[u.Role],
		})
	}
	return out
}

// ListRehearsals joins each rehearsal to its service and attendees. A
// rehearsal without a service, or whose service id dangles, is labeled as a
// general rehearsal; dangling attendee ids are dropped.
func (s *DefaultService) ListRehearsals() []models.RehearsalView {
	state := s.store.Snapshot()

	servicesByID := make(map[string]models.ServiceEvent, len(state.Services))
	for _, svc := range state.Services {
		servicesByID[svc.ID] = svc
	}
	usersByID := make(map[string]models.User, len(state.Users))
	for _, u := range state.Users {
		usersByID[u.ID] = u
	}

	out := make([]models.RehearsalView, 0, len(state.Rehearsals))
	for _, r := range state.Rehearsals {
		view := models.RehearsalView{
			Rehearsal:    r,
			ServiceLabel: generalRehearsalLabel,
			Attendees:    make([]models.User, 0, len(r.Attendees)),
		}
		if svc, ok := servicesByID[r.ServiceID]; ok {
			view.ServiceLabel = fmt.Sprintf("%s - %s", svc.Type, displayDate(svc.Date))
		}
		for _, attendeeID := range r.Attendees {
			if u, ok := usersByID[attendeeID]; ok {
				view.Attendees = append(view.Attendees, u)
			}
		}
		out = append(out, view)
	}
	return out
}

func (s *DefaultService) NotificationsFor(userID string) models.NotificationsResponse {
	state := s.store.Snapshot()
	resp := models.NotificationsResponse{Notifications: []models.Notification{}}
	for _, n := range state.Notifications {
		if n.UserID != userID {
			continue
		}
		resp.Notifications = append(resp.Notifications, n)
		if !n.Read {
			resp.UnreadCount++
		}
	}
	return resp
}

// Reports ranks songs by how many services reference them and non-admin
// members by how many team assignments they hold, both descending, top ten.
func (s *DefaultService) Reports() models.ReportsResponse {
	state := s.store.Snapshot()

	resp := models.ReportsResponse{
		TopSongs:            make([]models.SongUsage, 0, len(state.Songs)),
		MemberParticipation: []models.MemberParticipation{},
		StatusBreakdown:     make([]models.StatusCount, 0, len(serviceStatuses)),
	}

	for _, svc := range state.Services {
		if svc.Status == "completed" {
			resp.CompletedServices++
		}
	}

	for _, song := range state.Songs {
		count := 0
		for _, svc := range state.Services {
			if containsString(svc.Songs, song.ID) {
				count++
			}
		}
		resp.TopSongs = append(resp.TopSongs, models.SongUsage{Title: song.Title, Count: count})
	}
	sort.SliceStable(resp.TopSongs, func(i, j int) bool {
		return resp.TopSongs[i].Count > resp.TopSongs[j].Count
	})
	if len(resp.TopSongs) > 10 {
		resp.TopSongs = resp.TopSongs[:10]
	}

	for _, u := range state.Users {
		if u.Role == "admin" {
			continue
		}
		resp.TotalMembers++
		count := 0
		for _, svc := range state.Services {
			for _, member := range svc.Team {
				if member.UserID == u.ID {
					count++
					break
				}
			}
		}
		resp.MemberParticipation = append(resp.MemberParticipation, models.MemberParticipation{
			Name:  u.Name,
			Count: count,
		})
	}
	sort.SliceStable(resp.MemberParticipation, func(i, j int) bool {
		return resp.MemberParticipation[i].Count > resp.MemberParticipation[j].Count
	})
	if len(resp.MemberParticipation) > 10 {
		resp.MemberParticipation = resp.MemberParticipation[:10]
	}

	for _, status := range serviceStatuses {
		count := 0
		for _, svc := range state.Services {
			if svc.Status == status {
				count++
			}
		}
		resp.StatusBreakdown = append(resp.StatusBreakdown, models.StatusCount{Status: status, Count: count})
	}

	return resp
}

// ListMedia filters the static media catalog by category; empty or "all"
// returns everything.
func (s *DefaultService) ListMedia(category string) []models.MediaItem {
	if category == "" || category == "all" {
		return append([]models.MediaItem(nil), s.media...)
	}
	out := make([]models.MediaItem, 0, len(s.media))
	for _, item := range s.media {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Header returns what the shell displays: the active user and their unread
// notification count.
func (s *DefaultService) Header() models.HeaderResponse {
	state := s.store.Snapshot()
	resp := models.HeaderResponse{CurrentUser: state.CurrentUser}
	if state.CurrentUser == nil {
		return resp
	}
	for _, n := range state.Notifications {
		if n.UserID == state.CurrentUser.ID && !n.Read {
			resp.UnreadCount++
		}
	}
	return resp
}

func (s *DefaultService) CurrentUser() *models.User {
	return s.store.Snapshot().CurrentUser
}

func (s *DefaultService) CreateUser(req models.CreateUserRequest) models.User {
	user := models.User{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Instrument: req.Instrument,
		Avatar:     req.Avatar,
	}
	s.store.AddUser(user)
	return user
}

func (s *DefaultService) UpdateUser(id string, patch models.UserPatch) {
	s.store.UpdateUser(id, patch)
}

// UpdateCurrentUser patches the active user's record and refreshes the
// current-user field to match. No-op when nobody is active.
func (s *DefaultService) UpdateCurrentUser(patch models.UserPatch) *models.User {
	current := s.store.Snapshot().CurrentUser
	if current == nil {
		return nil
	}
	s.store.UpdateUser(current.ID, patch)
	for _, u := range s.store.Snapshot().Users {
		if u.ID == current.ID {
			updated := u
			s.store.SetCurrentUser(&updated)
			return &updated
		}
	}
	return current
}

func (s *DefaultService) CreateSong(req models.CreateSongRequest) models.Song {
	song := models.Song{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Artist:     req.Artist,
		Key:        req.Key,
		Tempo:      req.Tempo,
		Duration:   req.Duration,
		Lyrics:     req.Lyrics,
		Chords:     req.Chords,
		Category:   req.Category,
		AddedDate:  time.Now().Format(dateLayout),
		YoutubeURL: req.YoutubeURL,
		SpotifyURL: req.SpotifyURL,
	}
	if song.Category == nil {
		song.Category = []string{}
	}
	s.store.AddSong(song)
	return song
}

func (s *DefaultService) UpdateSong(id string, patch models.SongPatch) {
	s.store.UpdateSong(id, patch)
}

func (s *DefaultService) DeleteSong(id string) {
	s.store.DeleteSong(id)
}

func (s *DefaultService) CreateService(req models.CreateServiceRequest) models.ServiceEvent {
	svc := models.ServiceEvent{
		ID:     uuid.New().String(),
		Date:   req.Date,
		Time:   req.Time,
		Type:   req.Type,
		Theme:  req.Theme,
		Songs:  req.Songs,
		Team:   req.Team,
		Notes:  req.Notes,
		Status: req.Status,
	}
	if svc.Songs == nil {
		svc.Songs = []string{}
	}
	if svc.Team == nil {
		svc.Team = []models.TeamAssignment{}
	}
	if svc.Status == "" {
		svc.Status = "draft"
	}
	s.store.AddService(svc)
	return svc
}

func (s *DefaultService) UpdateService(id string, patch models.ServicePatch) {
	s.store.UpdateService(id, patch)
}

func (s *DefaultService) DeleteService(id string) {
	s.store.DeleteService(id)
}

func (s *DefaultService) CreateRehearsal(req models.CreateRehearsalRequest) models.Rehearsal {
	rehearsal := models.Rehearsal{
		ID:        uuid.New().String(),
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Location:  req.Location,
		Attendees: req.Attendees,
		Notes:     req.Notes,
	}
	if rehearsal.Attendees == nil {
		rehearsal.Attendees = []string{}
	}
	s.store.AddRehearsal(rehearsal)
	return rehearsal
}

func (s *DefaultService) UpdateRehearsal(id string, patch models.RehearsalPatch) {
	s.store.UpdateRehearsal(id, patch)
}

func (s *DefaultService) DeleteRehearsal(id string) {
	s.store.DeleteRehearsal(id)
}

func (s *DefaultService) CreateNotification(req models.CreateNotificationRequest) models.Notification {
	notification := models.Notification{
		ID:      uuid.New().String(),
		UserID:  req.UserID,
		Message: req.Message,
		Type:    req.Type,
		Read:    false,
		Date:    time.Now().Format("2006-01-02T15:04:05"),
	}
	s.store.AddNotification(notification)
	return notification
}

func (s *DefaultService) MarkNotificationRead(id string) {
	s.store.MarkNotificationRead(id)
}

// dateAfter reports whether the entity's date parses and falls after now.
// Unparsable dates are excluded from "upcoming" projections.
func dateAfter(date string, now time.Time) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return t.After(now)
}

func sortByDate[T any](items []T, date func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return date(items[i]) < date(items[j])
	})
}

func displayDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func mediaCatalog() []models.MediaItem {
	return []models.MediaItem{
		{ID: "1", Name: "Slide Introdução.pptx", Type: "document", Category: "Apresentações", UploadDate: "2025-01-10", Size: "2.3 MB"},
		{ID: "2", Name: "Video Testemunho.mp4", Type: "video", Category: "Vídeos", UploadDate: "2025-01-08", Size: "45.8 MB"},
		{ID: "3", Name: "Banner Evento.jpg", Type: "image", Category: "Imagens", UploadDate: "2025-01-05", Size: "1.2 MB"},
	}
}
