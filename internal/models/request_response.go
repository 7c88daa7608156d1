package models

// Request models
type CreateUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Role       string `json:"role" binding:"required,oneof=admin leader member"`
	Instrument string `json:"instrument"`
	Avatar     string `json:"avatar"`
}

type CreateSongRequest struct {
	Title      string   `json:"title" binding:"required"`
	Artist     string   `json:"artist" binding:"required"`
	Key        string   `json:"key"`
	Tempo      int      `json:"tempo"`
	Duration   string   `json:"duration"`
	Lyrics     string   `json:"lyrics"`
	Chords     string   `json:"chords"`
	Category   []string `json:"category"`
	YoutubeURL string   `json:"youtubeUrl"`
	SpotifyURL string   `json:"spotifyUrl"`
}

type CreateServiceRequest struct {
	Date   string           `json:"date" binding:"required"`
	Time   string           `json:"time" binding:"required"`
	Type   string           `json:"type" binding:"required"`
	Theme  string           `json:"theme"`
	Songs  []string         `json:"songs"`
	Team   []TeamAssignment `json:"team"`
	Notes  string           `json:"notes"`
	Status string           `json:"status" binding:"omitempty,oneof=draft planned confirmed completed"`
}

type CreateRehearsalRequest struct {
	ServiceID string   `json:"serviceId"`
	Date      string   `json:"date" binding:"required"`
	Time      string   `json:"time" binding:"required"`
	Location  string   `json:"location" binding:"required"`
	Attendees []string `json:"attendees"`
	Notes     string   `json:"notes"`
}

type CreateNotificationRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=info warning success"`
}

// Response models
type DashboardResponse struct {
	TotalServices      int            `json:"totalServices"`
	TotalSongs         int            `json:"totalSongs"`
	TotalMembers       int            `json:"totalMembers"`
	TotalRehearsals    int            `json:"totalRehearsals"`
	UpcomingServices   []ServiceEvent `json:"upcomingServices"`
	UpcomingRehearsals []Rehearsal    `json:"upcomingRehearsals"`
	RecentSongs        []Song         `json:"recentSongs"`
}

// TeamMemberView is a service team assignment joined with the user record.
// Name falls back to a placeholder when the user id dangles.
type TeamMemberView struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Confirmed bool   `json:"confirmed"`
}

type ServiceView struct {
	ServiceEvent
	Setlist        []Song           `json:"setlist"`
	TeamDetail     []TeamMemberView `json:"teamDetail"`
	ConfirmedCount int              `json:"confirmedCount"`
}

type TeamMemberResponse struct {
	User
	RoleLabel string `json:"roleLabel"`
}

type RehearsalView struct {
	Rehearsal
	ServiceLabel string `json:"serviceLabel"`
	Attendees    []User `json:"attendeeDetail"`
}

type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}

type SongUsage struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

type MemberParticipation struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type ReportsResponse struct {
	CompletedServices   int                   `json:"completedServices"`
	TotalMembers        int                   `json:"totalMembers"`
	TopSongs            []SongUsage           `json:"topSongs"`
	MemberParticipation []MemberParticipation `json:"memberParticipation"`
	StatusBreakdown     []StatusCount         `json:"statusBreakdown"`
}

type HeaderResponse struct {
	CurrentUser *User `json:"currentUser"`
	UnreadCount int   `json:"unreadCount"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
