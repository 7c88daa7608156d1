package models

// User represents a ministry team member
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"` // "admin", "leader" or "member"
	Instrument string `json:"instrument,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
}

// Song represents an entry in the repertoire
type Song struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Artist     string   `json:"artist"`
	Key        string   `json:"key"`
	Tempo      int      `json:"tempo"`
	Duration   string   `json:"duration"`
	Lyrics     string   `json:"lyrics"`
	Chords     string   `json:"chords"`
	Category   []string `json:"category"`
	AddedDate  string   `json:"addedDate"`
	YoutubeURL string   `json:"youtubeUrl,omitempty"`
	SpotifyURL string   `json:"spotifyUrl,omitempty"`
}

// TeamAssignment binds a user to a role within a single service
type TeamAssignment struct {
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	Confirmed bool   `json:"confirmed"`
}

// ServiceEvent represents a worship service or meeting. Songs holds the
// ordered setlist as song ids; Team holds the assignment records. Both are
// plain id references with no referential-integrity enforcement; dangling
// ids are tolerated and filtered out when rendering.
type ServiceEvent struct {
	ID     string           `json:"id"`
	Date   string           `json:"date"`
	Time   string           `json:"time"`
	Type   string           `json:"type"`
	Theme  string           `json:"theme,omitempty"`
	Songs  []string         `json:"songs"`
	Team   []TeamAssignment `json:"team"`
	Notes  string           `json:"notes,omitempty"`
	Status string           `json:"status"` // "draft", "planned", "confirmed" or "completed"
}

// Rehearsal represents a practice session. An empty ServiceID means a
// general rehearsal not tied to any service.
type Rehearsal struct {
	ID        string   `json:"id"`
	ServiceID string   `json:"serviceId,omitempty"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Location  string   `json:"location"`
	Attendees []string `json:"attendees"`
	Notes     string   `json:"notes,omitempty"`
}

// Notification is a message addressed to a single user
type Notification struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Message string `json:"message"`
	Type    string `json:"type"` // "info", "warning" or "success"
	Read    bool   `json:"read"`
	Date    string `json:"date"`
}

// MediaItem is an entry in the static media catalog
type MediaItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"` // "video", "image" or "document"
	Category   string `json:"category"`
	UploadDate string `json:"uploadDate"`
	Size       string `json:"size"`
}

// State is the full application state: all six collections plus the active
// user. It is serialized as one JSON document into the durable state slot.
type State struct {
	CurrentUser   *User          `json:"currentUser"`
	Users         []User         `json:"users"`
	Songs         []Song         `json:"songs"`
	Services      []ServiceEvent `json:"services"`
	Rehearsals    []Rehearsal    `json:"rehearsals"`
	Notifications []Notification `json:"notifications"`
}

// Clone returns a deep copy of the state so callers never alias slices owned
// by the store.
func (s State) Clone() State {
	out := State{
		Users:         make([]User, len(s.Users)),
		Songs:         make([]Song, len(s.Songs)),
		Services:      make([]ServiceEvent, len(s.Services)),
		Rehearsals:    make([]Rehearsal, len(s.Rehearsals)),
		Notifications: make([]Notification, len(s.Notifications)),
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	copy(out.Users, s.Users)
	copy(out.Notifications, s.Notifications)
	for i, song := range s.Songs {
		song.Category = append([]string(nil), song.Category...)
		out.Songs[i] = song
	}
	for i, svc := range s.Services {
		svc.Songs = append([]string(nil), svc.Songs...)
		svc.Team = append([]TeamAssignment(nil), svc.Team...)
		out.Services[i] = svc
	}
	for i, r := range s.Rehearsals {
		r.Attendees = append([]string(nil), r.Attendees...)
		out.Rehearsals[i] = r
	}
	return out
}
