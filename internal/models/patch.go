package models

// Patch types express partial updates: a nil field is left untouched, a
// non-nil field overwrites the entity's value. No patch carries the id: an
// update never alters the id of the entity it targets.

type UserPatch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Role       *string `json:"role" binding:"omitempty,oneof=admin leader member"`
	Instrument *string `json:"instrument"`
	Avatar     *string `json:"avatar"`
}

func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Instrument != nil {
		u.Instrument = *p.Instrument
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
}

type SongPatch struct {
	Title      *string   `json:"title"`
	Artist     *string   `json:"artist"`
	Key        *string   `json:"key"`
	Tempo      *int      `json:"tempo"`
	Duration   *string   `json:"duration"`
	Lyrics     *string   `json:"lyrics"`
	Chords     *string   `json:"chords"`
	Category   *[]string `json:"category"`
	YoutubeURL *string   `json:"youtubeUrl"`
	SpotifyURL *string   `json:"spotifyUrl"`
}

func (p SongPatch) Apply(s *Song) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Artist != nil {
		s.Artist = *p.Artist
	}
	if p.Key != nil {
		s.Key = *p.Key
	}
	if p.Tempo != nil {
		s.Tempo = *p.Tempo
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Lyrics != nil {
		s.Lyrics = *p.Lyrics
	}
	if p.Chords != nil {
		s.Chords = *p.Chords
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.YoutubeURL != nil {
		s.YoutubeURL = *p.YoutubeURL
	}
	if p.SpotifyURL != nil {
		s.SpotifyURL = *p.SpotifyURL
	}
}

type ServicePatch struct {
	Date   *string           `json:"date"`
	Time   *string           `json:"time"`
	Type   *string           `json:"type"`
	Theme  *string           `json:"theme"`
	Songs  *[]string         `json:"songs"`
	Team   *[]TeamAssignment `json:"team"`
	Notes  *string           `json:"notes"`
	Status *string           `json:"status" binding:"omitempty,oneof=draft planned confirmed completed"`
}

func (p ServicePatch) Apply(s *ServiceEvent) {
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.Time != nil {
		s.Time = *p.Time
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Songs != nil {
		s.Songs = *p.Songs
	}
	if p.Team != nil {
		s.Team = *p.Team
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}

type RehearsalPatch struct {
	ServiceID *string   `json:"serviceId"`
	Date      *string   `json:"date"`
	Time      *string   `json:"time"`
	Location  *string   `json:"location"`
	Attendees *[]string `json:"attendees"`
	Notes     *string   `json:"notes"`
}

func (p RehearsalPatch) Apply(r *Rehearsal) {
	if p.ServiceID != nil {
		r.ServiceID = *p.ServiceID
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Attendees != nil {
		r.Attendees = *p.Attendees
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}
