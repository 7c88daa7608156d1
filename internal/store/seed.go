package store

import "github.com/louvor-app/worship-planner/internal/models"

// SeedState returns the fixed initial dataset used when no state has been
// persisted yet.
func SeedState() models.State {
	admin := models.User{
		ID:    "1",
		Name:  "Admin",
		Email: "admin@igreja.com",
		Role:  "admin",
	}

	return models.State{
		CurrentUser: &admin,
		Users: []models.User{
			admin,
			{ID: "2", Name: "João Silva", Email: "joao@igreja.com", Role: "leader", Instrument: "Guitarra"},
			{ID: "3", Name: "Maria Santos", Email: "maria@igreja.com", Role: "member", Instrument: "Vocal"},
			{ID: "4", Name: "Pedro Costa", Email: "pedro@igreja.com", Role: "member", Instrument: "Bateria"},
			{ID: "5", Name: "Ana Lima", Email: "ana@igreja.com", Role: "member", Instrument: "Teclado"},
		},
		Songs: []models.Song{
			{
				ID:        "1",
				Title:     "Reckless Love",
				Artist:    "Cory Asbury",
				Key:       "C",
				Tempo:     72,
				Duration:  "5:42",
				Lyrics:    "Before I spoke a word, You were singing over me...",
				Chords:    "C G Am F",
				Category:  []string{"Adoração", "Contemporâneo"},
				AddedDate: "2024-01-15",
			},
			{
				ID:        "2",
				Title:     "Goodness of God",
				Artist:    "Bethel Music",
				Key:       "D",
				Tempo:     120,
				Duration:  "6:31",
				Lyrics:    "I love You Lord, oh Your mercy never fails me...",
				Chords:    "D A Bm G",
				Category:  []string{"Adoração", "Louvor"},
				AddedDate: "2024-01-10",
			},
			{
				ID:        "3",
				Title:     "Way Maker",
				Artist:    "Sinach",
				Key:       "G",
				Tempo:     132,
				Duration:  "5:30",
				Lyrics:    "You are here, moving in our midst...",
				Chords:    "G C Em D",
				Category:  []string{"Louvor", "Contemporâneo"},
				AddedDate: "2024-01-05",
			},
		},
		Services: []models.ServiceEvent{
			{
				ID:    "1",
				Date:  "2025-01-19",
				Time:  "19:00",
				Type:  "Culto Dominical",
				Theme: "A Graça de Deus",
				Songs: []string{"1", "2", "3"},
				Team: []models.TeamAssignment{
					{UserID: "2", Role: "Guitarra", Confirmed: true},
					{UserID: "3", Role: "Vocal", Confirmed: true},
					{UserID: "4", Role: "Bateria", Confirmed: false},
					{UserID: "5", Role: "Teclado", Confirmed: true},
				},
				Notes:  "Lembrar de testar o som às 18h",
				Status: "planned",
			},
			{
				ID:    "2",
				Date:  "2025-01-26",
				Time:  "10:00",
				Type:  "Culto Matinal",
				Songs: []string{"2", "3"},
				Team: []models.TeamAssignment{
					{UserID: "2", Role: "Guitarra", Confirmed: false},
					{UserID: "3", Role: "Vocal", Confirmed: false},
				},
				Status: "draft",
			},
		},
		Rehearsals: []models.Rehearsal{
			{
				ID:        "1",
				ServiceID: "1",
				Date:      "2025-01-17",
				Time:      "19:00",
				Location:  "Sala de Ensaio",
				Attendees: []string{"2", "3", "5"},
				Notes:     "Focar nas transições entre músicas",
			},
		},
		Notifications: []models.Notification{
			{
				ID:      "1",
				UserID:  "1",
				Message: "Novo ensaio agendado para 17/01",
				Type:    "info",
				Read:    false,
				Date:    "2025-01-14T10:00:00",
			},
		},
	}
}
