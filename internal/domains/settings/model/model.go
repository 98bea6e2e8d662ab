package model

const (
	EntityName = "settings"
)

type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// Settings is the club-wide singleton document.
type Settings struct {
	ClubName           string `json:"clubName"`
	ClubLogo           string `json:"clubLogo,omitempty"`
	Theme              Theme  `json:"theme"`
	MaintenanceMode    bool   `json:"maintenanceMode"`
	MaintenanceMessage string `json:"maintenanceMessage"`
	WelcomeMessage     string `json:"welcomeMessage"`
	AboutText          string `json:"aboutText"`
}

// Default returns the settings a fresh install starts with. Reads of an
// absent settings document fall back to these as well.
func Default() Settings {
	return Settings{
		ClubName: "Elite Club",
		ClubLogo: "https://images.unsplash.com/photo-1566417713940-fe7c737a9ef2?w=200",
		Theme: Theme{
			PrimaryColor:   "#6366f1",
			SecondaryColor: "#8b5cf6",
		},
		MaintenanceMode:    false,
		MaintenanceMessage: "We are currently under maintenance. Please check back soon!",
		WelcomeMessage:     "Welcome to Elite Club - Where Memories Are Made",
		AboutText:          "Experience the finest entertainment and hospitality in the city.",
	}
}
