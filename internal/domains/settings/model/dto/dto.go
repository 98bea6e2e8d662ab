package dto

import (
	"club/internal/domains/settings/model"
)

type UpdateThemeRequest struct {
	PrimaryColor   *string `json:"primaryColor"   validate:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondaryColor" validate:"omitempty,hexcolor"`
}

// UpdateSettingsRequest carries field-level patches. Nil pointers leave the
// stored value untouched; an all-nil patch is a no-op.
type UpdateSettingsRequest struct {
	ClubName           *string             `json:"clubName"           validate:"omitempty,max=100"`
	ClubLogo           *string             `json:"clubLogo"           validate:"omitempty,url"`
	Theme              *UpdateThemeRequest `json:"theme"              validate:"omitempty"`
	MaintenanceMode    *bool               `json:"maintenanceMode"    validate:"omitempty"`
	MaintenanceMessage *string             `json:"maintenanceMessage" validate:"omitempty,max=500"`
	WelcomeMessage     *string             `json:"welcomeMessage"     validate:"omitempty,max=500"`
	AboutText          *string             `json:"aboutText"          validate:"omitempty,max=2000"`
}

// Apply merges the patch onto the record.
func (u *UpdateSettingsRequest) Apply(settings model.Settings) model.Settings {
	if u.ClubName != nil {
		settings.ClubName = *u.ClubName
	}

	if u.ClubLogo != nil {
		settings.ClubLogo = *u.ClubLogo
	}

	if u.Theme != nil {
		if u.Theme.PrimaryColor != nil {
			settings.Theme.PrimaryColor = *u.Theme.PrimaryColor
		}

		if u.Theme.SecondaryColor != nil {
			settings.Theme.SecondaryColor = *u.Theme.SecondaryColor
		}
	}

	if u.MaintenanceMode != nil {
		settings.MaintenanceMode = *u.MaintenanceMode
	}

	if u.MaintenanceMessage != nil {
		settings.MaintenanceMessage = *u.MaintenanceMessage
	}

	if u.WelcomeMessage != nil {
		settings.WelcomeMessage = *u.WelcomeMessage
	}

	if u.AboutText != nil {
		settings.AboutText = *u.AboutText
	}

	return settings
}

type SettingsResponse struct {
	ClubName           string      `json:"clubName"`
	ClubLogo           string      `json:"clubLogo,omitempty"`
	Theme              model.Theme `json:"theme"`
	MaintenanceMode    bool        `json:"maintenanceMode"`
	MaintenanceMessage string      `json:"maintenanceMessage"`
	WelcomeMessage     string      `json:"welcomeMessage"`
	AboutText          string      `json:"aboutText"`
}

func (r *SettingsResponse) FromModel(settings model.Settings) {
	r.ClubName = settings.ClubName
	r.ClubLogo = settings.ClubLogo
	r.Theme = settings.Theme
	r.MaintenanceMode = settings.MaintenanceMode
	r.MaintenanceMessage = settings.MaintenanceMessage
	r.WelcomeMessage = settings.WelcomeMessage
	r.AboutText = settings.AboutText
}
