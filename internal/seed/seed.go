// Package seed populates the store with the demo dataset on first start.
// Each collection is seeded independently and only while its key is absent,
// so a partially seeded store finishes seeding on the next start without
// clobbering data written in between.
package seed

import (
	"club/infras/otel"
	bookingModel "club/internal/domains/booking/model"
	eventModel "club/internal/domains/event/model"
	notificationModel "club/internal/domains/notification/model"
	settingsModel "club/internal/domains/settings/model"
	userModel "club/internal/domains/user/model"
	"club/shared/constant"
	"club/shared/kv"
	"club/shared/store"
	"club/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

func demoUsers() []userModel.User {
	now := timezone.Now()

	return []userModel.User{
		{
			ID:        "1",
			Email:     "owner@club.com",
			Password:  "owner123",
			Role:      constant.RoleOwner,
			Name:      "Club Owner",
			Phone:     "+1234567890",
			CreatedAt: now,
		},
		{
			ID:        "2",
			Email:     "admin@club.com",
			Password:  "admin123",
			Role:      constant.RoleAdmin,
			Name:      "Club Admin",
			Phone:     "+1234567891",
			CreatedAt: now,
		},
		{
			ID:        "3",
			Email:     "user@club.com",
			Password:  "user123",
			Role:      constant.RoleUser,
			Name:      "John Doe",
			Phone:     "+1234567892",
			CreatedAt: now,
		},
	}
}

func demoEvents() []eventModel.Event {
	now := timezone.Now()

	return []eventModel.Event{
		{
			ID:             "1",
			Title:          "Friday Night Party",
			Description:    "Join us for an amazing night of music and dancing",
			Date:           "2025-12-15",
			Time:           "21:00",
			Price:          50,
			Capacity:       200,
			Booked:         45,
			Image:          "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=800",
			Status:         constant.EventStatusActive,
			BookingEnabled: true,
			CreatedAt:      now,
		},
		{
			ID:             "2",
			Title:          "Saturday Live Music",
			Description:    "Experience live performances from top artists",
			Date:           "2025-12-16",
			Time:           "20:00",
			Price:          75,
			Capacity:       150,
			Booked:         89,
			Image:          "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?w=800",
			Status:         constant.EventStatusActive,
			BookingEnabled: true,
			CreatedAt:      now,
		},
		{
			ID:             "3",
			Title:          "Sunday Brunch Special",
			Description:    "Relax with friends over delicious food and drinks",
			Date:           "2025-12-17",
			Time:           "12:00",
			Price:          35,
			Capacity:       100,
			Booked:         23,
			Image:          "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=800",
			Status:         constant.EventStatusActive,
			BookingEnabled: true,
			CreatedAt:      now,
		},
	}
}

type Seeder struct {
	store kv.KV
	otel  otel.Otel
}

func New(kvStore kv.KV, otl otel.Otel) Seeder {
	return Seeder{
		store: kvStore,
		otel:  otl,
	}
}

// Run seeds every absent collection. Present keys, including present-but-empty
// ones, are left untouched.
func (s Seeder) Run(ctx context.Context) error {
	kvStore, otl := s.store, s.otel

	users := store.NewCollection[userModel.User](userModel.EntityName, constant.StoreKeyUsers, kvStore, otl)
	if !users.Exists(ctx) {
		if err := users.Replace(ctx, demoUsers()); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}

		log.Info().Msg("seeded demo users")
	}

	events := store.NewCollection[eventModel.Event](eventModel.EntityName, constant.StoreKeyEvents, kvStore, otl)
	if !events.Exists(ctx) {
		if err := events.Replace(ctx, demoEvents()); err != nil {
			return fmt.Errorf("failed to seed events: %w", err)
		}

		log.Info().Msg("seeded demo events")
	}

	settings := store.NewDocument[settingsModel.Settings](settingsModel.EntityName, constant.StoreKeySettings, kvStore, otl)
	if _, found := settings.Get(ctx); !found {
		if err := settings.Put(ctx, settingsModel.Default()); err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}

		log.Info().Msg("seeded default settings")
	}

	bookings := store.NewCollection[bookingModel.Booking](bookingModel.EntityName, constant.StoreKeyBookings, kvStore, otl)
	if !bookings.Exists(ctx) {
		if err := bookings.Replace(ctx, nil); err != nil {
			return fmt.Errorf("failed to seed bookings: %w", err)
		}
	}

	notifications := store.NewCollection[notificationModel.Notification](notificationModel.EntityName, constant.StoreKeyNotifications, kvStore, otl)
	if !notifications.Exists(ctx) {
		if err := notifications.Replace(ctx, nil); err != nil {
			return fmt.Errorf("failed to seed notifications: %w", err)
		}
	}

	return nil
}
