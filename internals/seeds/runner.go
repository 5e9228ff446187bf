package seeds

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	eventModel "campushub_backend/internals/features/events/event/model"
	authHelper "campushub_backend/internals/features/users/auth/helper"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

const demoInstitution = "Springfield University"

// Run inserts a demo admin, organizer, student and a pair of events.
// Idempotent: it keys off the admin email and does nothing on a second run.
func Run(db *gorm.DB) error {
	var existing userModel.UserModel
	err := db.Where("user_email = ?", "admin@campushub.dev").First(&existing).Error
	if err == nil {
		log.Println("[SEED] demo data already present, skipping")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := authHelper.HashPassword("changeme-now")
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		UserName:             "Campus Admin",
		UserEmail:            "admin@campushub.dev",
		UserPassword:         hash,
		UserRole:             constants.RoleAdmin,
		UserInstitution:      demoInstitution,
		UserProfileCompleted: true,
	}
	organizer := userModel.UserModel{
		UserName:             "Demo Organizer",
		UserEmail:            "organizer@campushub.dev",
		UserPassword:         hash,
		UserRole:             constants.RoleOrganizer,
		UserInstitution:      demoInstitution,
		UserProfileCompleted: true,
	}
	student := userModel.UserModel{
		UserName:             "Demo Student",
		UserEmail:            "student@campushub.dev",
		UserPassword:         hash,
		UserRole:             constants.RoleStudent,
		UserInstitution:      demoInstitution,
		UserProfileCompleted: true,
	}
	for _, u := range []*userModel.UserModel{&admin, &organizer, &student} {
		if err := db.Create(u).Error; err != nil {
			return err
		}
	}

	now := time.Now()
	events := []eventModel.EventModel{
		{
			EventTitle:       "Freshers Tech Meetup",
			EventSlug:        helper.GenerateSlug("Freshers Tech Meetup"),
			EventDescription: "Kick-off meetup for the new semester.",
			EventLocation:    "Main Auditorium",
			EventCategory:    eventModel.CategoryTechnical,
			EventInstitution: demoInstitution,
			EventStartDate:   now.AddDate(0, 0, 7),
			EventEndDate:     now.AddDate(0, 0, 7),
			EventCapacity:    120,
			EventCreatedBy:   organizer.UserID,
		},
		{
			EventTitle:       "Spring Cultural Night",
			EventSlug:        helper.GenerateSlug("Spring Cultural Night"),
			EventDescription: "Music, food and performances from campus clubs.",
			EventLocation:    "Open Grounds",
			EventCategory:    eventModel.CategoryCultural,
			EventInstitution: demoInstitution,
			EventStartDate:   now.AddDate(0, 0, 14),
			EventEndDate:     now.AddDate(0, 0, 15),
			EventCapacity:    500,
			EventCreatedBy:   organizer.UserID,
		},
	}
	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			return err
		}
	}

	log.Println("[SEED] demo users and events created")
	return nil
}
