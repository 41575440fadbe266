package main

import (
	"tutorhive-be/internal/model"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the registry that maps domain events
// to user-facing notifications.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "BOOKING_CREATED",
			DisplayName: "New Booking",
			Template:    "You have a new booking request for {start_time}",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
		},
		{
			Code:        "BOOKING_CONFIRMED",
			DisplayName: "Booking Confirmed",
			Template:    "Your session on {start_time} is confirmed",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
		},
		{
			Code:        "BOOKING_COMPLETED",
			DisplayName: "Session Completed",
			Template:    "Your session on {start_time} is complete. Leave a review!",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
		},
		{
			Code:        "BOOKING_CANCELLED",
			DisplayName: "Booking Cancelled",
			Template:    "The session on {start_time} was cancelled",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
		},
		{
			Code:        "PAYMENT_COMPLETED",
			DisplayName: "Payment Received",
			Template:    "Your payment of {amount} {currency} was received",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
		},
		{
			Code:        "PAYMENT_REFUNDED",
			DisplayName: "Payment Refunded",
			Template:    "Your payment of {amount} {currency} was refunded",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
		},
		{
			Code:        "REVIEW_RECEIVED",
			DisplayName: "New Review",
			Template:    "You received a {rating}-star review",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
		},
		{
			Code:        "CHAT_MESSAGE",
			DisplayName: "New Message",
			Template:    "{sender_name} sent you a message",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
		},
	}

	for _, t := range types {
		var existing model.NotificationType
		err := db.Where("code = ?", t.Code).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&t).Error; err != nil {
				color.Red("  ✗ %s: %v", t.Code, err)
				continue
			}
			color.Green("  ✓ %s", t.Code)
		} else if err == nil {
			color.Yellow("  - %s (exists)", t.Code)
		} else {
			color.Red("  ✗ %s: %v", t.Code, err)
		}
	}
}
