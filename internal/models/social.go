// ABOUTME: Friendship and activity-feed rows for the local social module.
// ABOUTME: The feed is append-only and listed newest-first.
package models

import "time"

// Friendship statuses.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipBlocked  = "blocked"
)

// Friendship links two users. Queries match either direction.
type Friendship struct {
	ID        int64
	UserID    int64
	FriendID  int64
	Status    string
	CreatedAt time.Time
}

// Activity types posted to the feed.
const (
	ActivityWorkoutCompleted = "workout_completed"
	ActivityNewRecord        = "new_record"
)

// Activity is one feed entry. Payload is freeform display text.
type Activity struct {
	ID           int64
	UserID       int64
	ActivityType string
	Payload      string
	IsPublic     bool
	CreatedAt    time.Time
}

// NewActivity creates an unpersisted public feed entry.
func NewActivity(userID int64, activityType, payload string) *Activity {
	return &Activity{
		UserID:       userID,
		ActivityType: activityType,
		Payload:      payload,
		IsPublic:     true,
		CreatedAt:    time.Now(),
	}
}
