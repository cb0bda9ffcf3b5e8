// ABOUTME: Friendship and activity-feed CRUD for the local social module.
// ABOUTME: Friend queries match either direction of the pair.
package store

import (
	"fmt"
	"time"

	"github.com/holdonapp/holdon/internal/models"
)

// SaveFriendship inserts on zero id and updates otherwise.
func (d *DB) SaveFriendship(f *models.Friendship) error {
	if f.ID == 0 {
		res, err := d.db.Exec(`
			INSERT INTO friendships (user_id, friend_id, status, created_at)
			VALUES (?, ?, ?, ?)`,
			f.UserID, f.FriendID, f.Status, f.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert friendship: %w", err)
		}
		f.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert friendship: %w", err)
		}
		return nil
	}

	_, err := d.db.Exec(`UPDATE friendships SET status = ? WHERE friendship_id = ?`, f.Status, f.ID)
	if err != nil {
		return fmt.Errorf("update friendship: %w", err)
	}
	return nil
}

// ListFriends retrieves accepted friendships involving the user on either
// side of the pair.
func (d *DB) ListFriends(userID int64) ([]*models.Friendship, error) {
	rows, err := d.db.Query(`
		SELECT friendship_id, user_id, friend_id, status, created_at
		FROM friendships
		WHERE (user_id = ? OR friend_id = ?) AND status = ?
		ORDER BY created_at DESC`, userID, userID, models.FriendshipAccepted)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	defer rows.Close()

	var friends []*models.Friendship
	for rows.Next() {
		var f models.Friendship
		var createdAt string
		if err := rows.Scan(&f.ID, &f.UserID, &f.FriendID, &f.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scan friendship: %w", err)
		}
		f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		friends = append(friends, &f)
	}
	return friends, rows.Err()
}

// InsertActivity appends a feed entry.
func (d *DB) InsertActivity(a *models.Activity) error {
	res, err := d.db.Exec(`
		INSERT INTO activity_feed (user_id, activity_type, payload, is_public, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		a.UserID, a.ActivityType, a.Payload, a.IsPublic, a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListActivityFeed retrieves a user's public feed entries, newest first.
func (d *DB) ListActivityFeed(userID int64, limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.db.Query(`
		SELECT activity_id, user_id, activity_type, payload, is_public, created_at
		FROM activity_feed
		WHERE user_id = ? AND is_public = 1
		ORDER BY created_at DESC, activity_id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity feed: %w", err)
	}
	defer rows.Close()

	var feed []*models.Activity
	for rows.Next() {
		var a models.Activity
		var createdAt string
		if err := rows.Scan(&a.ID, &a.UserID, &a.ActivityType, &a.Payload, &a.IsPublic, &createdAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		feed = append(feed, &a)
	}
	return feed, rows.Err()
}
