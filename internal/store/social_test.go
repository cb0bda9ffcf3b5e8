// ABOUTME: Tests for friendships and the activity feed.
// ABOUTME: Friend queries match either direction; the feed lists newest first.
package store

import (
	"testing"
	"time"

	"github.com/holdonapp/holdon/internal/models"
)

func TestListFriendsMatchesEitherDirection(t *testing.T) {
	d := newTestDB(t)

	save := func(userID, friendID int64, status string) {
		t.Helper()
		f := &models.Friendship{UserID: userID, FriendID: friendID, Status: status, CreatedAt: time.Now()}
		if err := d.SaveFriendship(f); err != nil {
			t.Fatalf("SaveFriendship: %v", err)
		}
	}

	save(1, 2, models.FriendshipAccepted) // outgoing
	save(3, 1, models.FriendshipAccepted) // incoming
	save(1, 4, models.FriendshipPending)  // not accepted yet
	save(5, 6, models.FriendshipAccepted) // unrelated

	friends, err := d.ListFriends(1)
	if err != nil {
		t.Fatalf("ListFriends: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("got %d friendships, want 2", len(friends))
	}
}

func TestFriendshipAcceptUpdatesStatus(t *testing.T) {
	d := newTestDB(t)

	f := &models.Friendship{UserID: 1, FriendID: 2, Status: models.FriendshipPending, CreatedAt: time.Now()}
	if err := d.SaveFriendship(f); err != nil {
		t.Fatalf("save pending: %v", err)
	}

	f.Status = models.FriendshipAccepted
	if err := d.SaveFriendship(f); err != nil {
		t.Fatalf("accept: %v", err)
	}

	friends, err := d.ListFriends(2)
	if err != nil {
		t.Fatalf("ListFriends: %v", err)
	}
	if len(friends) != 1 {
		t.Fatalf("got %d friendships after accept, want 1", len(friends))
	}
}

func TestActivityFeedNewestFirst(t *testing.T) {
	d := newTestDB(t)

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		a := models.NewActivity(1, models.ActivityWorkoutCompleted, "Workout")
		a.CreatedAt = base.AddDate(0, 0, i)
		if err := d.InsertActivity(a); err != nil {
			t.Fatalf("InsertActivity: %v", err)
		}
	}

	feed, err := d.ListActivityFeed(1, 0)
	if err != nil {
		t.Fatalf("ListActivityFeed: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("got %d entries, want 3", len(feed))
	}
	for i := 1; i < len(feed); i++ {
		if feed[i-1].CreatedAt.Before(feed[i].CreatedAt) {
			t.Error("feed not newest-first")
		}
	}
}

func TestActivityFeedSkipsPrivateEntries(t *testing.T) {
	d := newTestDB(t)

	public := models.NewActivity(1, models.ActivityNewRecord, "Bench press: 90.0 kg")
	if err := d.InsertActivity(public); err != nil {
		t.Fatalf("insert public: %v", err)
	}
	private := models.NewActivity(1, models.ActivityWorkoutCompleted, "Secret session")
	private.IsPublic = false
	if err := d.InsertActivity(private); err != nil {
		t.Fatalf("insert private: %v", err)
	}

	feed, err := d.ListActivityFeed(1, 0)
	if err != nil {
		t.Fatalf("ListActivityFeed: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("got %d entries, want only the public one", len(feed))
	}
	if feed[0].Payload != "Bench press: 90.0 kg" {
		t.Errorf("unexpected entry %q", feed[0].Payload)
	}
}
