// ABOUTME: Feed and friends commands for the local social module.
// ABOUTME: The feed is append-only; friendships go pending then accepted.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/holdonapp/holdon/internal/models"
	"github.com/spf13/cobra"
)

var feedLimitFlag int

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the activity feed",
	Long: `Show your public activity feed, newest first.

Entries are posted automatically when you finish a workout or achieve a
new personal record.

EXAMPLES:

  $ holdon feed
  $ holdon feed --limit 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		feed, err := db.ListActivityFeed(currentUserID(), feedLimitFlag)
		if err != nil {
			return err
		}
		if len(feed) == 0 {
			fmt.Println("No activity yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range feed {
			switch a.ActivityType {
			case models.ActivityNewRecord:
				color.Yellow("★ %s", a.Payload)
			default:
				fmt.Printf("· %s", a.Payload)
			}
			faint.Printf("  %s\n", a.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Manage friendships",
	Long: `Manage friendships.

A friend request starts as pending; 'friends accept' confirms it. Friend
queries match either direction of the pair.

EXAMPLES:

  $ holdon friends add 2
  $ holdon friends accept 1
  $ holdon friends list`,
}

var friendsAddCmd = &cobra.Command{
	Use:   "add <user-id>",
	Short: "Send a friend request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		friendID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		f := &models.Friendship{
			UserID:    currentUserID(),
			FriendID:  friendID,
			Status:    models.FriendshipPending,
			CreatedAt: time.Now(),
		}
		if err := db.SaveFriendship(f); err != nil {
			return err
		}
		color.Green("✓ Friend request %d sent to user %d", f.ID, friendID)
		return nil
	},
}

var friendsAcceptCmd = &cobra.Command{
	Use:   "accept <friendship-id>",
	Short: "Accept a friend request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid friendship id %q", args[0])
		}

		f := &models.Friendship{ID: id, Status: models.FriendshipAccepted}
		if err := db.SaveFriendship(f); err != nil {
			return err
		}
		color.Green("✓ Friendship %d accepted", id)
		return nil
	},
}

var friendsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accepted friends",
	RunE: func(cmd *cobra.Command, args []string) error {
		friends, err := db.ListFriends(currentUserID())
		if err != nil {
			return err
		}
		if len(friends) == 0 {
			fmt.Println("No friends yet. Send a request with 'holdon friends add'.")
			return nil
		}

		faint := color.New(color.Faint)
		me := currentUserID()
		for _, f := range friends {
			other := f.FriendID
			if other == me {
				other = f.UserID
			}
			fmt.Printf("user %d", other)
			faint.Printf("  since %s\n", f.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	feedCmd.Flags().IntVar(&feedLimitFlag, "limit", 50, "max feed entries to show")
	friendsCmd.AddCommand(friendsAddCmd)
	friendsCmd.AddCommand(friendsAcceptCmd)
	friendsCmd.AddCommand(friendsListCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(friendsCmd)
}
