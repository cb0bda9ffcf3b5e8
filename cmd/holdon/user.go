// ABOUTME: User account commands: register and login.
// ABOUTME: Passwords are bcrypt-hashed; login stamps last_login.
package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/holdonapp/holdon/internal/auth"
	"github.com/holdonapp/holdon/internal/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
	Long: `Manage user accounts in the local workout database.

EXAMPLES:

  $ holdon user register ana ana@example.com
  $ holdon user login ana@example.com`,
}

var userRegisterCmd = &cobra.Command{
	Use:   "register <username> <email>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		u, err := auth.Register(db, args[0], args[1], password)
		if err != nil {
			return err
		}
		if err := db.SaveUserProfile(models.DefaultProfile(u.ID)); err != nil {
			return err
		}
		color.Green("✓ User %d registered as %s", u.ID, u.Username)

		if u.ID != cfg.GetDefaultUserID() {
			fmt.Printf("Set it as the default account with: holdon config set --default-user %d\n", u.ID)
		}
		return nil
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Verify credentials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		u, err := auth.Authenticate(db, args[0], password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return fmt.Errorf("invalid email or password")
			}
			return err
		}
		color.Green("✓ Welcome back, %s (user %d)", u.Username, u.ID)
		return nil
	},
}

// readPassword prompts without echo when stdin is a terminal, otherwise
// reads a line (for piped input in scripts).
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	if term.IsTerminal(int(syscall.Stdin)) {
		data, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var password string
	if _, err := fmt.Fscanln(os.Stdin, &password); err != nil {
		return "", err
	}
	return password, nil
}

func init() {
	userCmd.AddCommand(userRegisterCmd)
	userCmd.AddCommand(userLoginCmd)
	rootCmd.AddCommand(userCmd)
}
