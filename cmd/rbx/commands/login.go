package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/rbxweb/rbxweb/pkg/rbx"
	"github.com/rbxweb/rbxweb/pkg/rbxclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var cookieFlag string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store and verify a session cookie",
		Long: `Store a .ROBLOSECURITY session cookie in the config file.

The cookie is verified against the API before being saved, so an expired
or malformed cookie is rejected immediately. Without --cookie the value is
read from a hidden prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cookie := strings.TrimSpace(cookieFlag)

			if cookie == "" {
				fmt.Fprint(os.Stderr, "Session cookie (.ROBLOSECURITY): ")

				raw, err := term.ReadPassword(int(os.Stdin.Fd()))

				fmt.Fprintln(os.Stderr)

				if err != nil {
					return fmt.Errorf("reading cookie: %w", err)
				}

				cookie = strings.TrimSpace(string(raw))
			}

			if cookie == "" {
				return rbx.ErrNoCookieConfigured
			}

			_, user, err := rbxclient.NewAuthenticated(context.Background(), &rbx.Config{
				BaseDomain: viper.GetString("domain"),
				Cookie:     cookie,
			})
			if err != nil {
				return err
			}

			config := loadFileConfig()
			config.Cookie = cookie

			if err := saveFileConfig(config); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%d)\n", user.Name, user.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&cookieFlag, "cookie", "", "session cookie value (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session cookie",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadFileConfig()

			if config.Cookie == "" {
				fmt.Println("No session cookie stored")

				return nil
			}

			config.Cookie = ""

			if err := saveFileConfig(config); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
