package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s21platform/conversation-service/pkg/chatclient"
)

type rootFlags struct {
	profilePath string
	override    Profile
}

func (f *rootFlags) profile() (Profile, error) {
	p, err := loadProfile(f.profilePath)
	if err != nil {
		return p, err
	}
	p = p.merge(f.override)
	return p, p.validate()
}

func (f *rootFlags) api() (*chatclient.API, Profile, error) {
	p, err := f.profile()
	if err != nil {
		return nil, p, err
	}
	return chatclient.NewAPI(p.BaseURL, p.UserID, p.Role), p, nil
}

func NewChatctlCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "chatctl",
		Short:         "Command line client for the conversation service",
		Example:       "chatctl chat 0b8f3c1e-...",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.profilePath, "profile", defaultProfilePath(), "profile file")
	cmd.PersistentFlags().StringVar(&flags.override.BaseURL, "base-url", "", "service base url, e.g. http://localhost:8080")
	cmd.PersistentFlags().StringVar(&flags.override.SocketURL, "socket-url", "", "websocket url, derived from base url when empty")
	cmd.PersistentFlags().StringVar(&flags.override.UserID, "user", "", "acting user id")
	cmd.PersistentFlags().StringVar(&flags.override.Role, "role", "", "acting role: user, agent or admin")

	cmd.AddCommand(
		newListCommand(flags),
		newDirectCommand(flags),
		newSendCommand(flags),
		newTailCommand(flags),
		newChatCommand(flags),
		newTicketCommand(flags),
	)

	return cmd
}

func main() {
	cmd := NewChatctlCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
