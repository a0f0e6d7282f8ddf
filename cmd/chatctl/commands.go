package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s21platform/conversation-service/pkg/chatclient"
)

func newListCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your conversations with unread counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, _, err := flags.api()
			if err != nil {
				return err
			}

			previews, err := api.Conversations(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range previews {
				last := ""
				if p.LastMessageContent != nil {
					last = *p.LastMessageContent
				}
				fmt.Fprintf(out, "%s\t%s\t%d unread\t%s\n", p.Conversation.ID, describe(p.Conversation), p.UnreadCount, last)
			}
			return nil
		},
	}
}

func newDirectCommand(flags *rootFlags) *cobra.Command {
	var bookingID, peerID string

	cmd := &cobra.Command{
		Use:   "direct",
		Short: "Open the direct conversation of a booking or with a peer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (bookingID == "") == (peerID == "") {
				return fmt.Errorf("exactly one of --booking or --peer is required")
			}

			api, _, err := flags.api()
			if err != nil {
				return err
			}

			conv, err := api.Direct(cmd.Context(), bookingID, peerID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), conv.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&bookingID, "booking", "", "booking id")
	cmd.Flags().StringVar(&peerID, "peer", "", "peer user id")

	return cmd
}

func newSendCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "send <conversation> <text...>",
		Short: "Send one message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, p, err := flags.api()
			if err != nil {
				return err
			}

			session := chatclient.NewSession(api, args[0], p.UserID)
			entry, err := session.Send(cmd.Context(), strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			printEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}
}

func newTicketCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Support ticket operations",
	}

	cmd.AddCommand(
		newTicketOpenCommand(flags),
		newTicketListCommand(flags),
		newTicketStatusCommand(flags),
		newTicketAssignCommand(flags),
	)

	return cmd
}

func newTicketOpenCommand(flags *rootFlags) *cobra.Command {
	var subject, priority string

	cmd := &cobra.Command{
		Use:   "open [first message...]",
		Short: "Open a support ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(subject) == "" {
				return fmt.Errorf("--subject is required")
			}

			api, _, err := flags.api()
			if err != nil {
				return err
			}

			conv, err := api.OpenTicket(cmd.Context(), subject, priority, strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", conv.ID, describe(*conv))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "ticket subject")
	cmd.Flags().StringVar(&priority, "priority", "", "low, medium, high or urgent")

	return cmd
}

func newTicketListCommand(flags *rootFlags) *cobra.Command {
	var status string
	var unassigned bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets (agents see the whole queue)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, _, err := flags.api()
			if err != nil {
				return err
			}

			tickets, err := api.Tickets(cmd.Context(), status, unassigned)
			if err != nil {
				return err
			}

			for _, t := range tickets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.ID, describe(t))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().BoolVar(&unassigned, "unassigned", false, "only tickets without an assignee")

	return cmd
}

func newTicketStatusCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status <ticket> <status>",
		Short: "Move a ticket to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _, err := flags.api()
			if err != nil {
				return err
			}

			conv, err := api.SetStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", conv.ID, describe(*conv))
			return nil
		},
	}
}

func newTicketAssignCommand(flags *rootFlags) *cobra.Command {
	var exclusive bool

	cmd := &cobra.Command{
		Use:   "assign <ticket> <agent>",
		Short: "Assign a ticket to an agent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _, err := flags.api()
			if err != nil {
				return err
			}

			conv, err := api.SetAssignee(cmd.Context(), args[0], args[1], exclusive)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", conv.ID, describe(*conv))
			return nil
		},
	}

	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "fail if another agent already holds the ticket")

	return cmd
}

func describe(c chatclient.Conversation) string {
	if c.Kind != "ticket" {
		return strings.Join(c.ParticipantIDs, ", ")
	}

	parts := []string{}
	if c.Status != nil {
		parts = append(parts, "["+*c.Status+"]")
	}
	if c.Priority != nil {
		parts = append(parts, *c.Priority)
	}
	if c.Subject != nil {
		parts = append(parts, *c.Subject)
	}
	if c.AssigneeID != nil {
		parts = append(parts, "@"+*c.AssigneeID)
	}
	return strings.Join(parts, " ")
}

func printEntry(w io.Writer, e chatclient.Entry) {
	marker := ""
	switch {
	case e.Pending():
		marker = " (sending)"
	case e.Failed():
		marker = fmt.Sprintf(" (failed: %v, /retry to resend)", e.Err)
	case e.Read:
		marker = " (read)"
	}

	seq := "  -"
	if e.Seq > 0 {
		seq = fmt.Sprintf("%3d", e.Seq)
	}
	fmt.Fprintf(w, "%s %s: %s%s\n", seq, e.SenderID, e.Content, marker)
}
