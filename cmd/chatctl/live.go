package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/s21platform/conversation-service/pkg/chatclient"
)

// renderer prints entries that are new or whose visible state changed since the last pass.
type renderer struct {
	mu      sync.Mutex
	out     io.Writer
	printed map[string]string
	typing  string
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{out: out, printed: make(map[string]string)}
}

func (r *renderer) render(view *chatclient.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range view.Entries() {
		key := e.LocalID
		if key == "" {
			key = e.ID
		}
		sig := fmt.Sprintf("%s|%s|%t", e.ID, e.State, e.Read)
		if r.printed[key] == sig {
			continue
		}
		r.printed[key] = sig
		printEntry(r.out, e)
	}

	typing := strings.Join(view.Typing(), ", ")
	if typing != r.typing {
		r.typing = typing
		if typing != "" {
			fmt.Fprintf(r.out, "    %s is typing...\n", typing)
		}
	}
}

func liveSession(flags *rootFlags, conversationID string, errOut io.Writer) (*chatclient.Session, error) {
	api, p, err := flags.api()
	if err != nil {
		return nil, err
	}

	return chatclient.NewSession(api, conversationID, p.UserID,
		chatclient.WithSocket(p.socketURL()),
		chatclient.WithErrorHandler(func(err error) {
			fmt.Fprintf(errOut, "    ! %v\n", err)
		}),
	), nil
}

func newTailCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tail <conversation>",
		Short: "Follow a conversation live",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			session, err := liveSession(flags, args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			r := newRenderer(cmd.OutOrStdout())
			go func() { _ = session.Run(ctx) }()

			// typing indicators expire without an event, so re-render on a tick as well
			ticker := time.NewTicker(500 * time.Millisecond)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-session.Updates():
					r.render(session.View())
				case <-ticker.C:
					r.render(session.View())
				}
			}
		},
	}
}

// typingNotifier sends a start signal at most once per interval and a stop after the line is sent.
type typingNotifier struct {
	mu       sync.Mutex
	session  *chatclient.Session
	interval time.Duration
	last     time.Time
}

func (t *typingNotifier) keystroke(ctx context.Context) {
	t.mu.Lock()
	if time.Since(t.last) < t.interval {
		t.mu.Unlock()
		return
	}
	t.last = time.Now()
	t.mu.Unlock()

	go func() { _ = t.session.Typing(ctx, true) }()
}

func (t *typingNotifier) stop(ctx context.Context) {
	t.mu.Lock()
	t.last = time.Time{}
	t.mu.Unlock()

	_ = t.session.Typing(ctx, false)
}

func newChatCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <conversation>",
		Short: "Interactive conversation (/read, /retry, /quit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			session, err := liveSession(flags, args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			typing := &typingNotifier{session: session, interval: time.Second}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "> ",
				HistoryFile:     filepath.Join(os.TempDir(), ".chatctl_history"),
				HistoryLimit:    100,
				InterruptPrompt: "^C",
				EOFPrompt:       "/quit",
				Listener: readline.FuncListener(func(line []rune, pos int, key rune) ([]rune, int, bool) {
					if len(line) > 0 {
						typing.keystroke(ctx)
					}
					return nil, 0, false
				}),
			})
			if err != nil {
				return fmt.Errorf("error initializing readline: %w", err)
			}
			defer rl.Close()

			r := newRenderer(rl.Stdout())
			go func() { _ = session.Run(ctx) }()
			go func() {
				ticker := time.NewTicker(500 * time.Millisecond)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-session.Updates():
						r.render(session.View())
					case <-ticker.C:
						r.render(session.View())
					}
				}
			}()

			for {
				line, err := rl.Readline()
				if err != nil {
					if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
						return nil
					}
					return err
				}

				input := strings.TrimSpace(line)
				switch input {
				case "":
					continue
				case "/quit", "/exit":
					return nil
				case "/read":
					res, err := session.MarkRead(ctx)
					if err != nil {
						fmt.Fprintf(rl.Stderr(), "    ! %v\n", err)
						continue
					}
					fmt.Fprintf(rl.Stdout(), "    marked %d read up to #%d\n", res.Count, res.UpToSeq)
				case "/retry":
					for _, e := range session.View().Entries() {
						if !e.Failed() {
							continue
						}
						if _, err := session.Retry(ctx, e.LocalID); err != nil {
							fmt.Fprintf(rl.Stderr(), "    ! %v\n", err)
						}
					}
				default:
					typing.stop(ctx)
					// a failure is rendered as a failed entry, so the error itself adds nothing
					_, _ = session.Send(ctx, input)
				}
			}
		},
	}
}
