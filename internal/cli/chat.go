package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/maliksh/finagent/config"
	"github.com/maliksh/finagent/consts"
	"github.com/maliksh/finagent/internal/agents"
	"github.com/maliksh/finagent/internal/session"
	"github.com/maliksh/finagent/internal/storage/sqlite"
)

// runChat drives the interactive chat loop on stdin/stdout.
func runChat(cfg *config.Config) error {
	ctx := context.Background()

	runtime, err := agents.NewRuntime(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize runtime: %w", err)
	}

	var opts []session.Option
	var store *sqlite.Store
	if cfg.DBPath != "" {
		store, err = sqlite.Open(cfg.DBPath)
		if err != nil {
			// Persistence is best-effort in the chat loop.
			log.Printf("transcript persistence disabled: %v", err)
		} else {
			defer store.Close()
			opts = append(opts, session.WithRecorder(store))
		}
	}

	sess := session.New(runtime, opts...)
	DisplayWelcomeBanner(!cfg.LLMEnabled())

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("You> "))

		input, err := reader.ReadString('\n')
		if err != nil {
			// Ctrl-D or closed stdin ends the chat.
			fmt.Println()
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit", "q":
			if store == nil && sess.Len() > 0 && !confirmDiscard(sess.Len()/2) {
				continue
			}
			if store != nil {
				_ = store.UpdateSessionStatus(ctx, sess.ID(), consts.State_Done)
			}
			DisplayInfo("Goodbye!")
			return nil

		case "help", "h", "?":
			showChatHelp()
			continue

		case "history":
			showHistory(sess)
			continue

		case "clear", "cls":
			if sess.Len() > 0 && !confirmDiscard(sess.Len()/2) {
				continue
			}
			sess.Reset()
			ClearScreen()
			DisplayWelcomeBanner(!cfg.LLMEnabled())
			continue
		}

		reply, err := sess.Submit(ctx, input)
		if err != nil {
			if errors.Is(err, session.ErrRuntime) {
				DisplayError(errors.New("the assistant is unavailable right now, please try again"))
				if cfg.Debug {
					log.Printf("runtime error: %v", err)
				}
			} else {
				DisplayError(err)
			}
			continue
		}

		DisplayReply(reply)
		fmt.Println()
	}

	return nil
}

func showChatHelp() {
	fmt.Println("Ask about:")
	fmt.Println("  • Stock quotes        \"What's AAPL trading at?\"")
	fmt.Println("  • Portfolio analysis  \"50 shares of MSFT at $300\"")
	fmt.Println("  • Investment returns  \"10000 grew to 15000 over 3 years\"")
	fmt.Println("  • Risk assessment     \"Assess risk with beta 1.2 and volatility 20\"")
	fmt.Println("  • Market news         \"Latest tech news\"")
	fmt.Println("  • Currency conversion \"Convert 100 USD to PKR\"")
	fmt.Println()
	fmt.Println("Commands: help, history, clear, exit")
	fmt.Println()
}

func showHistory(sess *session.Session) {
	history := sess.History()
	if len(history) == 0 {
		DisplayInfo("No conversation yet.")
		return
	}
	for _, turn := range history {
		label := "You"
		if turn.Role == consts.Role_Assistant {
			label = "Assistant"
		}
		fmt.Printf("[%s] %s: %s\n", turn.CreatedAt.Format("15:04:05"), label, turn.Content)
	}
	fmt.Println()
}

func confirmDiscard(exchanges int) bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Discard the current conversation (%d exchanges)?", exchanges),
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false
	}
	return confirmed
}
