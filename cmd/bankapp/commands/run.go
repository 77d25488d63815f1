package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meridianbank/navkit/pkg/navkit/route"
)

// run: interactive navigation simulation. The terminal plays the view
// layer: it renders coordinator state after every command and feeds back
// pops the way a back-gesture would.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Interactive terminal simulation of the app",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			kit.Start(ctx)

			fmt.Println("bankapp simulation. Type 'help' for commands.")
			printState()

			sc := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !sc.Scan() {
					return sc.Err()
				}
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if quit := handleLine(ctx, line); quit {
					return nil
				}
				printState()
			}
		},
	}
}

func handleLine(ctx context.Context, line string) (quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "help":
		fmt.Println(`commands:
  <uri>                open a deep link, e.g. bankapp://accounts/ACC123
  login <user> <pass>  request an OTP challenge
  otp <code>           complete login
  logout               log out and reset navigation
  expire               simulate server-side session expiry
  tab <name>           switch tab (home|accounts|transfer|cards|more|auth)
  back                 pop the selected tab's top screen
  quit                 exit`)
	case "quit", "exit":
		return true
	case "login":
		if len(fields) != 3 {
			fmt.Println("usage: login <user> <pass>")
			return
		}
		ch, err := kit.Auth.Login(ctx, fields[1], fields[2])
		if err != nil {
			fmt.Println("login failed:", err)
			return
		}
		fmt.Printf("otp sent (mock code %s), expires %s\n", ch.Code, ch.ExpiresAt.Format("15:04:05"))
	case "otp":
		if len(fields) != 2 {
			fmt.Println("usage: otp <code>")
			return
		}
		if err := kit.Auth.VerifyOTP(ctx, fields[1]); err != nil {
			fmt.Println("otp rejected:", err)
		}
	case "logout":
		kit.App.Logout()
	case "expire":
		kit.Auth.ExpireSession()
		kit.App.SessionExpired()
	case "tab":
		if len(fields) != 2 {
			fmt.Println("usage: tab <name>")
			return
		}
		tab, ok := route.TabFromSegment(fields[1])
		if !ok {
			fmt.Println("unknown tab:", fields[1])
			return
		}
		kit.App.SwitchTab(tab)
	case "back":
		kit.App.Feature(kit.App.SelectedTab()).Pop()
	default:
		// Anything else is treated as a deep link; bad input is logged
		// and dropped by the coordinator, exactly like a bad external URI.
		kit.App.HandleDeepLink(line)
	}
	return false
}

func printState() {
	dto := snapshotDTO(kit)
	status := "locked"
	if dto.Authenticated {
		status = "authenticated"
	}
	fmt.Printf("[%s] tab=%s", status, dto.SelectedTab)
	if dto.PendingLink != "" {
		fmt.Printf(" pending=%s", dto.PendingLink)
	}
	if dto.SessionExpired {
		fmt.Print(" SESSION EXPIRED")
	}
	fmt.Println()
	for _, tab := range route.Tabs {
		name := tab.String()
		line := strings.Join(dto.Stacks[name], " > ")
		marker := "  "
		if name == dto.SelectedTab {
			marker = "* "
		}
		fmt.Printf("%s%-9s %s", marker, name, line)
		if sheet, ok := dto.Sheets[name]; ok {
			fmt.Printf("  [sheet: %s]", sheet)
		}
		if full, ok := dto.FullScreens[name]; ok {
			fmt.Printf("  [modal: %s]", full)
		}
		fmt.Println()
	}
}
