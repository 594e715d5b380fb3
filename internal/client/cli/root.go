package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.operator != "" {
		s = a.operator + " "
	}
	if a.lastCapture != nil {
		s = s + "capture ready"
	}
	s = strings.TrimSpace(s)
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to BioVault CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("bv %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Println("Available commands: (s)can, enroll, auth, revoke, validate, sessions, exit")

		case "s", "scan":
			a.Scan(ctx)
		case "enroll":
			a.Enroll(ctx)
		case "auth":
			a.Authenticate(ctx)
		case "revoke":
			a.Revoke(ctx)
		case "validate":
			a.Validate(ctx)
		case "sessions":
			a.Sessions(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
