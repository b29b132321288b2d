package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/socialnet/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Feed(ctx context.Context, args []string) error
	Post(ctx context.Context) error
	Like(ctx context.Context, args []string) error
	ShowComments(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	ShowProfile(ctx context.Context, args []string) error
	Follow(ctx context.Context) error
	Followers(ctx context.Context, args []string) error
	Following(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
}

const (
	helpGuest    = "Available commands: register, login, feed [page], comments <post id>, profile <user id>, followers <user id>, following <user id>, search <query>, forget, exit"
	helpLoggedIn = "Available commands: whoami, feed [page], post, like <post id>, comments <post id>, comment <post id>, profile <user id>, follow, followers <user id>, following <user id>, search <query>, upload <path>, logout, forget, exit"
)

// runREPL starts a read–eval–print loop for the SocialNet CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. A command error is printed as a user message
// and the loop continues. The loop exits on EOF, when ctx is done, or when
// the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("sn %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "forget":
			cmdErr = a.Forget(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "feed":
			cmdErr = a.Feed(ctx, args)

		case "post":
			cmdErr = a.Post(ctx)

		case "like":
			cmdErr = a.Like(ctx, args)

		case "comments":
			cmdErr = a.ShowComments(ctx, args)

		case "comment":
			cmdErr = a.Comment(ctx, args)

		case "profile":
			cmdErr = a.ShowProfile(ctx, args)

		case "follow":
			cmdErr = a.Follow(ctx)

		case "followers":
			cmdErr = a.Followers(ctx, args)

		case "following":
			cmdErr = a.Following(ctx, args)

		case "search":
			cmdErr = a.Search(ctx, args)

		case "upload":
			cmdErr = a.Upload(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", common.UserMessage(cmdErr))
		}

		if err != nil {
			return
		}
	}
}
