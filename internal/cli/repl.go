package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
// Handlers receive the words following the command.
type execIface interface {
	isSetupComplete(ctx context.Context) bool
	Setup(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Complete(ctx context.Context, args []string) error
	Memo(ctx context.Context, args []string) error
	Photo(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Upcoming(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the kakai CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Prompts issued by the handlers read from the
// same reader. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Commands
//
//	Before setup:
//	  - help                 show available commands
//	  - setup                enter couple names and the start date
//	  - exit | quit          leave the program
//
//	After setup:
//	  - profile [edit]       show (or change) the couple profile
//	  - add [title]          plan a meeting
//	  - (l)ist               list meetings by start date
//	  - show <id>            meeting details with its month calendar
//	  - edit <id>            change title and dates
//	  - done <id>            toggle the completed flag
//	  - memo <id> [text]     append a plan note
//	  - photo <id> [path]    attach a JPEG photo ("-" removes it)
//	  - delete <id>          delete a meeting
//	  - next                 the upcoming meeting and its D-day
//	  - export [path]        write meetings as an .ics file
//
// Ids may be abbreviated to any unique prefix. Handler errors are printed
// and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if statusFn != nil {
			printlnFn(fmt.Sprintf("kakai%s> ", statusFn()))
		}

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		ready := a.isSetupComplete(ctx)
		switch cmd {
		case "help":
			if ready {
				printlnFn("Available commands: profile, add, (l)ist, show, edit, done, memo, photo, delete, next, export, exit")
			} else {
				printlnFn("Available commands: setup, exit")
			}
			continue
		case "setup":
			report(a.Setup(ctx, args))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !ready {
			printlnFn("먼저 setup 명령으로 프로필을 설정해주세요")
			continue
		}

		switch cmd {
		case "profile":
			report(a.Profile(ctx, args))
		case "add":
			report(a.Add(ctx, args))
		case "l", "list":
			report(a.List(ctx, args))
		case "show":
			report(a.Show(ctx, args))
		case "edit":
			report(a.Edit(ctx, args))
		case "done", "complete":
			report(a.Complete(ctx, args))
		case "memo":
			report(a.Memo(ctx, args))
		case "photo":
			report(a.Photo(ctx, args))
		case "delete", "rm":
			report(a.Delete(ctx, args))
		case "next", "upcoming":
			report(a.Upcoming(ctx, args))
		case "export":
			report(a.Export(ctx, args))
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
