// Package console runs the interactive menu loop on top of the role
// capability sets.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"pharmacy/internal/role"
)

const (
	mainMenu = `
Pharmacy Management System
1. Pharmacy Manager
2. Admin
3. Exit
`
	managerMenu = `
Pharmacy Manager Operations
1. Register
2. Login
3. Add Medicine
4. View All Medicine
5. Delete Medicine
6. Back
`
	adminMenu = `
Admin Operations
1. Register
2. Login
3. View All Managers
4. Back
`
	choicePrompt  = "Enter your choice: "
	invalidChoice = "Invalid choice. Please try again."
	invalidNumber = "Invalid number. Please try again."
)

// Loop is the nested menu state machine. It is not safe for concurrent use.
type Loop struct {
	in      *bufio.Reader
	out     io.Writer
	manager *role.Manager
	admin   *role.Admin
	closer  io.Closer
	logger  *log.Logger
}

// New creates a loop reading operator input from in and writing to out.
// closer releases the store session on exit.
func New(in io.Reader, out io.Writer, manager *role.Manager, admin *role.Admin, closer io.Closer, logger *log.Logger) *Loop {
	return &Loop{
		in:      bufio.NewReader(in),
		out:     out,
		manager: manager,
		admin:   admin,
		closer:  closer,
		logger:  logger,
	}
}

// Run drives the menus until the operator exits, input ends or ctx is
// cancelled. The store session is closed exactly once on the way out.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return l.exit()
		}
		fmt.Fprint(l.out, mainMenu)
		choice, ok := l.prompt(choicePrompt)
		if !ok {
			return l.exit()
		}
		switch strings.TrimSpace(choice) {
		case "1":
			if !l.managerLoop(ctx) {
				return l.exit()
			}
		case "2":
			if !l.adminLoop(ctx) {
				return l.exit()
			}
		case "3":
			return l.exit()
		default:
			fmt.Fprintln(l.out, invalidChoice)
		}
	}
}

// managerLoop returns false when input ended or ctx was cancelled.
func (l *Loop) managerLoop(ctx context.Context) bool {
	for ctx.Err() == nil {
		fmt.Fprint(l.out, managerMenu)
		choice, ok := l.prompt(choicePrompt)
		if !ok {
			return false
		}
		switch strings.TrimSpace(choice) {
		case "1":
			name, ok := l.prompt("Enter manager name: ")
			if !ok {
				return false
			}
			pharmacy, ok := l.prompt("Enter pharmacy name: ")
			if !ok {
				return false
			}
			l.manager.Register(ctx, name, pharmacy)
		case "2":
			name, ok := l.prompt("Enter manager name: ")
			if !ok {
				return false
			}
			l.manager.Login(ctx, name)
		case "3":
			name, ok := l.prompt("Enter medicine name: ")
			if !ok {
				return false
			}
			raw, ok := l.prompt("Enter quantity: ")
			if !ok {
				return false
			}
			qty, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				fmt.Fprintln(l.out, invalidNumber)
				continue
			}
			l.manager.AddMedicine(ctx, name, qty)
		case "4":
			l.manager.ListMedicines(ctx)
		case "5":
			raw, ok := l.prompt("Enter medicine ID to delete: ")
			if !ok {
				return false
			}
			id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
			if err != nil {
				fmt.Fprintln(l.out, invalidNumber)
				continue
			}
			l.manager.DeleteMedicine(ctx, uint(id))
		case "6":
			return true
		default:
			fmt.Fprintln(l.out, invalidChoice)
		}
	}
	return false
}

// adminLoop returns false when input ended or ctx was cancelled.
func (l *Loop) adminLoop(ctx context.Context) bool {
	for ctx.Err() == nil {
		fmt.Fprint(l.out, adminMenu)
		choice, ok := l.prompt(choicePrompt)
		if !ok {
			return false
		}
		switch strings.TrimSpace(choice) {
		case "1", "2":
			// admin registration and login have no defined behaviour
		case "3":
			l.admin.ListManagers(ctx)
		case "4":
			return true
		default:
			fmt.Fprintln(l.out, invalidChoice)
		}
	}
	return false
}

// prompt prints label and reads one line of any length. Free text is kept
// as typed so name lookups stay exact. ok is false at end of input.
func (l *Loop) prompt(label string) (string, bool) {
	fmt.Fprint(l.out, label)
	line, err := l.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if !errors.Is(err, io.EOF) {
			l.logger.Error("read input", "err", err)
		}
		fmt.Fprintln(l.out)
		return "", false
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), true
}

func (l *Loop) exit() error {
	fmt.Fprintln(l.out, "Exiting the program...")
	if err := l.closer.Close(); err != nil {
		fmt.Fprintf(l.out, "Error closing database connection: %v\n", err)
		return err
	}
	fmt.Fprintln(l.out, "Database connection closed.")
	return nil
}
