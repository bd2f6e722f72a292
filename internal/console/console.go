// Package console is the interactive line client. It owns the one session
// of the running process: the session is restored from the durable slot on
// start, replaced on login and cleared on logout. Every command is checked
// against authz before it touches a store.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

// errQuit ends Run without an error.
var errQuit = errors.New("quit")

// Deps are the services a Console drives.
type Deps struct {
	Authenticator ports.Authenticator
	Session       ports.SessionStore
	Catalog       ports.CatalogStore
	Orders        ports.OrderService
	Users         ports.UserService
	Dashboard     ports.DashboardService
	Preferences   ports.PreferenceService
	Logger        zerolog.Logger
}

type Console struct {
	deps     Deps
	out      io.Writer
	validate *validator.Validate

	loggingIn atomic.Bool
}

func New(deps Deps, out io.Writer) *Console {
	return &Console{
		deps:     deps,
		out:      out,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Run restores the persisted session and then executes one command per
// input line until quit or end of input.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	identity, err := c.deps.Session.Restore(ctx)
	if err != nil {
		c.deps.Logger.Warn().Err(err).Msg("session restore failed; starting signed out")
	}
	if identity != nil {
		c.printf("Welcome back, %s (%s).\n", identity.Name, identity.Role)
	} else {
		c.printf("Not signed in. Use: login <email> <password>\n")
	}

	scanner := bufio.NewScanner(in)
	for {
		c.printf("> ")
		if !scanner.Scan() {
			c.printf("\n")
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		err := c.Exec(ctx, scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			c.printf("error: %s\n", describe(err))
		}
	}
}

// Exec runs a single command line.
func (c *Console) Exec(ctx context.Context, line string) error {
	args, err := splitArgs(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	name, args := strings.ToLower(args[0]), args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try help", name)
	}
	return cmd(c, ctx, args)
}

// Login authenticates and, on success, replaces the session. A second call
// while one is pending fails with domain.ErrLoginInProgress.
func (c *Console) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	if !c.loggingIn.CompareAndSwap(false, true) {
		return nil, domain.ErrLoginInProgress
	}
	defer c.loggingIn.Store(false)

	identity, err := c.deps.Authenticator.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := c.deps.Session.Set(ctx, *identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// Logout ends the session in memory and in the slot.
func (c *Console) Logout(ctx context.Context) error {
	return c.deps.Session.Clear(ctx)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// describe turns domain errors into the short messages shown at the prompt.
func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "sign in first"
	case errors.Is(err, domain.ErrForbidden):
		return "your role cannot do that"
	case errors.Is(err, domain.ErrProductNotFound):
		return "no such product"
	case errors.Is(err, domain.ErrLoginInProgress):
		return "a login is already in progress"
	}
	return err.Error()
}
