package inbound

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/entity"
	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/usecase"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkgerror"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkglog"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkguid"
)

type uc interface {
	Lookup(ctx context.Context, number string) (*entity.Account, error)
	Authenticate(ctx context.Context, acc *entity.Account, pin int) error
	Withdraw(ctx context.Context, acc *entity.Account, amount entity.Money) (usecase.Receipt, error)
	Deposit(ctx context.Context, acc *entity.Account, amount entity.Money) (usecase.Receipt, error)
	Balance(ctx context.Context, acc *entity.Account) (usecase.Receipt, error)
	MiniStatement(ctx context.Context, acc *entity.Account) []string
	Billers() []entity.Biller
	PayBill(ctx context.Context, acc *entity.Account, biller entity.Biller, amount entity.Money) (usecase.Receipt, error)
	Transfer(ctx context.Context, acc *entity.Account, targetNumber string, amount entity.Money) (usecase.Receipt, error)
}

// Config controls the console behaviour.
type Config struct {
	BankName       string
	MaxPINAttempts int
	// WithdrawHint is appended to the withdrawal amount prompt.
	WithdrawHint string
	// AskAnother asks after every transaction whether to continue; "N" ends the program.
	AskAnother bool
	PrintReceipt bool
	// ConfirmAccountOnBill makes the user re-enter the account number before paying a bill.
	ConfirmAccountOnBill bool
}

type sessionState int

const (
	stateUnauthenticated sessionState = iota
	stateAuthenticating
	stateAuthenticated
	stateLoggedOut
	stateExited
	stateTerminated
)

type commandHandler func(ctx context.Context, acc *entity.Account) (sessionState, error)

// Console drives one ATM terminal over a line-oriented reader and writer.
type Console struct {
	uc       uc
	cfg      Config
	in       *bufio.Scanner
	out      io.Writer
	ids      pkguid.StringID
	handlers map[entity.Command]commandHandler
}

func NewConsole(uc uc, cfg Config, in io.Reader, out io.Writer, ids pkguid.StringID) *Console {
	if cfg.MaxPINAttempts < 1 {
		cfg.MaxPINAttempts = 3
	}
	if cfg.BankName == "" {
		cfg.BankName = "Pillar Bank"
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	c := &Console{
		uc:  uc,
		cfg: cfg,
		in:  scanner,
		out: out,
		ids: ids,
	}
	c.handlers = map[entity.Command]commandHandler{
		entity.CommandWithdraw:      c.withdraw,
		entity.CommandDeposit:       c.deposit,
		entity.CommandBalance:       c.balance,
		entity.CommandMiniStatement: c.miniStatement,
		entity.CommandPayBill:       c.payBill,
		entity.CommandTransfer:      c.transfer,
		entity.CommandLogout:        c.logout,
	}

	return c
}

// Run serves card sessions until the user types "exit", input ends, or a
// PIN lockout happens. A lockout returns an error wrapping
// pkgerror.ErrPINLockout; the caller must stop the whole program.
func (c *Console) Run(ctx context.Context) error {
	c.println("Welcome to " + c.cfg.BankName + " ATM")

	state := stateUnauthenticated
	sessCtx := ctx
	var acc *entity.Account
	var err error

	for {
		if ctx.Err() != nil {
			return nil
		}

		switch state {
		case stateUnauthenticated:
			acc, state, err = c.promptAccount(ctx)
			if acc != nil {
				sessCtx = c.sessionContext(ctx)
			}
		case stateAuthenticating:
			state, err = c.authenticate(sessCtx, acc)
		case stateAuthenticated:
			state, err = c.serve(sessCtx, acc)
		case stateLoggedOut:
			slog.InfoContext(sessCtx, "session ended", "account", acc.Number())
			acc, sessCtx = nil, ctx
			state = stateUnauthenticated
		case stateExited:
			return nil
		case stateTerminated:
			slog.ErrorContext(sessCtx, "program terminated after PIN lockout", "account", acc.Number())
			return pkgerror.NewLocked()
		}

		if errors.Is(err, io.EOF) {
			c.println("Thank you for using " + c.cfg.BankName + "!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) sessionContext(ctx context.Context) context.Context {
	if c.ids == nil {
		return ctx
	}
	return pkglog.SetCorrelationID(ctx, c.ids.Generate())
}

func (c *Console) promptAccount(ctx context.Context) (*entity.Account, sessionState, error) {
	number, err := c.readToken("Enter Account Number (or type exit): ")
	if err != nil {
		return nil, stateUnauthenticated, err
	}

	if strings.EqualFold(number, "exit") {
		c.println("Thank you for using " + c.cfg.BankName + "!")
		return nil, stateExited, nil
	}

	acc, err := c.uc.Lookup(ctx, number)
	if err != nil {
		var perr *pkgerror.Error
		if errors.As(err, &perr) && perr.Code() == pkgerror.CodeNotFound {
			c.println(sentence(perr.Msg()) + " Try again.")
			return nil, stateUnauthenticated, nil
		}
		return nil, stateUnauthenticated, err
	}

	return acc, stateAuthenticating, nil
}

func (c *Console) authenticate(ctx context.Context, acc *entity.Account) (sessionState, error) {
	limit := c.cfg.MaxPINAttempts
	for attempt := 1; attempt <= limit; attempt++ {
		pin, err := c.readInt(fmt.Sprintf("Enter PIN (%d Attempts): ", limit))
		if err != nil {
			return stateAuthenticating, err
		}

		if err := c.uc.Authenticate(ctx, acc, pin); err == nil {
			return stateAuthenticated, nil
		}

		c.printf("Wrong PIN. Attempts left: %d\n", limit-attempt)
	}

	c.println("PROGRAM TERMINATED (Too many wrong PIN attempts)")
	return stateTerminated, nil
}

// serve runs one menu selection and decides what comes next.
func (c *Console) serve(ctx context.Context, acc *entity.Account) (sessionState, error) {
	c.printMenu()

	n, err := c.readInt("Select Transaction: ")
	if err != nil {
		return stateAuthenticated, err
	}

	cmd, ok := entity.ParseCommand(n)
	if !ok {
		c.println("Invalid option. Please try again.")
		return stateAuthenticated, nil
	}

	next, err := c.handlers[cmd](ctx, acc)
	if err != nil || next != stateAuthenticated {
		return next, err
	}

	if !c.cfg.AskAnother {
		return stateAuthenticated, nil
	}

	again, err := c.again()
	if err != nil {
		return stateAuthenticated, err
	}
	if !again {
		return stateExited, nil
	}

	return stateAuthenticated, nil
}

func (c *Console) printMenu() {
	c.println("")
	c.println("====== MENU ======")
	for _, cmd := range entity.Commands() {
		c.printf("[%d] %s\n", int(cmd), cmd)
	}
	c.println("==================")
}

func (c *Console) again() (bool, error) {
	answer, err := c.readToken("Do you want another transaction? [Y/N]: ")
	if err != nil {
		return false, err
	}

	if strings.HasPrefix(strings.ToUpper(answer), "Y") {
		return true, nil
	}

	c.println("Exiting. Thank you for using " + c.cfg.BankName + "!")
	return false, nil
}

// report shows a failed transaction to the user. Retryable errors print
// their message; anything else is logged and shown generically.
func (c *Console) report(ctx context.Context, err error) {
	var perr *pkgerror.Error
	if errors.As(err, &perr) && perr.Retryable() {
		c.println(sentence(perr.Msg()))
		return
	}

	slog.ErrorContext(ctx, "transaction failed", "error", err)
	c.println("Transaction could not be completed. Please try again.")
}

func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	msg = strings.ToUpper(msg[:1]) + msg[1:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
