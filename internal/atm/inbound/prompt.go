package inbound

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/entity"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkgerror"
)

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// readToken prints prompt and returns the next whitespace-separated token.
// It returns io.EOF once input is exhausted.
func (c *Console) readToken(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return c.in.Text(), nil
}

// readInt keeps prompting until a whole number is entered. Each rejected
// token is consumed so the next prompt reads fresh input.
func (c *Console) readInt(prompt string) (int, error) {
	for {
		token, err := c.readToken(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(token)
		if err == nil {
			return n, nil
		}

		c.reject(pkgerror.NewInvalidFormat(err))
	}
}

// readAmount keeps prompting until a decimal amount is entered.
func (c *Console) readAmount(prompt string) (entity.Money, error) {
	for {
		token, err := c.readToken(prompt)
		if err != nil {
			return 0, err
		}

		amount, err := entity.ParseMoney(token)
		if err == nil {
			return amount, nil
		}

		if errors.Is(err, entity.ErrAmountPrecision) || errors.Is(err, entity.ErrAmountRange) {
			c.reject(pkgerror.NewInvalidInput(err))
			continue
		}
		c.reject(pkgerror.NewInvalidFormat(err))
	}
}

// reject prints why a token was refused before the prompt repeats.
func (c *Console) reject(err error) {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		c.println(sentence(perr.Msg()))
		return
	}
	c.println(sentence(err.Error()))
}
