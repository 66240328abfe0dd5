package inbound

import (
	"context"
	"fmt"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/entity"
)

func (c *Console) withdraw(ctx context.Context, acc *entity.Account) (sessionState, error) {
	prompt := "Enter amount: "
	if c.cfg.WithdrawHint != "" {
		prompt = fmt.Sprintf("Enter amount (%s): ", c.cfg.WithdrawHint)
	}

	amount, err := c.readAmount(prompt)
	if err != nil {
		return stateAuthenticated, err
	}

	r, err := c.uc.Withdraw(ctx, acc, amount)
	if err != nil {
		c.report(ctx, err)
		return stateAuthenticated, nil
	}

	c.println("You have successfully withdrawn " + r.Amount.Format(r.Currency))
	c.println("Your new balance: " + r.Balance.Format(r.Currency))
	c.printReceipt(r)

	return stateAuthenticated, nil
}

func (c *Console) deposit(ctx context.Context, acc *entity.Account) (sessionState, error) {
	amount, err := c.readAmount("Enter amount: ")
	if err != nil {
		return stateAuthenticated, err
	}

	r, err := c.uc.Deposit(ctx, acc, amount)
	if err != nil {
		c.report(ctx, err)
		return stateAuthenticated, nil
	}

	c.println("You have successfully deposited " + r.Amount.Format(r.Currency))
	c.println("Your new balance: " + r.Balance.Format(r.Currency))
	c.printReceipt(r)

	return stateAuthenticated, nil
}

func (c *Console) balance(ctx context.Context, acc *entity.Account) (sessionState, error) {
	r, err := c.uc.Balance(ctx, acc)
	if err != nil {
		c.report(ctx, err)
		return stateAuthenticated, nil
	}

	c.println("Your current balance is: " + r.Balance.Format(r.Currency))
	c.printReceipt(r)

	return stateAuthenticated, nil
}

func (c *Console) miniStatement(ctx context.Context, acc *entity.Account) (sessionState, error) {
	c.println("====== Mini Statement ======")

	lines := c.uc.MiniStatement(ctx, acc)
	if len(lines) == 0 {
		c.println("No recent transactions.")
	}
	for _, line := range lines {
		c.println(line)
	}

	c.println("============================")
	return stateAuthenticated, nil
}

func (c *Console) payBill(ctx context.Context, acc *entity.Account) (sessionState, error) {
	billers := c.uc.Billers()

	c.println("Select Bill Type:")
	for i, b := range billers {
		c.printf("[%d] %s\n", i+1, b)
	}

	choice, err := c.readInt("Enter your choice: ")
	if err != nil {
		return stateAuthenticated, err
	}
	if choice < 1 || choice > len(billers) {
		c.println("Invalid bill type.")
		return stateAuthenticated, nil
	}
	biller := billers[choice-1]

	if c.cfg.ConfirmAccountOnBill {
		number, err := c.readToken("Re-enter your account number to confirm: ")
		if err != nil {
			return stateAuthenticated, err
		}
		if number != acc.Number() {
			c.println("Account number does not match. Payment cancelled.")
			return stateAuthenticated, nil
		}
	}

	amount, err := c.readAmount(fmt.Sprintf("Enter amount to pay for %s: ", biller))
	if err != nil {
		return stateAuthenticated, err
	}

	r, err := c.uc.PayBill(ctx, acc, biller, amount)
	if err != nil {
		c.report(ctx, err)
		return stateAuthenticated, nil
	}

	c.printf("You have paid %s for %s.\n", r.Amount.Format(r.Currency), r.Biller)
	c.printReceipt(r)

	return stateAuthenticated, nil
}

func (c *Console) transfer(ctx context.Context, acc *entity.Account) (sessionState, error) {
	target, err := c.readToken("Enter destination account number: ")
	if err != nil {
		return stateAuthenticated, err
	}

	amount, err := c.readAmount("Enter amount to transfer: ")
	if err != nil {
		return stateAuthenticated, err
	}

	r, err := c.uc.Transfer(ctx, acc, target, amount)
	if err != nil {
		c.report(ctx, err)
		return stateAuthenticated, nil
	}

	c.printf("You have transferred %s to %s.\n", r.Amount.Format(r.Currency), r.Counterparty)
	c.println("Your new balance: " + r.Balance.Format(r.Currency))
	c.printReceipt(r)

	return stateAuthenticated, nil
}

func (c *Console) logout(ctx context.Context, acc *entity.Account) (sessionState, error) {
	c.println("Logged out.")
	return stateLoggedOut, nil
}
