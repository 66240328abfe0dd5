package inbound

import "github.com/V6nn/Pillar-Bank-ATM/internal/atm/usecase"

func (c *Console) printReceipt(r usecase.Receipt) {
	if !c.cfg.PrintReceipt {
		return
	}

	c.println("")
	c.println("=========== RECEIPT ===========")
	c.println("Transaction Type: " + r.Kind.Label())
	if r.Biller != "" {
		c.println("Bill Type: " + string(r.Biller))
	}
	if r.Counterparty != "" {
		c.println("Transferred To: " + r.Counterparty)
	}
	if r.Amount.IsPositive() {
		c.println("Amount: " + r.Amount.Format(r.Currency))
	}
	c.println("Remaining Balance: " + r.Balance.Format(r.Currency))
	c.println("Account Number: " + r.AccountNumber)
	c.printf("Reference No: %d\n", r.Reference)
	c.println("Date: " + r.At.Format("2006-01-02"))
	c.println("Time: " + r.At.Format("15:04:05"))
	c.println("Thank you for using " + c.cfg.BankName + "!")
	c.println("================================")
	c.println("")
}
