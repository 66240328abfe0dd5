package entity

// Command is a menu selection in an authenticated session.
type Command int

const (
	CommandWithdraw Command = iota + 1
	CommandDeposit
	CommandBalance
	CommandMiniStatement
	CommandPayBill
	CommandTransfer
	CommandLogout
)

// Commands returns every command in menu order.
func Commands() []Command {
	return []Command{
		CommandWithdraw,
		CommandDeposit,
		CommandBalance,
		CommandMiniStatement,
		CommandPayBill,
		CommandTransfer,
		CommandLogout,
	}
}

// ParseCommand maps a menu number to a Command.
func ParseCommand(n int) (Command, bool) {
	c := Command(n)
	if c < CommandWithdraw || c > CommandLogout {
		return 0, false
	}
	return c, true
}

func (c Command) String() string {
	switch c {
	case CommandWithdraw:
		return "Withdrawal"
	case CommandDeposit:
		return "Deposit"
	case CommandBalance:
		return "Balance"
	case CommandMiniStatement:
		return "Mini Statement"
	case CommandPayBill:
		return "Pay Bills"
	case CommandTransfer:
		return "Transfer"
	case CommandLogout:
		return "Logout"
	default:
		return "Unknown"
	}
}

// Biller is a named payee category for bill payments.
type Biller string

const (
	BillerElectricity Biller = "Electricity"
	BillerWater       Biller = "Water"
	BillerWiFi        Biller = "WiFi"
)

// DefaultBillers returns the billers offered when none are configured.
func DefaultBillers() []Biller {
	return []Biller{BillerElectricity, BillerWater, BillerWiFi}
}

// TxKind classifies a completed transaction for receipts and audit events.
type TxKind string

const (
	TxKindWithdrawal  TxKind = "WITHDRAWAL"
	TxKindDeposit     TxKind = "DEPOSIT"
	TxKindBalance     TxKind = "BALANCE_CHECK"
	TxKindBillPayment TxKind = "BILL_PAYMENT"
	TxKindTransfer    TxKind = "TRANSFER"
)

// Label is the human-readable name printed on receipts.
func (k TxKind) Label() string {
	switch k {
	case TxKindWithdrawal:
		return "Withdrawal"
	case TxKindDeposit:
		return "Deposit"
	case TxKindBalance:
		return "Balance Check"
	case TxKindBillPayment:
		return "Bill Payment"
	case TxKindTransfer:
		return "Transfer"
	default:
		return string(k)
	}
}
