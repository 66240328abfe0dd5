package entity

import "time"

// TxEvent is published after a transaction completes. It is a value copy;
// consumers never see the Account itself.
type TxEvent struct {
	EventID       string
	Reference     int64
	AccountNumber string
	Kind          TxKind
	Biller        Biller
	Counterparty  string
	Amount        Money
	Balance       Money
	At            time.Time

	// CorrelationID is the console session id the transaction ran under.
	CorrelationID string
}
