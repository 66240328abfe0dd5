package atm

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/entity"
)

// SeedAccount is one entry of the "accounts" config section.
type SeedAccount struct {
	Number  string `mapstructure:"number" validate:"required,number"`
	PIN     int    `mapstructure:"pin" validate:"gte=0,lte=999999"`
	Balance string `mapstructure:"balance" validate:"required,numeric"`
}

// DefaultSeedAccounts are loaded when the config has no accounts.
func DefaultSeedAccounts() []SeedAccount {
	return []SeedAccount{
		{Number: "1001", PIN: 1111, Balance: "500.00"},
		{Number: "1002", PIN: 2222, Balance: "1000.00"},
		{Number: "1234", PIN: 3333, Balance: "100.00"},
	}
}

// BuildAccounts validates the seeds and turns them into accounts.
func BuildAccounts(seeds []SeedAccount, opts ...entity.AccountOption) ([]*entity.Account, error) {
	validate := validator.New()

	accounts := make([]*entity.Account, 0, len(seeds))
	for i, seed := range seeds {
		if err := validate.Struct(seed); err != nil {
			return nil, fmt.Errorf("accounts[%d]: %w", i, err)
		}

		balance, err := entity.ParseMoney(seed.Balance)
		if err != nil {
			return nil, fmt.Errorf("accounts[%d].balance: %w", i, err)
		}
		if balance < 0 {
			return nil, fmt.Errorf("accounts[%d].balance: must not be negative", i)
		}

		accounts = append(accounts, entity.NewAccount(seed.Number, seed.PIN, balance, opts...))
	}

	return accounts, nil
}
