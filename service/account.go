package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/soulgarden/cbpro/conf"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/paginator"
	"github.com/soulgarden/cbpro/response"
)

// Account is the authenticated call surface. It includes every public call.
type Account struct {
	*Public

	cfg *conf.Client
}

func NewAccount(cfg *conf.Client, msg Messenger, logger *zerolog.Logger) *Account {
	return &Account{Public: NewPublic(msg, logger), cfg: cfg}
}

func (s *Account) GetAccount(ctx context.Context, accountID string) (*response.Account, error) {
	account := &response.Account{}

	if err := s.call(ctx, http.MethodGet, accountPath(accountID, ""), nil, nil, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *Account) GetAccounts(ctx context.Context) ([]*response.Account, error) {
	var accounts []*response.Account

	if err := s.call(ctx, http.MethodGet, dictionary.AccountsPath, nil, nil, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

// GetAccountHistory lists ledger entries, items decode into response.LedgerEntry.
func (s *Account) GetAccountHistory(accountID string, page PageParams) *paginator.Iterator {
	return s.msg.SendPaginatedMessage(accountPath(accountID, "/ledger"), page.values())
}

// GetAccountHolds lists holds, items decode into response.Hold.
func (s *Account) GetAccountHolds(accountID string, page PageParams) *paginator.Iterator {
	return s.msg.SendPaginatedMessage(accountPath(accountID, "/holds"), page.values())
}

func (s *Account) GetPaymentMethods(ctx context.Context) (json.RawMessage, error) {
	return s.msg.SendMessage(ctx, http.MethodGet, dictionary.PaymentMethodsPath, nil, nil)
}

func (s *Account) GetCoinbaseAccounts(ctx context.Context) (json.RawMessage, error) {
	return s.msg.SendMessage(ctx, http.MethodGet, dictionary.CoinbaseAccountsPath, nil, nil)
}

// GetFundings lists margin fundings, optionally filtered by status
// (outstanding, settled, rejected).
func (s *Account) GetFundings(status string, page PageParams) *paginator.Iterator {
	params := page.values()

	if status != "" {
		params.Set("status", status)
	}

	return s.msg.SendPaginatedMessage(dictionary.FundingPath, params)
}

func (s *Account) Deposit(
	ctx context.Context,
	amount decimal.Decimal,
	currency, paymentMethodID string,
) (json.RawMessage, error) {
	body := map[string]interface{}{
		"amount":            amount,
		"currency":          currency,
		"payment_method_id": paymentMethodID,
	}

	return s.msg.SendMessage(ctx, http.MethodPost, dictionary.DepositsPath, nil, body)
}

func (s *Account) CoinbaseWithdraw(
	ctx context.Context,
	amount decimal.Decimal,
	currency, coinbaseAccountID string,
) (json.RawMessage, error) {
	body := map[string]interface{}{
		"amount":              amount,
		"currency":            currency,
		"coinbase_account_id": coinbaseAccountID,
	}

	return s.msg.SendMessage(ctx, http.MethodPost, dictionary.CoinbaseWithdrawPath, nil, body)
}

func (s *Account) CryptoWithdraw(
	ctx context.Context,
	amount decimal.Decimal,
	currency, cryptoAddress string,
) (json.RawMessage, error) {
	body := map[string]interface{}{
		"amount":         amount,
		"currency":       currency,
		"crypto_address": cryptoAddress,
	}

	return s.msg.SendMessage(ctx, http.MethodPost, dictionary.CryptoWithdrawPath, nil, body)
}

func (s *Account) GetFees(ctx context.Context) (*response.Fees, error) {
	fees := &response.Fees{}

	if err := s.call(ctx, http.MethodGet, dictionary.FeesPath, nil, nil, fees); err != nil {
		return nil, err
	}

	return fees, nil
}

// GetTrailingVolume returns 30 day volumes per product.
func (s *Account) GetTrailingVolume(ctx context.Context) (json.RawMessage, error) {
	return s.msg.SendMessage(ctx, http.MethodGet, dictionary.TrailingVolumePath, nil, nil)
}

func accountPath(accountID, suffix string) string {
	return dictionary.AccountsPath + "/" + url.PathEscape(accountID) + suffix
}
