package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
	"github.com/soulgarden/cbpro/conf"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/order"
	"github.com/soulgarden/cbpro/paginator"
	"github.com/soulgarden/cbpro/request"
)

func TestAccount_GetAccount(t *testing.T) {
	t.Parallel()

	s, m := newAccount(`{
		"id": "e316cb9a-0808-4fd7-8914-97829c1925de",
		"currency": "USD",
		"balance": "80.2301373066930000",
		"available": "79.2266348066930000",
		"hold": "1.0035025000000000",
		"profile_id": "75da88c5-05bf-4f54-bc85-5c775bd68254"
	}`)

	account, err := s.GetAccount(context.Background(), "e316cb9a-0808-4fd7-8914-97829c1925de")
	if err != nil {
		t.Fatal(err)
	}

	if account.Hold.String() != "1.0035025" || account.Currency != "USD" {
		t.Errorf("account = %+v", account)
	}

	if got := m.last(); got.path != "/accounts/e316cb9a-0808-4fd7-8914-97829c1925de" {
		t.Errorf("path = %s", got.path)
	}
}

func TestAccount_GetAccounts(t *testing.T) {
	t.Parallel()

	s, m := newAccount(`[{"id":"71452118-efc7-4cc4-8780-a5e22d4baa53","currency":"BTC","balance":"0.0000000000000000"},
		{"id":"e316cb9a-0808-4fd7-8914-97829c1925de","currency":"USD","balance":"80.2301373066930000"}]`)

	accounts, err := s.GetAccounts(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(accounts) != 2 || accounts[1].Currency != "USD" {
		t.Errorf("accounts = %+v", accounts)
	}

	if m.last().path != dictionary.AccountsPath {
		t.Errorf("path = %s", m.last().path)
	}
}

func TestAccount_Paginated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		iterate    func(s *Account) *paginator.Iterator
		wantPath   string
		wantParams url.Values
	}{
		{
			name: "history",
			iterate: func(s *Account) *paginator.Iterator {
				return s.GetAccountHistory("acct-id", PageParams{Limit: 100})
			},
			wantPath:   "/accounts/acct-id/ledger",
			wantParams: url.Values{"limit": {"100"}},
		},
		{
			name: "holds",
			iterate: func(s *Account) *paginator.Iterator {
				return s.GetAccountHolds("acct-id", PageParams{Before: "5"})
			},
			wantPath:   "/accounts/acct-id/holds",
			wantParams: url.Values{"before": {"5"}},
		},
		{
			name: "orders",
			iterate: func(s *Account) *paginator.Iterator {
				return s.GetOrders("BTC-USD", []string{"open", "pending"}, PageParams{})
			},
			wantPath:   "/orders",
			wantParams: url.Values{"product_id": {"BTC-USD"}, "status": {"open", "pending"}},
		},
		{
			name: "fundings",
			iterate: func(s *Account) *paginator.Iterator {
				return s.GetFundings("settled", PageParams{})
			},
			wantPath:   "/funding",
			wantParams: url.Values{"status": {"settled"}},
		},
		{
			name: "fills",
			iterate: func(s *Account) *paginator.Iterator {
				it, _ := s.GetFills("", "BTC-USD", PageParams{})

				return it
			},
			wantPath:   "/fills",
			wantParams: url.Values{"product_id": {"BTC-USD"}},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, m := newAccount("")
			m.pages = []*paginator.Page{{Body: []byte(`[{"id":"100","amount":"0.001","type":"fee"}]`)}}

			items, err := tt.iterate(s).All(context.Background())
			if err != nil || len(items) != 1 {
				t.Fatalf("items = %d, err = %v", len(items), err)
			}

			got := m.paginated[0]
			if got.path != tt.wantPath || !reflect.DeepEqual(got.params, tt.wantParams) {
				t.Errorf("paginated %s %v, want %s %v", got.path, got.params, tt.wantPath, tt.wantParams)
			}
		})
	}
}

func TestAccount_GetFills_MissingFilter(t *testing.T) {
	t.Parallel()

	s, m := newAccount("")

	if _, err := s.GetFills("", "", PageParams{}); !errors.Is(err, dictionary.ErrMissingFillsFilter) {
		t.Errorf("error = %v, want ErrMissingFillsFilter", err)
	}

	if len(m.paginated) != 0 {
		t.Errorf("paginated request issued")
	}
}

func TestAccount_PlaceOrder_Invalid(t *testing.T) {
	t.Parallel()

	one := decimal.NewFromInt(1)
	ten := decimal.NewFromInt(10)

	tests := []struct {
		name      string
		orderType request.OrderType
		opts      order.Options
	}{
		{
			name:      "overdraft with funding amount",
			orderType: request.Market,
			opts:      order.Options{Size: &one, OverdraftEnabled: order.Bool(true), FundingAmount: &ten},
		},
		{
			name:      "cancel_after with unknown time in force",
			orderType: request.Limit,
			opts:      order.Options{CancelAfter: "123", TimeInForce: "ABC"},
		},
		{
			name:      "post_only fill or kill",
			orderType: request.Limit,
			opts:      order.Options{PostOnly: order.Bool(true), TimeInForce: request.FOK},
		},
		{
			name:      "no size and no funds",
			orderType: request.Market,
			opts:      order.Options{},
		},
		{
			name:      "size and funds",
			orderType: request.Market,
			opts:      order.Options{Size: &one, Funds: &one},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, m := newAccount(`{}`)

			_, err := s.PlaceOrder(context.Background(), "BTC-USD", request.Buy, tt.orderType, tt.opts)
			if !errors.Is(err, dictionary.ErrInvalidOrderParameters) {
				t.Errorf("error = %v, want ErrInvalidOrderParameters", err)
			}

			if len(m.sent) != 0 {
				t.Errorf("order was sent")
			}
		})
	}
}

func TestAccount_PlaceLimitOrder(t *testing.T) {
	t.Parallel()

	s, m := newAccount(`{"id":"d0c5340b-6d6c-49d9-b567-48c4bfca13d2","product_id":"BTC-USD","side":"buy","type":"limit",
		"price":"100.00","size":"0.01","status":"pending","created_at":"2016-12-08T20:02:28.53864Z"}`)

	placed, err := s.PlaceLimitOrder(
		context.Background(),
		"BTC-USD",
		request.Buy,
		decimal.RequireFromString("100.00"),
		decimal.RequireFromString("0.01"),
		order.Options{PostOnly: order.Bool(true)},
	)
	if err != nil {
		t.Fatal(err)
	}

	if placed.ID != "d0c5340b-6d6c-49d9-b567-48c4bfca13d2" || placed.Status != "pending" {
		t.Errorf("placed = %+v", placed)
	}

	got := m.last()
	if got.method != http.MethodPost || got.path != dictionary.OrdersPath {
		t.Errorf("sent %s %s", got.method, got.path)
	}

	body, err := got.body.(*request.Order).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	want := `{"product_id":"BTC-USD","side":"buy","type":"limit","size":"0.01","price":"100","post_only":true}`
	if string(body) != want {
		t.Errorf("body = %s, want %s", body, want)
	}
}

func TestAccount_PlaceOrder_AutoClientOID(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	m := &fakeMessenger{reply: []byte(`{"id":"1"}`)}
	s := NewAccount(&conf.Client{AutoClientOID: true}, m, &logger)

	funds := decimal.NewFromInt(25)

	if _, err := s.Sell(context.Background(), "BTC-USD", request.Market, order.Options{Funds: &funds}); err != nil {
		t.Fatal(err)
	}

	o := m.last().body.(*request.Order)

	if _, err := uuid.FromString(o.ClientOID); err != nil {
		t.Errorf("client_oid = %q is not a uuid", o.ClientOID)
	}

	if o.Side != request.Sell {
		t.Errorf("side = %s", o.Side)
	}
}

func TestAccount_CancelCalls(t *testing.T) {
	t.Parallel()

	s, m := newAccount(`"d0c5340b-6d6c-49d9-b567-48c4bfca13d2"`)

	id, err := s.CancelOrder(context.Background(), "d0c5340b-6d6c-49d9-b567-48c4bfca13d2")
	if err != nil || id != "d0c5340b-6d6c-49d9-b567-48c4bfca13d2" {
		t.Errorf("CancelOrder() = %s, %v", id, err)
	}

	if got := m.last(); got.method != http.MethodDelete || got.path != "/orders/d0c5340b-6d6c-49d9-b567-48c4bfca13d2" {
		t.Errorf("sent %s %s", got.method, got.path)
	}

	s, m = newAccount(`["a","b"]`)

	ids, err := s.CancelAll(context.Background(), "BTC-USD")
	if err != nil || len(ids) != 2 {
		t.Errorf("CancelAll() = %v, %v", ids, err)
	}

	if got := m.last(); got.params.Get("product_id") != "BTC-USD" {
		t.Errorf("params = %v", got.params)
	}
}

func TestAccount_Transfers(t *testing.T) {
	t.Parallel()

	s, m := newAccount(`{"id":"593533d2-ff31-46e0-b22e-ca754147a96a"}`)
	amount := decimal.RequireFromString("10.00")

	if _, err := s.Deposit(context.Background(), amount, "USD", "bc677162-d934-5f1a-968c-a496b1c1270b"); err != nil {
		t.Fatal(err)
	}

	got := m.last()
	body, ok := got.body.(map[string]interface{})

	if !ok || got.path != dictionary.DepositsPath || body["payment_method_id"] != "bc677162-d934-5f1a-968c-a496b1c1270b" {
		t.Errorf("sent %+v", got)
	}

	if _, err := s.CryptoWithdraw(context.Background(), amount, "BTC", "0x5ad5769cd04681FeD900BCE3DDc877B50E83d469"); err != nil {
		t.Fatal(err)
	}

	if m.last().path != dictionary.CryptoWithdrawPath {
		t.Errorf("path = %s", m.last().path)
	}
}

func TestAccount_GetFees(t *testing.T) {
	t.Parallel()

	s, _ := newAccount(`{"maker_fee_rate":"0.0015","taker_fee_rate":"0.0025","usd_volume":"25000.00"}`)

	fees, err := s.GetFees(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !fees.TakerFeeRate.Equal(decimal.RequireFromString("0.0025")) {
		t.Errorf("fees = %+v", fees)
	}
}
