package dictionary

import "time"

const (
	DefaultIntBase = 10

	ShutDownDuration = time.Second * 5
	SignalChLen      = 1
)

// Response and request headers used by the exchange.
const (
	AfterHeader      = "CB-AFTER"
	AccessKey        = "CB-ACCESS-KEY"
	AccessSign       = "CB-ACCESS-SIGN"
	AccessTimestamp  = "CB-ACCESS-TIMESTAMP"
	AccessPassphrase = "CB-ACCESS-PASSPHRASE"

	AfterParam  = "after"
	BeforeParam = "before"
	LimitParam  = "limit"
)

const (
	ProductsPath   = "/products"
	CurrenciesPath = "/currencies"
	TimePath       = "/time"

	AccountsPath         = "/accounts"
	OrdersPath           = "/orders"
	FillsPath            = "/fills"
	FundingPath          = "/funding"
	PaymentMethodsPath   = "/payment-methods"
	CoinbaseAccountsPath = "/coinbase-accounts"
	DepositsPath         = "/deposits/payment-method"
	CoinbaseWithdrawPath = "/withdrawals/coinbase-account"
	CryptoWithdrawPath   = "/withdrawals/crypto"
	FeesPath             = "/fees"
	TrailingVolumePath   = "/users/self/trailing-volume"
	VerifyPath           = "/users/self/verify"
)

// Feed message types.
const (
	SubscribeType   = "subscribe"
	UnsubscribeType = "unsubscribe"
	ErrorType       = "error"
	TickerType      = "ticker"

	TickerChannel    = "ticker"
	HeartbeatChannel = "heartbeat"
)

//nolint: gochecknoglobals
var Granularities = map[int]struct{}{
	60:    {},
	300:   {},
	900:   {},
	3600:  {},
	21600: {},
	86400: {},
}
