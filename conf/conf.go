package conf

import (
	"os"
	"time"

	"github.com/jinzhu/configor"
	"github.com/rs/zerolog/log"
)

const envPrefix = "CBPRO"

type Client struct {
	APIKey     string `json:"api_key"`
	APISecret  string `json:"api_secret"`
	Passphrase string `json:"passphrase"`

	APIURL  string `json:"api_url"  default:"https://api.pro.coinbase.com"`
	FeedURL string `json:"feed_url" default:"wss://ws-feed.pro.coinbase.com"`

	TimeoutSeconds int `json:"timeout_seconds" default:"30"`
	RetryCount     int `json:"retry_count"`

	AutoClientOID bool `json:"auto_client_oid"`

	Debug bool `json:"debug"`
}

func (c *Client) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Authenticated reports whether credentials are set for private endpoints.
func (c *Client) Authenticated() bool {
	return c.APIKey != "" && c.APISecret != "" && c.Passphrase != ""
}

func Load(path string) (*Client, error) {
	c := &Client{}

	err := configor.New(&configor.Config{ENVPrefix: envPrefix, ErrorOnUnmatchedKeys: true}).Load(c, path)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func New() *Client {
	path := os.Getenv("CFG_PATH")

	if path == "" {
		path = "./conf/conf.json"
	}

	c, err := Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("conf validation errors")
	}

	return c
}
