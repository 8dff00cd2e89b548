package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/soulgarden/cbpro/dictionary"
)

type Credentials struct {
	Key        string
	Secret     string
	Passphrase string
}

// Sign returns the CB-ACCESS-SIGN value: base64 of the HMAC-SHA256 of
// timestamp + method + requestPath + body, keyed with the decoded secret.
func Sign(secret, timestamp, method, requestPath string, body []byte) (string, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return "", fmt.Errorf("%w: %s", dictionary.ErrInvalidSecret, err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(timestamp + method + requestPath))
	mac.Write(body)

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

func Timestamp(now time.Time) string {
	return strconv.FormatInt(now.Unix(), dictionary.DefaultIntBase)
}

func (c *Credentials) headers(now time.Time, method, requestPath string, body []byte) (map[string]string, error) {
	ts := Timestamp(now)

	sign, err := Sign(c.Secret, ts, method, requestPath, body)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		dictionary.AccessKey:        c.Key,
		dictionary.AccessSign:       sign,
		dictionary.AccessTimestamp:  ts,
		dictionary.AccessPassphrase: c.Passphrase,
	}, nil
}
