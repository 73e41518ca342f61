// Package signing implements the canonical HMAC signature protecting action
// links. The canonicalization rule is a frozen wire contract shared with the
// independently deployed verifier: keys sorted bytewise, entries rendered as
// key=queryEscape(value) and joined with &, HMAC-SHA256 over that string,
// digest base64url-encoded without padding. Changing any part of the rule
// invalidates every previously issued link.
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/url"
	"sort"
	"strings"
)

// SignatureKey is the reserved query key carrying the signature. It is never
// part of the signing input.
const SignatureKey = "t"

var ErrEmptySecret = errors.New("signing secret is empty")

// Canonical renders params in the canonical signing form. The reserved
// signature key is dropped if present. Values are escaped with the same
// escaper SignedURL uses for the emitted query string, so a link always
// verifies against the parameters it carries.
func Canonical(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == SignatureKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}

// Sign computes the signature token for params.
func Sign(params map[string]string, secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(Canonical(params)))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the signature over params and compares it against token
// in constant time. It has no side effects and never reports why a
// verification failed.
func Verify(params map[string]string, token, secret string) bool {
	want, err := Sign(params, secret)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(want), []byte(token))
}

// SignedURL appends params plus their signature to base as a query string.
// url.Values.Encode sorts keys and escapes values with the canonical escaper.
func SignedURL(base string, params map[string]string, secret string) (string, error) {
	sig, err := Sign(params, secret)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set(SignatureKey, sig)

	joiner := "?"
	if strings.Contains(base, "?") {
		joiner = "&"
	}
	return base + joiner + q.Encode(), nil
}
