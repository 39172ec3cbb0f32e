package jettons

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/xssnick/tonutils-go/address"
)

// ParseAddress parses a TON address in user-friendly (bounceable or
// non-bounceable) or raw "workchain:hex" form.
func ParseAddress(s string) (*address.Address, error) {
	s = strings.TrimSpace(s)
	if addr, err := address.ParseAddr(s); err == nil {
		return addr, nil
	}
	return address.ParseRawAddr(s)
}

// RawAddress returns the raw "workchain:hex" form of a TON address, or
// false when s does not parse.
func RawAddress(s string) (string, bool) {
	addr, err := ParseAddress(s)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%d:%s", addr.Workchain(), hex.EncodeToString(addr.Data())), true
}

// Key normalizes an address into a collection key. Addresses that parse
// map to their raw form so that every encoding of one account shares a key.
func Key(s string) string {
	if raw, ok := RawAddress(s); ok {
		return raw
	}
	return strings.TrimSpace(s)
}

// SameAddress reports whether a and b identify the same account.
func SameAddress(a, b string) bool {
	if a == b {
		return true
	}
	return Key(a) == Key(b)
}
