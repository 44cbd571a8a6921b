package domain

import (
	"fmt"
	"log/slog"
	"net/url"
)

const redacted = "[REDACTED]"

// Secret is a string value that never renders itself.
// Printing, logging or marshalling a Secret yields a placeholder; Reveal returns the raw value.
type Secret string

// Reveal returns the underlying value
func (s Secret) Reveal() string {
	return string(s)
}

// IsZero reports whether the secret is empty
func (s Secret) IsZero() bool {
	return s == ""
}

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s Secret) GoString() string {
	return fmt.Sprintf("domain.Secret(%q)", s.String())
}

// Format covers %v, %s, %q and friends so fmt never sees the raw value
func (s Secret) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", s.String())
	default:
		fmt.Fprint(f, s.String())
	}
}

// LogValue implements slog.LogValuer
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

// MarshalText keeps encoders (json, yaml, toml) from leaking the value
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MaskURL keeps the scheme and host of an endpoint and hides the rest.
// Operator RPC URLs often carry an API key in the path or query.
func MaskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		if raw == "" {
			return ""
		}
		return redacted
	}
	if (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.User == nil {
		return u.Scheme + "://" + u.Host
	}
	return u.Scheme + "://" + u.Host + "/" + redacted
}
