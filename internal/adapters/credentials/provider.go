package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// DefaultDeployerKey is keccak256("DEFAULT_VALUE").
// It is publicly derivable and only fit for local testing.
const DefaultDeployerKey = "0x0d1706281056b7de64efd2088195fa8224c39103f578c9b84f951721df3fa71c"

// Defaults maps credential refs to their built-in fallback keys
var Defaults = map[string]string{
	"CREATEX_DEPLOYER": DefaultDeployerKey,
}

// EnvProvider resolves credentials from operator-supplied values
type EnvProvider struct {
	values usecase.ValueResolver
	strict bool
	log    *slog.Logger
}

// NewEnvProvider creates a provider. With strict set, the well-known default key is refused.
func NewEnvProvider(values usecase.ValueResolver, strict bool, log *slog.Logger) *EnvProvider {
	return &EnvProvider{
		values: values,
		strict: strict,
		log:    log.With("component", "credentials"),
	}
}

// Credential resolves ref into a signing key
func (p *EnvProvider) Credential(ctx context.Context, ref string) (*domain.Credential, error) {
	if ref == "" {
		return nil, domain.MissingCredentialError{Reason: "no credential reference"}
	}

	raw := p.values.Resolve(ref, Defaults[ref])
	cred, err := Parse(ref, raw)
	if err != nil {
		return nil, err
	}

	if cred.Unsafe {
		if p.strict {
			return nil, domain.MissingCredentialError{Ref: ref, Reason: "the well-known default key is refused in strict mode"}
		}
		p.log.Debug("using well-known default key", "ref", ref, "address", cred.Address.Hex())
	}

	return cred, nil
}

// Parse validates a hex private key and derives its address.
// Errors never include the key material.
func Parse(ref, raw string) (*domain.Credential, error) {
	normalized := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if normalized == "" {
		return nil, domain.MissingCredentialError{Ref: ref, Reason: "not set"}
	}

	// rejects bad hex, wrong lengths, zero and keys outside the curve order
	privateKey, err := crypto.HexToECDSA(normalized)
	if err != nil {
		return nil, domain.MissingCredentialError{Ref: ref, Reason: "not a valid 32-byte secp256k1 private key"}
	}

	return &domain.Credential{
		Ref:        ref,
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		PrivateKey: domain.Secret("0x" + strings.ToLower(normalized)),
		Unsafe:     strings.EqualFold(normalized, strings.TrimPrefix(DefaultDeployerKey, "0x")),
	}, nil
}

// StaticProvider serves fixed credentials, keyed by ref
type StaticProvider map[string]*domain.Credential

// Credential returns the credential stored for ref
func (p StaticProvider) Credential(ctx context.Context, ref string) (*domain.Credential, error) {
	if cred, ok := p[ref]; ok && cred != nil {
		return cred, nil
	}
	return nil, domain.MissingCredentialError{Ref: ref, Reason: fmt.Sprintf("no static credential for %s", ref)}
}

var (
	_ usecase.CredentialProvider = (*EnvProvider)(nil)
	_ usecase.CredentialProvider = StaticProvider(nil)
)
