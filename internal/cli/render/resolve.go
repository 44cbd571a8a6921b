package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/treb-networks/internal/domain"
)

// DeploymentTargetRenderer renders the result of resolve deploy
type DeploymentTargetRenderer struct {
	out    io.Writer
	format Format
	reveal bool
}

// NewDeploymentTargetRenderer creates a new deployment target renderer
func NewDeploymentTargetRenderer(out io.Writer, format Format, reveal bool) *DeploymentTargetRenderer {
	return &DeploymentTargetRenderer{out: out, format: format, reveal: reveal}
}

// Render renders a deployment target. The private key is never written.
func (r *DeploymentTargetRenderer) Render(target *domain.DeploymentTarget) error {
	view := *target
	view.RPCURL = displayURL(target.RPCURL, target.RPCOverridden, r.reveal)

	if r.format != FormatText {
		return writeStructured(r.out, r.format, view)
	}

	fmt.Fprintf(r.out, "%s %s\n", sectionStyle.Sprint("Network:"), nameStyle.Sprint(view.Network))
	fmt.Fprintf(r.out, "  Chain ID:  %s\n", chainStyle.Sprint(displayChainID(view.ChainID)))
	if view.RPCURL == "" {
		fmt.Fprintf(r.out, "  RPC:       %s\n", faintStyle.Sprint("in-process"))
	} else {
		fmt.Fprintf(r.out, "  RPC:       %s\n", view.RPCURL)
	}
	if view.Local {
		fmt.Fprintf(r.out, "  Signer:    %s\n", faintStyle.Sprint("not required (local network)"))
		return nil
	}
	if view.Signer == nil || view.Signer.Credential == nil {
		fmt.Fprintf(r.out, "  Signer:    %s\n", faintStyle.Sprint("none"))
		return nil
	}

	cred := view.Signer.Credential
	fmt.Fprintf(r.out, "  Signer:    %s %s\n", cred.Address.Hex(), faintStyle.Sprintf("(%s)", cred.Ref))
	if cred.Unsafe {
		fmt.Fprintln(r.out, FormatWarning("Using the well-known default key. Never send funds to this address."))
	}
	return nil
}

// VerificationTargetRenderer renders the result of resolve verify
type VerificationTargetRenderer struct {
	out    io.Writer
	format Format
	reveal bool
}

// NewVerificationTargetRenderer creates a new verification target renderer
func NewVerificationTargetRenderer(out io.Writer, format Format, reveal bool) *VerificationTargetRenderer {
	return &VerificationTargetRenderer{out: out, format: format, reveal: reveal}
}

type verificationView struct {
	Network     string                `json:"network" yaml:"network"`
	ChainID     uint64                `json:"chainId" yaml:"chainId"`
	Chain       string                `json:"chain,omitempty" yaml:"chain,omitempty"`
	APIKey      string                `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	CustomChain *domain.CustomChain   `json:"customChain,omitempty" yaml:"customChain,omitempty"`
	Sourcify    domain.SourcifyConfig `json:"sourcify" yaml:"sourcify"`
	Available   bool                  `json:"available" yaml:"available"`
	Skipped     string                `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Render renders a verification target. The API key is only shown with reveal.
func (r *VerificationTargetRenderer) Render(target *domain.VerificationTarget) error {
	view := verificationView{
		Network:     target.Network,
		ChainID:     target.ChainID,
		Chain:       target.Chain,
		APIKey:      target.APIKey.String(),
		CustomChain: target.CustomChain,
		Sourcify:    target.Sourcify,
		Available:   target.Available,
	}
	if r.reveal {
		view.APIKey = target.APIKey.Reveal()
	}
	if target.Skipped != nil {
		view.Skipped = target.Skipped.Error()
	}

	if r.format != FormatText {
		return writeStructured(r.out, r.format, view)
	}

	fmt.Fprintf(r.out, "%s %s\n", sectionStyle.Sprint("Network:"), nameStyle.Sprint(view.Network))
	fmt.Fprintf(r.out, "  Chain ID:  %s\n", chainStyle.Sprint(displayChainID(view.ChainID)))
	if view.Chain != "" {
		fmt.Fprintf(r.out, "  Chain:     %s\n", view.Chain)
	}
	if view.CustomChain != nil {
		fmt.Fprintf(r.out, "  API URL:   %s\n", view.CustomChain.APIURL)
		fmt.Fprintf(r.out, "  Browser:   %s\n", view.CustomChain.BrowserURL)
	}
	if view.APIKey != "" {
		fmt.Fprintf(r.out, "  API key:   %s\n", view.APIKey)
	}
	if view.Sourcify.Enabled {
		fmt.Fprintf(r.out, "  Sourcify:  %s\n", view.Sourcify.APIURL)
	}

	if view.Available {
		fmt.Fprintln(r.out, FormatSuccess("Verification available"))
	} else {
		fmt.Fprintln(r.out, FormatWarning(view.Skipped))
	}
	return nil
}
