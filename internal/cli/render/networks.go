package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out    io.Writer
	format Format
	reveal bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, format Format, reveal bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:    out,
		format: format,
		reveal: reveal,
	}
}

type networkView struct {
	usecase.NetworkStatus `yaml:",inline"`
	VerifyDisabled        string `json:"verifyDisabled,omitempty" yaml:"verifyDisabled,omitempty"`
}

type networksView struct {
	Networks []networkView `json:"networks" yaml:"networks"`
	Sources  []string      `json:"sources" yaml:"sources"`
}

// Render renders the list of networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if r.format != FormatText {
		return writeStructured(r.out, r.format, r.view(result))
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks match")
		return nil
	}

	title := cases.Title(language.English)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"Name", "Chain ID", "RPC", "Explorer", "Verify"})
	for _, n := range result.Networks {
		rpc := displayURL(n.RPCURL, n.RPCOverridden, r.reveal)
		switch {
		case rpc == "":
			rpc = faintStyle.Sprint("in-process")
		case n.RPCOverridden:
			rpc = okStyle.Sprint(rpc)
		default:
			rpc = faintStyle.Sprint(rpc)
		}

		explorer := faintStyle.Sprint("-")
		if n.ExplorerClass != "" {
			explorer = fmt.Sprintf("%s (%s)", n.Chain, title.String(string(n.ExplorerClass)))
		}

		verify := okStyle.Sprint("yes")
		if !n.Verifiable {
			verify = warnStyle.Sprint("no")
		}

		name := nameStyle.Sprint(n.Name)
		if n.Local {
			name += " " + warnStyle.Sprint("[local]")
		}

		t.AppendRow(table.Row{name, chainStyle.Sprint(displayChainID(n.ChainID)), rpc, explorer, verify})
	}
	t.Render()

	fmt.Fprintln(r.out)
	if len(result.Sources) == 0 {
		fmt.Fprintln(r.out, faintStyle.Sprint("Values: defaults only (no .env, .env.local or vars file found)"))
	} else {
		fmt.Fprintln(r.out, faintStyle.Sprintf("Values: %s", strings.Join(result.Sources, " > ")))
	}
	return nil
}

func (r *NetworksRenderer) view(result *usecase.ListNetworksResult) networksView {
	view := networksView{
		Networks: make([]networkView, 0, len(result.Networks)),
		Sources:  result.Sources,
	}
	if view.Sources == nil {
		view.Sources = []string{}
	}
	for _, n := range result.Networks {
		v := networkView{NetworkStatus: n}
		v.RPCURL = displayURL(n.RPCURL, n.RPCOverridden, r.reveal)
		if n.VerifyDisabled != nil {
			v.VerifyDisabled = n.VerifyDisabled.Error()
		}
		view.Networks = append(view.Networks, v)
	}
	return view
}
