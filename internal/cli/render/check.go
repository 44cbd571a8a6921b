package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// CheckRenderer renders the result of check
type CheckRenderer struct {
	out    io.Writer
	format Format
	reveal bool
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer, format Format, reveal bool) *CheckRenderer {
	return &CheckRenderer{out: out, format: format, reveal: reveal}
}

type checkView struct {
	usecase.NetworkCheck `yaml:",inline"`
	OK                   bool   `json:"ok" yaml:"ok"`
	LatencyMS            int64  `json:"latencyMs,omitempty" yaml:"latencyMs,omitempty"`
	Error                string `json:"error,omitempty" yaml:"error,omitempty"`
}

type checkResultView struct {
	Integrity string      `json:"integrity,omitempty" yaml:"integrity,omitempty"`
	Checks    []checkView `json:"checks" yaml:"checks"`
	Failed    int         `json:"failed" yaml:"failed"`
}

// Render renders integrity and probe outcomes
func (r *CheckRenderer) Render(result *usecase.CheckNetworksResult) error {
	if r.format != FormatText {
		return writeStructured(r.out, r.format, r.view(result))
	}

	if result.Integrity != nil {
		fmt.Fprintln(r.out, errStyle.Sprintf("❌ %s", result.Integrity))
	} else {
		fmt.Fprintln(r.out, FormatSuccess("Network and explorer tables are consistent"))
	}

	probed := false
	for _, c := range result.Checks {
		if c.Probed {
			probed = true
			break
		}
	}
	if !probed {
		return nil
	}

	fmt.Fprintln(r.out)
	t := newTable(r.out)
	t.AppendHeader(table.Row{"Network", "Chain ID", "RPC", "Latency", "Status"})
	for _, c := range result.Checks {
		latency := ""
		if c.Probed {
			latency = c.Latency.Round(time.Millisecond).String()
		}

		var status string
		switch {
		case c.Skipped != "":
			status = faintStyle.Sprintf("skipped (%s)", c.Skipped)
		case c.Err != nil:
			status = errStyle.Sprint(c.Err.Error())
		default:
			status = okStyle.Sprint("ok")
		}

		t.AppendRow(table.Row{
			nameStyle.Sprint(c.Network),
			chainStyle.Sprint(displayChainID(c.ChainID)),
			displayURL(c.RPCURL, true, r.reveal),
			latency,
			status,
		})
	}
	t.Render()

	fmt.Fprintln(r.out)
	if result.Failed > 0 {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d of %d networks failed", result.Failed, len(result.Checks))))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("All %d networks passed", len(result.Checks))))
	}
	return nil
}

func (r *CheckRenderer) view(result *usecase.CheckNetworksResult) checkResultView {
	view := checkResultView{
		Checks: make([]checkView, 0, len(result.Checks)),
		Failed: result.Failed,
	}
	if result.Integrity != nil {
		view.Integrity = result.Integrity.Error()
	}
	for _, c := range result.Checks {
		v := checkView{NetworkCheck: c, OK: c.OK(), LatencyMS: c.Latency.Milliseconds()}
		v.RPCURL = displayURL(c.RPCURL, true, r.reveal)
		v.Latency = 0
		if c.Err != nil {
			v.Error = c.Err.Error()
		}
		view.Checks = append(view.Checks, v)
	}
	return view
}
