package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// ExportRenderer renders the result of export
type ExportRenderer struct {
	out    io.Writer
	format Format
}

// NewExportRenderer creates a new export renderer
func NewExportRenderer(out io.Writer, format Format) *ExportRenderer {
	return &ExportRenderer{out: out, format: format}
}

type exportView struct {
	Path       string   `json:"path,omitempty" yaml:"path,omitempty"`
	Written    bool     `json:"written" yaml:"written"`
	Endpoints  int      `json:"endpoints" yaml:"endpoints"`
	Explorers  int      `json:"explorers" yaml:"explorers"`
	Overridden int      `json:"overridden" yaml:"overridden"`
	Kept       []string `json:"kept,omitempty" yaml:"kept,omitempty"`
	NoAPIKey   []string `json:"noApiKey,omitempty" yaml:"noApiKey,omitempty"`
	InProcess  []string `json:"inProcess,omitempty" yaml:"inProcess,omitempty"`
	FileOnly   []string `json:"fileOnly,omitempty" yaml:"fileOnly,omitempty"`
}

// Render prints the generated TOML, or a summary when it was written to disk
func (r *ExportRenderer) Render(result *usecase.ExportFoundryResult) error {
	if r.format != FormatText {
		return writeStructured(r.out, r.format, exportView{
			Path:       result.Path,
			Written:    result.Written,
			Endpoints:  len(result.Config.RpcEndpoints),
			Explorers:  len(result.Config.Etherscan),
			Overridden: result.Overridden,
			Kept:       result.Kept,
			NoAPIKey:   result.NoAPIKey,
			InProcess:  result.InProcess,
			FileOnly:   result.FileOnly,
		})
	}

	if !result.Written {
		enc := toml.NewEncoder(r.out)
		enc.Indent = ""
		if err := enc.Encode(result.Config); err != nil {
			return fmt.Errorf("failed to encode foundry sections: %w", err)
		}
		// comments keep the output valid TOML
		for _, key := range result.FileOnly {
			fmt.Fprintf(r.out, "# %s is not visible to forge; export it to use the override\n", key)
		}
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Updated %s", getRelativePath(result.Path))))
	fmt.Fprintf(r.out, "  rpc_endpoints: %d (%d from operator values)\n", len(result.Config.RpcEndpoints), result.Overridden)
	fmt.Fprintf(r.out, "  etherscan:     %d\n", len(result.Config.Etherscan))
	if len(result.Kept) > 0 {
		fmt.Fprintf(r.out, "  kept:          %s\n", strings.Join(result.Kept, ", "))
	}
	if len(result.NoAPIKey) > 0 {
		fmt.Fprintln(r.out, faintStyle.Sprintf("  no API key:    %s", strings.Join(result.NoAPIKey, ", ")))
	}
	if len(result.FileOnly) > 0 {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Not visible to forge, export to use: %s", strings.Join(result.FileOnly, ", "))))
	}
	return nil
}
