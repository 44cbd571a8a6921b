package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format selects how results are written
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// FormatFor picks the output format from the --json and --yaml flags
func FormatFor(jsonOut, yamlOut bool) Format {
	switch {
	case jsonOut:
		return FormatJSON
	case yamlOut:
		return FormatYAML
	}
	return FormatText
}

// Color styles shared by the renderers
var (
	nameStyle    = color.New(color.FgCyan, color.Bold)
	chainStyle   = color.New(color.FgBlue)
	faintStyle   = color.New(color.Faint)
	okStyle      = color.New(color.FgGreen)
	warnStyle    = color.New(color.FgYellow)
	errStyle     = color.New(color.FgRed)
	sectionStyle = color.New(color.Bold, color.FgHiWhite)
)

// writeStructured writes v as indented JSON or YAML
func writeStructured(out io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %d", format)
}

// newTable returns a borderless table in the style used across the CLI
func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.Style().Format.Header = text.FormatUpper
	return t
}

// displayURL hides operator-supplied endpoints unless reveal is set
func displayURL(url string, overridden, reveal bool) string {
	if url == "" {
		return ""
	}
	if overridden && !reveal {
		return domain.MaskURL(url)
	}
	return url
}

// displayChainID prints 0 as "dynamic" for endpoints that pick their own chain
func displayChainID(chainID uint64) string {
	if chainID == 0 {
		return "dynamic"
	}
	return fmt.Sprintf("%d", chainID)
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warnStyle.Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Keep only the innermost message of an error chain
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return errStyle.Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return okStyle.Sprintf("✅ %s", message)
}
