package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/treb-networks/internal/domain/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out    io.Writer
	format Format
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer, format Format) *ConfigRenderer {
	return &ConfigRenderer{
		out:    out,
		format: format,
	}
}

type configView struct {
	Path      string                  `json:"path" yaml:"path"`
	Exists    bool                    `json:"exists" yaml:"exists"`
	Local     *config.LocalConfig     `json:"local" yaml:"local"`
	Effective usecase.EffectiveConfig `json:"effective" yaml:"effective"`
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if r.format != FormatText {
		return writeStructured(r.out, r.format, configView{
			Path:      result.ConfigPath,
			Exists:    result.Exists,
			Local:     result.Config,
			Effective: result.Effective,
		})
	}

	if result.Exists {
		fmt.Fprintln(r.out, "📋 Current config:")
		fmt.Fprintf(r.out, "Network:     %s\n", orNotSet(result.Config.Network))
		fmt.Fprintf(r.out, "Vars file:   %s\n", orNotSet(result.Config.VarsFile))
		fmt.Fprintf(r.out, "Strict:      %t\n", result.Config.Strict)
		fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))
	} else {
		fmt.Fprintf(r.out, "❌ No %s file found\n", getRelativePath(result.ConfigPath))
		fmt.Fprintln(r.out, "⚠️  Without config, commands require an explicit --network flag")
	}

	eff := result.Effective
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionStyle.Sprint("Effective:"))
	fmt.Fprintf(r.out, "  Network:        %s\n", orNotSet(eff.Network))
	fmt.Fprintf(r.out, "  Vars file:      %s\n", orNotSet(eff.VarsFile))
	fmt.Fprintf(r.out, "  Strict:         %t\n", eff.StrictCredentials)
	if eff.DeployerRef != "" {
		supplied := okStyle.Sprint("set")
		if !eff.DeployerSupplied {
			supplied = warnStyle.Sprint("not set, using the well-known default key")
		}
		fmt.Fprintf(r.out, "  Deployer:       %s (%s)\n", eff.DeployerRef, supplied)
	}
	if len(eff.Sources) > 0 {
		fmt.Fprintf(r.out, "  Values:         %s\n", strings.Join(eff.Sources, " > "))
	} else {
		fmt.Fprintf(r.out, "  Values:         %s\n", faintStyle.Sprint("defaults only"))
	}
	fmt.Fprintf(r.out, "  Gas reporting:  %t\n", eff.Features.GasReporting)
	if eff.Sourcify.Enabled {
		fmt.Fprintf(r.out, "  Sourcify:       %s\n", eff.Sourcify.APIURL)
	}

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	if r.format != FormatText {
		return writeStructured(r.out, r.format, map[string]string{"key": string(result.Key), "value": result.Value, "path": result.ConfigPath})
	}
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	if r.format != FormatText {
		return writeStructured(r.out, r.format, map[string]string{"key": string(result.Key), "removed": result.RemovedValue, "path": result.ConfigPath})
	}

	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintln(r.out, "✅ Removed network from config (will be required as flag)")
	case config.ConfigKeyVarsFile:
		fmt.Fprintln(r.out, "✅ Removed vars file from config")
	case config.ConfigKeyStrict:
		fmt.Fprintln(r.out, "✅ Reset strict_credentials to: false")
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

func orNotSet(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
