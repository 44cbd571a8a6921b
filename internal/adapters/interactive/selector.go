package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/domain/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// ErrNonInteractive is returned when a selection is needed but prompts are disabled
var ErrNonInteractive = errors.New("interactive selection not available in non-interactive mode")

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectNetwork lets the operator pick one network, searching by name or chain id
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, networks []*domain.Network, prompt string) (*domain.Network, error) {
	if s.config.NonInteractive {
		return nil, ErrNonInteractive
	}

	if len(networks) == 0 {
		return nil, fmt.Errorf("no networks provided for selection")
	}

	if len(networks) == 1 {
		return networks[0], nil
	}

	options := formatNetworkOptions(networks)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Type to search, arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              12,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(searchKeys(networks)),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return networks[index], nil
}

// formatNetworkOptions creates display strings for network selection
func formatNetworkOptions(networks []*domain.Network) []string {
	options := make([]string, len(networks))
	for i, network := range networks {
		name := color.New(color.FgWhite, color.Bold).Sprint(network.Name)

		chain := "dynamic"
		if network.Pinned() {
			chain = fmt.Sprintf("%d", network.ChainID)
		}
		chainStr := color.New(color.FgBlue).Sprint(chain)

		if network.Local {
			options[i] = fmt.Sprintf("%s (%s) %s", name, chainStr, color.New(color.FgYellow).Sprint("[local]"))
		} else {
			options[i] = fmt.Sprintf("%s (%s)", name, chainStr)
		}
	}
	return options
}

// searchKeys are the plain strings the search matches against
func searchKeys(networks []*domain.Network) []string {
	keys := make([]string, len(networks))
	for i, network := range networks {
		keys[i] = fmt.Sprintf("%s %d", network.Name, network.ChainID)
	}
	return keys
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.NetworkSelector = (*SelectorAdapter)(nil)
