package render

import (
	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.ListNetworksResult]  = (*NetworksRenderer)(nil)
	_ Renderer[*usecase.CheckNetworksResult] = (*CheckRenderer)(nil)
	_ Renderer[*usecase.ExportFoundryResult] = (*ExportRenderer)(nil)
	_ Renderer[usecase.WatchEvent]           = (*WatchRenderer)(nil)
	_ Renderer[*domain.DeploymentTarget]     = (*DeploymentTargetRenderer)(nil)
	_ Renderer[*domain.VerificationTarget]   = (*VerificationTargetRenderer)(nil)
)
