package discord

import (
	"go.uber.org/zap"

	"schooladmin/internal/domain/locale"
	"schooladmin/internal/domain/localize"
	"schooladmin/internal/ports/input"
	"schooladmin/internal/ports/output"
	pkgdiscord "schooladmin/pkg/discord"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	catalogUseCase input.CatalogUseCase
	translator     output.T
	locale         *locale.Context
	logger         *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	catalogUseCase input.CatalogUseCase,
	translator output.T,
	localeCtx *locale.Context,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		catalogUseCase: catalogUseCase,
		translator:     translator,
		locale:         localeCtx,
		logger:         logger,
	}
}

// labels binds the translator to lang for embed builders.
func (h *Handler) labels(lang localize.Language) pkgdiscord.Labels {
	return func(key string, data map[string]any) string {
		return h.translator.T(string(lang), key, data)
	}
}
