package handler

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/riddhimajain08/productivity-api/pkg/httpcontext"
)

// SchemaHandler exposes schema creation over HTTP so a fresh database can be
// bootstrapped without shell access to the host.
type SchemaHandler struct {
	baseHandler
	bootstrap func() error
}

// NewSchemaHandler wires the bootstrap function, which must be safe to run
// any number of times against an already initialized database.
func NewSchemaHandler(bootstrap func() error, adapter *httpcontext.Adapter, logger *zap.Logger) *SchemaHandler {
	return &SchemaHandler{
		baseHandler: newBaseHandler(adapter, logger),
		bootstrap:   bootstrap,
	}
}

// @Summary Create database schema
// @Tags schema
// @Router /init-db [get]
func (h *SchemaHandler) InitDB(ctx *fasthttp.RequestCtx) {
	if err := h.bootstrap(); err != nil {
		h.logger.Error("schema bootstrap failed", zap.Error(err))
		h.respondError(ctx, err)
		return
	}
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString("Database initialized successfully")
}
