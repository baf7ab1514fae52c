package http

import (
	"net/http"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"
	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/queries"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"

	"github.com/labstack/echo/v4"
)

// UpdateTemplateRequest is the body for editing a notification message.
type UpdateTemplateRequest struct {
	Text string `json:"text"`
}

// TemplateResponse is one notification template with its current text.
type TemplateResponse struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// GetTemplates handles GET /api/v1/templates.
func (s *Server) GetTemplates(ctx echo.Context) error {
	templates, err := s.getTemplatesHandler.Handle(ctx.Request().Context(), queries.NewGetTemplatesQuery())
	if err != nil {
		return queryError(ctx, "Failed to retrieve templates")
	}

	response := make([]TemplateResponse, len(templates))
	for i, tpl := range templates {
		response[i] = TemplateResponse{
			Key:  string(tpl.Key),
			Text: tpl.Text,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateTemplate handles PUT /api/v1/templates/:key.
func (s *Server) UpdateTemplate(ctx echo.Context) error {
	key, err := template.KeyFromString(ctx.Param("key"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateTemplateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateTemplateCommand(key, req.Text)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateTemplateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
