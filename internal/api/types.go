package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/devconnector/backend/internal/types"
)

// bindingErrors translates a ShouldBindJSON failure into field-level wire
// errors, using the handler's message table keyed by struct field name.
func bindingErrors(err error, messages map[string]string) []types.ErrorItem {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []types.ErrorItem{{Msg: "Invalid request body"}}
	}

	items := make([]types.ErrorItem, 0, len(verrs))
	for _, fe := range verrs {
		item := types.ErrorItem{Msg: messages[fe.Field()]}
		if item.Msg == "" {
			item.Msg = fe.Field() + " is invalid"
		}
		if v, ok := fe.Value().(string); ok {
			item.Value = v
		}
		items = append(items, item)
	}
	return items
}

func respondError(c *gin.Context, status int, items ...types.ErrorItem) {
	c.JSON(status, types.NewErrorResponse(items...))
}

// internalError logs the failure server-side and answers with a generic
// message, leaking no detail to the client.
func internalError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	respondError(c, http.StatusInternalServerError, types.ErrorItem{Msg: "Internal Server Error"})
}
