package handlers

import (
	"errors"
	"net/http"

	"coursestore/services/catalog"
	"coursestore/services/ledger"
	"coursestore/services/order"
	"coursestore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses. Anything outside the
// known taxonomy is a store failure and stays opaque to the caller.
func respondError(c *gin.Context, err error) {
	var (
		notFound     *ledger.NotFoundError
		insufficient *ledger.InsufficientSeatsError
		invalidArg   *ledger.InvalidArgumentError
		validation   *order.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "Lesson not found", notFound.Error())
	case errors.As(err, &insufficient):
		utils.JSONError(c, http.StatusConflict, "Not enough seats available", insufficient.Error())
	case errors.As(err, &invalidArg):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", invalidArg.Error())
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", validation.Error())
	case errors.Is(err, catalog.ErrEmptyQuery):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", catalog.ErrEmptyQuery.Error())
	default:
		getLogger(c).Error("store operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
