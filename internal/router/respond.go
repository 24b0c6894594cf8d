package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"parts_office/internal/auth"
	"parts_office/internal/model"
	"parts_office/internal/service"
	"parts_office/internal/store"
)

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "data": data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"code": 0, "data": data})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": msg})
}

// fail maps the error taxonomy onto status classes. Every failure
// aborts its request here; nothing is retried or recovered silently.
func fail(c *gin.Context, err error) {
	var oos *service.OutOfStockError
	switch {
	case errors.As(err, &oos):
		// The exhausted product rides along so the caller can react.
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"msg":     "sorry, this product is out of stock",
			"product": oos.Product,
		})

	case errors.Is(err, auth.ErrInvalidTokenFormat),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, service.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": err.Error()})

	case errors.Is(err, store.ErrMalformedID),
		errors.Is(err, service.ErrInvalidDiscount),
		errors.Is(err, model.ErrInvalidPayType):
		badRequest(c, err.Error())

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrAdminNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrContractNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": err.Error()})

	case errors.Is(err, service.ErrPhoneTaken),
		errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"code": 409, "msg": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
	}
}
