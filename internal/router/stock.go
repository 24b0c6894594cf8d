package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getStock answers from the Redis cache when it is warm, otherwise
// reads the database row and warms the cache on the way out.
func getStock(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("product_id")

		if d.Cache != nil {
			if count, found, err := d.Cache.Get(c.Request.Context(), id); err == nil && found {
				ok(c, gin.H{"stock": count})
				return
			}
		}

		prod, err := d.Products.Get(id)
		if err != nil {
			fail(c, err)
			return
		}
		if d.Cache != nil {
			_ = d.Cache.Refresh(c.Request.Context(), prod.ID, prod.Count)
		}
		ok(c, gin.H{"stock": prod.Count})
	}
}

// preloadStock warms the cache for one product from the database row.
func preloadStock(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d.Cache == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"code": 503, "msg": "stock cache unavailable"})
			return
		}
		prod, err := d.Products.Get(c.Param("product_id"))
		if err != nil {
			fail(c, err)
			return
		}
		if err := d.Cache.Refresh(c.Request.Context(), prod.ID, prod.Count); err != nil {
			fail(c, err)
			return
		}
		ok(c, gin.H{"message": "stock preloaded"})
	}
}
