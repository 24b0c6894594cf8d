package router

import (
	"github.com/gin-gonic/gin"

	"parts_office/internal/middleware"
	"parts_office/internal/service"
)

// createContract runs the whole workflow: the actor comes from the
// verified token, never from the payload.
func createContract(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.CreateContractInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		contract, err := d.Contracts.Create(c.Request.Context(), middleware.ActorFrom(c), in)
		if err != nil {
			fail(c, err)
			return
		}
		created(c, contract)
	}
}

func listContracts(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := d.Contracts.List()
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, list)
	}
}

func getContract(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		contract, err := d.Contracts.Get(c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, contract)
	}
}

func updateContract(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.UpdateContractInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		contract, err := d.Contracts.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), in)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, contract)
	}
}

func deleteContract(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.Contracts.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		ok(c, gin.H{"message": "contract deleted successfully"})
	}
}
