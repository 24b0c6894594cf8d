package router

import (
	"github.com/gin-gonic/gin"

	"parts_office/internal/middleware"
	"parts_office/internal/service"
)

func createClient(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.CreateClientInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		client, err := d.Clients.Create(middleware.ActorFrom(c), in)
		if err != nil {
			fail(c, err)
			return
		}
		created(c, client)
	}
}

// listClients doubles as search: ?query= filters by name, phone or firma.
func listClients(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := d.Clients.Search(c.Query("query"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, list)
	}
}

func getClient(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, err := d.Clients.Get(c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, client)
	}
}

func updateClient(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Fname       *string `json:"fname"`
			PhoneNumber *string `json:"phone_number"`
			Firma       *string `json:"firma"`
			Type        *string `json:"type"`
			Location    *string `json:"location"`
			Active      *bool   `json:"active"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}

		fields := map[string]any{}
		if in.Fname != nil {
			fields["fname"] = *in.Fname
		}
		if in.PhoneNumber != nil {
			fields["phone_number"] = *in.PhoneNumber
		}
		if in.Firma != nil {
			fields["firma"] = *in.Firma
		}
		if in.Type != nil {
			fields["type"] = *in.Type
		}
		if in.Location != nil {
			fields["location"] = *in.Location
		}
		if in.Active != nil {
			fields["active"] = *in.Active
		}

		client, err := d.Clients.Update(middleware.ActorFrom(c), c.Param("id"), fields)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, client)
	}
}

func deleteClient(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.Clients.Delete(c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		ok(c, gin.H{"message": "client deleted successfully"})
	}
}
