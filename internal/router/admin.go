package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"parts_office/internal/middleware"
	"parts_office/internal/model"
	"parts_office/internal/service"
	"parts_office/internal/store"
)

// login signs an admin in and returns a bearer token.
func login(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		admin, token, err := d.Admins.Login(in)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, gin.H{"id": admin.ID, "token": token})
	}
}

// createAdmin registers an admin. Super only. A multipart request may
// carry a "photo" file stored through the blob store.
func createAdmin(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.CreateAdminInput
		var image string

		if strings.HasPrefix(c.ContentType(), "multipart/") {
			if err := c.ShouldBind(&in); err != nil {
				badRequest(c, err.Error())
				return
			}
			if fh, err := c.FormFile("photo"); err == nil && d.Uploader != nil {
				url, err := d.Uploader.Save(fh)
				if err != nil {
					fail(c, err)
					return
				}
				image = url
			}
		} else if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}

		admin, token, err := d.Admins.Create(in, image)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"code": 0, "data": admin, "token": token})
	}
}

func listAdmins(d Deps) gin.HandlerFunc {
	admins := store.New[model.Admin](d.DB)
	return func(c *gin.Context) {
		list, err := admins.List()
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, list)
	}
}

func getAdmin(d Deps) gin.HandlerFunc {
	admins := store.New[model.Admin](d.DB)
	return func(c *gin.Context) {
		admin, err := admins.FindByID(c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, admin)
	}
}

// updateAdmin lets an admin edit their own record; super admins may
// edit anyone.
func updateAdmin(d Deps) gin.HandlerFunc {
	admins := store.New[model.Admin](d.DB)
	return func(c *gin.Context) {
		actor := middleware.ActorFrom(c)
		id := c.Param("id")
		if actor.ID != id && !actor.Super {
			c.JSON(http.StatusForbidden, gin.H{"code": 403, "msg": "not your account"})
			return
		}

		var in struct {
			Fname *string `json:"fname"`
			Lname *string `json:"lname"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}

		fields := map[string]any{}
		if in.Fname != nil {
			fields["fname"] = *in.Fname
		}
		if in.Lname != nil {
			fields["lname"] = *in.Lname
		}

		admin, err := admins.Update(id, fields)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, admin)
	}
}

func deleteAdmin(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.Admins.Delete(c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		ok(c, gin.H{"message": "admin deleted successfully"})
	}
}
