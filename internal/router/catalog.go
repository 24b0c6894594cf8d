package router

import (
	"strings"

	"github.com/gin-gonic/gin"

	"parts_office/internal/model"
	"parts_office/internal/service"
	"parts_office/internal/store"
)

func createProduct(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.CreateProductInput
		var img string

		if strings.HasPrefix(c.ContentType(), "multipart/") {
			if err := c.ShouldBind(&in); err != nil {
				badRequest(c, err.Error())
				return
			}
			if fh, err := c.FormFile("img"); err == nil && d.Uploader != nil {
				url, err := d.Uploader.Save(fh)
				if err != nil {
					fail(c, err)
					return
				}
				img = url
			}
		} else if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}

		prod, err := d.Products.Create(in, img)
		if err != nil {
			fail(c, err)
			return
		}
		created(c, prod)
	}
}

func listProducts(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := d.Products.List()
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, list)
	}
}

func searchProducts(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f service.ProductSearch
		if err := c.ShouldBindQuery(&f); err != nil {
			badRequest(c, err.Error())
			return
		}
		list, err := d.Products.Search(f)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, list)
	}
}

func getProduct(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		prod, err := d.Products.Get(c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, prod)
	}
}

func updateProduct(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Marka    *string `json:"marka"`
			Count    *int64  `json:"count"`
			Price    *int64  `json:"price"`
			Kwt      *string `json:"kwt"`
			Turnover *string `json:"turnover"`
			Location *string `json:"location"`
			Category *string `json:"category"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}

		fields := map[string]any{}
		if in.Marka != nil {
			fields["marka"] = *in.Marka
		}
		if in.Count != nil {
			if *in.Count < 0 {
				badRequest(c, "count must not be negative")
				return
			}
			fields["count"] = *in.Count
		}
		if in.Price != nil {
			fields["price"] = *in.Price
		}
		if in.Kwt != nil {
			fields["kwt"] = *in.Kwt
		}
		if in.Turnover != nil {
			fields["turnover"] = *in.Turnover
		}
		if in.Location != nil {
			fields["location"] = *in.Location
		}
		if in.Category != nil {
			fields["category_id"] = *in.Category
		}

		prod, err := d.Products.Update(c.Param("id"), fields)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, prod)
	}
}

func deleteProduct(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.Products.Delete(c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		ok(c, gin.H{"message": "product deleted successfully"})
	}
}

// Categories and locations are plain entity-store CRUD.

func createCategory(d Deps) gin.HandlerFunc {
	categories := store.New[model.Category](d.DB)
	return func(c *gin.Context) {
		var in struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		cat := &model.Category{Name: in.Name}
		if err := categories.Create(cat); err != nil {
			fail(c, err)
			return
		}
		created(c, cat)
	}
}

func listCategories(d Deps) gin.HandlerFunc {
	categories := store.New[model.Category](d.DB)
	return func(c *gin.Context) {
		list, err := categories.List()
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, list)
	}
}

func getCategory(d Deps) gin.HandlerFunc {
	categories := store.New[model.Category](d.DB)
	return func(c *gin.Context) {
		cat, err := categories.FindByID(c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, cat)
	}
}

func updateCategory(d Deps) gin.HandlerFunc {
	categories := store.New[model.Category](d.DB)
	return func(c *gin.Context) {
		var in struct {
			Name *string `json:"name"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		fields := map[string]any{}
		if in.Name != nil {
			fields["name"] = *in.Name
		}
		cat, err := categories.Update(c.Param("id"), fields)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, cat)
	}
}

func deleteCategory(d Deps) gin.HandlerFunc {
	categories := store.New[model.Category](d.DB)
	return func(c *gin.Context) {
		if err := categories.Delete(c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		ok(c, gin.H{"message": "category deleted successfully"})
	}
}

func createLocation(d Deps) gin.HandlerFunc {
	locations := store.New[model.StoreLocation](d.DB)
	return func(c *gin.Context) {
		var in struct {
			Name    string `json:"name" binding:"required"`
			Address string `json:"address"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		loc := &model.StoreLocation{Name: in.Name, Address: in.Address}
		if err := locations.Create(loc); err != nil {
			fail(c, err)
			return
		}
		created(c, loc)
	}
}

func listLocations(d Deps) gin.HandlerFunc {
	locations := store.New[model.StoreLocation](d.DB)
	return func(c *gin.Context) {
		list, err := locations.List()
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, list)
	}
}

func getLocation(d Deps) gin.HandlerFunc {
	locations := store.New[model.StoreLocation](d.DB)
	return func(c *gin.Context) {
		loc, err := locations.FindByID(c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, loc)
	}
}

func updateLocation(d Deps) gin.HandlerFunc {
	locations := store.New[model.StoreLocation](d.DB)
	return func(c *gin.Context) {
		var in struct {
			Name    *string `json:"name"`
			Address *string `json:"address"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		fields := map[string]any{}
		if in.Name != nil {
			fields["name"] = *in.Name
		}
		if in.Address != nil {
			fields["address"] = *in.Address
		}
		loc, err := locations.Update(c.Param("id"), fields)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, loc)
	}
}

func deleteLocation(d Deps) gin.HandlerFunc {
	locations := store.New[model.StoreLocation](d.DB)
	return func(c *gin.Context) {
		if err := locations.Delete(c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		ok(c, gin.H{"message": "location deleted successfully"})
	}
}
