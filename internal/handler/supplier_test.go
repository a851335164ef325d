package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/VisKlo/furniture-inventory/internal/models"
	"github.com/VisKlo/furniture-inventory/pkg/database"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
)

func TestSupplierCRUD(t *testing.T) {
	c := qt.New(t)
	r := setupTest(t)
	token := createTestUser(t)

	w := doRequest(r, http.MethodPost, "/api/suppliers", token, gin.H{
		"name": "Scierie Dupont",
		"contact": gin.H{
			"email":   "contact@dupont.fr",
			"phone":   "0123456789",
			"address": "12 rue du Bois",
		},
	})
	c.Assert(w.Code, qt.Equals, http.StatusCreated)

	var created models.Supplier
	decodeBody(t, w, &created)
	c.Assert(created.Name, qt.Equals, "Scierie Dupont")
	c.Assert(created.Contact.Data().Email, qt.Equals, "contact@dupont.fr")

	url := fmt.Sprintf("/api/suppliers/%d", created.ID)

	w = doRequest(r, http.MethodPut, url, token, gin.H{"name": "Scierie Martin"})
	c.Assert(w.Code, qt.Equals, http.StatusOK)

	var updated models.Supplier
	decodeBody(t, w, &updated)
	c.Assert(updated.Name, qt.Equals, "Scierie Martin")
	c.Assert(updated.Contact.Data().Phone, qt.Equals, "0123456789")

	w = doRequest(r, http.MethodGet, url, "", nil)
	c.Assert(w.Code, qt.Equals, http.StatusOK)

	w = doRequest(r, http.MethodDelete, url, token, nil)
	c.Assert(w.Code, qt.Equals, http.StatusOK)

	w = doRequest(r, http.MethodGet, url, "", nil)
	c.Assert(w.Code, qt.Equals, http.StatusNotFound)
}

func TestSupplierCreateRequiresName(t *testing.T) {
	c := qt.New(t)
	r := setupTest(t)
	token := createTestUser(t)

	w := doRequest(r, http.MethodPost, "/api/suppliers", token, gin.H{})
	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)
}

func TestSupplierMaterialsLookup(t *testing.T) {
	c := qt.New(t)
	r := setupTest(t)

	supplier := models.Supplier{Name: "Scierie Dupont"}
	c.Assert(database.DB.Create(&supplier).Error, qt.IsNil)

	for _, name := range []string{"Oak plank", "Pine plank"} {
		material := models.Material{
			Name:       name,
			Category:   models.CategoryWood,
			Quantity:   10,
			Price:      2.0,
			SupplierID: &supplier.ID,
		}
		c.Assert(database.DB.Create(&material).Error, qt.IsNil)
	}
	seedMaterial(t, "Unrelated metal", 5)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/suppliers/%d/materials", supplier.ID), "", nil)
	c.Assert(w.Code, qt.Equals, http.StatusOK)

	var resp struct {
		Supplier  models.Supplier   `json:"supplier"`
		Materials []models.Material `json:"materials"`
	}
	decodeBody(t, w, &resp)
	c.Assert(resp.Supplier.ID, qt.Equals, supplier.ID)
	c.Assert(resp.Materials, qt.HasLen, 2)
}

func TestDeleteSupplierDetachesMaterials(t *testing.T) {
	c := qt.New(t)
	r := setupTest(t)
	token := createTestUser(t)

	supplier := models.Supplier{Name: "Scierie Dupont"}
	c.Assert(database.DB.Create(&supplier).Error, qt.IsNil)

	material := models.Material{
		Name:       "Oak plank",
		Category:   models.CategoryWood,
		Quantity:   10,
		Price:      2.0,
		SupplierID: &supplier.ID,
	}
	c.Assert(database.DB.Create(&material).Error, qt.IsNil)

	w := doRequest(r, http.MethodDelete, fmt.Sprintf("/api/suppliers/%d", supplier.ID), token, nil)
	c.Assert(w.Code, qt.Equals, http.StatusOK)

	var detached models.Material
	c.Assert(database.DB.First(&detached, material.ID).Error, qt.IsNil)
	c.Assert(detached.SupplierID, qt.IsNil)
}
