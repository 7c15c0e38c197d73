package handlers

import (
	"net/http"
	"strings"

	"realty-backend/models"
	"realty-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MasterDataHandler struct {
	DB *gorm.DB
}

// namedMaster is satisfied by every model embedding models.MasterRecord.
type namedMaster interface {
	Names() (string, string)
}

// masterKinds maps the URL segment to a constructor for the backing model.
// A constructor per request keeps gorm from reusing a populated struct.
var masterKinds = map[string]func() interface{}{
	"projects":       func() interface{} { return &models.Project{} },
	"zones":          func() interface{} { return &models.Zone{} },
	"blocks":         func() interface{} { return &models.Block{} },
	"property-types": func() interface{} { return &models.PropertyType{} },
	"currencies":     func() interface{} { return &models.Currency{} },
	"furnishings":    func() interface{} { return &models.Furnishing{} },
	"floor-ranges":   func() interface{} { return &models.FloorRange{} },
	"units":          func() interface{} { return &models.Unit{} },
}

func (h *MasterDataHandler) GetMasterData(c *gin.Context) {
	kind, ok := masterKinds[c.Param("kind")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown master data kind"})
		return
	}

	var records []map[string]interface{}
	if err := h.DB.Model(kind()).Order("name_en").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch master data"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateMasterData inserts a new master record. Names must be unique within
// a kind, case-insensitively across both locales, or label matching during
// imports would become ambiguous.
func (h *MasterDataHandler) CreateMasterData(c *gin.Context) {
	kind, ok := masterKinds[c.Param("kind")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown master data kind"})
		return
	}

	record := kind()
	if err := c.ShouldBindJSON(record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	nameEn, nameVi := record.(namedMaster).Names()
	if strings.TrimSpace(nameEn) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name_en is required"})
		return
	}

	names := []string{strings.ToLower(nameEn)}
	if nameVi != "" {
		names = append(names, strings.ToLower(nameVi))
	}

	var count int64
	if err := h.DB.Model(kind()).
		Where("LOWER(name_en) IN ? OR LOWER(name_vi) IN ?", names, names).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for duplicates"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A record with this name already exists"})
		return
	}

	if err := h.DB.Create(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// DeleteMasterData soft-deletes a record. Listings that already reference it
// keep their foreign key; only future imports stop matching it.
func (h *MasterDataHandler) DeleteMasterData(c *gin.Context) {
	kind, ok := masterKinds[c.Param("kind")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown master data kind"})
		return
	}

	result := h.DB.Where("id = ?", c.Param("id")).Delete(kind())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}
