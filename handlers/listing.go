package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"realty-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListingHandler struct {
	DB *gorm.DB
}

// GetListings returns a paginated page of listings, optionally filtered by
// transaction type.
func (h *ListingHandler) GetListings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := h.DB.Model(&models.Listing{})
	if transactionType := c.Query("transaction_type"); transactionType != "" {
		query = query.Where("transaction_type = ?", transactionType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count listings"})
		return
	}

	var listings []models.Listing
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&listings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// GetListing accepts either the internal UUID or the public listing ID
// (e.g. SAL-VN-0001).
func (h *ListingHandler) GetListing(c *gin.Context) {
	param := c.Param("id")

	var listing models.Listing
	var err error
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		err = h.DB.First(&listing, "id = ?", id).Error
	} else {
		err = h.DB.First(&listing, "listing_id = ?", param).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listing"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) DeleteListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	result := h.DB.Delete(&models.Listing{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}
