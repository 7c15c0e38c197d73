package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"realty-backend/dtos"
	"realty-backend/models"
	"realty-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImportHandler struct {
	DB *gorm.DB
}

// BulkUpload ingests a CSV batch of listings. With validateOnly set the
// batch is checked end to end without writing any listings; otherwise valid
// rows are persisted one at a time, each in its own transaction.
func (h *ImportHandler) BulkUpload(c *gin.Context) {
	var req dtos.BulkUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	rows, err := utils.ParseCSV(req.CSVData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	startedAt := time.Now()
	result := h.processRows(rows, req.TransactionType, req.ValidateOnly)

	job := models.ImportJob{
		TransactionType: req.TransactionType,
		ValidateOnly:    req.ValidateOnly,
		Total:           result.Total,
		Successful:      result.Successful,
		Failed:          result.Failed,
		StartedAt:       startedAt,
		CompletedAt:     time.Now(),
	}
	if err := h.DB.Create(&job).Error; err != nil {
		// The import itself succeeded; losing the history row is not worth a 500.
		log.Printf("Failed to record import job: %v", err)
	}

	message := fmt.Sprintf("Processed %d rows: %d created, %d failed", result.Total, result.Successful, result.Failed)
	if req.ValidateOnly {
		message = fmt.Sprintf("Validated %d rows: %d valid, %d invalid", result.Total, result.Successful, result.Failed)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    result,
	})
}

// processRows walks the batch strictly in order. Later rows must see
// listings created by earlier ones, both for duplicate detection and for
// sequential ID allocation, so there is no concurrency here.
func (h *ImportHandler) processRows(rows []map[string]string, transactionType string, validateOnly bool) dtos.ImportResult {
	result := dtos.ImportResult{
		Total:              len(rows),
		Errors:             []dtos.RowError{},
		CreatedListingRefs: []dtos.CreatedListingRef{},
		ValidRows:          []dtos.ValidRow{},
	}

	for i, row := range rows {
		rowNumber := i + 2 // header occupies line 1

		refs, errs := h.validateRow(row, transactionType)
		if len(errs) == 0 {
			if propertyNo := row[colPropertyNo]; propertyNo != "" {
				dup, err := h.isDuplicatePropertyNo(propertyNo)
				if err != nil {
					errs = append(errs, dtos.ValidationError{
						Field:   colPropertyNo,
						Message: "failed to check for duplicates: " + err.Error(),
					})
				} else if dup {
					errs = append(errs, dtos.ValidationError{
						Field:   colPropertyNo,
						Message: fmt.Sprintf("a listing with property no %q already exists", propertyNo),
					})
				}
			}
		}
		if len(errs) > 0 {
			result.Failed++
			result.Errors = append(result.Errors, dtos.RowError{Row: rowNumber, Data: row, Errors: errs})
			continue
		}

		if validateOnly {
			result.Successful++
			result.ValidRows = append(result.ValidRows, dtos.ValidRow{RowNumber: rowNumber, Data: row})
			continue
		}

		listingID, err := h.persistRow(row, transactionType, refs)
		if err != nil {
			// A failed row never aborts the batch.
			log.Printf("Row %d: failed to create listing: %v", rowNumber, err)
			result.Failed++
			result.Errors = append(result.Errors, dtos.RowError{
				Row:    rowNumber,
				Data:   row,
				Errors: []dtos.ValidationError{persistError(err)},
			})
			continue
		}

		result.Successful++
		result.CreatedListingRefs = append(result.CreatedListingRefs, dtos.CreatedListingRef{Row: rowNumber, ListingID: listingID})
	}

	return result
}

// persistRow allocates the next listing ID and creates the listing in a
// single transaction, so a failed insert rolls the counter back too.
func (h *ImportHandler) persistRow(row map[string]string, transactionType string, refs masterRefs) (string, error) {
	var listingID string
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		id, err := nextListingID(tx, transactionType)
		if err != nil {
			return err
		}

		listing := buildListing(row, transactionType, refs)
		listing.ListingID = id
		if err := tx.Create(&listing).Error; err != nil {
			return err
		}

		listingID = id
		return nil
	})
	return listingID, err
}

func persistError(err error) dtos.ValidationError {
	msg := err.Error()
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "duplicate key") {
		return dtos.ValidationError{Field: "listingId", Message: "listing id already exists: " + msg}
	}
	return dtos.ValidationError{Field: "listing", Message: "failed to save listing: " + msg}
}

// nextListingID issues the next sequential identifier for the transaction
// type's prefix. Each prefix has its own counter row, created lazily and
// seeded from the highest suffix already present so pre-existing listings
// keep their numbering.
func nextListingID(tx *gorm.DB, transactionType string) (string, error) {
	prefix := listingPrefix(transactionType)

	var counter models.ListingCounter
	err := tx.Where("prefix = ?", prefix).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed, seedErr := highestSuffix(tx, prefix)
		if seedErr != nil {
			return "", seedErr
		}
		counter = models.ListingCounter{Prefix: prefix, Seq: seed}
		if createErr := tx.Create(&counter).Error; createErr != nil {
			return "", createErr
		}
	} else if err != nil {
		return "", err
	}

	counter.Seq++
	if err := tx.Model(&models.ListingCounter{}).Where("prefix = ?", prefix).Update("seq", counter.Seq).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, counter.Seq), nil
}

// highestSuffix scans existing listing IDs under a prefix and returns the
// largest numeric suffix, ignoring IDs that don't parse.
func highestSuffix(tx *gorm.DB, prefix string) (int64, error) {
	var ids []string
	if err := tx.Model(&models.Listing{}).
		Where("listing_id LIKE ?", prefix+"%").
		Pluck("listing_id", &ids).Error; err != nil {
		return 0, err
	}

	var max int64
	for _, id := range ids {
		var n int64
		if _, err := fmt.Sscanf(strings.TrimPrefix(id, prefix), "%d", &n); err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

func buildListing(row map[string]string, transactionType string, refs masterRefs) models.Listing {
	listing := models.Listing{
		TransactionType: transactionType,
		Title:           models.NewLocalizedText(row[colPropertyTitle]),
		PropertyNo:      models.NewLocalizedText(row[colPropertyNo]),
		Description:     models.NewLocalizedText(row[colDescription]),
		ProjectID:       refs.Project,
		ZoneID:          refs.Zone,
		BlockID:         refs.Block,
		PropertyTypeID:  refs.PropertyType,
		CurrencyID:      refs.Currency,
		FurnishingID:    refs.Furnishing,
		FloorRangeID:    refs.FloorRange,
		UnitID:          refs.Unit,
		UnitSize:        parseFloatOrZero(row[colUnitSize]),
		Bedrooms:        parseIntOrZero(row[colBedrooms]),
		Bathrooms:       parseIntOrZero(row[colBathrooms]),
		SalePrice:       parseFloatOrZero(row[colSalePrice]),
		LeasePrice:      parseFloatOrZero(row[colLeasePrice]),
		PricePerNight:   parseFloatOrZero(row[colPricePerNight]),
		Status:          "active",
	}

	if value := row[colAvailableFrom]; value != "" {
		if t, err := parseDate(value); err == nil {
			listing.AvailableFrom = &t
		}
	}

	return listing
}

// GetImportJobs lists past imports, newest first.
func (h *ImportHandler) GetImportJobs(c *gin.Context) {
	var jobs []models.ImportJob
	if err := h.DB.Order("started_at DESC").Limit(50).Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch import jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *ImportHandler) GetImportJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid import job ID"})
		return
	}

	var job models.ImportJob
	if err := h.DB.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Import job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch import job"})
		return
	}
	c.JSON(http.StatusOK, job)
}
