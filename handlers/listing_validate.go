package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"realty-backend/dtos"
	"realty-backend/models"

	"github.com/google/uuid"
)

// Column names recognized by the importer. Validation errors carry the
// column header verbatim in the field name so the admin UI can point at the
// offending cell.
const (
	colProject       = "Project / Community"
	colZone          = "Area / Zone"
	colBlock         = "Block Name"
	colPropertyType  = "Property Type"
	colPropertyTitle = "Property Title"
	colPropertyNo    = "Property No"
	colCurrency      = "Currency"
	colFurnishing    = "Furnishing"
	colFloorRange    = "Floor Range"
	colUnit          = "Unit"
	colUnitSize      = "Unit Size"
	colBedrooms      = "Bedrooms"
	colBathrooms     = "Bathrooms"
	colSalePrice     = "Sale Price"
	colLeasePrice    = "Lease Price"
	colPricePerNight = "Price Per Night"
	colAvailableFrom = "Available From"
	colDescription   = "Description"
)

// masterRefs carries the master-data IDs resolved while validating a row so
// the persist step does not have to look them up a second time.
type masterRefs struct {
	Project      *uuid.UUID
	Zone         *uuid.UUID
	Block        *uuid.UUID
	PropertyType *uuid.UUID
	Currency     *uuid.UUID
	Furnishing   *uuid.UUID
	FloorRange   *uuid.UUID
	Unit         *uuid.UUID
}

func listingPrefix(transactionType string) string {
	switch transactionType {
	case models.TransactionSale:
		return "SAL-VN-"
	case models.TransactionLease:
		return "LSE-VN-"
	case models.TransactionHomeStay:
		return "HST-VN-"
	default:
		return "UNK-VN-"
	}
}

// priceColumn returns the price field required for the transaction type, or
// "" when the type is unknown.
func priceColumn(transactionType string) string {
	switch transactionType {
	case models.TransactionSale:
		return colSalePrice
	case models.TransactionLease:
		return colLeasePrice
	case models.TransactionHomeStay:
		return colPricePerNight
	default:
		return ""
	}
}

// resolveMaster finds a master record whose name matches the label in either
// locale, case-insensitively. First match wins; uniqueness of master names
// is enforced at creation time, not here.
func (h *ImportHandler) resolveMaster(model interface{}, label string) (*uuid.UUID, bool) {
	var ref struct {
		ID uuid.UUID
	}
	lowered := strings.ToLower(label)
	err := h.DB.Model(model).Select("id").
		Where("LOWER(name_en) = ? OR LOWER(name_vi) = ?", lowered, lowered).
		Take(&ref).Error
	if err != nil {
		return nil, false
	}
	return &ref.ID, true
}

// resolveUnit is the one lookup that also accepts the unit symbol (sqm, sqft).
func (h *ImportHandler) resolveUnit(label string) (*uuid.UUID, bool) {
	var ref struct {
		ID uuid.UUID
	}
	lowered := strings.ToLower(label)
	err := h.DB.Model(&models.Unit{}).Select("id").
		Where("LOWER(name_en) = ? OR LOWER(name_vi) = ? OR LOWER(symbol) = ?", lowered, lowered, lowered).
		Take(&ref).Error
	if err != nil {
		return nil, false
	}
	return &ref.ID, true
}

// validateRow runs every applicable check on one row and accumulates all
// errors - a row can carry several at once. Master-data checks only apply
// to columns that are present with a value; required and numeric checks
// depend on the transaction type.
func (h *ImportHandler) validateRow(row map[string]string, transactionType string) (masterRefs, []dtos.ValidationError) {
	var refs masterRefs
	var errs []dtos.ValidationError

	lookups := []struct {
		column string
		model  interface{}
		target **uuid.UUID
	}{
		{colProject, &models.Project{}, &refs.Project},
		{colZone, &models.Zone{}, &refs.Zone},
		{colBlock, &models.Block{}, &refs.Block},
		{colPropertyType, &models.PropertyType{}, &refs.PropertyType},
		{colCurrency, &models.Currency{}, &refs.Currency},
		{colFurnishing, &models.Furnishing{}, &refs.Furnishing},
		{colFloorRange, &models.FloorRange{}, &refs.FloorRange},
	}
	for _, l := range lookups {
		value := row[l.column]
		if value == "" {
			continue
		}
		id, ok := h.resolveMaster(l.model, value)
		if !ok {
			errs = append(errs, dtos.ValidationError{
				Field:   l.column,
				Message: fmt.Sprintf("no matching record found for %q", value),
			})
			continue
		}
		*l.target = id
	}
	if value := row[colUnit]; value != "" {
		id, ok := h.resolveUnit(value)
		if !ok {
			errs = append(errs, dtos.ValidationError{
				Field:   colUnit,
				Message: fmt.Sprintf("no matching record found for %q", value),
			})
		} else {
			refs.Unit = id
		}
	}

	required := []string{colProject, colPropertyType, colPropertyTitle, colCurrency}
	if price := priceColumn(transactionType); price != "" {
		required = append(required, price)
	}
	for _, column := range required {
		if row[column] == "" {
			errs = append(errs, dtos.ValidationError{
				Field:   column,
				Message: column + " is required",
			})
		}
	}

	// Blank numeric cells are not errors; they fall back to zero at persist
	// time.
	numeric := []string{colUnitSize, colBedrooms, colBathrooms}
	if price := priceColumn(transactionType); price != "" {
		numeric = append(numeric, price)
	}
	for _, column := range numeric {
		value := row[column]
		if value == "" {
			continue
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			errs = append(errs, dtos.ValidationError{
				Field:   column,
				Message: fmt.Sprintf("must be a number, got %q", value),
			})
		}
	}

	if value := row[colAvailableFrom]; value != "" {
		if _, err := parseDate(value); err != nil {
			errs = append(errs, dtos.ValidationError{
				Field:   colAvailableFrom,
				Message: fmt.Sprintf("invalid date %q", value),
			})
		}
	}

	return refs, errs
}

// isDuplicatePropertyNo reports whether a listing already carries the given
// property number in either locale. It re-queries the store each time so
// rows persisted earlier in the same batch are seen.
func (h *ImportHandler) isDuplicatePropertyNo(propertyNo string) (bool, error) {
	var count int64
	err := h.DB.Model(&models.Listing{}).
		Where("property_no_en = ? OR property_no_vi = ?", propertyNo, propertyNo).
		Count(&count).Error
	return count > 0, err
}

var dateFormats = []string{"2006-01-02", "02/01/2006", "2006/01/02"}

func parseDate(value string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", value)
}

func parseFloatOrZero(value string) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseIntOrZero(value string) int {
	return int(parseFloatOrZero(value))
}
