package dtos

// BulkUploadRequest is the request body for the listing bulk importer.
type BulkUploadRequest struct {
	CSVData         string `json:"csvData" binding:"required"`
	TransactionType string `json:"transactionType" binding:"required,oneof=Sale Lease 'Home Stay'"`
	ValidateOnly    bool   `json:"validateOnly"`
}

// ValidationError is a single field-level problem on one CSV row.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RowError is one failed row with all its accumulated errors.
type RowError struct {
	Row    int               `json:"row"` // CSV line number, header is line 1
	Data   map[string]string `json:"data"`
	Errors []ValidationError `json:"errors"`
}

// CreatedListingRef points at a listing created from a row (persist mode).
type CreatedListingRef struct {
	Row       int    `json:"row"`
	ListingID string `json:"listingId"`
}

// ValidRow is a row that passed all checks in dry-run mode.
type ValidRow struct {
	RowNumber int               `json:"rowNumber"`
	Data      map[string]string `json:"data"`
}

// ImportResult aggregates per-row outcomes of one bulk upload.
// Invariants: Successful+Failed == Total; ValidRows is populated only when
// validateOnly was set, CreatedListingRefs only when it was not.
type ImportResult struct {
	Total              int                 `json:"total"`
	Successful         int                 `json:"successful"`
	Failed             int                 `json:"failed"`
	Errors             []RowError          `json:"errors"`
	CreatedListingRefs []CreatedListingRef `json:"createdListingRefs"`
	ValidRows          []ValidRow          `json:"validRows"`
}
