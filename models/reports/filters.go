package reports

import (
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/models"
	"bitbucket.org/mmdatafocus/factory_backend/utils"
	"github.com/go-playground/validator/v10"
)

// Filter values arrive as query strings. They are validated here, and any
// value that fails validation degrades to its documented default instead of
// failing the request.

var validate = validator.New()

func isValidDate(value string) bool {
	if value == "" {
		return false
	}
	return validate.Var(value, "datetime="+utils.DateLayout) == nil
}

type DateRangeFilter struct {
	StartDate string `form:"start_date" json:"start_date"`
	EndDate   string `form:"end_date" json:"end_date"`
}

// Range resolves the filter to concrete bounds: Jan 1 of the current year
// through now unless overridden. An end_date covers its whole day.
func (f DateRangeFilter) Range() (time.Time, time.Time) {
	from := utils.StartOfCurrentYear()
	if isValidDate(f.StartDate) {
		from = utils.ParseDateOrDefault(f.StartDate, from)
	}
	to := time.Now().UTC()
	if isValidDate(f.EndDate) {
		to = utils.EndOfDay(utils.ParseDateOrDefault(f.EndDate, to))
	}
	return from, to
}

type DepartmentalOverheadFilter struct {
	Year int `form:"year" json:"year"`
}

// CalendarYear resolves the filter to the bounds of one calendar year.
func (f DepartmentalOverheadFilter) CalendarYear() (int, time.Time, time.Time) {
	year := utils.YearOrDefault(f.Year)
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := utils.EndOfDay(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
	return year, from, to
}

type InventoryValuationFilter struct {
	AsOfDate   string `form:"as_of_date" json:"as_of_date"`
	LocationId *int   `form:"location_id" json:"location_id"`
	Category   string `form:"category" json:"category"`
}

// AsOf returns the optional upper bound on record timestamps; nil means no
// bound.
func (f InventoryValuationFilter) AsOf() *time.Time {
	if !isValidDate(f.AsOfDate) {
		return nil
	}
	asOf := utils.EndOfDay(utils.ParseDateOrDefault(f.AsOfDate, time.Time{}))
	return &asOf
}

type StockMovementFilter struct {
	DateRangeFilter
	// ItemType is echoed back to the caller but not enforced on the query;
	// the underlying log keys transactions by txn type, not item type.
	ItemType     string `form:"item_type" json:"item_type"`
	MovementType string `form:"movement_type" json:"movement_type"`
}

// TxnTypes maps the movement_type filter onto the fixed txn-type whitelists.
// Unknown values fall through to no filtering.
func (f StockMovementFilter) TxnTypes() []models.InventoryTxnType {
	switch models.MovementType(f.MovementType) {
	case models.MovementTypeIn:
		return []models.InventoryTxnType{
			models.InventoryTxnTypeStockIn,
			models.InventoryTxnTypeFinishedGoodsReceive,
			models.InventoryTxnTypeReentry,
		}
	case models.MovementTypeOut:
		return []models.InventoryTxnType{
			models.InventoryTxnTypeStockOut,
			models.InventoryTxnTypeWastage,
			models.InventoryTxnTypeIssue,
		}
	}
	return nil
}

type PurchaseOrderStatusFilter struct {
	DateRangeFilter
	SupplierId   *int   `form:"supplier_id" json:"supplier_id"`
	Status       string `form:"status" json:"status"`
	IncludeItems bool   `form:"include_items" json:"include_items"`
}

type WorkOrderPerformanceFilter struct {
	DateRangeFilter
	ProductId        *int   `form:"product_id" json:"product_id"`
	Status           string `form:"status" json:"status"`
	IncludeMaterials bool   `form:"include_materials" json:"include_materials"`
}
