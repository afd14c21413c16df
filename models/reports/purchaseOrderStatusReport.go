package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/models"
	"github.com/shopspring/decimal"
)

type PurchaseOrderStatusLine struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type PurchaseOrderStatusItem struct {
	OrderId      int                        `json:"order_id"`
	OrderNumber  string                     `json:"order_number"`
	SupplierName string                     `json:"supplier_name"`
	OrderDate    time.Time                  `json:"order_date"`
	Status       models.PurchaseOrderStatus `json:"status"`

	TotalOrderedValue  decimal.Decimal `json:"total_ordered_value"`
	TotalReceivedValue decimal.Decimal `json:"total_received_value"`
	TotalInvoicedValue decimal.Decimal `json:"total_invoiced_value"`
	ReceiptPercentage  decimal.Decimal `json:"receipt_percentage"`
	InvoicePercentage  decimal.Decimal `json:"invoice_percentage"`
	MatchingCompleted  bool            `json:"matching_completed"`

	Items []PurchaseOrderStatusLine `json:"items,omitempty"`
}

type PurchaseOrderStatusSummary struct {
	TotalOrders        int                   `json:"total_orders"`
	TotalOrderedValue  decimal.Decimal       `json:"total_ordered_value"`
	TotalReceivedValue decimal.Decimal       `json:"total_received_value"`
	TotalInvoicedValue decimal.Decimal       `json:"total_invoiced_value"`
	StatusBreakdown    map[string]BucketStat `json:"status_breakdown"`
	SupplierBreakdown  map[string]BucketStat `json:"supplier_breakdown"`
}

type PurchaseOrderStatusResponse struct {
	ReportType  string                    `json:"report_type"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Filters     PurchaseOrderStatusFilter `json:"filters"`

	Details []PurchaseOrderStatusItem `json:"details"`

	Summary PurchaseOrderStatusSummary `json:"summary"`
}

// GetPurchaseOrderStatusReport cross-references each purchase order with its
// goods receipts, invoices and three-way matches to compute fulfillment
// percentages. Percentages over a zero ordered value are defined as zero.
func GetPurchaseOrderStatusReport(ctx context.Context, purchasing PurchasingStore, filter PurchaseOrderStatusFilter) (*PurchaseOrderStatusResponse, error) {
	orders, err := purchasing.Orders(ctx, filter)
	if err != nil {
		return nil, err
	}

	details := make([]PurchaseOrderStatusItem, 0, len(orders))
	summary := PurchaseOrderStatusSummary{
		TotalOrderedValue:  decimal.Zero,
		TotalReceivedValue: decimal.Zero,
		TotalInvoicedValue: decimal.Zero,
		StatusBreakdown:    map[string]BucketStat{},
		SupplierBreakdown:  map[string]BucketStat{},
	}

	for _, order := range orders {
		item := PurchaseOrderStatusItem{
			OrderId:     order.ID,
			OrderNumber: order.OrderNumber,
			OrderDate:   order.OrderDate,
			Status:      order.CurrentStatus,
		}
		if order.Supplier != nil {
			item.SupplierName = order.Supplier.Name
		}

		ordered := decimal.Zero
		for _, line := range order.Items {
			lineTotal := line.Quantity.Mul(line.UnitPrice)
			ordered = ordered.Add(lineTotal)
			if filter.IncludeItems {
				item.Items = append(item.Items, PurchaseOrderStatusLine{
					Name:      line.Name,
					Quantity:  line.Quantity,
					UnitPrice: line.UnitPrice,
					LineTotal: lineTotal,
				})
			}
		}

		received := decimal.Zero
		for _, receipt := range order.GoodsReceipts {
			for _, line := range receipt.Items {
				received = received.Add(line.ReceivedQty.Mul(line.UnitPrice))
			}
		}

		invoiced := decimal.Zero
		for _, invoice := range order.Invoices {
			invoiced = invoiced.Add(invoice.TotalAmount)
		}

		item.TotalOrderedValue = ordered
		item.TotalReceivedValue = received
		item.TotalInvoicedValue = invoiced
		item.ReceiptPercentage = percentOf(received, ordered)
		item.InvoicePercentage = percentOf(invoiced, ordered)
		item.MatchingCompleted = len(order.ThreeWayMatches) > 0

		details = append(details, item)

		summary.TotalOrderedValue = summary.TotalOrderedValue.Add(ordered)
		summary.TotalReceivedValue = summary.TotalReceivedValue.Add(received)
		summary.TotalInvoicedValue = summary.TotalInvoicedValue.Add(invoiced)
		addToBucket(summary.StatusBreakdown, string(order.CurrentStatus), ordered)
		supplierKey := item.SupplierName
		if supplierKey == "" {
			supplierKey = UnknownBucket
		}
		addToBucket(summary.SupplierBreakdown, supplierKey, ordered)
	}
	summary.TotalOrders = len(details)

	return &PurchaseOrderStatusResponse{
		ReportType:  ReportTypePurchaseOrderStatus,
		GeneratedAt: time.Now().UTC(),
		Filters:     filter,
		Details:     details,
		Summary:     summary,
	}, nil
}
