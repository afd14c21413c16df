package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/models"
)

func dashboardStores(inventory *fakeInventory, purchasing *fakePurchasing, workOrders *fakeWorkOrders, audit *fakeAudit) Stores {
	return Stores{
		Ledger:     &fakeLedger{},
		Inventory:  inventory,
		Purchasing: purchasing,
		WorkOrders: workOrders,
		Audit:      audit,
	}
}

func TestGetDashboardReport(t *testing.T) {
	createdAt := time.Date(2026, time.July, 1, 9, 30, 0, 0, time.UTC)
	stores := dashboardStores(
		&fakeInventory{totals: InventoryTotals{TotalItems: 12, TotalQuantity: dec("340")}},
		&fakePurchasing{counts: map[string]int64{"DRAFT": 2, "RECEIVED": 5}},
		&fakeWorkOrders{counts: map[string]int64{"IN_PROGRESS": 3}},
		&fakeAudit{entries: []models.AuditLog{
			{EntityType: "PURCHASE_ORDER", EntityId: 9, Action: "APPROVED", UserName: "thida", CreatedAt: createdAt},
		}},
	)

	report, err := GetDashboardReport(context.Background(), stores)
	if err != nil {
		t.Fatalf("GetDashboardReport returned error: %v", err)
	}

	if report.Inventory.TotalItems != 12 || !report.Inventory.TotalQuantity.Equal(dec("340")) {
		t.Fatalf("inventory totals = %+v, want 12/340", report.Inventory)
	}
	if report.PurchaseOrders.StatusBreakdown["RECEIVED"] != 5 {
		t.Fatalf("po RECEIVED = %d, want 5", report.PurchaseOrders.StatusBreakdown["RECEIVED"])
	}
	if report.WorkOrders.StatusBreakdown["IN_PROGRESS"] != 3 {
		t.Fatalf("wo IN_PROGRESS = %d, want 3", report.WorkOrders.StatusBreakdown["IN_PROGRESS"])
	}
	if len(report.RecentActivities) != 1 {
		t.Fatalf("recent activities = %d, want 1", len(report.RecentActivities))
	}
	activity := report.RecentActivities[0]
	if activity.EntityType != "PURCHASE_ORDER" || activity.UserName != "thida" {
		t.Fatalf("activity = %+v", activity)
	}
}

func TestGetDashboardReportAllSourcesUnavailable(t *testing.T) {
	stores := dashboardStores(
		&fakeInventory{totalsErr: ErrSourceUnavailable},
		&fakePurchasing{countsErr: ErrSourceUnavailable},
		&fakeWorkOrders{countsErr: ErrSourceUnavailable},
		&fakeAudit{err: ErrSourceUnavailable},
	)

	report, err := GetDashboardReport(context.Background(), stores)
	if err != nil {
		t.Fatalf("dashboard must not fail when every source is unavailable, got: %v", err)
	}

	if report.Inventory.TotalItems != 0 || !report.Inventory.TotalQuantity.IsZero() {
		t.Fatalf("inventory totals = %+v, want zeros", report.Inventory)
	}
	if report.PurchaseOrders.StatusBreakdown == nil || len(report.PurchaseOrders.StatusBreakdown) != 0 {
		t.Fatalf("po breakdown = %v, want empty map", report.PurchaseOrders.StatusBreakdown)
	}
	if report.WorkOrders.StatusBreakdown == nil || len(report.WorkOrders.StatusBreakdown) != 0 {
		t.Fatalf("wo breakdown = %v, want empty map", report.WorkOrders.StatusBreakdown)
	}
	if report.RecentActivities == nil || len(report.RecentActivities) != 0 {
		t.Fatalf("recent activities = %v, want empty slice", report.RecentActivities)
	}
}

func TestGetDashboardReportOneSourceFails(t *testing.T) {
	stores := dashboardStores(
		&fakeInventory{totals: InventoryTotals{TotalItems: 3, TotalQuantity: dec("9")}},
		&fakePurchasing{countsErr: errors.New("connection reset")},
		&fakeWorkOrders{counts: map[string]int64{"COMPLETED": 7}},
		&fakeAudit{},
	)

	report, err := GetDashboardReport(context.Background(), stores)
	if err != nil {
		t.Fatalf("a failing source must not fail the dashboard, got: %v", err)
	}

	// The failing source contributes its zero value; the others are intact.
	if len(report.PurchaseOrders.StatusBreakdown) != 0 {
		t.Fatalf("po breakdown = %v, want empty", report.PurchaseOrders.StatusBreakdown)
	}
	if report.Inventory.TotalItems != 3 {
		t.Fatalf("inventory items = %d, want 3", report.Inventory.TotalItems)
	}
	if report.WorkOrders.StatusBreakdown["COMPLETED"] != 7 {
		t.Fatalf("wo COMPLETED = %d, want 7", report.WorkOrders.StatusBreakdown["COMPLETED"])
	}
}

func TestGetDashboardReportActivityLimit(t *testing.T) {
	entries := make([]models.AuditLog, 0, 15)
	for i := 0; i < 15; i++ {
		entries = append(entries, models.AuditLog{EntityType: "WORK_ORDER", EntityId: i, Action: "UPDATED"})
	}
	stores := dashboardStores(&fakeInventory{}, &fakePurchasing{}, &fakeWorkOrders{}, &fakeAudit{entries: entries})

	report, err := GetDashboardReport(context.Background(), stores)
	if err != nil {
		t.Fatalf("GetDashboardReport returned error: %v", err)
	}
	if len(report.RecentActivities) != recentActivityLimit {
		t.Fatalf("recent activities = %d, want %d", len(report.RecentActivities), recentActivityLimit)
	}
}
