package models

import (
	"log"

	"bitbucket.org/mmdatafocus/factory_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	// InventoryTransaction and AuditLog are deliberately absent: those tables
	// are provisioned by the subsystems that write them, and the reporting
	// path treats them as optional sources.
	err := db.AutoMigrate(
		&Account{}, &CostCenter{},
		&JournalEntry{}, &JournalLine{},
		&UnitOfMeasure{}, &Product{}, &Material{}, &InventoryRecord{},
		&Supplier{}, &PurchaseOrder{}, &PurchaseOrderItem{},
		&GoodsReceipt{}, &GoodsReceiptItem{}, &PurchaseInvoice{}, &ThreeWayMatch{},
		&WorkOrder{}, &WorkOrderItem{}, &WorkOrderStep{},
		&MaterialReservation{}, &MaterialConsumption{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
