package repository

import (
	"medecos/internal/domain/entity"

	"gorm.io/gorm"
)

// applyRecordFilter narrows a query to the profile references set on the
// filter. A nil filter leaves the query untouched (unfiltered collection).
func applyRecordFilter(db *gorm.DB, filter *entity.RecordFilter) *gorm.DB {
	if filter == nil {
		return db
	}
	if filter.PatientID != nil {
		db = db.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.DoctorID != nil {
		db = db.Where("doctor_id = ?", *filter.DoctorID)
	}
	if filter.PharmacistID != nil {
		db = db.Where("pharmacist_id = ?", *filter.PharmacistID)
	}
	if filter.LabTesterID != nil {
		db = db.Where("lab_tester_id = ?", *filter.LabTesterID)
	}
	return db
}
