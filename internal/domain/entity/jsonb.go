package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// jsonbValue marshals an embedded document for storage in a jsonb column,
// implementing the driver.Valuer side of the contract.
func jsonbValue(v interface{}) (driver.Value, error) {
	return json.Marshal(v)
}

// jsonbScan unmarshals a jsonb column into the destination document,
// implementing the sql.Scanner side of the contract.
func jsonbScan(dst interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, dst)
}

// StringList is a jsonb-backed list of strings (qualifications, allergies,
// services offered, accreditations).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue([]string{})
	}
	return jsonbValue([]string(l))
}

func (l *StringList) Scan(value interface{}) error {
	return jsonbScan(l, value)
}

// TimeSlot is the start/end window of an appointment.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (t TimeSlot) Value() (driver.Value, error) {
	return jsonbValue(t)
}

func (t *TimeSlot) Scan(value interface{}) error {
	return jsonbScan(t, value)
}

// AvailabilitySlot is a recurring availability window on a doctor profile.
type AvailabilitySlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type AvailabilityList []AvailabilitySlot

func (l AvailabilityList) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue([]AvailabilitySlot{})
	}
	return jsonbValue([]AvailabilitySlot(l))
}

func (l *AvailabilityList) Scan(value interface{}) error {
	return jsonbScan(l, value)
}

// MedicalCondition is one entry in a patient's medical history.
type MedicalCondition struct {
	Condition     string     `json:"condition"`
	DiagnosedDate *time.Time `json:"diagnosedDate,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type MedicalHistory []MedicalCondition

func (h MedicalHistory) Value() (driver.Value, error) {
	if h == nil {
		return jsonbValue([]MedicalCondition{})
	}
	return jsonbValue([]MedicalCondition(h))
}

func (h *MedicalHistory) Scan(value interface{}) error {
	return jsonbScan(h, value)
}

// EmergencyContact is the emergency contact document on a patient profile.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

func (c EmergencyContact) Value() (driver.Value, error) {
	return jsonbValue(c)
}

func (c *EmergencyContact) Scan(value interface{}) error {
	return jsonbScan(c, value)
}

// OperatingHours is the open/close window of a pharmacy or lab.
type OperatingHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

func (o OperatingHours) Value() (driver.Value, error) {
	return jsonbValue(o)
}

func (o *OperatingHours) Scan(value interface{}) error {
	return jsonbScan(o, value)
}

// TestOffering is one test a lab advertises.
type TestOffering struct {
	TestName string          `json:"testName"`
	TestCode string          `json:"testCode,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Duration string          `json:"duration,omitempty"`
}

type TestOfferingList []TestOffering

func (l TestOfferingList) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue([]TestOffering{})
	}
	return jsonbValue([]TestOffering(l))
}

func (l *TestOfferingList) Scan(value interface{}) error {
	return jsonbScan(l, value)
}

// Medication is one prescribed medication entry.
type Medication struct {
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
}

type MedicationList []Medication

func (l MedicationList) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue([]Medication{})
	}
	return jsonbValue([]Medication(l))
}

func (l *MedicationList) Scan(value interface{}) error {
	return jsonbScan(l, value)
}

// OrderItem is one line of a pharmacy order.
type OrderItem struct {
	MedicineName string          `json:"medicineName"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

type OrderItemList []OrderItem

func (l OrderItemList) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue([]OrderItem{})
	}
	return jsonbValue([]OrderItem(l))
}

func (l *OrderItemList) Scan(value interface{}) error {
	return jsonbScan(l, value)
}

// TestResults is the results document on a lab test.
type TestResults struct {
	Findings      string     `json:"findings,omitempty"`
	ReportURL     string     `json:"reportUrl,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

func (r TestResults) Value() (driver.Value, error) {
	return jsonbValue(r)
}

func (r *TestResults) Scan(value interface{}) error {
	return jsonbScan(r, value)
}

// JSON is a free-form jsonb document (audit log metadata).
type JSON map[string]interface{}

func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	result := map[string]interface{}{}
	if err := jsonbScan(&result, value); err != nil {
		return err
	}
	*j = JSON(result)
	return nil
}
