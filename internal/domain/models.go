// Package domain defines the persistence models for employees and attendance
// records. These types are mapped to MongoDB documents with bson tags and form
// the core data layer of the HR backend.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceStatus is the daily attendance marker for an employee.
type AttendanceStatus string

// Allowed attendance statuses.
const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether s is one of the allowed attendance statuses.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Employee represents a member of staff. Employees carry two identifiers: the
// store-assigned ObjectID and the human-meaningful business key EmployeeID
// (e.g. "EMP001"), which attendance records reference.
//
// Fields:
//   - ID: store-assigned ObjectID, generated on insert, immutable.
//   - EmployeeID: unique business key; never changes after creation.
//   - FullName / Email / Department: profile fields; Email is unique.
//   - CreatedAt: record-creation timestamp (UTC).
type Employee struct {
	ID         primitive.ObjectID `json:"-"           bson:"_id,omitempty"`
	EmployeeID string             `json:"employee_id" bson:"employee_id"`
	FullName   string             `json:"full_name"   bson:"full_name"`
	Email      string             `json:"email"       bson:"email"`
	Department string             `json:"department"  bson:"department"`
	CreatedAt  time.Time          `json:"created_at"  bson:"created_at"`
}

// Attendance represents one daily marker for one employee. A unique compound
// index on (employee_id, date) guarantees at most one record per employee per
// calendar day.
//
// The employee_* fields are a denormalized snapshot of the referenced Employee
// taken at creation time. They are never refreshed if the employee later
// changes; readers that want live data must resolve EmployeeID themselves.
//
// Date is a calendar date stored as "YYYY-MM-DD", not a timestamp. The string
// form sorts lexicographically in date order.
type Attendance struct {
	ID                 primitive.ObjectID `json:"-"                   bson:"_id,omitempty"`
	EmployeeID         string             `json:"employee_id"         bson:"employee_id"`
	EmployeeName       string             `json:"employee_name"       bson:"employee_name"`
	EmployeeEmail      string             `json:"employee_email"      bson:"employee_email"`
	EmployeeDepartment string             `json:"employee_department" bson:"employee_department"`
	Date               string             `json:"date"                bson:"date"`
	Status             AttendanceStatus   `json:"status"              bson:"status"`
	CreatedAt          time.Time          `json:"created_at"          bson:"created_at"`
}
