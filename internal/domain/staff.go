package domain

import (
	"time"
)

type EmployeePosition string

const (
	PositionOwner     EmployeePosition = "owner"
	PositionManager   EmployeePosition = "manager"
	PositionShiftLead EmployeePosition = "shift_lead"
	PositionBarista   EmployeePosition = "barista"
	PositionCashier   EmployeePosition = "cashier"
	PositionKitchen   EmployeePosition = "kitchen"
)

type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "active"
	EmploymentInactive   EmploymentStatus = "inactive"
	EmploymentOnLeave    EmploymentStatus = "on_leave"
	EmploymentTerminated EmploymentStatus = "terminated"
)

type Employee struct {
	ID                    int64            `json:"id"`
	UserID                int64            `json:"user_id"`
	EmployeeCode          string           `json:"employee_code"`
	Phone                 string           `json:"phone"`
	EmergencyContactName  string           `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string           `json:"emergency_contact_phone,omitempty"`
	Position              EmployeePosition `json:"position"`
	Status                EmploymentStatus `json:"status"`
	HireDate              time.Time        `json:"hire_date"`
	TerminationDate       *time.Time       `json:"termination_date,omitempty"`
	HourlyWageCents       int              `json:"hourly_wage_cents"`
	CanOpen               bool             `json:"can_open"`
	CanClose              bool             `json:"can_close"`
	CanHandleCash         bool             `json:"can_handle_cash"`
	Notes                 string           `json:"notes,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

type CreateEmployeeDTO struct {
	UserID                int64            `json:"user_id" binding:"required"`
	Phone                 string           `json:"phone" binding:"required"`
	EmergencyContactName  string           `json:"emergency_contact_name"`
	EmergencyContactPhone string           `json:"emergency_contact_phone"`
	Position              EmployeePosition `json:"position" binding:"required,oneof=owner manager shift_lead barista cashier kitchen"`
	HireDate              string           `json:"hire_date" binding:"required"`
	HourlyWageCents       int              `json:"hourly_wage_cents" binding:"required,min=1"`
	CanOpen               bool             `json:"can_open"`
	CanClose              bool             `json:"can_close"`
	CanHandleCash         *bool            `json:"can_handle_cash"`
	Notes                 string           `json:"notes"`
}

type UpdateEmployeeDTO struct {
	Phone                 *string           `json:"phone"`
	EmergencyContactName  *string           `json:"emergency_contact_name"`
	EmergencyContactPhone *string           `json:"emergency_contact_phone"`
	Position              *EmployeePosition `json:"position" binding:"omitempty,oneof=owner manager shift_lead barista cashier kitchen"`
	Status                *EmploymentStatus `json:"status" binding:"omitempty,oneof=active inactive on_leave terminated"`
	TerminationDate       *string           `json:"termination_date"`
	HourlyWageCents       *int              `json:"hourly_wage_cents" binding:"omitempty,min=1"`
	CanOpen               *bool             `json:"can_open"`
	CanClose              *bool             `json:"can_close"`
	CanHandleCash         *bool             `json:"can_handle_cash"`
	Notes                 *string           `json:"notes"`
}

type EmployeeFilter struct {
	Position *EmployeePosition `json:"position"`
	Status   *EmploymentStatus `json:"status"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type ShiftType string

const (
	ShiftOpening ShiftType = "opening"
	ShiftMid     ShiftType = "mid"
	ShiftClosing ShiftType = "closing"
	ShiftFull    ShiftType = "full"
)

type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "scheduled"
	ShiftConfirmed ShiftStatus = "confirmed"
	ShiftCompleted ShiftStatus = "completed"
	ShiftSick      ShiftStatus = "called_in_sick"
	ShiftNoShow    ShiftStatus = "no_show"
	ShiftCancelled ShiftStatus = "cancelled"
)

// Shift — рабочая смена сотрудника. Время начала и конца — местное
// время в формате HH:MM, смена не переходит через полночь.
type Shift struct {
	ID         int64       `json:"id"`
	EmployeeID int64       `json:"employee_id"`
	Date       time.Time   `json:"date"`
	StartTime  string      `json:"start_time"`
	EndTime    string      `json:"end_time"`
	Type       ShiftType   `json:"type"`
	Status     ShiftStatus `json:"status"`
	Notes      string      `json:"notes,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type CreateShiftDTO struct {
	EmployeeID int64     `json:"employee_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	StartTime  string    `json:"start_time" binding:"required"`
	EndTime    string    `json:"end_time" binding:"required"`
	Type       ShiftType `json:"type" binding:"omitempty,oneof=opening mid closing full"`
	Notes      string    `json:"notes"`
}

type UpdateShiftDTO struct {
	Date      *string      `json:"date"`
	StartTime *string      `json:"start_time"`
	EndTime   *string      `json:"end_time"`
	Type      *ShiftType   `json:"type" binding:"omitempty,oneof=opening mid closing full"`
	Status    *ShiftStatus `json:"status" binding:"omitempty,oneof=scheduled confirmed completed called_in_sick no_show cancelled"`
	Notes     *string      `json:"notes"`
}

type ShiftFilter struct {
	EmployeeID *int64     `json:"employee_id"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}
