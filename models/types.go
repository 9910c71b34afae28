package models

// Attendance side-effect status constants, reported on feedback submissions
const (
	StatusMarkedPresent  = "marked_present"
	StatusAlreadyPresent = "already_present"
	StatusNotOnRoster    = "not_on_roster"
	StatusNewEntryMarked = "new_entry_marked"

	// StatusAttendanceError means the attendance step failed on a store or
	// worksheet fault. Distinct from not_on_roster: the respondent cannot
	// fix it by correcting their input.
	StatusAttendanceError = "attendance_error"
)

// AttendanceMarked is the value written to the Attendance column. The empty
// string means not yet marked; there is no reverse transition.
const AttendanceMarked = "Present"

// Request types

type CheckinRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name"`
}

type FeedbackRequest struct {
	SessionID   string `json:"session_id" validate:"required"`
	SessionName string `json:"session_name"`
	SessionDate string `json:"session_date"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Q1          string `json:"q1"`
	Q2          string `json:"q2"`
	Q3          string `json:"q3"`
	Q4          string `json:"q4"`
	Q5          string `json:"q5"`
	Q6          string `json:"q6"`
	Q7          string `json:"q7"`
	Q8          string `json:"q8"`
	Q9          string `json:"q9"`
	Q10         string `json:"q10"`
}

// Answers returns the ten answers in worksheet column order. Unanswered
// questions come back as empty strings, never as an error.
func (r FeedbackRequest) Answers() []string {
	return []string{r.Q1, r.Q2, r.Q3, r.Q4, r.Q5, r.Q6, r.Q7, r.Q8, r.Q9, r.Q10}
}

// Response types

type UploadSessionResponse struct {
	SessionID string `json:"session_id"`
	Rows      int    `json:"rows"`
}

type CheckinResponse struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	Marked    bool   `json:"marked"`
	Message   string `json:"message,omitempty"`
}

type EmailExistsResponse struct {
	Exists bool `json:"exists"`
}

type FeedbackResponse struct {
	Recorded   bool   `json:"recorded"`
	MarkedNow  bool   `json:"marked_now"`
	Attendance string `json:"attendance"`
}

// Domain types

// AttendanceRecord mirrors one data row of the attendance worksheet.
type AttendanceRecord struct {
	SessionID    string `json:"session_id"`
	SessionName  string `json:"session_name"`
	SessionDate  string `json:"session_date"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	Business     string `json:"business"`
	Attendance   string `json:"attendance"`
	Timestamp    string `json:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
