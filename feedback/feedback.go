// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feedback

import (
	"strings"
	"time"

	"github.com/sessiondesk/server/attendance"
	"github.com/sessiondesk/server/models"
	"github.com/sessiondesk/server/sheet"
)

// answerCount is the fixed width of the Q1..Q10 answer columns.
const answerCount = 10

// Submission is one feedback form submission.
type Submission struct {
	SessionID   string
	SessionName string
	SessionDate string
	Name        string
	Email       string
	Phone       string
	Answers     []string // question order; missing answers become blanks
}

// Result reports what a Reconcile call did.
type Result struct {
	// Recorded is true once the feedback row has been appended.
	Recorded bool
	// MarkedNow is true when this call transitioned the attendance record
	// from empty to Present.
	MarkedNow bool
	// Status is one of the models.Status* constants.
	Status string
}

// Reconciler merges feedback submissions with attendance state: marking
// attendance is a side effect of submitting feedback, and the feedback row is
// appended regardless of how that side effect turns out.
type Reconciler struct {
	store sheet.Store

	// allowUnrostered switches the policy for emails not on the roster:
	// false rejects them (status not_on_roster), true appends a new
	// attendance row already marked Present.
	allowUnrostered bool
}

func NewReconciler(store sheet.Store, allowUnrostered bool) *Reconciler {
	return &Reconciler{store: store, allowUnrostered: allowUnrostered}
}

// Reconcile marks attendance for the submission's (session, email) pair, then
// appends the feedback row. The append happens even when the attendance step
// fails; in that case the returned error describes the attendance failure and
// Result.Recorded is still true. An error with Recorded=false means the
// feedback row itself could not be written.
func (r *Reconciler) Reconcile(sub Submission) (Result, error) {
	res, markErr := r.markAttendance(sub)

	if err := r.appendRow(sub); err != nil {
		return res, err
	}
	res.Recorded = true

	return res, markErr
}

// markAttendance reports not_on_roster only for a genuine roster miss; store
// and worksheet faults come back as attendance_error so the caller never
// tells a rostered respondent their email is unknown.
func (r *Reconciler) markAttendance(sub Submission) (Result, error) {
	ws, err := sheet.Open(r.store, sheet.AttendanceSheet, sheet.AttendanceHeader)
	if err != nil {
		return Result{Status: models.StatusAttendanceError}, err
	}

	header, err := ws.HeaderRow()
	if err != nil {
		return Result{Status: models.StatusAttendanceError}, err
	}
	cols, err := attendance.ResolveColumns(header)
	if err != nil {
		return Result{Status: models.StatusAttendanceError}, err
	}

	values, err := ws.AllValues()
	if err != nil {
		return Result{Status: models.StatusAttendanceError}, err
	}

	ts := time.Now().Format(attendance.TimestampFormat)

	rowNum, row, found := attendance.FindRow(values, cols, sub.SessionID, sub.Email)
	if found {
		if strings.TrimSpace(sheet.Cell(row, cols.Attendance)) != "" {
			return Result{Status: models.StatusAlreadyPresent}, nil
		}
		if err := ws.UpdateCell(rowNum, cols.Attendance, models.AttendanceMarked); err != nil {
			return Result{Status: models.StatusAttendanceError}, err
		}
		if err := ws.UpdateCell(rowNum, cols.Timestamp, ts); err != nil {
			return Result{MarkedNow: true, Status: models.StatusMarkedPresent}, err
		}
		return Result{MarkedNow: true, Status: models.StatusMarkedPresent}, nil
	}

	if !r.allowUnrostered {
		// Strict roster validation: only employees on the uploaded list
		// get attendance records.
		return Result{Status: models.StatusNotOnRoster}, nil
	}

	// Alternative policy: the respondent was not on the uploaded list, so
	// append a fresh attendance row already marked Present. Cells are
	// placed by header name to survive column reordering.
	newRow := make([]string, len(header))
	setCell := func(name, value string) {
		if col := sheet.ColumnIndex(header, name); col != 0 {
			newRow[col-1] = value
		}
	}
	setCell(sheet.ColSessionID, sub.SessionID)
	setCell(sheet.ColSessionName, sub.SessionName)
	setCell(sheet.ColSessionDate, sub.SessionDate)
	setCell(sheet.ColEmployeeName, sub.Name)
	setCell(sheet.ColEmail, sub.Email)
	setCell(sheet.ColAttendance, models.AttendanceMarked)
	setCell(sheet.ColTimestamp, ts)

	if err := ws.AppendRow(newRow); err != nil {
		return Result{Status: models.StatusAttendanceError}, err
	}
	return Result{MarkedNow: true, Status: models.StatusNewEntryMarked}, nil
}

func (r *Reconciler) appendRow(sub Submission) error {
	ws, err := sheet.Open(r.store, sheet.FeedbackSheet, sheet.FeedbackHeader)
	if err != nil {
		return err
	}

	row := make([]string, 0, 7+answerCount)
	row = append(row,
		time.Now().Format(attendance.TimestampFormat),
		sub.SessionID, sub.SessionName, sub.SessionDate,
		sub.Name, sub.Email, sub.Phone,
	)
	for i := 0; i < answerCount; i++ {
		if i < len(sub.Answers) {
			row = append(row, sub.Answers[i])
		} else {
			row = append(row, "")
		}
	}

	return ws.AppendRow(row)
}
