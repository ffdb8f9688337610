// Package valueobject defines immutable domain value types.
package valueobject

import (
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// FieldMode distinguishes the create form from editing an existing execution.
type FieldMode string

const (
	FieldModeCreate FieldMode = "create"
	FieldModeEdit   FieldMode = "edit"
)

// Execution field names as exposed at the API boundary.
const (
	FieldScheduledDate     = "scheduled_date"
	FieldExecutionDate     = "execution_date"
	FieldStatus            = "status"
	FieldQuantityPurchased = "quantity_purchased"
	FieldQuantityUnit      = "quantity_unit"
	FieldActualCost        = "actual_cost"
	FieldNotes             = "notes"
	FieldRefundAmount      = "refund_amount"
	FieldRefundDate        = "refund_date"
	FieldRefundReason      = "refund_reason"
	FieldRefundEvidenceURL = "refund_evidence_url"
)

// FieldVisibility describes how one field behaves for a (mode, status) pair.
type FieldVisibility struct {
	Visible  bool
	Editable bool
}

// FieldConfig maps execution field names to their visibility for a given
// (mode, status) pair. It is a fixed table, not user-configurable.
type FieldConfig map[string]FieldVisibility

// Editable reports whether the named field may be written.
func (c FieldConfig) Editable(field string) bool {
	return c[field].Editable
}

var (
	hidden   = FieldVisibility{}
	readOnly = FieldVisibility{Visible: true}
	editable = FieldVisibility{Visible: true, Editable: true}
)

// ExecutionFieldConfig produces the field-visibility table for the given
// mode and status. Every lifecycle status is handled explicitly so adding a
// status without extending the table is a compile-visible gap in review, and
// unknown statuses fail rather than defaulting.
func ExecutionFieldConfig(mode FieldMode, status entity.ExecutionStatus) (FieldConfig, error) {
	if mode == FieldModeCreate {
		// Creation always starts in TODO: schedule and notes only.
		return FieldConfig{
			FieldScheduledDate:     editable,
			FieldExecutionDate:     hidden,
			FieldStatus:            readOnly,
			FieldQuantityPurchased: hidden,
			FieldQuantityUnit:      hidden,
			FieldActualCost:        hidden,
			FieldNotes:             editable,
			FieldRefundAmount:      hidden,
			FieldRefundDate:        hidden,
			FieldRefundReason:      hidden,
			FieldRefundEvidenceURL: hidden,
		}, nil
	}

	switch status {
	case entity.ExecutionStatusTodo:
		return FieldConfig{
			FieldScheduledDate:     editable,
			FieldExecutionDate:     hidden,
			FieldStatus:            editable,
			FieldQuantityPurchased: hidden,
			FieldQuantityUnit:      hidden,
			FieldActualCost:        hidden,
			FieldNotes:             editable,
			FieldRefundAmount:      hidden,
			FieldRefundDate:        hidden,
			FieldRefundReason:      hidden,
			FieldRefundEvidenceURL: hidden,
		}, nil
	case entity.ExecutionStatusDone:
		// Once DONE, only cost and notes stay writable; quantity becomes
		// visible but frozen.
		return FieldConfig{
			FieldScheduledDate:     readOnly,
			FieldExecutionDate:     readOnly,
			FieldStatus:            editable,
			FieldQuantityPurchased: readOnly,
			FieldQuantityUnit:      readOnly,
			FieldActualCost:        editable,
			FieldNotes:             editable,
			FieldRefundAmount:      hidden,
			FieldRefundDate:        hidden,
			FieldRefundReason:      hidden,
			FieldRefundEvidenceURL: hidden,
		}, nil
	case entity.ExecutionStatusCancelled:
		return FieldConfig{
			FieldScheduledDate:     readOnly,
			FieldExecutionDate:     hidden,
			FieldStatus:            readOnly,
			FieldQuantityPurchased: hidden,
			FieldQuantityUnit:      hidden,
			FieldActualCost:        hidden,
			FieldNotes:             readOnly,
			FieldRefundAmount:      hidden,
			FieldRefundDate:        hidden,
			FieldRefundReason:      hidden,
			FieldRefundEvidenceURL: hidden,
		}, nil
	case entity.ExecutionStatusRefunded, entity.ExecutionStatusPartiallyRefunded:
		// Refunded executions freeze everything except the refund amount.
		return FieldConfig{
			FieldScheduledDate:     readOnly,
			FieldExecutionDate:     readOnly,
			FieldStatus:            readOnly,
			FieldQuantityPurchased: readOnly,
			FieldQuantityUnit:      readOnly,
			FieldActualCost:        readOnly,
			FieldNotes:             readOnly,
			FieldRefundAmount:      editable,
			FieldRefundDate:        readOnly,
			FieldRefundReason:      readOnly,
			FieldRefundEvidenceURL: readOnly,
		}, nil
	default:
		return nil, domainerror.ErrInvalidExecutionStatus
	}
}
