package http

import (
	"errors"
	"net/http"

	"github.com/campushq/hostelfees/internal/pkg/logger"
	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/campushq/hostelfees/internal/utils"
	"github.com/campushq/hostelfees/services/fees"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FeeHandler handles HTTP requests for fee ledger operations
type FeeHandler struct {
	feeUC fees.FeeUC
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(feeUC fees.FeeUC) *FeeHandler {
	return &FeeHandler{
		feeUC: feeUC,
	}
}

// CreateFee opens a ledger for a student at fee-cycle start (staff only)
func (h *FeeHandler) CreateFee(c echo.Context) error {
	var req models.CreateFeeRecordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rec, err := h.feeUC.CreateFeeRecord(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create fee record",
			logger.ErrorField(err),
			logger.String("student_id", req.StudentID),
		)
		return domainErrorResponse(c, err, "Failed to create fee record")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Fee record created", rec)
}

// ListFees returns every ledger with derived risk attached (staff only)
func (h *FeeHandler) ListFees(c echo.Context) error {
	records, err := h.feeUC.ListLedgers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list fee records", logger.ErrorField(err))
		return domainErrorResponse(c, err, "Failed to list fee records")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fee records retrieved", records)
}

// GetLedger returns a student's ledger; students may only read their own
func (h *FeeHandler) GetLedger(c echo.Context) error {
	studentID := c.Param("studentID")
	if studentID == "" {
		return utils.BadRequestResponse(c, "Invalid student ID")
	}

	if role, _ := c.Get("role").(string); role == "student" {
		if actor, _ := c.Get("user_id").(string); actor != studentID {
			return utils.ForbiddenResponse(c, "Students may only access their own ledger")
		}
	}

	rec, err := h.feeUC.GetLedger(c.Request().Context(), studentID)
	if err != nil {
		return domainErrorResponse(c, err, "Failed to retrieve ledger")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ledger retrieved", rec)
}

// SubmitPayment records a self-reported payment claim. Students always
// submit against their own ledger; staff may submit on a student's behalf.
func (h *FeeHandler) SubmitPayment(c echo.Context) error {
	var req models.SubmitPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if role, _ := c.Get("role").(string); role == "student" {
		actor, _ := c.Get("user_id").(string)
		req.StudentID = actor
	}

	resp, err := h.feeUC.SubmitPayment(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to submit payment",
			logger.ErrorField(err),
			logger.String("student_id", req.StudentID),
		)
		return domainErrorResponse(c, err, "Failed to submit payment")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment submitted for verification", resp)
}

// VerifyPayment applies a staff decision to a pending transaction
func (h *FeeHandler) VerifyPayment(c echo.Context) error {
	feeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fee ID")
	}

	var req models.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.feeUC.VerifyPayment(c.Request().Context(), feeID, req.ReceiptID, req.Action)
	if err != nil {
		logger.Error("Failed to verify payment",
			logger.ErrorField(err),
			logger.String("fee_id", feeID.String()),
			logger.String("receipt_id", req.ReceiptID),
		)
		return domainErrorResponse(c, err, "Failed to verify payment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment verified", resp)
}

// ApplyRebate reduces the outstanding balance and mess charges (staff only)
func (h *FeeHandler) ApplyRebate(c echo.Context) error {
	feeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fee ID")
	}

	var req models.RebateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rec, err := h.feeUC.ApplyRebate(c.Request().Context(), feeID, req.Amount)
	if err != nil {
		return domainErrorResponse(c, err, "Failed to apply rebate")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rebate applied", rec)
}

// ArchiveFee clears the transaction history of a settled ledger (staff only)
func (h *FeeHandler) ArchiveFee(c echo.Context) error {
	feeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fee ID")
	}

	archived, err := h.feeUC.ArchiveIfPaid(c.Request().Context(), feeID)
	if err != nil {
		return domainErrorResponse(c, err, "Failed to archive fee record")
	}

	if !archived {
		return utils.SuccessResponse(c, http.StatusOK, "Fee record not yet paid, nothing archived", map[string]bool{"archived": false})
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fee record archived", map[string]bool{"archived": true})
}

// GetReceipt returns a transaction for receipt rendering; an empty receipt
// id resolves to the latest transaction
func (h *FeeHandler) GetReceipt(c echo.Context) error {
	feeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fee ID")
	}

	receiptID := c.Param("receiptID")

	txn, err := h.feeUC.GetReceipt(c.Request().Context(), feeID, receiptID)
	if err != nil {
		return domainErrorResponse(c, err, "Failed to retrieve receipt")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Receipt retrieved", txn)
}

// domainErrorResponse maps domain errors onto HTTP status codes
func domainErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, fees.ErrFeeNotFound), errors.Is(err, fees.ErrReceiptNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, fees.ErrValidation), errors.Is(err, fees.ErrInvalidTransition):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, fees.ErrConflict), errors.Is(err, fees.ErrDuplicateFeeRecord):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
