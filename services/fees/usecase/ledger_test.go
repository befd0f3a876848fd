package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/campushq/hostelfees/services/fees"
)

func TestCreateFeeRecord_Success(t *testing.T) {
	// Arrange
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	req := &models.CreateFeeRecordRequest{
		StudentID:   "student-101",
		Cycle:       "2026-08",
		HostelRent:  decimal.NewFromInt(6000),
		MessCharges: decimal.NewFromInt(4000),
		DueDate:     time.Now().Add(30 * 24 * time.Hour),
	}

	mockRepo.EXPECT().
		CreateFeeRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *models.FeeRecord) error {
			assert.True(t, rec.TotalAmount.Equal(decimal.NewFromInt(10000)))
			assert.True(t, rec.PaidAmount.IsZero())
			assert.Equal(t, models.FeeStatusUnpaid, rec.Status)
			assert.Equal(t, int64(1), rec.Version)
			return nil
		})

	// Act
	rec, err := uc.CreateFeeRecord(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "student-101", rec.StudentID)
	assert.NotEqual(t, uuid.Nil, rec.ID)
}

func TestCreateFeeRecord_ValidationErrors(t *testing.T) {
	// Arrange
	uc, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	due := time.Now().Add(30 * 24 * time.Hour)
	tests := []struct {
		name string
		req  *models.CreateFeeRecordRequest
	}{
		{name: "nil request", req: nil},
		{name: "missing student", req: &models.CreateFeeRecordRequest{Cycle: "2026-08", DueDate: due}},
		{name: "missing cycle", req: &models.CreateFeeRecordRequest{StudentID: "s1", DueDate: due}},
		{name: "negative rent", req: &models.CreateFeeRecordRequest{StudentID: "s1", Cycle: "2026-08", HostelRent: decimal.NewFromInt(-1), DueDate: due}},
		{name: "missing due date", req: &models.CreateFeeRecordRequest{StudentID: "s1", Cycle: "2026-08"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			_, err := uc.CreateFeeRecord(context.Background(), tt.req)

			// Assert
			assert.ErrorIs(t, err, fees.ErrValidation)
		})
	}
}

func TestCreateFeeRecord_DuplicateCycle(t *testing.T) {
	// Arrange
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		CreateFeeRecord(gomock.Any(), gomock.Any()).
		Return(fees.ErrDuplicateFeeRecord)

	// Act
	_, err := uc.CreateFeeRecord(context.Background(), &models.CreateFeeRecordRequest{
		StudentID:   "student-102",
		Cycle:       "2026-08",
		HostelRent:  decimal.NewFromInt(6000),
		MessCharges: decimal.NewFromInt(4000),
		DueDate:     time.Now().Add(30 * 24 * time.Hour),
	})

	// Assert
	assert.ErrorIs(t, err, fees.ErrDuplicateFeeRecord)
}

func TestApplyRebate_ReducesTotalAndMessCharges(t *testing.T) {
	// Arrange
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rec := unpaidRecord("student-103")

	mockRepo.EXPECT().GetFeeRecord(gomock.Any(), rec.ID).Return(rec, nil)
	mockRepo.EXPECT().
		UpdateFeeRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *models.FeeRecord) error {
			assert.True(t, saved.TotalAmount.Equal(decimal.NewFromInt(9000)))
			assert.True(t, saved.MessCharges.Equal(decimal.NewFromInt(3000)))
			return nil
		})

	// Act
	updated, err := uc.ApplyRebate(context.Background(), rec.ID, decimal.NewFromInt(1000))

	// Assert
	assert.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(9000)))
}

func TestApplyRebate_CanSettlePartiallyPaidRecord(t *testing.T) {
	// Arrange
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rec := unpaidRecord("student-104")
	rec.Status = models.FeeStatusPartiallyPaid
	rec.PaidAmount = decimal.NewFromInt(8000)

	mockRepo.EXPECT().GetFeeRecord(gomock.Any(), rec.ID).Return(rec, nil)
	mockRepo.EXPECT().UpdateFeeRecord(gomock.Any(), gomock.Any()).Return(nil)

	// Act: total drops to 8000, matching what was already paid
	updated, err := uc.ApplyRebate(context.Background(), rec.ID, decimal.NewFromInt(2000))

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.FeeStatusPaid, updated.Status)
}

func TestApplyRebate_KeepsPendingVerificationStatus(t *testing.T) {
	// Arrange: an open claim is awaiting a decision; the rebate reduces
	// the balance but the verification outcome still owns the status
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rec := unpaidRecord("student-112")
	rec.Status = models.FeeStatusPendingVerification
	rec.PaidAmount = decimal.NewFromInt(8000)

	mockRepo.EXPECT().GetFeeRecord(gomock.Any(), rec.ID).Return(rec, nil)
	mockRepo.EXPECT().UpdateFeeRecord(gomock.Any(), gomock.Any()).Return(nil)

	// Act: total drops to 8000, covered by what was already paid
	updated, err := uc.ApplyRebate(context.Background(), rec.ID, decimal.NewFromInt(2000))

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.FeeStatusPendingVerification, updated.Status)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(8000)))
}

func TestApplyRebate_NeverDrivesBalanceNegative(t *testing.T) {
	// Arrange
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rec := unpaidRecord("student-105")

	mockRepo.EXPECT().GetFeeRecord(gomock.Any(), rec.ID).Return(rec, nil).AnyTimes()

	// Act
	_, errMess := uc.ApplyRebate(context.Background(), rec.ID, decimal.NewFromInt(4500))
	_, errZero := uc.ApplyRebate(context.Background(), rec.ID, decimal.Zero)
	_, errNeg := uc.ApplyRebate(context.Background(), rec.ID, decimal.NewFromInt(-10))

	// Assert: exceeding the mess-charge component or non-positive amounts are rejected
	assert.ErrorIs(t, errMess, fees.ErrValidation)
	assert.ErrorIs(t, errZero, fees.ErrValidation)
	assert.ErrorIs(t, errNeg, fees.ErrValidation)
}

func TestArchiveIfPaid_ClearsTransactions(t *testing.T) {
	// Arrange
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rec := unpaidRecord("student-106")
	rec.Status = models.FeeStatusPaid
	rec.PaidAmount = rec.TotalAmount

	mockRepo.EXPECT().GetFeeRecord(gomock.Any(), rec.ID).Return(rec, nil)
	mockRepo.EXPECT().ClearTransactions(gomock.Any(), rec.ID).Return(nil)

	// Act
	archived, err := uc.ArchiveIfPaid(context.Background(), rec.ID)

	// Assert
	assert.NoError(t, err)
	assert.True(t, archived)
}

func TestArchiveIfPaid_SkipsUnsettledRecord(t *testing.T) {
	// Arrange
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rec := unpaidRecord("student-107")
	rec.Status = models.FeeStatusPartiallyPaid

	mockRepo.EXPECT().GetFeeRecord(gomock.Any(), rec.ID).Return(rec, nil)

	// Act
	archived, err := uc.ArchiveIfPaid(context.Background(), rec.ID)

	// Assert: no error, no clearing
	assert.NoError(t, err)
	assert.False(t, archived)
}

func TestGetLedger_AttachesRisk(t *testing.T) {
	// Arrange
	uc, mockRepo, mockGW, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rec := unpaidRecord("student-108")
	rec.DueDate = time.Now().Add(30 * 24 * time.Hour)

	mockRepo.EXPECT().GetFeeRecordByStudent(gomock.Any(), "student-108").Return(rec, nil)
	mockRepo.EXPECT().GetCachedRisk(gomock.Any(), rec.ID).Return(models.RiskLevel(""), nil)
	mockGW.EXPECT().GetAttendanceRate(gomock.Any(), "student-108").Return(90.0, nil)
	mockRepo.EXPECT().CacheRisk(gomock.Any(), rec.ID, gomock.Any(), gomock.Any()).Return(nil)

	// Act
	got, err := uc.GetLedger(context.Background(), "student-108")

	// Assert: unpaid record far from deadline with good attendance is medium
	assert.NoError(t, err)
	assert.Equal(t, models.RiskMedium, got.PaymentRisk)
}

func TestGetLedger_UsesCachedRisk(t *testing.T) {
	// Arrange
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rec := unpaidRecord("student-109")

	mockRepo.EXPECT().GetFeeRecordByStudent(gomock.Any(), "student-109").Return(rec, nil)
	mockRepo.EXPECT().GetCachedRisk(gomock.Any(), rec.ID).Return(models.RiskHigh, nil)

	// Act: no attendance lookup, no recompute
	got, err := uc.GetLedger(context.Background(), "student-109")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.RiskHigh, got.PaymentRisk)
}

func TestListLedgers_AttachesRiskToEveryRecord(t *testing.T) {
	// Arrange
	uc, mockRepo, mockGW, ctrl := newTestUC(t)
	defer ctrl.Finish()

	recA := unpaidRecord("student-110")
	recA.DueDate = time.Now().Add(30 * 24 * time.Hour)
	recB := unpaidRecord("student-111")
	recB.DueDate = time.Now().Add(30 * 24 * time.Hour)

	mockRepo.EXPECT().ListFeeRecords(gomock.Any()).Return([]*models.FeeRecord{recA, recB}, nil)
	mockRepo.EXPECT().GetCachedRisk(gomock.Any(), gomock.Any()).Return(models.RiskLevel(""), nil).Times(2)
	mockGW.EXPECT().GetAttendanceRate(gomock.Any(), gomock.Any()).Return(50.0, nil).Times(2)
	mockRepo.EXPECT().CacheRisk(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Act
	records, err := uc.ListLedgers(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, models.RiskHigh, rec.PaymentRisk)
	}
}
