package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SwapRepository defines persistence operations for swap requests.
type SwapRepository interface {
	Create(ctx context.Context, request *models.SwapRequest) error
	GetByID(ctx context.Context, id uint) (*models.SwapRequest, error)
	ListIncoming(ctx context.Context, receiverID uint) ([]models.IncomingSwapRow, error)
	UpdateStatusFromPending(ctx context.Context, id uint, status models.SwapRequestStatus) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type swapRepository struct {
	db *gorm.DB
}

// NewSwapRepository returns a new SwapRepository implementation.
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

func (r *swapRepository) Create(ctx context.Context, request *models.SwapRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *swapRepository) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	var request models.SwapRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Swap request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

// ListIncoming returns the receiver's requests joined with sender names,
// ordered by id (insertion order).
func (r *swapRepository) ListIncoming(ctx context.Context, receiverID uint) ([]models.IncomingSwapRow, error) {
	var rows []models.IncomingSwapRow
	if err := r.db.WithContext(ctx).
		Table("swap_requests").
		Select("swap_requests.id AS request_id, swap_requests.sender_id, users.name AS sender_name, "+
			"swap_requests.skill, swap_requests.status").
		Joins("JOIN users ON users.id = swap_requests.sender_id").
		Where("swap_requests.receiver_id = ?", receiverID).
		Order("swap_requests.id").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}

// UpdateStatusFromPending transitions a request out of pending in a single
// guarded statement. Returns false when the row was not pending (or gone), so
// a request cannot be re-accepted after rejection.
func (r *swapRepository) UpdateStatusFromPending(ctx context.Context, id uint, status models.SwapRequestStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, models.SwapStatusPending).
		Update("status", status)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the request row permanently. Deletion is a hard removal, not
// a retained status.
func (r *swapRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.SwapRequest{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
