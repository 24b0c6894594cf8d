package service

import (
	"errors"

	"gorm.io/gorm"

	"parts_office/internal/model"
	"parts_office/internal/store"
)

// ReserveStock walks the line items in input order, takes one unit of
// each referenced product and returns the undiscounted total. The
// decrement is a single conditional UPDATE (count = count - 1 WHERE
// count > 0), so two concurrent reservations can never drive a count
// negative. Run it inside a transaction: the rollback then restores
// every unit taken before a later failure.
func ReserveStock(tx *gorm.DB, productIDs []string) (int64, error) {
	var total int64
	for _, id := range productIDs {
		if err := store.CheckID(id); err != nil {
			return 0, err
		}

		res := tx.Model(&model.Product{}).
			Where("id = ? AND count > 0", id).
			UpdateColumn("count", gorm.Expr("count - 1"))
		if res.Error != nil {
			return 0, res.Error
		}

		var prod model.Product
		if err := tx.First(&prod, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrProductNotFound
			}
			return 0, err
		}
		if res.RowsAffected == 0 {
			// The product exists but had no units left.
			return 0, &OutOfStockError{Product: prod}
		}
		total += prod.Price
	}
	return total, nil
}
