package service

// ApplyDiscount returns total minus discount percent of it. Discounts
// outside [0, 100] are rejected: a negative value makes no sense and
// anything above 100 would produce a negative price.
func ApplyDiscount(total, discount int64) (int64, error) {
	if discount < 0 || discount > 100 {
		return 0, ErrInvalidDiscount
	}
	if discount == 0 {
		return total, nil
	}
	return total - total*discount/100, nil
}
