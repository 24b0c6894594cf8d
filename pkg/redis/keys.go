package redis

import "fmt"

// StockKey names the cached available count of one product.
func StockKey(productID string) string {
	return fmt.Sprintf("parts_office:stock:%s", productID)
}

// RateLimitActorKey names the sliding window of one authenticated admin.
func RateLimitActorKey(adminID string) string {
	return fmt.Sprintf("parts_office:rate_limit:admin:%s", adminID)
}

// RateLimitIPKey names the sliding window of one client address, used
// when no actor is known yet.
func RateLimitIPKey(ip string) string {
	return fmt.Sprintf("parts_office:rate_limit:ip:%s", ip)
}
