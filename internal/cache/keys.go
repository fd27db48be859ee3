package cache

import "strconv"

// Cache keys identify classes of remote reads. Parameterized keys live under
// their list key as a prefix so one InvalidatePrefix covers both.
const (
	KeyProducts = "products"
	KeyCart     = "cart"
	KeyOrders   = "orders"
	KeyMyOrders = "orders/my"
	KeyProfile  = "profile"
	KeyRole     = "role"
	KeyAdmin    = "admin"
)

// ProductKey is the single-product read key.
func ProductKey(id int64) string {
	return KeyProducts + "/" + strconv.FormatInt(id, 10)
}

// OrderKey is the single-order read key.
func OrderKey(id int64) string {
	return KeyOrders + "/" + strconv.FormatInt(id, 10)
}

// UserProfileKey is the read key for a principal's profile.
func UserProfileKey(principal string) string {
	return KeyProfile + "/" + principal
}

// ForCaller scopes a caller-coupled key by principal so sessions never share
// cache entries. Anonymous callers share the "anon" scope; their
// caller-scoped reads fail at the remote service anyway.
func ForCaller(base, principal string) string {
	if principal == "" {
		principal = "anon"
	}

	return base + "/" + principal
}
