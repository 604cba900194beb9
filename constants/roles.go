package constants

// Application roles
const (
	RoleAdmin    = "admin"
	RoleCompany  = "company"
	RoleCustomer = "customer"

	// Special role: any authenticated user
	RoleAny = "any"
)

// Pagination defaults per area
const (
	AdminUserPageSize    = 10
	CompanyHotelPageSize = 8
)

// Currency code used for checkout sessions
const CheckoutCurrency = "egp"
