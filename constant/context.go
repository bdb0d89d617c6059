package constant

type ContextKey string

// SellerIDKey carries the authenticated seller id through the request context.
const SellerIDKey ContextKey = "seller_id"
