// Package kernel provides core domain primitives shared by the order model.
//
// The package includes:
//   - ID: an opaque, non-blank identifier for orders, shoppers, deliverers and products
//   - Money: a non-negative decimal currency amount with exact arithmetic
//
// Both are immutable value objects; their zero values are invalid and fail Validate,
// so they must be created through the constructors in this package.
package kernel
