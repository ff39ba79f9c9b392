// Package order provides the Order aggregate and the order lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding identity, items, totals, status and deliverer
//   - Item: a product line with a price snapshot and exact subtotal
//   - Status: the lifecycle states and the table of legal edges
//   - Actor: the shopper or deliverer side that owns each edge
//   - StatusChanged: the domain event recorded for every status change
//
// Key business rules:
//   - Orders start Pending with no deliverer; Delivered and Cancelled are terminal
//   - Pending → Confirmed → Preparing → ReadyForPickup → OutForDelivery → Delivered
//     are deliverer actions; Pending → Cancelled is the only shopper action
//   - ReadyForPickup → OutForDelivery happens only through AssignDeliverer, which sets
//     the deliverer exactly once
package order
