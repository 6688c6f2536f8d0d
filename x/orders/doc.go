/*
Package orders issues one asset per order.

Deploying an order allocates the next asset code, deploys the asset through
the asset service and records the order together with an accounting record
of the asset. Deploying an order twice returns the first result without
side effects.

The package also keeps the payout asset: the single asset approved
transfers are paid out in.
*/
package orders
