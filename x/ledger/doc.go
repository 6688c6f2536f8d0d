/*
Package ledger moves value between payers, beneficiaries and the payout
asset.

A payment mints the order asset to the payer. A transfer claws the order
asset back from the payer and keeps the request pending until the admin
approves it, paying the beneficiary in the payout asset, or rejects it,
returning the order asset to the payer. A burn claws the payout asset back
from the payer and keeps the request pending until the admin approves it,
writing it to the burn log, or rejects it, returning the payout asset.

Fees are routed to the commission account when a payment is made and when
a transfer or a burn is approved.
*/
package ledger
