/*
Package asset implements the asset service the settlement ledger issues
value through.

Every asset is identified by its descriptor: the XDR encoding of the
asset code and the issuer. Deploying a descriptor creates the asset under a
deterministic contract address, deploying the same descriptor again
returns the same address. The issuer becomes the asset admin.

The service keeps a balance and an authorization flag per holder. The
ledger talks to it through the Controller and Deployer interfaces only;
holders can move their balances with TransferMsg and the asset admin can
freeze holders or hand the asset over to another admin.
*/
package asset
