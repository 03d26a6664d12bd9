// Package group provides the Group aggregate: orders that travel together,
// either as a lane groupage bucket for one ship date, a consolidation-key
// group, a direct shipment or a manual remix.
//
// Totals (volume, weight, pallets, loading metres, member count) are always
// recomputed from the full member list. A group does not store the trucks
// carrying it; that relation is derived from its orders, because one group
// may be split across several trucks.
package group
