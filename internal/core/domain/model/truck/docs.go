// Package truck provides the Truck aggregate and its vehicle presets.
//
// Capacity is linear loading length (LDM). The presets are STANDARD 13.6,
// COMBI_1 14.9, COMBI_2 15.64 and LZV 21.05 metres; CUSTOM trucks carry a
// user-defined positive capacity. A truck's load is always recomputed from
// the orders assigned to it and may never exceed its capacity.
package truck
