// Package world implements the single-threaded cooperative tick driver
// (§2, §5): it owns the stable DeviceId/NetworkId tables that break the
// devices<->networks reference cycle (§9 "Cyclic references"), wires each
// chip's device.Store against those tables, and runs one logical tick as
// chip execution, then device updates, then network equalization.
package world

import (
	"log"
	"sort"

	"github.com/ic10vm/simulator/chip"
	"github.com/ic10vm/simulator/device"
	"github.com/ic10vm/simulator/network"
)

// DeviceId is the world-stable device identity, shared with the network
// package's membership-set key so devices and networks can refer to each
// other by id instead of by pointer.
type DeviceId = network.DeviceId

// NetworkId is a world-stable network identity.
type NetworkId uint32

// networkPair is an unordered pair of networks kept equalized after every
// device-update phase, e.g. two sections joined by an open valve.
type networkPair struct {
	a, b NetworkId
}

// chipEntry is one registered chip plus the id that orders it among the
// world's chips; its pin wiring lives in the device.Store it was built
// against.
type chipEntry struct {
	id DeviceId
	c  *chip.Chip
}

// World owns every device, network and chip in one simulation and drives
// them through the tick state machine described in §5.
type World struct {
	devices  map[DeviceId]device.Device
	networks map[NetworkId]*network.Network
	chips    []*chipEntry
	coupled  []networkPair

	Logger *log.Logger
}

// New creates an empty World.
func New() *World {
	return &World{
		devices:  make(map[DeviceId]device.Device),
		networks: make(map[NetworkId]*network.Network),
		Logger:   log.Default(),
	}
}

// AddDevice registers d under id, used by both pin-addressed and
// id-addressed (ld/sd) and batch (lb/lbn/...) chip I/O.
func (w *World) AddDevice(id DeviceId, d device.Device) {
	w.devices[id] = d
}

// AddNetwork registers n under id.
func (w *World) AddNetwork(id NetworkId, n *network.Network) {
	w.networks[id] = n
}

// Network returns the network registered under id.
func (w *World) Network(id NetworkId) (*network.Network, bool) {
	n, ok := w.networks[id]
	return n, ok
}

// Device returns the device registered under id.
func (w *World) Device(id DeviceId) (device.Device, bool) {
	d, ok := w.devices[id]
	return d, ok
}

// Couple marks two networks to be equalized after every device-update
// phase, modeling an always-open connection (e.g. a ruptureless pipe
// joint) between them.
func (w *World) Couple(a, b NetworkId) {
	w.coupled = append(w.coupled, networkPair{a, b})
}

// AddChip registers a chip under id, built against a device.Store obtained
// from NewStore. Chips execute in ascending id order each tick (§5
// "Ordering guarantees").
func (w *World) AddChip(id DeviceId, c *chip.Chip) {
	w.chips = append(w.chips, &chipEntry{id: id, c: c})
	sort.Slice(w.chips, func(i, j int) bool { return w.chips[i].id < w.chips[j].id })
}

// Chip returns the chip registered under id.
func (w *World) Chip(id DeviceId) (*chip.Chip, bool) {
	for _, entry := range w.chips {
		if entry.id == id {
			return entry.c, true
		}
	}
	return nil, false
}

// NewStore builds the device.Store a chip with the given pin wiring should
// be constructed against, resolving pin/id/batch lookups through this
// World's tables.
func (w *World) NewStore(pins map[int]DeviceId) device.Store {
	return &worldStore{world: w, pins: pins}
}

// Tick advances the world by one logical tick (§5): every chip runs up to
// its instruction budget, then every updatable device runs its update,
// then every coupled network pair equalizes. A chip runtime error is
// logged and isolated; the tick always completes.
func (w *World) Tick() {
	for _, entry := range w.chips {
		if err := entry.c.Tick(); err != nil && w.Logger != nil {
			w.Logger.Printf("chip %v: %v", entry.id, err)
		}
	}

	for _, id := range w.sortedDeviceIds() {
		if u, ok := w.devices[id].(interface{ Update() }); ok {
			u.Update()
		}
	}

	for _, pair := range w.coupled {
		a, aok := w.networks[pair.a]
		b, bok := w.networks[pair.b]
		if aok && bok {
			a.EqualizeWith(b)
		}
	}
}

func (w *World) sortedDeviceIds() []DeviceId {
	ids := make([]DeviceId, 0, len(w.devices))
	for id := range w.devices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
