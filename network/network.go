// Package network implements AtmosphericNetwork: a thin façade over a
// gas.Mixture with a device-membership set, indexed by opaque DeviceId
// rather than by pointer so that networks and devices can refer to each
// other without a reference cycle (see the world package for the tables
// that resolve those ids).
package network

import (
	"fmt"

	"github.com/ic10vm/simulator/gas"
)

// DeviceId is an opaque, world-assigned device identity.
type DeviceId uint32

// Network owns exactly one gas.Mixture and the set of devices attached to
// it.
type Network struct {
	mixture *gas.Mixture
	devices map[DeviceId]struct{}
}

// New creates a network with the given volume in liters. Per the
// AtmosphericNetwork contract, volume must be strictly positive; New
// panics otherwise, since a zero- or negative-volume network is a
// construction-time configuration error, not a runtime condition to
// saturate through.
func New(volumeL float64) *Network {
	if volumeL <= 0 {
		panic(fmt.Sprintf("network: volume must be > 0, got %v", volumeL))
	}
	return &Network{
		mixture: gas.NewMixture(volumeL),
		devices: make(map[DeviceId]struct{}),
	}
}

// Mixture returns the underlying gas mixture for direct algebra access.
func (n *Network) Mixture() *gas.Mixture { return n.mixture }

// AddDevice attaches a device id to this network's membership set.
func (n *Network) AddDevice(id DeviceId) {
	n.devices[id] = struct{}{}
}

// RemoveDevice detaches a device id from this network.
func (n *Network) RemoveDevice(id DeviceId) {
	delete(n.devices, id)
}

// HasDevice reports whether id is a member of this network.
func (n *Network) HasDevice(id DeviceId) bool {
	_, ok := n.devices[id]
	return ok
}

// Devices returns the member device ids in no particular order.
func (n *Network) Devices() []DeviceId {
	out := make([]DeviceId, 0, len(n.devices))
	for id := range n.devices {
		out = append(out, id)
	}
	return out
}

// MergeNetwork transfers other's device membership into n, merges the gas
// mixture, and clears other. Returns the transferred device ids.
func (n *Network) MergeNetwork(other *Network) []DeviceId {
	transferred := make([]DeviceId, 0, len(other.devices))
	for id := range other.devices {
		n.devices[id] = struct{}{}
		transferred = append(transferred, id)
		delete(other.devices, id)
	}
	n.mixture.Merge(other.mixture)
	other.mixture.Clear()
	return transferred
}

// TransferTo moves n moles from this network's mixture to other's, via a
// detached aliquot.
func (n *Network) TransferTo(other *Network, moles float64) {
	aliquot := n.mixture.RemoveMoles(moles)
	other.mixture.MergeAliquot(aliquot)
}

// EqualizeWith delegates to the underlying mixtures' two-step
// equalization.
func (n *Network) EqualizeWith(other *Network) {
	n.mixture.EqualizeWith(other.mixture)
}
