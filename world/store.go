package world

import (
	"github.com/ic10vm/simulator/device"
)

// worldStore is the device.Store a chip dispatches its device I/O family
// through: pin lookups resolve against this chip's own wiring, id/batch
// lookups resolve against the whole World.
type worldStore struct {
	world *World
	pins  map[int]DeviceId
}

func (s *worldStore) DeviceAt(pin int) (device.Device, bool) {
	id, ok := s.pins[pin]
	if !ok {
		return nil, false
	}
	return s.world.Device(id)
}

func (s *worldStore) DeviceByID(id uint32) (device.Device, bool) {
	return s.world.Device(DeviceId(id))
}

func (s *worldStore) DevicesWithPrefabHash(hash uint32) []device.Device {
	return s.world.devicesWhere(func(d device.Device) bool { return d.PrefabHash() == hash })
}

func (s *worldStore) DevicesWithPrefabAndNameHash(prefabHash, nameHash uint32) []device.Device {
	return s.world.devicesWhere(func(d device.Device) bool {
		return d.PrefabHash() == prefabHash && d.NameHash() == nameHash
	})
}

// devicesWhere returns every device satisfying pred, in ascending DeviceId
// order for deterministic batch aggregation (§8 determinism goal).
func (w *World) devicesWhere(pred func(device.Device) bool) []device.Device {
	ids := w.sortedDeviceIds()
	out := make([]device.Device, 0, len(ids))
	for _, id := range ids {
		if d := w.devices[id]; pred(d) {
			out = append(out, d)
		}
	}
	return out
}
