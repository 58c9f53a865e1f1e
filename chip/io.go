package chip

import (
	"math"

	"github.com/ic10vm/simulator/device"
	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/simerr"
)

var posInf = math.Inf(1)
var negInf = math.Inf(-1)

func (c *Chip) deviceByIDOperand(op isa.Operand) (device.Device, error) {
	v, err := c.readValue(op)
	if err != nil {
		return nil, err
	}
	d, ok := c.store.DeviceByID(uint32(v))
	if !ok {
		return nil, simerr.ErrBadDevicePin
	}
	return d, nil
}

func (c *Chip) logicTypeOperand(op isa.Operand) (isa.LogicType, error) {
	v, err := c.readValue(op)
	if err != nil {
		return 0, err
	}
	return isa.LogicType(int(v)), nil
}

func (c *Chip) batchModeOperand(op isa.Operand) (isa.BatchMode, error) {
	v, err := c.readValue(op)
	if err != nil {
		return 0, err
	}
	return isa.BatchMode(int(v)), nil
}

// execLoad implements l: dest, devicePin, logicType.
func (c *Chip) execLoad(ins isa.Instruction) error {
	d, err := c.resolveDevice(ins.Args[1])
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[2])
	if err != nil {
		return err
	}
	v, err := d.ReadProperty(lt)
	if err != nil {
		return err
	}
	return c.writeValue(ins.Args[0], v)
}

// execStore implements s: devicePin, logicType, value.
func (c *Chip) execStore(ins isa.Instruction) error {
	d, err := c.resolveDevice(ins.Args[0])
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[1])
	if err != nil {
		return err
	}
	v, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	return d.WriteProperty(lt, v)
}

// execLoadSlot implements ls: dest, devicePin, slotIndex, logicType.
func (c *Chip) execLoadSlot(ins isa.Instruction) error {
	d, err := c.resolveDevice(ins.Args[1])
	if err != nil {
		return err
	}
	idx, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[3])
	if err != nil {
		return err
	}
	v, err := d.ReadSlotProperty(int(idx), lt)
	if err != nil {
		return err
	}
	return c.writeValue(ins.Args[0], v)
}

// execStoreSlot implements ss: devicePin, slotIndex, logicType, value.
func (c *Chip) execStoreSlot(ins isa.Instruction) error {
	d, err := c.resolveDevice(ins.Args[0])
	if err != nil {
		return err
	}
	idx, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[2])
	if err != nil {
		return err
	}
	v, err := c.readArg(ins, 3)
	if err != nil {
		return err
	}
	return d.WriteSlotProperty(int(idx), lt, v)
}

// execLoadReagent implements lr: dest, devicePin, reagentMode, reagentHash.
func (c *Chip) execLoadReagent(ins isa.Instruction) error {
	d, err := c.resolveDevice(ins.Args[1])
	if err != nil {
		return err
	}
	mode, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	hash, err := c.readArg(ins, 3)
	if err != nil {
		return err
	}
	return c.writeValue(ins.Args[0], d.ReadReagent(mode, hash))
}

// execLoadByID implements ld: dest, deviceId, logicType.
func (c *Chip) execLoadByID(ins isa.Instruction) error {
	d, err := c.deviceByIDOperand(ins.Args[1])
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[2])
	if err != nil {
		return err
	}
	v, err := d.ReadProperty(lt)
	if err != nil {
		return err
	}
	return c.writeValue(ins.Args[0], v)
}

// execStoreByID implements sd: deviceId, logicType, value.
func (c *Chip) execStoreByID(ins isa.Instruction) error {
	d, err := c.deviceByIDOperand(ins.Args[0])
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[1])
	if err != nil {
		return err
	}
	v, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	return d.WriteProperty(lt, v)
}

// execLoadBatch implements lb: dest, prefabHash, logicType, batchMode.
func (c *Chip) execLoadBatch(ins isa.Instruction) error {
	hash, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[2])
	if err != nil {
		return err
	}
	mode, err := c.batchModeOperand(ins.Args[3])
	if err != nil {
		return err
	}
	devs := c.store.DevicesWithPrefabHash(uint32(hash))
	return c.writeValue(ins.Args[0], device.Aggregate(mode, devs, lt))
}

// execStoreBatch implements sb: prefabHash, logicType, value.
func (c *Chip) execStoreBatch(ins isa.Instruction) error {
	hash, err := c.readArg(ins, 0)
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[1])
	if err != nil {
		return err
	}
	v, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	for _, d := range c.store.DevicesWithPrefabHash(uint32(hash)) {
		_ = d.WriteProperty(lt, v)
	}
	return nil
}

// execLoadBatchNamed implements lbn: dest, prefabHash, nameHash, logicType, batchMode.
func (c *Chip) execLoadBatchNamed(ins isa.Instruction) error {
	prefabHash, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	nameHash, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[3])
	if err != nil {
		return err
	}
	mode, err := c.batchModeOperand(ins.Args[4])
	if err != nil {
		return err
	}
	devs := c.store.DevicesWithPrefabAndNameHash(uint32(prefabHash), uint32(nameHash))
	return c.writeValue(ins.Args[0], device.Aggregate(mode, devs, lt))
}

// execStoreBatchNamed implements sbn: prefabHash, nameHash, logicType, value.
func (c *Chip) execStoreBatchNamed(ins isa.Instruction) error {
	prefabHash, err := c.readArg(ins, 0)
	if err != nil {
		return err
	}
	nameHash, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[2])
	if err != nil {
		return err
	}
	v, err := c.readArg(ins, 3)
	if err != nil {
		return err
	}
	for _, d := range c.store.DevicesWithPrefabAndNameHash(uint32(prefabHash), uint32(nameHash)) {
		_ = d.WriteProperty(lt, v)
	}
	return nil
}

// execLoadBatchSlot implements lbs: dest, prefabHash, slotIndex, logicType, batchMode.
func (c *Chip) execLoadBatchSlot(ins isa.Instruction) error {
	prefabHash, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	slot, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[3])
	if err != nil {
		return err
	}
	mode, err := c.batchModeOperand(ins.Args[4])
	if err != nil {
		return err
	}
	devs := c.store.DevicesWithPrefabHash(uint32(prefabHash))
	var sum, count float64
	min, max := posInf, negInf
	for _, d := range devs {
		v, err := d.ReadSlotProperty(int(slot), lt)
		if err != nil {
			continue
		}
		sum += v
		count++
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	var result float64
	switch mode {
	case isa.BatchModeSum:
		result = sum
	case isa.BatchModeAverage:
		if count > 0 {
			result = sum / count
		}
	case isa.BatchModeMinimum:
		result = min
	case isa.BatchModeMaximum:
		result = max
	}
	return c.writeValue(ins.Args[0], result)
}

// execStoreBatchSlot implements sbs: prefabHash, slotIndex, logicType, value.
func (c *Chip) execStoreBatchSlot(ins isa.Instruction) error {
	prefabHash, err := c.readArg(ins, 0)
	if err != nil {
		return err
	}
	slot, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[2])
	if err != nil {
		return err
	}
	v, err := c.readArg(ins, 3)
	if err != nil {
		return err
	}
	for _, d := range c.store.DevicesWithPrefabHash(uint32(prefabHash)) {
		_ = d.WriteSlotProperty(int(slot), lt, v)
	}
	return nil
}

// execLoadBatchNamedSlot implements lbns: dest, prefabHash, nameHash,
// slotIndex, logicType, batchMode.
func (c *Chip) execLoadBatchNamedSlot(ins isa.Instruction) error {
	prefabHash, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	nameHash, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	slot, err := c.readArg(ins, 3)
	if err != nil {
		return err
	}
	lt, err := c.logicTypeOperand(ins.Args[4])
	if err != nil {
		return err
	}
	mode, err := c.batchModeOperand(ins.Args[5])
	if err != nil {
		return err
	}
	devs := c.store.DevicesWithPrefabAndNameHash(uint32(prefabHash), uint32(nameHash))
	var sum, count float64
	min, max := posInf, negInf
	for _, d := range devs {
		v, err := d.ReadSlotProperty(int(slot), lt)
		if err != nil {
			continue
		}
		sum += v
		count++
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	var result float64
	switch mode {
	case isa.BatchModeSum:
		result = sum
	case isa.BatchModeAverage:
		if count > 0 {
			result = sum / count
		}
	case isa.BatchModeMinimum:
		result = min
	case isa.BatchModeMaximum:
		result = max
	}
	return c.writeValue(ins.Args[0], result)
}

// execGet implements get: dest, devicePin, index — the per-index
// addressable memory slot a device exposes under LogicTypeSetting.
func (c *Chip) execGet(ins isa.Instruction) error {
	d, err := c.resolveDevice(ins.Args[1])
	if err != nil {
		return err
	}
	idx, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	v, err := d.ReadSlotProperty(int(idx), isa.LogicTypeSetting)
	if err != nil {
		return err
	}
	return c.writeValue(ins.Args[0], v)
}

// execPut implements put: devicePin, index, value.
func (c *Chip) execPut(ins isa.Instruction) error {
	d, err := c.resolveDevice(ins.Args[0])
	if err != nil {
		return err
	}
	idx, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	v, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	return d.WriteSlotProperty(int(idx), isa.LogicTypeSetting, v)
}

// execGetByID implements getd: dest, deviceId, index.
func (c *Chip) execGetByID(ins isa.Instruction) error {
	d, err := c.deviceByIDOperand(ins.Args[1])
	if err != nil {
		return err
	}
	idx, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	v, err := d.ReadSlotProperty(int(idx), isa.LogicTypeSetting)
	if err != nil {
		return err
	}
	return c.writeValue(ins.Args[0], v)
}

// execPutByID implements putd: deviceId, index, value.
func (c *Chip) execPutByID(ins isa.Instruction) error {
	d, err := c.deviceByIDOperand(ins.Args[0])
	if err != nil {
		return err
	}
	idx, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	v, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	return d.WriteSlotProperty(int(idx), isa.LogicTypeSetting, v)
}

// execClear implements clr: devicePin — validates the device is present;
// reagent-mix clearing has no effect on the atmospheric device set this
// module models.
func (c *Chip) execClear(ins isa.Instruction) error {
	_, err := c.resolveDevice(ins.Args[0])
	return err
}

// execClearByID implements clrd: deviceId.
func (c *Chip) execClearByID(ins isa.Instruction) error {
	_, err := c.deviceByIDOperand(ins.Args[0])
	return err
}

// execReadReagentMap implements rmap: dest, devicePin, reagentHash.
func (c *Chip) execReadReagentMap(ins isa.Instruction) error {
	d, err := c.resolveDevice(ins.Args[1])
	if err != nil {
		return err
	}
	hash, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	return c.writeValue(ins.Args[0], d.ReadReagent(0, hash))
}
