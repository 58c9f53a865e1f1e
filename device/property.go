// Package device implements the LogicType property registry shared by
// every concrete device kind, plus the atmospheric devices themselves
// (Filtration, AirConditioner, gas/liquid pipes).
package device

import (
	"fmt"

	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/simerr"
)

// PropertyDescriptor binds one LogicType to typed accessor closures over a
// concrete device type T. Readable/Writable gate which of Read/Write may
// be nil.
type PropertyDescriptor[T any] struct {
	LogicType isa.LogicType
	Readable  bool
	Writable  bool
	Read      func(*T) float64
	Write     func(*T, float64)
}

// ReadOnly builds a readable-only descriptor.
func ReadOnly[T any](lt isa.LogicType, read func(*T) float64) PropertyDescriptor[T] {
	return PropertyDescriptor[T]{LogicType: lt, Readable: true, Read: read}
}

// ReadWrite builds a readable-and-writable descriptor with no clamping.
func ReadWrite[T any](lt isa.LogicType, read func(*T) float64, write func(*T, float64)) PropertyDescriptor[T] {
	return PropertyDescriptor[T]{LogicType: lt, Readable: true, Writable: true, Read: read, Write: write}
}

// ReadWriteClamped builds a readable-and-writable descriptor whose writes
// are clamped to [min, max].
func ReadWriteClamped[T any](lt isa.LogicType, min, max float64, read func(*T) float64, set func(*T, float64)) PropertyDescriptor[T] {
	return PropertyDescriptor[T]{
		LogicType: lt, Readable: true, Writable: true,
		Read: read,
		Write: func(d *T, v float64) {
			if v < min {
				v = min
			}
			if v > max {
				v = max
			}
			set(d, v)
		},
	}
}

// ReadWriteBool builds a readable-and-writable boolean-coded descriptor:
// writes below 1 clamp to 0, otherwise to 1.
func ReadWriteBool[T any](lt isa.LogicType, read func(*T) float64, set func(*T, float64)) PropertyDescriptor[T] {
	return PropertyDescriptor[T]{
		LogicType: lt, Readable: true, Writable: true,
		Read: read,
		Write: func(d *T, v float64) {
			if v < 1 {
				v = 0
			} else {
				v = 1
			}
			set(d, v)
		},
	}
}

// PropertyRegistry dispatches LogicType reads/writes for one concrete
// device type T. Construction panics on a duplicate LogicType, matching
// the reference implementation's "uniqueness invariant checked at
// construction".
type PropertyRegistry[T any] struct {
	index       map[isa.LogicType]int
	descriptors []PropertyDescriptor[T]
}

// NewPropertyRegistry builds a registry from a static descriptor list.
func NewPropertyRegistry[T any](descs []PropertyDescriptor[T]) *PropertyRegistry[T] {
	r := &PropertyRegistry[T]{index: make(map[isa.LogicType]int, len(descs)), descriptors: descs}
	for i, d := range descs {
		if _, found := r.index[d.LogicType]; found {
			panic(fmt.Sprintf("device: duplicate LogicType %v registered twice", d.LogicType))
		}
		r.index[d.LogicType] = i
	}
	return r
}

// Read returns the value of lt on dev, or an error if lt is unknown or
// not readable.
func (r *PropertyRegistry[T]) Read(dev *T, lt isa.LogicType) (float64, error) {
	i, ok := r.index[lt]
	if !ok {
		return 0, simerr.ErrUnknownProperty
	}
	d := r.descriptors[i]
	if !d.Readable {
		return 0, simerr.ErrPropertyNotReadable
	}
	return d.Read(dev), nil
}

// Write sets the value of lt on dev, or returns an error if lt is unknown
// or not writable.
func (r *PropertyRegistry[T]) Write(dev *T, lt isa.LogicType, v float64) error {
	i, ok := r.index[lt]
	if !ok {
		return simerr.ErrUnknownProperty
	}
	d := r.descriptors[i]
	if !d.Writable {
		return simerr.ErrPropertyNotWritable
	}
	d.Write(dev, v)
	return nil
}

// CanRead reports whether lt is both known and readable.
func (r *PropertyRegistry[T]) CanRead(lt isa.LogicType) bool {
	i, ok := r.index[lt]
	return ok && r.descriptors[i].Readable
}

// CanWrite reports whether lt is both known and writable.
func (r *PropertyRegistry[T]) CanWrite(lt isa.LogicType) bool {
	i, ok := r.index[lt]
	return ok && r.descriptors[i].Writable
}

// SupportedTypes returns every LogicType this registry declares.
func (r *PropertyRegistry[T]) SupportedTypes() []isa.LogicType {
	out := make([]isa.LogicType, len(r.descriptors))
	for i, d := range r.descriptors {
		out[i] = d.LogicType
	}
	return out
}
