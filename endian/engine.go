// Package endian provides the byte order abstraction used by grid-number columns.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so that
// column encoders can both append to and patch into their buffers through a
// single value.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, uint64(gridNum))
//
// The returned engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == EndianEngine(binary.BigEndian)
}
