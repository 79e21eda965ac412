package wire

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType uint8

const (
	WireVarint  WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64 WireType = 1 // fixed64, sfixed64, double
	WireBytes   WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireFixed32 WireType = 5 // fixed32, sfixed32, float

	// Group delimiters. Recognised only to be rejected.
	wireStartGroup WireType = 3
	wireEndGroup   WireType = 4
)

var wireTypeNames = [...]string{
	WireVarint:     "varint",
	WireFixed64:    "fixed64",
	WireBytes:      "length-delimited",
	wireStartGroup: "start-group",
	wireEndGroup:   "end-group",
	WireFixed32:    "fixed32",
}

// String returns a readable name for wt.
func (wt WireType) String() string {
	if int(wt) < len(wireTypeNames) {
		return wireTypeNames[wt]
	}
	return "unknown"
}

// ParseWireType maps the low three bits of a tag to a supported WireType.
// Codes 3 and 4 fail with an error matching both ErrInvalidWireType and
// ErrDeprecatedWireType.
func ParseWireType(code uint8) (WireType, error) {
	switch wt := WireType(code); wt {
	case WireVarint, WireFixed64, WireBytes, WireFixed32:
		return wt, nil
	case wireStartGroup, wireEndGroup:
		return 0, &DecodeError{Op: "wire type", Err: ErrInvalidWireType, Reason: ErrDeprecatedWireType}
	default:
		return 0, &DecodeError{Op: "wire type", Err: ErrInvalidWireType}
	}
}

// FieldNumber represents a protobuf field number
type FieldNumber uint32

// Tag represents a decoded protobuf field tag (field number + wire type)
type Tag struct {
	Number FieldNumber
	Type   WireType
}

// splitTag splits a raw tag varint into its field number and wire type code.
func splitTag(v uint64) (uint64, uint8) {
	return v >> 3, uint8(v & 0x7)
}
