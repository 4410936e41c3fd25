package binstream

// Variable-width integer decoding: base-128 VLQ, continuation bit in the
// high bit of each octet, 7 payload bits per octet. Both group orderings
// are supported since generated parsers for different formats need either.

const maxVlqOctets = 10 // 10*7 = 70 bits safely covers a 64-bit value

// ReadVlqBase128LE reads a base-128 variable-length quantity with the
// least-significant 7-bit group first. Requires byte alignment.
func (c *BitCursor) ReadVlqBase128LE() (uint64, error) {
	if err := c.checkHealthy(); err != nil {
		return 0, err
	}
	if err := c.checkAligned(); err != nil {
		return 0, err
	}
	var result uint64
	var shift uint
	for i := 0; i < maxVlqOctets; i++ {
		b, err := c.src.ReadBytes(1)
		if err != nil {
			return 0, c.fail(err)
		}
		result |= uint64(b[0]&0x7f) << shift
		if b[0]&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
	return 0, c.fail(newErr(KindInvalidArgument, "vlq_base128_le: value exceeds %d octets", maxVlqOctets))
}

// ReadVlqBase128BE reads a base-128 variable-length quantity with the
// most-significant 7-bit group first. Requires byte alignment.
func (c *BitCursor) ReadVlqBase128BE() (uint64, error) {
	if err := c.checkHealthy(); err != nil {
		return 0, err
	}
	if err := c.checkAligned(); err != nil {
		return 0, err
	}
	var result uint64
	for i := 0; i < maxVlqOctets; i++ {
		b, err := c.src.ReadBytes(1)
		if err != nil {
			return 0, c.fail(err)
		}
		result = (result << 7) | uint64(b[0]&0x7f)
		if b[0]&0x80 == 0 {
			return result, nil
		}
	}
	return 0, c.fail(newErr(KindInvalidArgument, "vlq_base128_be: value exceeds %d octets", maxVlqOctets))
}
