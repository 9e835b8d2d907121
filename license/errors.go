package license

import "fmt"

// FormatError represents an error when a license triple is not of the
// CHID_MAJOR_MINOR form with three decimal fields.
type FormatError string

// Error returns a formatted error message describing the invalid triple.
func (e FormatError) Error() string {
	return fmt.Sprintf("license: invalid triple %q, want CHID_MAJOR_MINOR", string(e))
}

// ChannelRangeError represents an error when a channel id exceeds the
// ten-bit payload field.
type ChannelRangeError uint64

// Error returns a formatted error message describing the invalid channel id.
func (e ChannelRangeError) Error() string {
	return fmt.Sprintf("license: channel id %d out of range [0, %d]", uint64(e), maxChannelID)
}

// CountRangeError represents an error when a license count is outside
// the accepted range.
type CountRangeError int

// Error returns a formatted error message describing the invalid count.
func (e CountRangeError) Error() string {
	return fmt.Sprintf("license: count %d out of range [%d, %d]", int(e), MinCount, MaxCount)
}
