package various

import (
	"encoding/binary"
	"io"
	"math"
)

var byteorder = binary.LittleEndian

// WriteString writes the length prefixed bytes of s.
func WriteString(w io.Writer, s string) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// WriteStringSlice writes the length of s followed by each string.
func WriteStringSlice(w io.Writer, s []string) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	for _, v := range s {
		if err := WriteString(w, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteBool writes a single byte flag.
func WriteBool(w io.Writer, b bool) error {
	return binary.Write(w, byteorder, b)
}

// WriteOptFloat writes a presence flag followed by the value (if set).
// NaN is written by its bit pattern, so equal inputs always hash equal.
func WriteOptFloat(w io.Writer, v *float64) error {
	if err := WriteBool(w, v != nil); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return binary.Write(w, byteorder, math.Float64bits(*v))
}
