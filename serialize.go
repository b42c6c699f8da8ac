package main

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"
)

// Serialize writes data to w in little-endian binary form. data must be a
// fixed-size value (or a pointer/slice of such), which is why the capture
// types use int64/float64 fields only.
func Serialize(w io.Writer, data any) {
	err := binary.Write(w, binary.LittleEndian, data)
	Check(err)
}

func Deserialize(r io.Reader, data any) {
	err := binary.Read(r, binary.LittleEndian, data)
	Check(err)
}

// SerializeSlice writes the length followed by the elements, so the reader
// knows how much to allocate.
func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	*s = make([]T, n)
	Deserialize(r, *s)
}

func Zip(data []byte) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	Check(err)
	Check(w.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	r, err := gzip.NewReader(bytes.NewReader(data))
	Check(err)
	out, err := io.ReadAll(r)
	Check(err)
	Check(r.Close())
	return out
}
