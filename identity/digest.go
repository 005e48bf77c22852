package identity

import (
	"bytes"

	"github.com/dchest/siphash"
)

const (
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// DigestStrategy compares elements by their encoded bytes.
type DigestStrategy[T any] struct {
	encode func(T) []byte
}

// Digest identifies elements by an encoding. Sets bucket elements by the
// SipHash of the encoding and compare the bytes inside a bucket, so two
// elements are the same exactly when their encodings are equal.
func Digest[T any](encode func(T) []byte) DigestStrategy[T] {
	if encode == nil {
		panic("lazyseq.identity: Digest encode function cannot be nil")
	}
	return DigestStrategy[T]{encode: encode}
}

func (s DigestStrategy[T]) NewSet() Set[T] {
	return &digestSet[T]{
		encode:  s.encode,
		buckets: make(map[uint64][][]byte),
	}
}

func (s DigestStrategy[T]) Equal(a, b T) bool {
	return bytes.Equal(s.encode(a), s.encode(b))
}

type digestSet[T any] struct {
	encode  func(T) []byte
	buckets map[uint64][][]byte
	size    int
}

func (s *digestSet[T]) lookup(v T) (uint64, []byte, bool) {
	buf := s.encode(v)
	h := siphash.Hash(sipHashKey1, sipHashKey2, buf)
	for _, candidate := range s.buckets[h] {
		if bytes.Equal(candidate, buf) {
			return h, buf, true
		}
	}
	return h, buf, false
}

func (s *digestSet[T]) Add(v T) bool {
	h, buf, found := s.lookup(v)
	if found {
		return false
	}
	// the encoder may reuse its buffer
	s.buckets[h] = append(s.buckets[h], bytes.Clone(buf))
	s.size++
	return true
}

func (s *digestSet[T]) Contains(v T) bool {
	_, _, found := s.lookup(v)
	return found
}

func (s *digestSet[T]) Len() int {
	return s.size
}
