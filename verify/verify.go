// Package verify 정렬 결과를 신뢰할 수 있는 기준 정렬과 비교해 검증한다.
package verify

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
)

// Reference 기준 정렬 이름
type Reference string

const (
	Std   Reference = "std"
	Quick Reference = "quicksort"
)

// ErrUnknownReference 등록되지 않은 기준 정렬 이름
var ErrUnknownReference = errors.New("unknown reference sort")

// Result 한 번의 검증 결과
type Result struct {
	Sorted           bool   `json:"sorted"`
	Permutation      bool   `json:"permutation"`
	MatchesReference bool   `json:"matches_reference"`
	FirstMismatch    int    `json:"first_mismatch"` // 일치하면 -1
	Fingerprint      uint64 `json:"fingerprint"`
}

// OK 기준 정렬과 원소 단위로 완전히 일치하는지
func (r Result) OK() bool {
	return r.MatchesReference
}

// ReferenceSort 이름에 해당하는 기준 정렬 함수
func ReferenceSort(ref Reference) (func([]int), error) {
	switch ref {
	case Std:
		return slices.Sort[[]int, int], nil
	case Quick:
		return quickSort[int], nil
	default:
		return nil, errors.Wrapf(ErrUnknownReference, "%q", string(ref))
	}
}

// Check original의 복사본을 기준 정렬로 정렬한 뒤 sorted와 원소 단위로 비교한다.
// original과 sorted는 수정하지 않는다.
func Check(original, sorted []int, ref Reference) (Result, error) {
	refSort, err := ReferenceSort(ref)
	if err != nil {
		return Result{}, err
	}

	expected := slices.Clone(original)
	refSort(expected)

	res := Result{
		Sorted:        IsSorted(sorted),
		Permutation:   IsPermutation(original, sorted),
		FirstMismatch: -1,
		Fingerprint:   Fingerprint(expected),
	}

	if len(expected) != len(sorted) {
		res.FirstMismatch = min(len(expected), len(sorted))
		return res, nil
	}
	for i := range expected {
		if expected[i] != sorted[i] {
			res.FirstMismatch = i
			return res, nil
		}
	}
	res.MatchesReference = true
	return res, nil
}

// IsSorted 비내림차순 여부
func IsSorted(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] > seq[i] {
			return false
		}
	}
	return true
}

// IsPermutation 두 시퀀스의 값 멀티셋이 같은지
func IsPermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// Fingerprint 값들의 little-endian 인코딩에 대한 xxhash64
func Fingerprint(seq []int) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range seq {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		d.Write(buf[:])
	}
	return d.Sum64()
}
