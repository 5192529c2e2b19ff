// Package mergesort 정수 시퀀스를 제자리(in place)에서 정렬하는 하향식 머지소트.
//
// 모든 범위는 0-기반 양끝 포함 인덱스 [low, high] 이다.
package mergesort

import "golang.org/x/exp/constraints"

// Sort seq[low..high] (양끝 포함) 구간을 비내림차순으로 정렬한다.
// 범위 밖 인덱스는 ErrIndexOutOfRange를 반환하며 seq는 건드리지 않는다.
// low >= high 이면 (원소 0~1개) 아무 일도 하지 않는다.
func Sort[T constraints.Integer](seq []T, low, high int) error {
	if err := checkBounds(len(seq), low, high); err != nil {
		return err
	}
	sortRange(seq, low, high, less[T])
	return nil
}

// SortAll 시퀀스 전체를 정렬한다. 빈 시퀀스도 유효하다.
func SortAll[T constraints.Integer](seq []T) {
	sortRange(seq, 0, len(seq)-1, less[T])
}

// Merge 이미 정렬된 인접 구간 [low, mid], [mid+1, high]를 하나의 정렬된 구간으로 병합한다.
// low <= mid < high 가 아니면 ErrInvalidRange (assertion failure)를 반환한다.
func Merge[T constraints.Integer](seq []T, low, mid, high int) error {
	if err := checkBounds(len(seq), low, high); err != nil {
		return err
	}
	if low > mid || mid >= high {
		return invalidRange(low, mid, high)
	}
	merge(seq, low, mid, high, less[T])
	return nil
}

func less[T constraints.Integer](a, b T) bool { return a < b }

// sortRange 재귀 분할. 홀수 길이면 왼쪽 절반이 원소 하나를 더 가진다.
func sortRange[E any](seq []E, low, high int, less func(a, b E) bool) {
	if low >= high {
		return
	}

	// (low+high)/2 와 같지만 오버플로 없음
	mid := low + (high-low)/2
	sortRange(seq, low, mid, less)
	sortRange(seq, mid+1, high, less)

	merge(seq, low, mid, high, less)
}

// merge 안정 병합. 같은 값이면 왼쪽 구간 원소가 먼저 온다.
func merge[E any](seq []E, low, mid, high int, less func(a, b E) bool) {
	// 2개짜리 병합은 버퍼 없이 비교 후 교환
	if low == mid && high == mid+1 {
		if less(seq[high], seq[low]) {
			seq[low], seq[high] = seq[high], seq[low]
		}
		return
	}

	left := make([]E, mid-low+1)
	right := make([]E, high-mid)
	copy(left, seq[low:mid+1])
	copy(right, seq[mid+1:high+1])

	i, j := 0, 0
	for k := low; k <= high; k++ {
		switch {
		case i == len(left):
			// 왼쪽 소진
			seq[k] = right[j]
			j++
		case j == len(right):
			// 오른쪽 소진
			seq[k] = left[i]
			i++
		case !less(right[j], left[i]):
			seq[k] = left[i]
			i++
		default:
			seq[k] = right[j]
			j++
		}
	}
}
