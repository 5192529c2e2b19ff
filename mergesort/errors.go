package mergesort

import "github.com/cockroachdb/errors"

var (
	// ErrIndexOutOfRange 호출자가 시퀀스 밖의 인덱스를 넘긴 경우
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidRange 병합 구간 low <= mid < high 위반. 분할 로직 버그를 뜻한다.
	ErrInvalidRange = errors.New("invalid merge range")
)

func checkBounds(n, low, high int) error {
	if low < 0 || high >= n {
		return errors.Wrapf(ErrIndexOutOfRange, "range [%d, %d] on sequence of length %d", low, high, n)
	}
	return nil
}

func invalidRange(low, mid, high int) error {
	return errors.WithAssertionFailure(
		errors.Wrapf(ErrInvalidRange, "low=%d mid=%d high=%d", low, mid, high))
}
