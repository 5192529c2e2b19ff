package verify

import "cmp"

// quickSort 하이브리드 퀵소트 (검증용 기준 정렬)
func quickSort[T cmp.Ordered](arr []T) {
	if len(arr) < 2 {
		return
	}
	quickSortHelper(arr, 0, len(arr)-1)
}

func quickSortHelper[T cmp.Ordered](arr []T, low, high int) {
	for low < high {
		size := high - low + 1

		// 작은 배열에는 삽입정렬 사용
		if size <= 16 {
			insertionSort(arr, low, high)
			return
		}

		// 3-way 파티셔닝으로 중복값 처리
		lt, gt := partition3Way(arr, low, high)

		// 더 작은 부분만 재귀, 나머지는 루프로
		if lt-low < high-gt {
			quickSortHelper(arr, low, lt-1)
			low = gt + 1
		} else {
			quickSortHelper(arr, gt+1, high)
			high = lt - 1
		}
	}
}

// partition3Way arr[low..lt-1] < pivot, arr[lt..gt] == pivot, arr[gt+1..high] > pivot
func partition3Way[T cmp.Ordered](arr []T, low, high int) (int, int) {
	medianOfThree(arr, low, low+(high-low)/2, high)
	pivot := arr[low]

	lt := low
	i := low + 1
	gt := high + 1

	for i < gt {
		if arr[i] < pivot {
			arr[lt], arr[i] = arr[i], arr[lt]
			lt++
			i++
		} else if arr[i] > pivot {
			gt--
			arr[i], arr[gt] = arr[gt], arr[i]
		} else {
			i++
		}
	}

	return lt, gt - 1
}

// medianOfThree 세 값의 중앙값을 arr[a]로 옮긴다
func medianOfThree[T cmp.Ordered](arr []T, a, b, c int) {
	if arr[a] > arr[b] {
		arr[a], arr[b] = arr[b], arr[a]
	}
	if arr[b] > arr[c] {
		arr[b], arr[c] = arr[c], arr[b]
	}
	if arr[a] > arr[b] {
		arr[a], arr[b] = arr[b], arr[a]
	}
	arr[a], arr[b] = arr[b], arr[a]
}

func insertionSort[T cmp.Ordered](arr []T, low, high int) {
	for i := low + 1; i <= high; i++ {
		key := arr[i]
		j := i - 1

		for j >= low && arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}
