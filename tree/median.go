package tree

import "container/heap"

type minHeap []float64

func (mh minHeap) Len() int {
	return len(mh)
}

func (mh minHeap) Less(i, j int) bool {
	return mh[i] < mh[j]
}

func (mh minHeap) Swap(i, j int) {
	mh[i], mh[j] = mh[j], mh[i]
}

func (mh *minHeap) Push(x interface{}) {
	*mh = append(*mh, x.(float64))
}

func (mh *minHeap) Pop() interface{} {
	old := *mh
	n := len(old)
	item := old[n-1]
	*mh = old[0 : n-1]
	return item
}

type maxHeap []float64

func (mh maxHeap) Len() int {
	return len(mh)
}

func (mh maxHeap) Less(i, j int) bool {
	return mh[i] > mh[j]
}

func (mh maxHeap) Swap(i, j int) {
	mh[i], mh[j] = mh[j], mh[i]
}

func (mh *maxHeap) Push(x interface{}) {
	*mh = append(*mh, x.(float64))
}

func (mh *maxHeap) Pop() interface{} {
	old := *mh
	n := len(old)
	item := old[n-1]
	*mh = old[0 : n-1]
	return item
}

// MedianHeap tracks the running median with a max-heap below and a min-heap
// above. Invariant: len(lo) == len(hi) or len(lo) == len(hi)+1.
type MedianHeap struct {
	lo *maxHeap
	hi *minHeap
}

func NewMedianHeap(initSize int) *MedianHeap {
	lo := make(maxHeap, 0, (initSize+1)/2)
	hi := make(minHeap, 0, (initSize+1)/2)
	return &MedianHeap{
		lo: &lo,
		hi: &hi,
	}
}

func (mh *MedianHeap) Len() int {
	return mh.lo.Len() + mh.hi.Len()
}

func (mh *MedianHeap) Push(value float64) {
	if mh.lo.Len() == 0 || value <= (*mh.lo)[0] {
		heap.Push(mh.lo, value)
	} else {
		heap.Push(mh.hi, value)
	}

	if mh.lo.Len() > mh.hi.Len()+1 {
		heap.Push(mh.hi, heap.Pop(mh.lo))
	} else if mh.hi.Len() > mh.lo.Len() {
		heap.Push(mh.lo, heap.Pop(mh.hi))
	}
}

// Median panics on an empty heap; callers check Len first.
func (mh *MedianHeap) Median() float64 {
	if mh.lo.Len() > mh.hi.Len() {
		return (*mh.lo)[0]
	}
	return ((*mh.lo)[0] + (*mh.hi)[0]) / 2
}
