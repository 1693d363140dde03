package routingalgorithm

import (
	"errors"

	"github.com/paulmach/orb"
)

var errHeapEmpty = errors.New("heap is empty")

type priorityQueueNode struct {
	Rank float64
	Seq  uint64 // urutan node masuk frontier, buat tie-break kalau Rank sama
	Item orb.Point
}

// minHeap binary heap priorityqueue. urutannya Rank terkecil, kalau Rank sama yang lebih dulu masuk frontier (Seq terkecil).
type minHeap struct {
	heap    []priorityQueueNode
	pos     map[orb.Point]int
	nextSeq uint64
}

func newMinHeap() *minHeap {
	return &minHeap{
		heap: make([]priorityQueueNode, 0),
		pos:  make(map[orb.Point]int),
	}
}

func (h *minHeap) parent(index int) int {
	return (index - 1) / 2
}

func (h *minHeap) leftChild(index int) int {
	return 2*index + 1
}

func (h *minHeap) rightChild(index int) int {
	return 2*index + 2
}

func (h *minHeap) less(i, j int) bool {
	if h.heap[i].Rank != h.heap[j].Rank {
		return h.heap[i].Rank < h.heap[j].Rank
	}
	return h.heap[i].Seq < h.heap[j].Seq
}

func (h *minHeap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].Item] = i
	h.pos[h.heap[j].Item] = j
}

// heapifyUp check apakah parent dari index lebih besar kalau iya swap, then lanjut ke parent. O(logN) tree height.
func (h *minHeap) heapifyUp(index int) {
	for index != 0 && h.less(index, h.parent(index)) {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown check apakah salah satu children dari index lebih kecil kalau iya swap, then lanjut ke children yang kecil tadi. O(logN).
func (h *minHeap) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.less(left, smallest) {
			smallest = left
		}
		if right < len(h.heap) && h.less(right, smallest) {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

func (h *minHeap) Size() int {
	return len(h.heap)
}

func (h *minHeap) Contains(item orb.Point) bool {
	_, ok := h.pos[item]
	return ok
}

// Insert item baru ke frontier dengan Seq baru.
func (h *minHeap) Insert(item orb.Point, rank float64) {
	h.heap = append(h.heap, priorityQueueNode{Rank: rank, Seq: h.nextSeq, Item: item})
	h.nextSeq++
	index := h.Size() - 1
	h.pos[item] = index
	h.heapifyUp(index)
}

// ExtractMin ambil & pop node dengan Rank minimum. O(logN).
func (h *minHeap) ExtractMin() (priorityQueueNode, error) {
	if h.Size() == 0 {
		return priorityQueueNode{}, errHeapEmpty
	}
	root := h.heap[0]
	last := h.Size() - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	delete(h.pos, root.Item)
	h.heapifyDown(0)
	return root, nil
}

// DecreaseKey update Rank item yang masih ada di frontier. Seq tidak berubah. O(logN).
func (h *minHeap) DecreaseKey(item orb.Point, rank float64) error {
	index, ok := h.pos[item]
	if !ok || rank > h.heap[index].Rank {
		return errors.New("invalid item or new rank")
	}
	h.heap[index].Rank = rank
	h.heapifyUp(index)
	return nil
}
