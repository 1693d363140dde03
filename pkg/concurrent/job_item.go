package concurrent

import (
	"github.com/paulmach/orb/geojson"
)

// SaveClassJobItem semua feature road network dengan road class yang sama, disimpan sebagai 1 value di kv.
type SaveClassJobItem struct {
	Class    string
	Features []*geojson.Feature
}

type JobI interface {
	SaveClassJobItem
}

type JobFunc[T JobI, G any] func(job T) G
