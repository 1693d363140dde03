package concurrent_test

import (
	"fmt"
	"testing"

	"lintang/georoute/pkg/concurrent"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	jobs := []concurrent.SaveClassJobItem{}
	for i := 0; i < 20; i++ {
		jobs = append(jobs, concurrent.SaveClassJobItem{
			Class: fmt.Sprintf("class-%d", i),
			Features: []*geojson.Feature{
				geojson.NewFeature(orb.MultiLineString{{{0, 0}, {1, 1}}}),
			},
		})
	}

	workers := concurrent.NewWorkerPool[concurrent.SaveClassJobItem, string](4, len(jobs))
	for _, job := range jobs {
		workers.AddJob(job)
	}
	workers.Close()

	workers.Start(func(job concurrent.SaveClassJobItem) string {
		return fmt.Sprintf("%s:%d", job.Class, len(job.Features))
	})
	workers.Wait()

	results := []string{}
	for res := range workers.CollectResults() {
		results = append(results, res)
	}

	expected := []string{}
	for _, job := range jobs {
		expected = append(expected, job.Class+":1")
	}
	assert.ElementsMatch(t, expected, results)
}
