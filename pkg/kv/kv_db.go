package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"lintang/georoute/pkg/concurrent"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/orb/geojson"
	"github.com/schollz/progressbar/v3"
)

const (
	metaKey        = "network/meta"
	classKeyPrefix = "network/class/"
)

var ErrDatasetNotFound = errors.New("road network dataset not found")

// DatasetMeta info road network yang sudah di-import ke pebble.
type DatasetMeta struct {
	ID           string         `json:"id"`
	Source       string         `json:"source"`
	ImportedAt   time.Time      `json:"imported_at"`
	FeatureCount int            `json:"feature_count"`
	ClassCounts  map[string]int `json:"class_counts"`
}

type KVDB struct {
	db *pebble.DB
}

func NewKVDB(db *pebble.DB) *KVDB {
	return &KVDB{db}
}

func classKey(fclass string) []byte {
	return []byte(classKeyPrefix + fclass)
}

// SaveNetwork simpan road network ke pebble. feature dikelompokkan per road class (fclass),
// tiap kelompok di-compress & disimpan paralel pakai worker pool.
func (k *KVDB) SaveNetwork(fc *geojson.FeatureCollection, source string, numWorkers int, showProgress bool) (DatasetMeta, error) {
	byClass := make(map[string][]*geojson.Feature)
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		fclass := f.Properties.MustString("fclass", "")
		if fclass == "" {
			continue
		}
		byClass[fclass] = append(byClass[fclass], f)
	}

	classes := make([]string, 0, len(byClass))
	for fclass := range byClass {
		classes = append(classes, fclass)
	}
	sort.Strings(classes)

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(classes),
			progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("[cyan][2/2][reset] saving road class to pebble db..."),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	workers := concurrent.NewWorkerPool[concurrent.SaveClassJobItem, error](numWorkers, len(classes))
	for _, fclass := range classes {
		workers.AddJob(concurrent.SaveClassJobItem{Class: fclass, Features: byClass[fclass]})
	}
	workers.Close()

	workers.Start(k.SaveClass)
	workers.Wait()

	var saveErr error
	for err := range workers.CollectResults() {
		if err != nil && saveErr == nil {
			saveErr = err
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if saveErr != nil {
		return DatasetMeta{}, saveErr
	}

	meta := DatasetMeta{
		ID:          uuid.NewString(),
		Source:      source,
		ImportedAt:  time.Now().UTC(),
		ClassCounts: make(map[string]int, len(classes)),
	}
	for _, fclass := range classes {
		meta.ClassCounts[fclass] = len(byClass[fclass])
		meta.FeatureCount += len(byClass[fclass])
	}

	bb, err := json.Marshal(meta)
	if err != nil {
		return DatasetMeta{}, err
	}
	if err := k.db.Set([]byte(metaKey), bb, pebble.Sync); err != nil {
		return DatasetMeta{}, fmt.Errorf("save dataset meta: %w", err)
	}
	return meta, nil
}

func (k *KVDB) SaveClass(job concurrent.SaveClassJobItem) error {
	val, err := CompressFeatures(job.Features)
	if err != nil {
		return fmt.Errorf("compress road class %s: %w", job.Class, err)
	}
	if err := k.db.Set(classKey(job.Class), val, pebble.Sync); err != nil {
		return fmt.Errorf("save road class %s: %w", job.Class, err)
	}
	return nil
}

func (k *KVDB) GetMeta() (DatasetMeta, error) {
	val, closer, err := k.db.Get([]byte(metaKey))
	if errors.Is(err, pebble.ErrNotFound) {
		return DatasetMeta{}, ErrDatasetNotFound
	}
	if err != nil {
		return DatasetMeta{}, err
	}
	defer closer.Close()

	var meta DatasetMeta
	if err := json.Unmarshal(val, &meta); err != nil {
		return DatasetMeta{}, fmt.Errorf("decode dataset meta: %w", err)
	}
	return meta, nil
}

// LoadClasses load feature dari road class yang diminta, urut sesuai urutan classes. class yang tidak ada di db di-skip.
func (k *KVDB) LoadClasses(classes []string) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for _, fclass := range classes {
		val, closer, err := k.db.Get(classKey(fclass))
		if errors.Is(err, pebble.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		features, err := LoadFeatures(val)
		closer.Close()
		if err != nil {
			return nil, fmt.Errorf("load road class %s: %w", fclass, err)
		}
		fc.Features = append(fc.Features, features...)
	}
	return fc, nil
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
