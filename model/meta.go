package model

// StoreType tells the renderer where the rows of a DataMeta live.
type StoreType string

const (
	// StoreLocal means the rows travel inline in DataMeta.Data.
	StoreLocal StoreType = "local"
	// StoreMemory means the rows were put into the cache under the payload key.
	StoreMemory StoreType = "memory"
)

// DataMeta is the small record passed between pipeline stages instead of the payload itself.
type DataMeta struct {
	StoreKey  string           `json:"store_key" yaml:"store_key"`
	StoreType StoreType        `json:"store_type" yaml:"store_type"`
	RowCount  int              `json:"row_count" yaml:"row_count"`
	Data      []map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}
