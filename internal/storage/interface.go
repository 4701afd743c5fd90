package storage

// KV defines the durable key-value operations the tracker depends on.
//
//go:generate mockgen -source=interface.go -destination=../tracker/mock_kv_test.go -package=tracker
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

var _ KV = (*Store)(nil)
