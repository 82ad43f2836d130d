package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	DefaultListLimit   = 50
	DefaultSearchLimit = 20
	MaxListLimit       = 100
)
