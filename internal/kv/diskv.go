package kv

import (
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv stores each key as a file directly under the base directory.
type Diskv struct {
	d *diskv.Diskv
}

func OpenDiskv(dir string) (*Diskv, error) {
	if dir == "" {
		return nil, errors.New("diskv dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *Diskv) Get(key string) (string, bool, error) {
	if !s.d.Has(key) {
		return "", false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(val), true, nil
}

func (s *Diskv) Set(key, value string) error {
	return s.d.Write(key, []byte(value))
}

func (s *Diskv) Close() error {
	return nil
}
