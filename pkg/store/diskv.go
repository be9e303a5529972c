package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned when no value is stored under a name.
var ErrNotFound = errors.New("store: not found")

// Persistence stores raw setting payloads by name.
type Persistence interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Erase(name string) error
	Names(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Values may be rewritten by another process; a read cache would
		// hide those writes from Watch consumers.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

const tempDir = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(name string) ([]byte, error) {
	key, err := toKey(name)
	if err != nil {
		return nil, err
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", name, err)
	}
	return val, nil
}

func (p *persistence) Write(name string, data []byte) error {
	key, err := toKey(name)
	if err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	return nil
}

func (p *persistence) Erase(name string) error {
	key, err := toKey(name)
	if err != nil {
		return err
	}
	if err := p.d.Erase(key); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("store: erase %s: %w", name, err)
	}
	return nil
}

func (p *persistence) Names(ctx context.Context) []string {
	names := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		name, err := fromKey(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

// toKey encodes a setting name into a file name safe key.
func toKey(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("store: setting name required")
	}
	return base64.RawURLEncoding.EncodeToString([]byte(name)), nil
}

func fromKey(key string) (string, error) {
	name, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil {
		return "", fmt.Errorf("store: decode key: %w", err)
	}
	return string(name), nil
}
