package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"painel/internal/domain/repository"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// FileStore keeps state in a single JSON document. Every write replaces the file through a
// rename so readers never observe a partial document. Writes made by other processes are
// picked up by Watch and published to subscribers.
type FileStore struct {
	path   string
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]string

	watcher *fsnotify.Watcher
	done    chan struct{}
	notifier
}

var _ repository.StateStore = (*FileStore)(nil)

// corruptSuffix names the copy kept of a state document that could not be decoded.
const corruptSuffix = ".corrupt"

// NewFileStore opens the document at path, creating its directory if needed.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrapf(err, "create state dir for %s", path)
	}

	s := &FileStore{path: path, logger: logger}

	values, err := s.read()
	if err != nil {
		return nil, err
	}
	s.cache = values

	return s, nil
}

// Path returns the location of the document.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}

	v, ok := values[key]

	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	return s.update(func(values map[string]string) {
		values[key] = value
	})
}

func (s *FileStore) Delete(_ context.Context, keys ...string) error {
	return s.update(func(values map[string]string) {
		for _, key := range keys {
			delete(values, key)
		}
	})
}

func (s *FileStore) Subscribe(fn func(repository.StateChange)) func() {
	return s.subscribe(fn)
}

func (s *FileStore) update(apply func(map[string]string)) error {
	s.mu.Lock()

	values, err := s.read()
	if err != nil {
		s.mu.Unlock()

		return err
	}

	before := maps.Clone(values)
	apply(values)
	changes := diff(before, values)

	if len(changes) > 0 {
		if err := s.write(values); err != nil {
			s.mu.Unlock()

			return err
		}
	}
	s.cache = values
	s.mu.Unlock()

	s.publish(changes...)

	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, errors.Wrapf(repository.ErrStateUnavailable, "read %s: %v", s.path, err)
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		s.quarantine(err)

		return make(map[string]string), nil
	}

	return values, nil
}

// quarantine moves an undecodable document aside so the store starts over empty.
func (s *FileStore) quarantine(decodeErr error) {
	aside := s.path + corruptSuffix
	s.logger.Warn("State file is corrupt, starting with an empty state",
		slog.String("path", s.path),
		slog.String("moved_to", aside),
		slog.Any("error", decodeErr),
	)
	if err := os.Rename(s.path, aside); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("Failed to move corrupt state file aside", slog.String("path", s.path), slog.Any("error", err))
	}
}

func (s *FileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp state file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrap(err, "write temp state file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "close temp state file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "replace state file")
	}

	return nil
}

// Watch starts publishing changes written by other processes. The directory is watched
// rather than the file because every write replaces the file.
func (s *FileStore) Watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create file watcher")
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()

		return errors.Wrapf(err, "watch %s", filepath.Dir(s.path))
	}

	s.watcher = watcher
	s.done = make(chan struct{})
	go s.watchLoop(watcher, s.done)

	return nil
}

func (s *FileStore) watchLoop(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	name := filepath.Clean(s.path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				s.reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("State file watcher error", slog.String("path", s.path), slog.Any("error", err))
		}
	}
}

func (s *FileStore) reload() {
	s.mu.Lock()
	values, err := s.read()
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn("Failed to reload state file", slog.String("path", s.path), slog.Any("error", err))

		return
	}
	changes := diff(s.cache, values)
	s.cache = values
	s.mu.Unlock()

	if len(changes) > 0 {
		s.logger.Debug("State file changed externally", slog.Int("changes", len(changes)))
	}
	s.publish(changes...)
}

// Close stops the watcher.
func (s *FileStore) Close() error {
	s.mu.Lock()
	watcher, done := s.watcher, s.done
	s.watcher = nil
	s.mu.Unlock()

	if watcher == nil {
		return nil
	}

	err := watcher.Close()
	<-done

	return errors.WithStack(err)
}
