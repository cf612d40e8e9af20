package watcher

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

type fsnotifySource struct {
	watcher *fsnotify.Watcher
	events  chan Event
	errors  chan error
	done    chan struct{}
	once    sync.Once
}

// NewFSNotifySource subscribes to file creation in dir (not its subdirectories)
func NewFSNotifySource(dir string) (EventSource, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	s := &fsnotifySource{
		watcher: watcher,
		events:  make(chan Event),
		errors:  make(chan error),
		done:    make(chan struct{}),
	}
	go s.forward()
	return s, nil
}

func (s *fsnotifySource) forward() {
	defer close(s.events)
	defer close(s.errors)

	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			// Only CREATE events; moves into the directory arrive as CREATE too
			if !event.Has(fsnotify.Create) {
				continue
			}
			select {
			case s.events <- Event{Path: event.Name}:
			case <-s.done:
				return
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			select {
			case s.errors <- err:
			case <-s.done:
				return
			}
		}
	}
}

func (s *fsnotifySource) Events() <-chan Event { return s.events }

func (s *fsnotifySource) Errors() <-chan error { return s.errors }

// Close stops forwarding and closes the underlying watcher
func (s *fsnotifySource) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.watcher.Close()
	})
	return err
}
