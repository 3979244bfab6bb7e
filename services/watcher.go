package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// WatchDirectory ingests files from a local directory as they are created or
// modified. It is the development analog of the storage-upload trigger and
// blocks until the context is cancelled.
func (s *IngestService) WatchDirectory(ctx context.Context, dirPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dirPath); err != nil {
		return fmt.Errorf("watching %s: %w", dirPath, err)
	}

	if err := s.store.EnsureIndex(ctx); err != nil {
		log.Printf("WATCHER: ensure index: %v", err)
	}
	log.Printf("WATCHER: watching directory: %s", dirPath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSupportedFile(event.Name) {
				continue
			}
			// Many editors write via a temp-file rename, which fires several
			// events; Create and Write are handled the same.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				data, err := os.ReadFile(event.Name)
				if err != nil {
					log.Printf("WATCHER: could not read %s: %v", event.Name, err)
					continue
				}
				if fr := s.IngestDocument(ctx, filepath.Base(event.Name), data); fr.Err != nil {
					log.Printf("WATCHER: failed to ingest %s: %v", event.Name, fr.Err)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("WATCHER: %v", err)

		case <-ctx.Done():
			log.Println("WATCHER: context cancelled, shutting down watcher.")
			return ctx.Err()
		}
	}
}

func isSupportedFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".pdf", ".docx":
		return true
	default:
		return false
	}
}
