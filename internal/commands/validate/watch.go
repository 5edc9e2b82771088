// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validate

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tombee/schemaerr/internal/commands/shared"
	"github.com/tombee/schemaerr/internal/log"
)

// watchDebounce groups the bursts of events editors produce on save.
const watchDebounce = 100 * time.Millisecond

// watch re-runs validation whenever the schema or a document directory
// changes, until ctx is cancelled.
func (r *runner) watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return shared.NewExecutionError("failed to create file watcher", err)
	}
	defer fsw.Close()

	dirs, err := r.watchDirs()
	if err != nil {
		return shared.NewUsageError("expanding document arguments", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return shared.NewExecutionError(fmt.Sprintf("failed to watch %s", dir), err)
		}
	}

	r.runAndLog(ctx)

	// The timer is created stopped and armed on the first relevant event.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			r.logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(watchDebounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("file watcher error", log.Error(err))
		case <-timer.C:
			r.runAndLog(ctx)
		}
	}
}

// runAndLog runs one pass; in watch mode failures are reported but never
// end the loop.
func (r *runner) runAndLog(ctx context.Context) {
	if _, err := r.run(ctx); err != nil {
		shared.PrintError(r.out, err)
	}
}

// watchDirs returns the directories holding the schema and the documents.
func (r *runner) watchDirs() ([]string, error) {
	paths, err := expandPatterns(r.opts.patterns)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, p := range append([]string{r.opts.schemaPath}, paths...) {
		dir, err := filepath.Abs(filepath.Dir(p))
		if err != nil {
			return nil, err
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
