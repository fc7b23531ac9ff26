// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/arbor/base/errors"
	"cogentcore.org/arbor/config"
	"github.com/fsnotify/fsnotify"
)

// Watch generates a tree like [Generate] and then regenerates it
// every time the parameter file changes, until ctx is done.
// Generation errors after the first are logged, not returned, so that
// a bad edit can be fixed without restarting.
func Watch(ctx context.Context, c *config.Config, out io.Writer) error {
	if c.Params == "" {
		return errors.New("watch: no parameter file given, use --params")
	}
	path, err := filepath.Abs(c.Params)
	if err != nil {
		return errors.Wrap(err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err)
	}
	defer watcher.Close()
	// editors often save by renaming a new file over the old one,
	// which drops a watch on the file itself
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return errors.Wrap(err)
	}

	if err := Generate(c, out); err != nil {
		return err
	}
	slog.Info("watching parameter file", "path", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("parameter file changed", "op", event.Op)
			errors.Log(Generate(c, out))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("parameter file watcher error: " + err.Error())
		}
	}
}
