package config

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

var reloadHandlersLock = &sync.Mutex{}
var reloadHandlers = make([]func(), 0)

// OnReload registers a function to be called after the configuration has been
// reloaded from disk. Handlers run on the watcher goroutine.
func OnReload(fn func()) {
	reloadHandlersLock.Lock()
	defer reloadHandlersLock.Unlock()
	reloadHandlers = append(reloadHandlers, fn)
}

func Watch() *fsnotify.Watcher {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logrus.Fatal(err)
	}

	err = watcher.Add(Path)
	if err != nil {
		logrus.Fatal(err)
	}

	go func() {
		debounced := debounce.New(1 * time.Second)
		for {
			select {
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				debounced(onFileChanged)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logrus.Error("error in config watcher:", err)
			}
		}
	}()

	return watcher
}

func onFileChanged() {
	logrus.Info("Config file change detected - reloading")
	configNow := Get()
	configNew, err := reloadConfig()
	if err != nil {
		logrus.Error("Error reloading configuration - ignoring")
		logrus.Error(err)
		return
	}

	logrus.Info("Applying reloaded config live")
	instance = configNew

	logChange := configNew.General.LogDirectory != configNow.General.LogDirectory
	if logChange {
		logrus.Warn("Log configuration changed - restart to apply changes")
	}

	reloadHandlersLock.Lock()
	handlers := make([]func(), len(reloadHandlers))
	copy(handlers, reloadHandlers)
	reloadHandlersLock.Unlock()
	for _, fn := range handlers {
		fn()
	}
}
