package datasets

import (
	"sort"
	"sync"
)

// Well-known dataset sources. Registered at init; write-once, read-many.
const (
	Speakers10       = "SPEAKERS10"
	Esc50            = "ESC50"
	SampleSpeakers10 = "SAMPLE_SPEAKERS10"
)

var registryLock = &sync.RWMutex{}
var registry = make(map[string]string)

func Register(name string, url string) {
	registryLock.Lock()
	registry[name] = url
	registryLock.Unlock()
}

func URL(name string) (string, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	url, ok := registry[name]
	return url, ok
}

func Names() []string {
	registryLock.RLock()
	defer registryLock.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Speakers10, "http://www.openslr.org/resources/45/ST-AEDS-20180100_1-OS.tgz")
	Register(Esc50, "https://github.com/karoldvl/ESC-50/archive/master.zip")
	Register(SampleSpeakers10, "https://github.com/fastaudio/10_Speakers_Sample/archive/master.zip")
}
