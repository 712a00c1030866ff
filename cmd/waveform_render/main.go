package main

import (
	"flag"
	"image"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/melisma/audiotensor/common/config"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/common/runtime"
	"github.com/melisma/audiotensor/common/version"
	"github.com/melisma/audiotensor/render"
	audio "github.com/melisma/audiotensor/signal"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "audiotensor.yaml", "The path to the configuration")
	inFile := flag.String("in", "", "The audio file to render")
	outFile := flag.String("out", "waveform.png", "The PNG file to write")
	asSpectrogram := flag.Bool("spectrogram", false, "Render a spectrogram instead of a waveform")
	watch := flag.Bool("watch", false, "Re-render whenever the input file changes")
	width := flag.Int("width", 0, "Per-channel panel width (0 = configured default)")
	height := flag.Int("height", 0, "Per-channel panel height (0 = configured default)")
	versionFlag := flag.Bool("version", false, "Prints the version and exits")
	flag.Parse()

	if *versionFlag {
		version.Print(false)
		return // exit 0
	}

	configEnv := os.Getenv("AUDIOTENSOR_CONFIG")
	if configEnv != "" {
		configPath = &configEnv
	}
	config.Path = *configPath

	runtime.RunStartupSequence()

	if *inFile == "" {
		logrus.Fatal("No input file given - use -in")
	}

	doRender := func() {
		// Fresh context per render so config reloads take effect
		ctx := runctx.Initial().LogWithFields(logrus.Fields{"in": *inFile})

		var err error
		opts := render.WaveformOptions{ChannelWidth: *width, ChannelHeight: *height}

		if *asSpectrogram {
			t, loadErr := audio.FromFile(ctx, *inFile)
			if loadErr != nil {
				logrus.Error(loadErr)
				return
			}
			spec, specErr := render.Spectrogram(ctx, t, render.SpectrogramOptions{})
			if specErr != nil {
				logrus.Error(specErr)
				return
			}
			err = writeImage(*outFile, spec)
		} else {
			wave, waveErr := render.WaveformFile(ctx, *inFile, opts)
			if waveErr != nil {
				logrus.Error(waveErr)
				return
			}
			err = writeImage(*outFile, wave)
		}
		if err != nil {
			logrus.Error(err)
			return
		}
		ctx.Log.Info("Rendered ", *outFile)
	}

	doRender()

	if !*watch {
		return
	}

	// Long-running mode also picks up config edits (render defaults etc)
	confWatcher := config.Watch()
	defer confWatcher.Close()
	config.OnReload(doRender)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logrus.Fatal(err)
	}
	defer watcher.Close()
	if err = watcher.Add(*inFile); err != nil {
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
				debounced(doRender)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logrus.Error("error in file watcher:", err)
			}
		}
	}()

	logrus.Info("Watching for changes - interrupt to exit")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
