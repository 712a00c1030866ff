package main

import (
	"flag"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/melisma/audiotensor/common/config"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/common/runtime"
	"github.com/melisma/audiotensor/common/version"
	audio "github.com/melisma/audiotensor/signal"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "audiotensor.yaml", "The path to the configuration")
	inFile := flag.String("in", "", "The audio file to play")
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

	ctx := runctx.Initial().LogWithFields(logrus.Fields{"in": *inFile})
	t, err := audio.FromFile(ctx, *inFile)
	if err != nil {
		logrus.Fatal(err)
	}

	format := t.Format()
	if err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		logrus.Fatal(err)
	}

	ctx.Log.Infof("Playing %s (%s)", *inFile, t.Duration())
	done := make(chan bool)
	speaker.Play(beep.Seq(t.Streamer(), beep.Callback(func() {
		done <- true
	})))
	<-done
}
