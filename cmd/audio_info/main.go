package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dhowden/tag"
	"github.com/dustin/go-humanize"
	"github.com/melisma/audiotensor/common/config"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/common/runtime"
	"github.com/melisma/audiotensor/common/version"
	audio "github.com/melisma/audiotensor/signal"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "audiotensor.yaml", "The path to the configuration")
	inFile := flag.String("in", "", "The audio file to inspect")
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

	info, err := os.Stat(*inFile)
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := runctx.Initial()
	t, err := audio.FromFile(ctx, *inFile)
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Println("File:         ", *inFile)
	fmt.Println("Size:         ", humanize.Bytes(uint64(info.Size())))
	fmt.Println("Sample rate:  ", t.SampleRate(), "Hz")
	fmt.Println("Channels:     ", t.NumChannels())
	fmt.Println("Samples:      ", t.NumSamples())
	fmt.Println("Duration:     ", t.Duration())

	f, err := os.Open(*inFile)
	if err != nil {
		logrus.Fatal(err)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		fmt.Println("Tags:          (none)")
		return
	}
	fmt.Println("Title:        ", meta.Title())
	fmt.Println("Artist:       ", meta.Artist())
	fmt.Println("Album:        ", meta.Album())
}
