package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/melisma/audiotensor/common/config"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/common/runtime"
	"github.com/melisma/audiotensor/common/version"
	"github.com/melisma/audiotensor/datasets"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "audiotensor.yaml", "The path to the configuration")
	name := flag.String("dataset", "", "A registered dataset name or archive URL")
	list := flag.Bool("list", false, "List the registered dataset names and exit")
	versionFlag := flag.Bool("version", false, "Prints the version and exits")
	flag.Parse()

	if *versionFlag {
		version.Print(false)
		return // exit 0
	}

	if *list {
		for _, n := range datasets.Names() {
			url, _ := datasets.URL(n)
			fmt.Println(n, "=", url)
		}
		return
	}

	configEnv := os.Getenv("AUDIOTENSOR_CONFIG")
	if configEnv != "" {
		configPath = &configEnv
	}
	config.Path = *configPath

	runtime.RunStartupSequence()

	if *name == "" {
		logrus.Fatal("No dataset given - use -dataset")
	}

	ctx := runctx.Initial().LogWithFields(logrus.Fields{"dataset": *name})
	dir, err := datasets.Data(ctx, *name)
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Dataset ready at ", dir)
}
