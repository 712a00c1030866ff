package templating

import (
	"html/template"
)

type PlayerModel struct {
	DataURI    template.URL
	Seconds    float64
	SampleRate int
}

type FigureModel struct {
	ImageURI template.URL
	Alt      string
	Player   template.HTML
}
