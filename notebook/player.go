package notebook

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/faiface/beep/wav"
	"github.com/melisma/audiotensor/common"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/signal"
	"github.com/melisma/audiotensor/templating"
	"github.com/melisma/audiotensor/util"
)

// Player builds an HTML playback widget for the tensor: an <audio> element
// over a base64 WAV data URI.
func Player(ctx runctx.RunContext, t *signal.Tensor) (template.HTML, error) {
	if t.SampleRate() <= 0 {
		return "", common.ErrNoSampleRate
	}

	ws := util.NewWriteSeeker()
	if err := wav.Encode(ws, t.Streamer(), t.Format()); err != nil {
		return "", fmt.Errorf("player: error encoding wav: %w", err)
	}

	tmpl, err := templating.GetTemplate("player")
	if err != nil {
		return "", err
	}

	model := templating.PlayerModel{
		DataURI:    template.URL("data:audio/wav;base64," + base64.StdEncoding.EncodeToString(ws.Bytes())),
		Seconds:    t.Seconds(),
		SampleRate: t.SampleRate(),
	}

	buf := &bytes.Buffer{}
	if err := tmpl.Execute(buf, model); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
