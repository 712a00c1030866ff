package runctx

import (
	"context"

	"github.com/melisma/audiotensor/common/config"
	"github.com/sirupsen/logrus"
)

func Initial() RunContext {
	return RunContext{
		Context: context.Background(),
		Log:     logrus.WithFields(logrus.Fields{"nocontext": true}),
		Config:  config.Get(),
	}.populate()
}

type RunContext struct {
	context.Context

	// These are also stored on the context object itself
	Log    *logrus.Entry // at.logger
	Config *config.AudioRepoConfig
}

func (c RunContext) populate() RunContext {
	c.Context = context.WithValue(c.Context, "at.logger", c.Log)
	c.Context = context.WithValue(c.Context, "at.config", c.Config)
	return c
}

func (c RunContext) ReplaceLogger(log *logrus.Entry) RunContext {
	ctx := context.WithValue(c.Context, "at.logger", log)
	return RunContext{
		Context: ctx,
		Log:     log,
		Config:  c.Config,
	}
}

func (c RunContext) LogWithFields(fields logrus.Fields) RunContext {
	return c.ReplaceLogger(c.Log.WithFields(fields))
}
