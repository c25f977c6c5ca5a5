package snake

import (
	"strconv"

	"visnake/internal/core"
)

// Parameters publishes the board setup and the running score for HUDs.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", e.cfg.Width),
				intParam("h", "Height", e.cfg.Height),
				intParam("start", "Start length", e.cfg.StartLength),
				int64Param("seed", "Seed", e.seed),
			},
		},
		{
			Name: "Game",
			Params: []core.Parameter{
				intParam("score", "Score", e.Score()),
				intParam("length", "Length", e.Len()),
				stringParam("status", "Status", e.status.String()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
