package cmd

import (
	"github.com/etnz/ipc"
	"github.com/etnz/ipc/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the application.
func Completion() *complete.Command {
	units := predict.Set(ipc.Tokens())

	var topics predict.Set
	if all, err := docs.GetAllTopics(); err == nil {
		topics = predict.Set(all)
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"setup":    {Args: predict.Something},
			"status":   {},
			"purchase": {Args: units},
			"remove":   {Args: units},
			"commit":   {Args: predict.Something},
			"units":    {},
			"topic":    {Args: topics},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"state-file": predict.Files("*.json"),
			"v":          predict.Nothing,
			"strict":     predict.Nothing,
		},
	}
}
