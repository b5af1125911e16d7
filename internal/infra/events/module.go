package events

import "go.uber.org/fx"

// Module provides the event recorder and signer
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRecorder, NewSigner),
)
