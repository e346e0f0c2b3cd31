package main

import (
	"playerfouls-backend/cmd/playerfouls/commands"
	"playerfouls-backend/lib/serviceutil"
	"playerfouls-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "playerfouls")
	telemetry.InitSlog(false)
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
