package main

import (
	"context"

	"djrank-backend/cmd/djrank/commands"
	"djrank-backend/lib/serviceutil"
	"djrank-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "djrank")
	defer telemetry.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
