package djmag

import (
	"djrank-backend/lib/restyutil"
	"djrank-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("djrank.lib.scrapers.djmag")

func (c *Client) SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, out)
}
