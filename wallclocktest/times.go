package wallclocktest

import (
	"time"
)

// KnownTime is 14:03:07 on 05-06-2024.
var KnownTime = time.Date(2024, time.June, 5, 14, 3, 7, 0, time.UTC)

// KnownTimestamp is KnownTime formatted with wallclock.TimestampLayout.
const KnownTimestamp = "14:03:07 05-06-2024"
