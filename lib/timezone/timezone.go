package timezone

import (
	"time"
	_ "time/tzdata"
)

// Location is Brasília time, the one Matrícula Web semesters and
// schedules are published in.
var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		panic(err)
	}
}

// Now returns the current time in Brasília so snapshot timestamps do not
// depend on where the exporter runs.
func Now() time.Time {
	return time.Now().In(Location)
}
