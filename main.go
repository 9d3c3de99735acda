package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/dot5enko/simple-frame-pipes/frame"
	"github.com/dot5enko/simple-frame-pipes/lazy"
	"github.com/dot5enko/simple-frame-pipes/pipe"
	"github.com/dot5enko/simple-frame-pipes/snapshot"
)

// demo: clean a raw activity export the way an ingest job would
func main() {

	piper := pipe.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	raw := frame.MustNew(
		frame.NewSeries("timestamp", []string{
			"2023-02-22 11:56:00",
			"2023-02-22 11:56:01",
			"",
			"2023-02-22 11:56:02",
		}, []bool{true, true, false, true}),
		frame.NewSeries("position_lat", []int64{
			536870912, 536870913, 0, 536870915,
		}, []bool{true, true, false, true}),
		frame.NewSeries("distance_m", []string{
			"1,024", "2,048", "", "4,096",
		}, []bool{true, true, false, true}),
		frame.NewSeries("time_in_hr_zone_sec", []string{
			"10.5|20.0|5.5", "1|2|3", "", "0.5|9",
		}, []bool{true, true, false, true}),
		frame.NullSeries("power_w", frame.Float64FieldType, 4),
	)

	cleaned := piper.Magic(raw)

	color.Green("magic: %d x %d -> %d x %d", raw.Height(), raw.Width(), cleaned.Height(), cleaned.Width())

	result, err := lazy.New(cleaned, piper).
		CastTimeInZoneStringToListOfFloat(nil).
		SortColumnsByNullCount().
		Collect()
	if err != nil {
		log.Fatalf("collect failed: %s", err.Error())
	}

	color.Green("column order by null density: %v", result.Columns())

	blob, err := snapshot.Encode(result)
	if err != nil {
		log.Fatalf("snapshot failed: %s", err.Error())
	}

	restored, err := snapshot.Decode(blob)
	if err != nil {
		log.Fatalf("restore failed: %s", err.Error())
	}

	color.Yellow("snapshot round trip: %d bytes, equal=%v", len(blob), result.Equal(restored))

	for i := 0; i < result.Width(); i++ {
		col := result.At(i)
		log.Printf("%-22s %-10s nulls=%d", col.Name(), col.Type().String(), col.NullCount())
	}

	if os.Getenv("DUMP") != "" {
		spew.Dump(result)
	}
}
