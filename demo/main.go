// Package main demonstrates data collections: building, converting,
// filtering and summarizing physically-typed time series.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/sartorproj/goclimate/collection"
	"github.com/sartorproj/goclimate/datatype"
	"github.com/sartorproj/goclimate/header"
)

func main() {
	// Exterior illuminance over twelve hours of a clear day (lux).
	values := []float64{
		0, 1200, 8500, 24000, 52000, 78000,
		89000, 81000, 56000, 27000, 9000, 400,
	}
	datetimes := make([]time.Time, len(values))
	start := time.Date(2025, time.June, 21, 6, 0, 0, 0, time.UTC)
	for i := range datetimes {
		datetimes[i] = start.Add(time.Duration(i) * time.Hour)
	}

	h, err := header.New(datatype.NewIlluminance(), "lux", nil,
		map[string]string{"city": "Denver"})
	if err != nil {
		log.Fatal(err)
	}
	lux, err := collection.NewHourly(h, values, datetimes)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Collection ===")
	fmt.Println(lux)
	min, max := lux.Bounds()
	fmt.Printf("bounds: [%.0f, %.0f] lux, average %.0f, median %.0f\n",
		min, max, lux.Average(), lux.Median())
	p95, _ := lux.GetPercentile(95)
	fmt.Printf("95th percentile: %.0f lux\n", p95)

	fmt.Println("\n=== Unit conversion ===")
	fc, err := lux.ToIP()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("noon illuminance: %.0f %s = %.1f %s\n",
		lux.Value(6), lux.Header().Unit(), fc.Value(6), fc.Header().Unit())

	fmt.Println("\n=== Conditional filtering ===")
	bright, err := lux.FilterByConditionalStatement("a >= 50000")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d of %d hours at or above 50 klux:\n", bright.Len(), lux.Len())
	for i, v := range bright.Values() {
		fmt.Printf("  %s  %.0f lux\n", bright.Datetime(i).Format("15:04"), v)
	}

	fmt.Println("\n=== Pattern filtering ===")
	every3rd, err := lux.FilterByPattern([]bool{true, false, false})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("every 3rd hour kept: %d values\n", every3rd.Len())

	fmt.Println("\n=== Aligned computation ===")
	// Interior illuminance behind glazing with 65% visible transmittance.
	transmittance := 0.65
	interior, err := collection.ComputeFunctionAligned(
		func(args ...float64) float64 { return args[0] * args[1] },
		[]any{lux, transmittance},
		datatype.NewIlluminance(), "lux")
	if err != nil {
		log.Fatal(err)
	}
	interiorColl := interior.(*collection.Collection)
	fmt.Printf("interior illuminance at noon: %.0f lux\n", interiorColl.Value(6))

	// Hours that are bright outside but dim inside the daylit zone.
	pattern, err := collection.PatternFromCollectionsAndStatement(
		[]*collection.Collection{lux, interiorColl}, "a > 20000 and b < 30000")
	if err != nil {
		log.Fatal(err)
	}
	count := 0
	for _, keep := range pattern {
		if keep {
			count++
		}
	}
	fmt.Printf("hours bright outside but below 30 klux inside: %d\n", count)

	fmt.Println("\n=== Serialization ===")
	encoded, err := lux.ToJSON()
	if err != nil {
		log.Fatal(err)
	}
	decoded, err := collection.FromJSON(encoded)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("round-tripped %d values of %s through %d bytes of JSON\n",
		decoded.Len(), decoded.Header(), len(encoded))
}
