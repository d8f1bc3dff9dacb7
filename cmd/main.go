package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rectsim/pkg/chart"
	"rectsim/pkg/metrics"
	"rectsim/pkg/rectifier"
	"rectsim/pkg/util"
	"rectsim/pkg/waveform"
)

func main() {
	topologyName := flag.String("type", "half-wave-uncontrolled", "rectifier topology (-list to see all)")
	amplitude := flag.Float64("amplitude", 220, "peak source voltage (V)")
	frequency := flag.Float64("freq", 50, "source frequency (Hz)")
	resistance := flag.Float64("res", 100, "load resistance (ohm)")
	inductance := flag.Float64("ind", 0, "load inductance (H)")
	alpha := flag.Float64("alpha", 0, "firing angle (deg), controlled types only")
	cycles := flag.Int("cycles", 3, "number of source cycles to simulate")
	samples := flag.Int("samples", 1500, "number of time samples")
	out := flag.String("out", "", "write a waveform chart PNG to this file")
	list := flag.Bool("list", false, "list supported topologies and exit")
	flag.Parse()

	if *list {
		for _, t := range rectifier.Topologies() {
			fmt.Println(t)
		}
		return
	}

	topology, err := rectifier.ParseTopology(*topologyName)
	if err != nil {
		log.Fatal(err)
	}

	grid, err := waveform.Uniform(*cycles, *frequency, *samples)
	if err != nil {
		log.Fatal(err)
	}

	params := rectifier.Params{
		Frequency:   *frequency,
		Amplitude:   *amplitude,
		Resistance:  *resistance,
		Inductance:  *inductance,
		FiringAngle: *alpha,
	}
	result, err := rectifier.Generate(topology, grid, params)
	if err != nil {
		log.Fatal(err)
	}

	record := metrics.Compute(result.Input, result.Output, result.Current, *resistance)
	printMetrics(topology, params, record)

	if *out != "" {
		png, err := chart.Waveforms(grid, result, topology)
		if err != nil {
			log.Fatalf("chart rendering: %v", err)
		}
		if err := os.WriteFile(*out, png, 0o644); err != nil {
			log.Fatalf("writing %s: %v", *out, err)
		}
		fmt.Printf("\nChart written to %s\n", *out)
	}
}

func printMetrics(t rectifier.Topology, p rectifier.Params, r metrics.Record) {
	fmt.Printf("\nSimulation Results: %s\n", t)
	fmt.Println("===================")
	fmt.Printf("Source: %s peak @ %s, load %s",
		util.FormatValueFactor(p.Amplitude, "V"),
		util.FormatValueFactor(p.Frequency, "Hz"),
		util.FormatValueFactor(p.Resistance, "Ohm"))
	if p.Inductance > 0 {
		fmt.Printf(" + %s", util.FormatValueFactor(p.Inductance, "H"))
	}
	if t.Controlled() {
		fmt.Printf(", firing angle %.1f deg", p.FiringAngle)
	}
	fmt.Println()
	fmt.Println()

	fmt.Printf("  Average output voltage : %s\n", util.FormatValueFactor(r.AvgVoltage, "V"))
	fmt.Printf("  RMS output voltage     : %s\n", util.FormatValueFactor(r.RMSVoltage, "V"))
	fmt.Printf("  Ripple factor          : %s\n", util.FormatRatio(r.RippleFactor))
	fmt.Printf("  Form factor            : %s\n", util.FormatRatio(r.FormFactor))
	fmt.Printf("  Average output current : %s\n", util.FormatValueFactor(r.AvgCurrent, "A"))
	fmt.Printf("  RMS output current     : %s\n", util.FormatValueFactor(r.RMSCurrent, "A"))
	fmt.Printf("  Output power           : %s\n", util.FormatValueFactor(r.OutputPower, "W"))
	fmt.Printf("  Efficiency             : %s\n", util.FormatPercent(r.EfficiencyPct))
}
