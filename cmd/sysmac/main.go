// Command sysmac runs MAC array jobs from a YAML file on the cycle-level
// accelerator model and checks the drained results.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/sysmac/api"
	"github.com/sarchlab/sysmac/config"
	"github.com/sarchlab/sysmac/core"
	"github.com/sarchlab/sysmac/job"
	"github.com/sarchlab/sysmac/systolic"
	"github.com/sarchlab/sysmac/verify"
	"github.com/tebeka/atexit"
)

var (
	jobPath     = flag.String("jobs", "", "Path to the YAML job file")
	trace       = flag.Bool("trace", false, "Print the waveform of the run")
	reportPath  = flag.String("report", "", "Write the verification report to a file")
	withMonitor = flag.Bool("monitor", false, "Start the Akita monitoring server")
	logLevel    = flag.String("log-level", "warn", "Log level: debug, trace, info, warn, error")
	resetCycles = flag.Int("reset-cycles", 2, "Cycles to hold rst_n low before the first job")
)

func main() {
	flag.Parse()

	if *jobPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: sysmac -jobs <file.yaml> [options]")
		flag.PrintDefaults()
		atexit.Exit(2)
	}

	setupLogger(*logLevel)

	f, err := job.LoadFile(*jobPath)
	if err != nil {
		slog.Error("cannot load jobs", "error", err)
		atexit.Exit(1)
	}

	jobs, err := f.Jobs()
	if err != nil {
		slog.Error("cannot convert jobs", "error", err)
		atexit.Exit(1)
	}

	builder := config.MakePlatformBuilder().WithSettings(f.Settings)

	var monitor *monitoring.Monitor
	if *withMonitor {
		monitor = monitoring.NewMonitor()
		builder = builder.WithMonitor(monitor)
	}

	platform, err := builder.Build("SysMAC")
	if err != nil {
		slog.Error("cannot build platform", "error", err)
		atexit.Exit(1)
	}

	if monitor != nil {
		monitor.StartServer()
	}

	recorder := core.NewWaveformRecorder()
	if *trace || f.Settings.Trace {
		platform.Accel.AcceptHook(recorder)
	}

	report := run(platform.Driver, f, jobs)

	if *trace || f.Settings.Trace {
		fmt.Println(recorder.Render())
	}

	core.LogState(platform.Accel.Snapshot())
	report.WriteReport(os.Stdout)
	core.PrintState(os.Stdout, platform.Accel.Snapshot())

	if *reportPath != "" {
		atexit.Register(func() {
			if err := report.SaveReportToFile(*reportPath); err != nil {
				slog.Error("cannot save report", "error", err)
			}
		})
	}

	if !report.Passed() {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func run(
	driver api.Driver,
	f *job.File,
	jobs []systolic.Job,
) *verify.VerificationReport {
	driver.Reset(*resetCycles)

	results := make([]*api.JobResult, 0, len(jobs))
	for _, j := range jobs {
		results = append(results, driver.Submit(j))
	}

	driver.Run()

	report := verify.NewReport(verify.RunLint(f))
	for i, r := range results {
		name := f.Specs[i].Label(i)
		want := verify.Expected(r.Job)

		o := report.Add(verify.Outcome{
			Name:       name,
			Job:        r.Job,
			Want:       want,
			Got:        r.Results,
			Mismatches: verify.Compare(want, r.Results),
			Err:        r.Err(),
		})

		core.Trace("Collect",
			"Job", name,
			"Cycle", r.StartCycle,
			"Results", r.Results,
			"Passed", o.Passed(),
		)
	}

	return report
}

func setupLogger(level string) {
	var l slog.Level

	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "trace":
		l = core.LevelTrace
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", level)
		atexit.Exit(2)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	slog.SetDefault(slog.New(handler))
}
