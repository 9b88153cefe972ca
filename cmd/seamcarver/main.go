package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/esimov/seamcarver"
	"github.com/esimov/seamcarver/utils"
)

const helpBanner = `
┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┬─┐┬  ┬┌─┐┬─┐
└─┐├┤ ├─┤││││  ├─┤├┬┘└┐┌┘├┤ ├┬┘
└─┘└─┘┴ ┴┴ ┴└─┘┴ ┴┴└─ └┘ └─┘┴└─

Content aware image resize by seam carving.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source file, directory or URL")
	destination = flag.String("out", pipeName, "Destination file or directory")
	newWidth    = flag.Int("width", 0, "New width")
	newHeight   = flag.Int("height", 0, "New height")
	percentage  = flag.Bool("perc", false, "Reduce image by percentage")
	square      = flag.Bool("square", false, "Reduce image to square dimensions")
	scale       = flag.Bool("scale", false, "Proportional scaling before carving")
	debug       = flag.Bool("debug", false, "Log the removed seams and mark the next ones on the output")
	seamColor   = flag.String("color", "#ff0000", "Seam color used in debug mode")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *newWidth <= 0 && *newHeight <= 0 && !*square {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide a width, height or percentage for image rescaling!", utils.ErrorMessage))
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SEAMCARVER", utils.StatusMessage),
		utils.DecorateText("⇢ resizing image (be patient, it may take a while)...", utils.DefaultMessage),
	)
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*80, true)
	spinner.StopMsg = fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SEAMCARVER", utils.StatusMessage),
		utils.DecorateText("⇢ done ✔", utils.SuccessMessage),
	)

	proc := &seamcarver.Processor{
		NewWidth:   *newWidth,
		NewHeight:  *newHeight,
		Percentage: *percentage,
		Square:     *square,
		Scale:      *scale,
		Debug:      *debug,
		SeamColor:  *seamColor,
	}
	// The progress indicator would interleave with the debug log lines.
	if !*debug {
		proc.Spinner = spinner
	}

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	op := &seamcarver.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	}

	now := time.Now()
	if err := proc.Execute(op); err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("\nError resizing the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}
