// Command engdemo demonstrates SI-prefix and engineering-notation
// formatting. With no flags it prints a table of sample quantities;
// with --value it formats a single quantity.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/fieldbench/engnotation"
	"github.com/fieldbench/engnotation/internal/version"
	"github.com/pborman/getopt/v2"
)

var startTime = time.Now()

type logHandler struct {
	io.Writer
}

func (h *logHandler) HandleLog(e *log.Entry) (err error) {
	s := fmt.Sprintf("[%14.6f] <%s> %s", time.Since(startTime).Seconds(), e.Level, e.Message)
	if len(e.Fields) > 0 {
		s += fmt.Sprintf(": %+v", e.Fields)
	}
	s += "\n"
	_, err = h.Writer.Write([]byte(s))
	return
}

var (
	engFlag     = getopt.BoolLong("eng", 'e', "use engineering notation instead of SI prefixes")
	placesFlag  = getopt.IntLong("places", 'p', engnotation.DefaultDecimalPlaces, "number of decimal places")
	unitFlag    = getopt.StringLong("unit", 'u', "", "unit suffix to append")
	valueFlag   = getopt.StringLong("value", 'x', "", "quantity to format, SI prefixes accepted (e.g. 1.5k)")
	versionFlag = getopt.BoolLong("version", 0, "print the version and exit")
)

func format(number float64, unit string, places int, eng bool) (string, error) {
	if eng {
		return engnotation.EngineeringForm(number, unit, places)
	}
	return engnotation.SIForm(number, unit, places)
}

func main() {
	getopt.Parse()
	logger := &log.Logger{Level: log.InfoLevel, Handler: &logHandler{Writer: os.Stderr}}

	if *versionFlag {
		fmt.Println(version.Version)
		return
	}

	if *valueFlag != "" {
		number, err := engnotation.Parse(*valueFlag)
		if err != nil {
			logger.WithError(err).Fatal("cannot parse the --value flag")
		}
		output, err := format(number, *unitFlag, *placesFlag, *engFlag)
		if err != nil {
			logger.WithError(err).Fatal("cannot format the value")
		}
		fmt.Println(output)
		return
	}

	// sample is a quantity printed by the demonstration table.
	type sample struct {
		number float64
		unit   string
	}

	samples := []sample{
		{15050.504, "V"},
		{3.3, "V"},
		{0.000015, "A"},
		{0.000000001, "A"},
		{4700, "Ω"},
		{1000000000000000, "Ω"},
		{0, "V"},
	}

	header := color.New(color.Bold)
	header.Printf("%18s  %16s  %18s\n", "value", "SI form", "engineering form")
	for _, s := range samples {
		si, err := engnotation.SIForm(s.number, s.unit, *placesFlag)
		if err != nil {
			logger.WithError(err).Fatal("cannot format sample")
		}
		eng, err := engnotation.EngineeringForm(s.number, s.unit, *placesFlag)
		if err != nil {
			logger.WithError(err).Fatal("cannot format sample")
		}
		fmt.Printf("%18v  %16s  %18s\n", s.number, si, eng)
	}
}
