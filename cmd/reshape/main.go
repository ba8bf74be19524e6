/*
Command reshape shapes Arabic text for painting onto a left-to-right canvas.

Usage:

	reshape [-trace Debug|Info|Error] [-resolution NAME] [-explain] [text ...]

Every argument is shaped and printed in visual order. Without arguments,
reshape reads lines interactively until <ctrl>D.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/reelshape"
	"github.com/npillmayer/reelshape/bidi"
	"github.com/npillmayer/reelshape/script"
	"github.com/npillmayer/reelshape/shaping"
	"github.com/npillmayer/reelshape/video"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func main() {
	initDisplay()
	gtrace.CoreTracer = gologadapter.New()

	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	resolution := flag.String("resolution", video.HDVertical, "Resolution name [HD_Vertical|HD_Horizontal|Square]")
	explain := flag.Bool("explain", false, "Print the classification of every character")
	flag.Parse()
	if err := setTraceLevel(*tlevel); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	pterm.Info.Printf("reshape %s\n", reelshape.Version)
	reportLocale()
	w, h := video.ResolutionFor(*resolution)
	pterm.Info.Printf("Resolution %s is %dx%d\n", *resolution, w, h)
	//
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			process(arg, *explain)
		}
		return
	}
	repl, err := readline.New("reshape > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		process(line, *explain)
	}
	pterm.Info.Println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) error {
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	return nil
}

// reportLocale tells the user's locale. Shaping does not depend on it, but
// users typing right-to-left text want to know if their terminal agrees.
func reportLocale() {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("cannot detect user locale: %v", err)
		return
	}
	scr, _ := language.Make(userLocale).Script()
	pterm.Info.Printf("User locale is %s (script %s)\n", userLocale, scr)
}

func process(text string, explain bool) {
	pterm.Println(shaping.Shape(text))
	if explain {
		pterm.DefaultTable.WithHasHeader().WithData(explainRows(text)).Render()
	}
}

// explainRows lists the classification of every rune of text, in logical order.
func explainRows(text string) [][]string {
	data := [][]string{
		{"Index", "Char", "Arabic", "Connecting", "RTL", "Form", "Bidi"},
	}
	forms := shaping.Forms(text)
	for i, r := range []rune(text) {
		c := script.Classify(r)
		data = append(data, []string{
			strconv.Itoa(i),
			fmt.Sprintf("%#U", r),
			yesno(c.Arabic),
			yesno(c.Connecting),
			yesno(c.RTL),
			forms[i].String(),
			bidi.ClassString(bidi.ClassOf(r)),
		})
	}
	return data
}

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
