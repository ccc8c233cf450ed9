package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	questionColor = color.New(color.FgCyan, color.Bold)
	warningColor  = color.New(color.FgYellow)
	farewellColor = color.New(color.FgGreen)
)

func renderQuestion(w io.Writer, text string) {
	fmt.Fprint(w, questionColor.Sprint(text))
}

func renderInvalidAnswer(w io.Writer) {
	fmt.Fprintln(w, warningColor.Sprint("Please answer Y or N."))
}

func renderFarewell(w io.Writer) {
	fmt.Fprintln(w, farewellColor.Sprint("Goodbye."))
}
