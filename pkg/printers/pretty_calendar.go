package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar for the month containing on, with days that
// have a journal entry highlighted.
func (pp *PrettyPrint) Month(on dates.Date, entries ...*entry.Entry) {
	days := dates.DaysInMonth(on.Year(), on.Month())

	recorded := make([]bool, days)
	for _, e := range entries {
		if e.Date.SameMonth(on) {
			recorded[e.Date.Day()-1] = true
		}
	}

	tf := color.New(color.FgWhite, color.Italic)
	m := on.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	d := on.MonthStart().Weekday()
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiCyan)

	for i := 0; i < days; i++ {
		if recorded[i] {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}
