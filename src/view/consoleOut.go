package view

import (
	"bytes"
	"fmt"
	"io"
	"lifeedit/src/universe"
	"sort"

	"github.com/logrusorgru/aurora"
)

const clearScreen = "\033[H\033[2J"

//ConsoleOut prints every generation as text
//live cells are "X ", dead cells are ". "
type ConsoleOut struct {
	w          io.Writer
	au         aurora.Aurora
	clear      bool
	liveFiller string
	deadFiller string
}

//NewConsoleOut creates the viewer writing to w
//clear redraws each frame in place, colors enables ANSI colouring
func NewConsoleOut(w io.Writer, clear bool, colors bool) *ConsoleOut {
	au := aurora.NewAurora(colors)
	return &ConsoleOut{
		w:          w,
		au:         au,
		clear:      clear,
		liveFiller: au.Green("X ").Bold().String(),
		deadFiller: au.Gray(12, ". ").String(),
	}
}

//Start prints the running configuration
func (c *ConsoleOut) Start(o universe.Options, g *universe.Grid) {
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", g.Width(), g.Height()),
		"Interval":       o.Interval,
		"Max iterations": maxSteps(o.MaxSteps),
		"Stop on stable": o.StopWhenStable,
	})
}

//Render draws one generation
func (c *ConsoleOut) Render(g *universe.Grid, st universe.Status) {
	var b bytes.Buffer
	if c.clear {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(&b, "%s %d\n", c.au.Cyan("Generation:").String(), st.Generation)
	for _, row := range g.Rows('X', '.') {
		for _, ch := range row {
			if ch == 'X' {
				b.WriteString(c.liveFiller)
			} else {
				b.WriteString(c.deadFiller)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, _ = c.w.Write(b.Bytes())

	if st.RunningMode == universe.RunningStateFinished {
		_, _ = fmt.Fprintln(c.w, c.au.Red("Finished:").String())
		c.printHashData(map[string]interface{}{
			"Last generation": st.Generation,
			"Live cells":      st.LiveCells,
		})
	}
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}

func maxSteps(n int) string {
	if n == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%v steps", n)
}
