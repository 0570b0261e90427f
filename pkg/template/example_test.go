package template_test

import (
	"fmt"
	"time"

	"github.com/walteh/renamerc/pkg/template"
)

func ExampleTemplate_Render() {
	// Compile once, render for every file in the run
	tmpl, err := template.Compile("trip_{seq}_{1}{ext}")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	seq := template.NewSequence(1, 1, 3)
	sp := template.Splitter{Delimiter: "-"}

	var t time.Time
	for i, name := range []string{"beach-day.jpg", "city-night.jpg"} {
		fc := sp.Context(name, t, t, i)
		fmt.Println(tmpl.Render(fc, seq.Frame()))
	}

	// Output:
	// trip_001_beach.jpg
	// trip_002_city.jpg
}

func ExampleCompile_syntaxError() {
	_, err := template.Compile("{stem|wat}")
	fmt.Printf("Error: %v\n", err)

	// Output:
	// Error: template syntax error at offset 6: unknown filter "wat"
}

func ExampleSplitName() {
	stem, ext := template.SplitName("backup.tar.gz")
	fmt.Printf("stem=%s ext=%s\n", stem, ext)

	stem, ext = template.SplitName(".bashrc")
	fmt.Printf("stem=%s ext=%q\n", stem, ext)

	// Output:
	// stem=backup ext=.tar.gz
	// stem=.bashrc ext=""
}

// TODO(dr.methodical): 📝 Add example with a capture pattern feeding {group} keys
