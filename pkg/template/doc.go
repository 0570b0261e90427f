/*
Package template implements the naming mini-language that derives new file
names from per-file facts.

	            +--------------+
	            |   Template   |
	            |  (compiled)  |
	            +------+-------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+-----+            +------+------+
	|  Literal  |            | Placeholder |
	|  segment  |            |  + filters  |
	+-----------+            +-------------+

🎯 Purpose:
- Compiles template strings into reusable segment programs
- Resolves placeholders against one file's context
- Applies filter chains to resolved values
- Draws sequence numbers exactly once per rendered entry

🔄 Flow:
1. Compile parses the template into literal and placeholder segments
2. A Splitter derives a FileContext for each input file
3. Render walks the segments, resolving placeholders lazily
4. Filters transform each resolved value left to right

⚡ Key Responsibilities:
- Strict compile-time syntax checking (braces, keys, filters)
- Lenient evaluation (missing data resolves to the empty string)
- Positional segment selection with ranges and negatives
- Named-capture lookup from the configured pattern

📝 Design Philosophy:
Compiling is pure syntax analysis: it never touches the filesystem and a
compiled Template is safe to reuse across every file in a run. Evaluation
is total - a template that compiled cannot fail on any file, it can only
resolve parts of itself to nothing. Reserved variables, positional
selectors, and capture groups share one lookup path with three backing
strategies.

🔍 Example:

	tmpl, err := template.Compile("{mtime}_{stem|slug}_{seq}{ext}")
	if err != nil {
		var serr *template.SyntaxError
		if errors.As(err, &serr) {
			fmt.Printf("bad template at offset %d: %s\n", serr.Offset, serr.Msg)
		}
		return err
	}

	seq := template.NewSequence(1, 1, 4)
	sp := template.Splitter{Delimiter: "-"}
	for i, f := range files {
		fc := sp.Context(f.Name, f.ModTime, f.ChangeTime, i)
		fmt.Println(tmpl.Render(fc, seq.Frame()))
	}
*/
package template
