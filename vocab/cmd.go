package vocab

import (
	"fmt"
	"io"

	"github.com/lai323/vocabgarden/ui"
)

// ListFiles prints the vocabulary files of lib, marking the default one.
func ListFiles(w io.Writer, lib Library) error {
	files, err := lib.Files()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(w, "no vocabulary files")
		return nil
	}
	def := DefaultFile(files)
	for _, f := range files {
		mark := ""
		if f == def {
			mark = "default"
		}
		fmt.Fprintln(w, ui.Line(60,
			ui.Cell{Text: f},
			ui.Cell{Width: 24, Text: CategoryLabel(f)},
			ui.Cell{Width: 8, Text: mark, Align: ui.RightAlign},
		))
	}
	return nil
}

// ListLessons prints each lesson of d with its word count.
func ListLessons(w io.Writer, d *Data) {
	keys := d.LessonKeys()
	for _, id := range keys {
		fmt.Fprintln(w, ui.Line(50,
			ui.Cell{Width: 6, Text: id},
			ui.Cell{Text: d.LessonName(id)},
			ui.Cell{Width: 10, Text: fmt.Sprintf("%d words", d.CountWords([]string{id})), Align: ui.RightAlign},
		))
	}
	fmt.Fprintf(w, "%d lessons, %d words\n", len(keys), d.CountWords(keys))
}
