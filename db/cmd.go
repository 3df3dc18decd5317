package db

import (
	"fmt"
	"io"
	"strings"
)

// StarList prints starred keys as file, lesson and the Japanese/English forms.
func StarList(w io.Writer, s *Starred) error {
	keys := s.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(w, "no starred words")
		return nil
	}
	for _, k := range keys {
		parts := strings.SplitN(k, "::", 5)
		if len(parts) != 5 {
			fmt.Fprintln(w, k)
			continue
		}
		jp := parts[2]
		if parts[3] != "" && parts[3] != parts[2] {
			jp = strings.TrimSpace(jp + " " + parts[3])
		}
		fmt.Fprintf(w, "%-20s%-10s%-20s%s\n", parts[0], parts[1], jp, strings.ReplaceAll(parts[4], "|", ", "))
	}
	return s.LastErr
}

func StarClear(w io.Writer, s *Starred) error {
	n := s.Len()
	s.Clear()
	if s.LastErr != nil {
		return s.LastErr
	}
	fmt.Fprintf(w, "cleared %d starred words\n", n)
	return nil
}
