package audio

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
)

const ManifestName = "audio-manifest.json"

type Duplicate struct {
	Key   string
	Voice string
	Kept  string
	Seen  string
}

func ignored(name string) bool {
	return name == "__MACOSX" || name == ".DS_Store" || strings.HasPrefix(name, "._")
}

// TermFromFile extracts the manifest key from a recording file name: the
// url-decoded NFC text after the last underscore.
func TermFromFile(name string) string {
	base := name
	if strings.HasSuffix(strings.ToLower(base), ".wav") {
		base = base[:len(base)-len(".wav")]
	}
	if i := strings.LastIndex(base, "_"); i >= 0 {
		base = base[i+1:]
	}
	if dec, err := url.PathUnescape(base); err == nil {
		base = dec
	}
	return norm.NFC.String(base)
}

// BuildManifest scans audioDir/{voice}/*.wav. Paths in the result are
// prefix/{voice}/{file}. When one key maps to several files of a voice
// the shorter path wins and the collision is reported.
func BuildManifest(fs afero.Fs, audioDir, prefix string) (Manifest, []Duplicate, error) {
	dirs, err := afero.ReadDir(fs, audioDir)
	if err != nil {
		return nil, nil, err
	}
	var voices []string
	for _, d := range dirs {
		if d.IsDir() && !ignored(d.Name()) {
			voices = append(voices, d.Name())
		}
	}
	if len(voices) == 0 {
		return nil, nil, fmt.Errorf("no voice folders found in %s", audioDir)
	}

	m := Manifest{}
	var dups []Duplicate
	for _, voice := range voices {
		files, err := afero.ReadDir(fs, filepath.Join(audioDir, voice))
		if err != nil {
			return nil, nil, err
		}
		for _, f := range files {
			name := f.Name()
			if f.IsDir() || ignored(name) || !strings.HasSuffix(strings.ToLower(name), ".wav") {
				continue
			}
			key := TermFromFile(name)
			rel := path.Join(prefix, voice, name)
			if m[key] == nil {
				m[key] = map[string]string{}
			}
			existing := m[key][voice]
			if existing == "" {
				m[key][voice] = rel
				continue
			}
			kept := existing
			if len(rel) < len(existing) {
				kept = rel
			}
			m[key][voice] = kept
			dups = append(dups, Duplicate{Key: key, Voice: voice, Kept: kept, Seen: rel})
		}
	}
	return m, dups, nil
}

func WriteManifest(fs afero.Fs, file string, m Manifest) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return err
	}
	return afero.WriteFile(fs, file, append(b, '\n'), 0644)
}

// CleanTerm trims a term read from a term list and drops parentheses.
func CleanTerm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "　", " ")
	s = strings.ReplaceAll(s, "(", "")
	return strings.ReplaceAll(s, ")", "")
}

func CleanTerms(lines []string) []string {
	var out []string
	for _, l := range lines {
		if t := CleanTerm(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CheckTerms reports which terms have no manifest entry and which have no
// recording on disk.
func CheckTerms(manifest, disk Manifest, terms []string) (missingManifest, missingDisk []string) {
	for _, t := range terms {
		if _, ok := manifest[t]; !ok {
			missingManifest = append(missingManifest, t)
		}
		if _, ok := disk[t]; !ok {
			missingDisk = append(missingDisk, t)
		}
	}
	return
}

func WriteCheckReport(w io.Writer, checked int, missingManifest, missingDisk []string) {
	fmt.Fprintf(w, "Checked %d term(s).\n", checked)
	fmt.Fprintf(w, "Missing from manifest: %d\n", len(missingManifest))
	for _, t := range missingManifest {
		fmt.Fprintf(w, "- %s\n", t)
	}
	fmt.Fprintf(w, "Missing from disk: %d\n", len(missingDisk))
	for _, t := range missingDisk {
		fmt.Fprintf(w, "- %s\n", t)
	}
}
