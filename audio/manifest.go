package audio

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Manifest maps a Japanese term to voice folder to a relative audio path.
type Manifest map[string]map[string]string

// LoadManifest reads the manifest at path. A missing or broken manifest
// yields an empty one; the error is still returned for logging.
func LoadManifest(fs afero.Fs, path string) (Manifest, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return Manifest{}, err
	}
	if m == nil {
		m = Manifest{}
	}
	return m, nil
}

// Lookup returns the "./" prefixed path for key and voice, or "".
func (m Manifest) Lookup(key, voice string) string {
	entry, ok := m[key]
	if !ok {
		return ""
	}
	rel := entry[voice]
	if rel == "" {
		return ""
	}
	if strings.HasPrefix(rel, "./") {
		return rel
	}
	return "./" + strings.TrimLeft(rel, "/")
}

func (m Manifest) Voices() []string {
	seen := map[string]struct{}{}
	for _, entry := range m {
		for voice, rel := range entry {
			if rel != "" {
				seen[voice] = struct{}{}
			}
		}
	}
	voices := make([]string, 0, len(seen))
	for v := range seen {
		voices = append(voices, v)
	}
	sort.Strings(voices)
	return voices
}

func (m Manifest) HasVoice(voice string) bool {
	for _, entry := range m {
		if entry[voice] != "" {
			return true
		}
	}
	return false
}
